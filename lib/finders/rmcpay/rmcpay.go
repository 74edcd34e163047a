// Package rmcpay searches the RmcPay multi-operator enforcement
// network. Lookups are two-step: resolve which operator holds tickets
// for the plate, then search that operator's violations. Amounts come
// back as string-encoded cents.
package rmcpay

import (
	"context"
	"fmt"
	"strings"

	"huur-backend/lib/finders"

	"github.com/go-resty/resty/v2"
)

const (
	apiURL  = "https://rmcpay.com/rmcapi/api/violation_index.php"
	payURL  = "https://www.rmcpay.com"
	svcName = "RmcPay"
)

type Finder struct {
	http *resty.Client
	api  string
}

func New() *Finder {
	return &Finder{
		http: finders.NewBrowserClient(finders.ClientOptions{
			TracerName: "finders/rmcpay",
		}),
		api: apiURL,
	}
}

func (f *Finder) Name() string { return svcName }
func (f *Finder) Link() string { return payURL }

type operatorInfo struct {
	Data struct {
		Operators []struct {
			OperatorID string `json:"operator_id"`
		} `json:"operators"`
	} `json:"data"`
}

// Violation is one entry of the search response. Nearly every field is
// a string on the wire, including booleans and cent amounts.
type Violation struct {
	ViolationNumber     string `json:"violation_number"`
	Number              string `json:"number"`
	OperatorDisplayName string `json:"operator_display_name"`
	Location            string `json:"location"`
	Zone                string `json:"zone"`
	Lpn                 string `json:"lpn"`
	VehicleState        string `json:"vehicle_state"`
	Date                string `json:"date"`
	SettlementDate      string `json:"settlementdate"`
	AmountInCents       string `json:"amountincents"`
	Paid                string `json:"paid"`
	Status              string `json:"status"`
}

// Response is the search envelope.
type Response struct {
	Status  int         `json:"status"`
	Data    []Violation `json:"data"`
	Message string      `json:"message"`
}

func (f *Finder) Find(ctx context.Context, query finders.Query) ([]finders.ParkingViolation, error) {
	operatorID, err := f.operatorID(ctx, map[string]string{
		"violationnumber": "",
		"stateid":         StateID(query.State),
		"lpn":             query.Plate,
		"operatorid":      "0",
		"omsessiondata":   "",
	})
	if err != nil {
		return nil, err
	}
	return f.search(ctx, map[string]string{
		"operatorid":      operatorID,
		"violationnumber": "",
		"stateid":         StateID(query.State),
		"lpn":             query.Plate,
	})
}

// FindByCitation looks up a single ticket by its citation number, for
// plates registered out of network.
func (f *Finder) FindByCitation(ctx context.Context, citation string) ([]finders.ParkingViolation, error) {
	operatorID, err := f.operatorID(ctx, map[string]string{
		"violationnumber": citation,
		"stateid":         "",
		"lpn":             "",
		"operatorid":      "0",
		"omsessiondata":   "",
	})
	if err != nil {
		return nil, err
	}
	return f.search(ctx, map[string]string{
		"operatorid":      operatorID,
		"violationnumber": citation,
		"stateid":         "",
		"lpn":             "",
	})
}

// operatorID resolves the operator holding the plate's tickets. No
// operator is not an error, the search just runs with an empty id.
func (f *Finder) operatorID(ctx context.Context, params map[string]string) (string, error) {
	var info operatorInfo
	res, err := f.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&info).
		Get(f.api + "/getviolationoperatorinfo")
	if err != nil {
		return "", err
	}
	if !res.IsSuccess() {
		return "", fmt.Errorf("operator lookup failed with status %s", res.Status())
	}
	for _, operator := range info.Data.Operators {
		if operator.OperatorID != "" {
			return operator.OperatorID, nil
		}
	}
	return "", nil
}

func (f *Finder) search(ctx context.Context, params map[string]string) ([]finders.ParkingViolation, error) {
	params["vin"] = ""
	params["plate_type_id"] = ""
	params["devicenumber"] = ""
	params["payment_plan_id"] = ""
	params["immobilization_id"] = ""
	params["single_violation"] = "0"
	params["omsessiondata"] = ""

	var response Response
	res, err := f.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&response).
		Get(f.api + "/searchviolation")
	if err != nil {
		return nil, err
	}
	if !res.IsSuccess() {
		return nil, fmt.Errorf("violation search failed with status %s", res.Status())
	}

	violations := make([]finders.ParkingViolation, 0, len(response.Data))
	for _, violation := range response.Data {
		violations = append(violations, MapViolation(violation))
	}
	return violations, nil
}

// MapViolation converts one search entry to a normalized record.
func MapViolation(violation Violation) finders.ParkingViolation {
	address := violation.Location
	if address == "" {
		address = violation.Zone
	}
	return finders.ParkingViolation{
		CitationNumber: violation.ViolationNumber,
		NoticeNumber:   violation.Number,
		Agency:         violation.OperatorDisplayName,
		Address:        address,
		Tag:            violation.Lpn,
		State:          violation.VehicleState,
		IssueDate:      finders.ParseTime(violation.Date),
		StartDate:      finders.ParseTime(violation.Date),
		EndDate:        finders.ParseTime(violation.SettlementDate),
		Amount:         finders.ParseCents(violation.AmountInCents),
		Currency:       "USD",
		PaymentStatus:  finders.NormalizeStatus(violation.Status),
		FineType:       finders.FineTypeParking,
		IsActive:       strings.ToLower(violation.Status) != "paid" && violation.Paid != "1",
		Link:           payURL,
	}
}
