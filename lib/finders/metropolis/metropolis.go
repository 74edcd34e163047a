// Package metropolis searches the Metropolis camera-enforced garage
// network. The API wraps its results in a success envelope and reports
// all timestamps as epoch milliseconds.
package metropolis

import (
	"context"
	"fmt"
	"time"

	"huur-backend/lib/finders"

	"github.com/go-resty/resty/v2"
)

const (
	siteURL = "https://site.metropolis.io"
	baseURL = siteURL + "/api/violation/customer/violations/"
)

type Finder struct {
	http *resty.Client
}

func New() *Finder {
	return &Finder{
		// Metropolis rejects searches without a browser-looking origin
		http: finders.NewBrowserClient(finders.ClientOptions{
			Origin:     siteURL,
			Referer:    siteURL + "/",
			TracerName: "finders/metropolis",
		}),
	}
}

func (f *Finder) Name() string { return "Metropolis" }
func (f *Finder) Link() string { return baseURL }

type siteAddress struct {
	Street    string `json:"street"`
	City      string `json:"city"`
	StateCode string `json:"stateCode"`
	Zip       string `json:"zip"`
}

type violationItem struct {
	SiteAddressInfo   siteAddress `json:"siteAddressInfo"`
	LicensePlate      string      `json:"licensePlate"`
	LicensePlateState string      `json:"licensePlateState"`
	VisitStart        int64       `json:"visitStart"`
	VisitEnd          int64       `json:"visitEnd"`
	ViolationIssued   int64       `json:"violationIssued"`
	TotalAmount       float64     `json:"totalAmount"`
}

// Violation is one hit in the search response.
type Violation struct {
	ExtID             string        `json:"extId"`
	ViolationItemView violationItem `json:"violationItemView"`
}

// Response is the API's search envelope.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		Violations []Violation `json:"violations"`
	} `json:"data"`
}

func (f *Finder) Find(ctx context.Context, query finders.Query) ([]finders.ParkingViolation, error) {
	var response Response
	res, err := f.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"licensePlateText":  query.Plate,
			"licensePlateState": query.State,
		}).
		SetResult(&response).
		Get(baseURL + "search")
	if err != nil {
		return nil, err
	}
	if !res.IsSuccess() {
		return nil, fmt.Errorf("violation search failed with status %s", res.Status())
	}
	if !response.Success {
		return nil, nil
	}

	violations := make([]finders.ParkingViolation, 0, len(response.Data.Violations))
	for _, violation := range response.Data.Violations {
		violations = append(violations, MapViolation(violation))
	}
	return violations, nil
}

// MapViolation converts one search hit to a normalized record. The API
// only ever returns outstanding violations, so every record is active.
func MapViolation(violation Violation) finders.ParkingViolation {
	item := violation.ViolationItemView
	address := fmt.Sprintf("%s, %s, %s %s",
		item.SiteAddressInfo.Street,
		item.SiteAddressInfo.City,
		item.SiteAddressInfo.StateCode,
		item.SiteAddressInfo.Zip,
	)
	return finders.ParkingViolation{
		NoticeNumber:  violation.ExtID,
		Agency:        "Metropolis",
		Address:       address,
		Tag:           item.LicensePlate,
		State:         item.LicensePlateState,
		IssueDate:     time.UnixMilli(item.ViolationIssued),
		StartDate:     time.UnixMilli(item.VisitStart),
		EndDate:       time.UnixMilli(item.VisitEnd),
		Amount:        item.TotalAmount,
		Currency:      "USD",
		PaymentStatus: finders.StatusNew,
		FineType:      finders.FineTypeParking,
		IsActive:      true,
		Link:          baseURL,
	}
}
