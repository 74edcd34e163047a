// Package vanguard searches the VanGuard pay-parking-notice lookup.
// Notice dates arrive as a serialized Luxon DateTime object; its epoch
// millisecond timestamp is the only part treated as authoritative.
package vanguard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"huur-backend/lib/finders"

	"github.com/go-resty/resty/v2"
)

const baseURL = "https://www.payparkingnotice.com/api/"

type Finder struct {
	http *resty.Client
}

func New() *Finder {
	return &Finder{
		http: finders.NewBrowserClient(finders.ClientOptions{
			TracerName: "finders/vanguard",
		}),
	}
}

func (f *Finder) Name() string { return "VanGuard" }
func (f *Finder) Link() string { return baseURL }

type noticeDate struct {
	Ts int64 `json:"ts"`
}

// Notice is one lookup hit.
type Notice struct {
	NoticeNumber string      `json:"notice"`
	NoticeDate   *noticeDate `json:"noticeDate"`
	EntryTime    string      `json:"entryTime"`
	ExitTime     string      `json:"exitTime"`
	TicketStatus string      `json:"ticketStatus"`
	Lpn          string      `json:"lpn"`
	LpnState     string      `json:"lpnState"`
	LotAddress   string      `json:"lotAddress"`
	AmountDue    string      `json:"amountDue"`
}

// Response is the lookup envelope.
type Response struct {
	RecordsFound int      `json:"recordsFound"`
	Notices      []Notice `json:"notices"`
}

func (f *Finder) Find(ctx context.Context, query finders.Query) ([]finders.ParkingViolation, error) {
	var response Response
	res, err := f.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"method":     "lpnLookup",
			"lpn":        query.Plate,
			"lpnState":   query.State,
			"includeAll": "true",
		}).
		SetResult(&response).
		Get(baseURL + "lookup")
	if err != nil {
		return nil, err
	}
	if !res.IsSuccess() {
		return nil, fmt.Errorf("notice lookup failed with status %s", res.Status())
	}
	if response.RecordsFound == 0 {
		return nil, nil
	}

	violations := make([]finders.ParkingViolation, 0, len(response.Notices))
	for _, notice := range response.Notices {
		violations = append(violations, MapNotice(notice))
	}
	return violations, nil
}

// MapNotice converts one lookup hit to a normalized record.
func MapNotice(notice Notice) finders.ParkingViolation {
	paid := strings.ToLower(notice.TicketStatus) == "paid"
	violation := finders.ParkingViolation{
		NoticeNumber:  notice.NoticeNumber,
		Agency:        "VanGuard",
		Address:       notice.LotAddress,
		Tag:           notice.Lpn,
		State:         notice.LpnState,
		StartDate:     finders.ParseTime(notice.EntryTime),
		EndDate:       finders.ParseTime(notice.ExitTime),
		Amount:        finders.ParseAmount(notice.AmountDue),
		Currency:      "USD",
		PaymentStatus: finders.StatusNew,
		FineType:      finders.FineTypeParking,
		IsActive:      !paid,
		Link:          baseURL,
	}
	if paid {
		violation.PaymentStatus = finders.StatusPaid
	}
	if notice.NoticeDate != nil {
		violation.IssueDate = time.UnixMilli(notice.NoticeDate.Ts)
	}
	return violation
}
