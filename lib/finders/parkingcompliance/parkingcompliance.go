// Package parkingcompliance searches the Parking Compliance (CPM
// dashboard) violation API. Unlike the portal scrapers this is a plain
// JSON endpoint keyed by plate alone; the query state only labels the
// results.
package parkingcompliance

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"huur-backend/lib/finders"

	"github.com/go-resty/resty/v2"
)

const baseURL = "https://api.cpmdashboard.com/v1/violationapp/violations/"

type Finder struct {
	http *resty.Client
}

func New() *Finder {
	return &Finder{
		http: finders.NewBrowserClient(finders.ClientOptions{
			TracerName: "finders/parkingcompliance",
		}),
	}
}

func (f *Finder) Name() string { return "Parking Compliance" }
func (f *Finder) Link() string { return baseURL }

type lot struct {
	Address string `json:"address"`
}

// Violation is one entry of the API's response array. The API returns
// far more fields than these; only what maps onto a record is decoded.
type Violation struct {
	NoticeNumber string     `json:"noticeNumber"`
	PlateNumber  string     `json:"plateNumber"`
	Lot          lot        `json:"lot"`
	EntryTime    time.Time  `json:"entryTime"`
	ExitTime     *time.Time `json:"exitTime"`
	Fine         float64    `json:"fine"`
	Status       string     `json:"status"`
}

func (f *Finder) Find(ctx context.Context, query finders.Query) ([]finders.ParkingViolation, error) {
	var entries []Violation
	res, err := f.http.R().
		SetContext(ctx).
		SetResult(&entries).
		Get(baseURL + url.PathEscape(query.Plate))
	if err != nil {
		return nil, err
	}
	if !res.IsSuccess() {
		return nil, fmt.Errorf("violation lookup failed with status %s", res.Status())
	}

	violations := make([]finders.ParkingViolation, 0, len(entries))
	for _, entry := range entries {
		violations = append(violations, MapViolation(entry, query))
	}
	return violations, nil
}

// MapViolation converts one API entry to a normalized record. An entry
// still open has no exit time; the end date stays zero then.
func MapViolation(entry Violation, query finders.Query) finders.ParkingViolation {
	violation := finders.ParkingViolation{
		NoticeNumber:  entry.NoticeNumber,
		Agency:        "Parking Compliance",
		Address:       entry.Lot.Address,
		Tag:           entry.PlateNumber,
		State:         query.State,
		IssueDate:     entry.EntryTime,
		StartDate:     entry.EntryTime,
		Amount:        entry.Fine,
		Currency:      "USD",
		PaymentStatus: finders.StatusNew,
		FineType:      finders.FineTypeParking,
		IsActive:      entry.Status != "RESOLVED",
		Link:          baseURL,
	}
	if entry.Status == "PAID" {
		violation.PaymentStatus = finders.StatusPaid
	}
	if entry.ExitTime != nil {
		violation.EndDate = *entry.ExitTime
	}
	return violation
}
