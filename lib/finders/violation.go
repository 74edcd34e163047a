package finders

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Payment status and fine type use the ingestion API's wire integers.
const (
	StatusPaid = 0
	StatusNew  = 1

	FineTypeParking = 1
)

// ParkingViolation is the normalized record every finder produces,
// shaped to match the ingestion API's JSON body. Tag and State always
// echo the query inputs for providers that don't return them. Amount is
// always in major currency units; finders receiving cents divide by 100.
type ParkingViolation struct {
	CitationNumber string    `json:"citationNumber,omitempty"`
	NoticeNumber   string    `json:"noticeNumber,omitempty"`
	Agency         string    `json:"agency,omitempty"`
	Tag            string    `json:"tag,omitempty"`
	State          string    `json:"state,omitempty"`
	Address        string    `json:"address,omitempty"`
	IssueDate      time.Time `json:"issueDate"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	Amount         float64   `json:"amount"`
	Currency       string    `json:"currency,omitempty"`
	PaymentStatus  int       `json:"paymentStatus"`
	FineType       int       `json:"fineType"`
	IsActive       bool      `json:"isActive"`
	Link           string    `json:"link,omitempty"`
	Note           string    `json:"note,omitempty"`
	Provider       int       `json:"provider,omitempty"`
}

// Identifier returns the citation number, falling back to the notice
// number. A record with neither cannot be de-duplicated downstream.
func (v ParkingViolation) Identifier() string {
	if v.CitationNumber != "" {
		return v.CitationNumber
	}
	return v.NoticeNumber
}

// NormalizeStatus maps the providers' status vocabulary onto the two
// normalized payment states. Anything unrecognized counts as outstanding.
func NormalizeStatus(status string) int {
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case "OPEN", "UNPAID", "OVERDUE":
		return StatusNew
	case "PAID", "VOID", "PENDING", "CLOSED VOID", "CLOSED WARNING", "CLOSED PAID":
		return StatusPaid
	default:
		return StatusNew
	}
}

// ParseTime parses the loosely formatted date strings providers emit.
// Unparsable input yields the zero time, never an error: a bad date on
// one row must not cost the rest of the response.
func ParseTime(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	t, err := dateparse.ParseAny(value)
	if err != nil {
		return time.Time{}
	}
	return t
}

// CentsAmount converts an integer cent count to major currency units.
func CentsAmount(cents int64) float64 {
	return float64(cents) / 100
}

// ParseCents parses a string-encoded cent count defensively, the way
// providers that emit `"amountincents": "1500"` require. Non-numeric
// input yields 0.
func ParseCents(value string) float64 {
	cents, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0
	}
	return CentsAmount(cents)
}

// ParseAmount parses a decimal amount string, stripping currency
// punctuation first. Non-numeric input yields 0.
func ParseAmount(value string) float64 {
	value = strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(value))
	amount, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return amount
}
