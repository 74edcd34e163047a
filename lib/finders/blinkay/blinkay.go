// Package blinkay searches the Blinkay "multi fine" portal. The portal is
// a classic form-token flow: GET the search form to pick up a session
// cookie plus CSRF token, POST the plate, then scrape repeated row divs
// out of the response markup.
package blinkay

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"huur-backend/lib/finders"
	"huur-backend/lib/htmlutil"

	"github.com/go-resty/resty/v2"
)

const (
	baseURL        = "https://webapp-usa.blinkay.app"
	installationID = "110010"
)

type Finder struct {
	http *resty.Client
}

func New() *Finder {
	return &Finder{
		http: finders.NewBrowserClient(finders.ClientOptions{
			TracerName: "finders/blinkay",
		}),
	}
}

func (f *Finder) Name() string { return "Blinkay" }
func (f *Finder) Link() string { return baseURL }

var tokenRegex = regexp.MustCompile(`name="__RequestVerificationToken"[^>]*value="([^"]+)"`)

func (f *Finder) Find(ctx context.Context, query finders.Query) ([]finders.ParkingViolation, error) {
	formURL := fmt.Sprintf(
		"%s/integraMobile/Fine/MultiFine?InstallationId=%s&Culture=en-US",
		baseURL, installationID,
	)
	res, err := f.http.R().
		SetContext(ctx).
		Get(formURL)
	if err != nil {
		return nil, err
	}
	formHTML := res.String()

	match := tokenRegex.FindStringSubmatch(formHTML)
	if match == nil {
		return nil, fmt.Errorf("failed to extract verification token")
	}
	token := match[1]

	installationList := htmlutil.HiddenInputValue(formHTML, "InstallationList")
	if installationList == "" {
		installationList = installationID
	}
	forceInstallationID := htmlutil.HiddenInputValue(formHTML, "ForceInstallationId")
	if forceInstallationID == "" {
		forceInstallationID = installationID
	}

	res, err = f.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"__RequestVerificationToken": token,
			"Plate":                      strings.ToUpper(strings.TrimSpace(query.Plate)),
			"TicketNumber":               "",
			"ForceInstallationId":        forceInstallationID,
			"InstallationList":           installationList,
			"StandardInstallationList":   htmlutil.HiddenInputValue(formHTML, "StandardInstallationList"),
		}).
		Post(baseURL + "/integraMobile/Fine/MultiDetails")
	if err != nil {
		return nil, err
	}

	return ParseViolations(res.String(), query), nil
}

var (
	rowRegex    = regexp.MustCompile(`(?s)<div class="multiticket_row\s*">\s*<div class="multiticket_col1">.*?<div class="clear"></div>\s*</div>`)
	ticketRegex = regexp.MustCompile(`name="CheckedTickets"\s+value="(\d+)"`)
	amountRegex = regexp.MustCompile(`data-amount="(\d+)"`)
	plateRegex  = regexp.MustCompile(`<div class="multiticket_col3">([^<]+)</div>`)
	dateRegex   = regexp.MustCompile(`<div class="multiticket_col4">([^<]+)</div>`)
)

// ParseViolations extracts fine rows from the multi-details markup.
// The no-results check is a substring heuristic over the portal's known
// wording; if Blinkay rewords their empty page this breaks silently.
func ParseViolations(html string, query finders.Query) []finders.ParkingViolation {
	var violations []finders.ParkingViolation

	if html == "" ||
		strings.Contains(html, "No records found") ||
		strings.Contains(html, "no violations") ||
		strings.Contains(html, "not found") ||
		!strings.Contains(html, "multiticket_row") {
		return violations
	}

	for _, row := range rowRegex.FindAllString(html, -1) {
		violation := finders.ParkingViolation{
			State:    query.State,
			Tag:      query.Plate,
			Agency:   "Blinkay",
			Link:     baseURL,
			Currency: "USD",
			FineType: finders.FineTypeParking,
		}

		// the ticket number rides on the payment checkbox
		if match := ticketRegex.FindStringSubmatch(row); match != nil {
			violation.NoticeNumber = match[1]
		}
		if match := amountRegex.FindStringSubmatch(row); match != nil {
			violation.Amount = finders.ParseCents(match[1])
		}
		if match := plateRegex.FindStringSubmatch(row); match != nil {
			violation.Tag = strings.TrimSpace(match[1])
		}
		if match := dateRegex.FindStringSubmatch(row); match != nil {
			issued := finders.ParseTime(match[1])
			violation.IssueDate = issued
			violation.StartDate = issued
		}

		// a pre-checked row is already queued for payment
		if strings.Contains(row, "checked") {
			violation.PaymentStatus = finders.StatusPaid
		} else {
			violation.PaymentStatus = finders.StatusNew
			violation.IsActive = true
		}

		violations = append(violations, violation)
	}

	return violations
}
