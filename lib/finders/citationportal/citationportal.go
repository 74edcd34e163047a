// Package citationportal searches the City of West Palm Beach citation
// portal. The results page is a Kendo grid rendered server side, so
// parsing means carving the k-table markup apart with regexes.
package citationportal

import (
	"context"
	"regexp"
	"strings"

	"huur-backend/lib/finders"
	"huur-backend/lib/htmlutil"

	"github.com/go-resty/resty/v2"
)

const baseURL = "https://wpb.citationportal.com"

type Finder struct {
	http *resty.Client
}

func New() *Finder {
	return &Finder{
		http: finders.NewBrowserClient(finders.ClientOptions{
			TracerName: "finders/citationportal",
		}),
	}
}

func (f *Finder) Name() string { return "West Palm Beach" }
func (f *Finder) Link() string { return baseURL }

// The portal renders the token in either attribute order depending on
// which page variant serves the request.
var tokenRegexes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)name=["']__RequestVerificationToken["']\s+(?:type=["']hidden["']\s+)?value=["']([^"']+)["']`),
	regexp.MustCompile(`(?i)value=["']([^"']+)["']\s+(?:type=["']hidden["']\s+)?name=["']__RequestVerificationToken["']`),
}

func extractToken(html string) string {
	for _, re := range tokenRegexes {
		if match := re.FindStringSubmatch(html); match != nil {
			return match[1]
		}
	}
	return ""
}

func (f *Finder) Find(ctx context.Context, query finders.Query) ([]finders.ParkingViolation, error) {
	res, err := f.http.R().
		SetContext(ctx).
		Get(baseURL)
	if err != nil {
		return nil, err
	}
	token := extractToken(res.String())

	res, err = f.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"__RequestVerificationToken": token,
			"Type":                       "PlateStrict",
			"Term":                       query.Plate,
			"AdditionalTerm":             query.State,
		}).
		Post(baseURL + "/Citation/Search")
	if err != nil {
		return nil, err
	}

	return ParseCitations(res.String()), nil
}

var (
	tbodyRegex = regexp.MustCompile(`(?si)<tbody[^>]*class=["']k-table-tbody["'][^>]*>(.*?)</tbody>`)
	rowRegex   = regexp.MustCompile(`(?si)<tr[^>]*class=["']k-table-row[^"']*["'][^>]*>(.*?)</tr>`)
	cellRegex  = regexp.MustCompile(`(?si)<td[^>]*>(.*?)</td>`)
	hrefRegex  = regexp.MustCompile(`href=["']([^"']+)["']`)
)

// ParseCitations extracts citation rows from the Kendo grid markup.
func ParseCitations(html string) []finders.ParkingViolation {
	var violations []finders.ParkingViolation

	if html == "" ||
		strings.Contains(strings.ToLower(html), "no citations found") ||
		strings.Contains(strings.ToLower(html), "no results") {
		return violations
	}

	tbody := tbodyRegex.FindStringSubmatch(html)
	if tbody == nil {
		return violations
	}

	for _, row := range rowRegex.FindAllStringSubmatch(tbody[1], -1) {
		if violation, ok := parseRow(row[1]); ok {
			violations = append(violations, violation)
		}
	}
	return violations
}

// parseRow maps one grid row's cells onto a violation. The grid has 9
// columns; anything shorter is a grouping or filler row.
func parseRow(rowHTML string) (finders.ParkingViolation, bool) {
	violation := finders.ParkingViolation{
		Currency: "USD",
		IsActive: true,
		Provider: 1,
		Agency:   "West Palm Beach",
		Link:     baseURL,
		FineType: finders.FineTypeParking,
	}

	cellMatches := cellRegex.FindAllStringSubmatch(rowHTML, -1)
	if len(cellMatches) < 9 {
		return violation, false
	}

	cells := make([]string, len(cellMatches))
	for i, match := range cellMatches {
		cells[i] = htmlutil.StripTags(match[1])
	}

	violation.CitationNumber = cells[0]
	// the citation cell links through to the detail page
	if match := hrefRegex.FindStringSubmatch(cellMatches[0][1]); match != nil {
		violation.Link = baseURL + match[1]
	}
	violation.Address = cells[1]
	violation.State = cells[2]
	violation.Tag = cells[3]

	issued := finders.ParseTime(cells[5])
	violation.IssueDate = issued
	violation.StartDate = issued
	violation.EndDate = finders.ParseTime(cells[6])

	violation.PaymentStatus = finders.NormalizeStatus(cells[7])
	violation.Note = cells[7]
	violation.Amount = finders.ParseAmount(cells[8])

	return violation, true
}
