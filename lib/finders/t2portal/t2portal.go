// Package t2portal searches T2-hosted municipal citation portals. Several
// cities run the same white-label software, so one client serves them
// all; only the hostname and agency label differ.
//
// The flow is GET /Account/Portal for the session cookie and CSRF token,
// POST the search form over AJAX, then follow the "document.location"
// redirect string the portal answers with to fetch the results table.
package t2portal

import (
	"context"
	"fmt"
	"strings"

	"huur-backend/lib/finders"
	"huur-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

type Client struct {
	baseURL string
	agency  string
	http    *resty.Client
}

func NewClient(baseURL, agency string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		agency:  agency,
		http: finders.NewBrowserClient(finders.ClientOptions{
			TracerName: "finders/t2portal",
		}),
	}
}

func (c *Client) portalURL() string { return c.baseURL + "/Account/Portal" }
func (c *Client) searchURL() string { return c.baseURL + "/Account/Citations/Search" }

// Link is an anchor scraped off the portal landing page. Useful for
// discovering which payment and appeal pages a given city exposes.
type Link struct {
	URL  string
	Text string
}

// ExtractPortalLinks scrapes every anchor from the portal landing page,
// resolving relative hrefs against the portal's base URL.
func (c *Client) ExtractPortalLinks(ctx context.Context) ([]Link, error) {
	res, err := c.http.R().
		SetContext(ctx).
		Get(c.portalURL())
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(res.String()))
	if err != nil {
		return nil, err
	}

	var links []Link
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" {
			return
		}
		if !strings.HasPrefix(href, "http") {
			href = c.baseURL + href
		}
		links = append(links, Link{
			URL:  href,
			Text: htmlutil.CleanText(sel.Text()),
		})
	})
	return links, nil
}

// SearchCitations runs the full portal search flow for a plate query.
func (c *Client) SearchCitations(ctx context.Context, query finders.Query) ([]finders.ParkingViolation, error) {
	res, err := c.http.R().
		SetContext(ctx).
		Get(c.portalURL())
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(res.String()))
	if err != nil {
		return nil, err
	}
	token, _ := doc.Find(`input[name="__RequestVerificationToken"]`).Attr("value")
	if token == "" {
		return nil, fmt.Errorf("failed to extract verification token from %s", c.portalURL())
	}

	stateID, err := StateID(query.State)
	if err != nil {
		return nil, err
	}

	res, err = c.http.R().
		SetContext(ctx).
		SetHeader("X-Requested-With", "XMLHttpRequest").
		SetHeader("Referer", c.portalURL()).
		SetHeader("Origin", c.baseURL).
		SetFormData(map[string]string{
			"__RequestVerificationToken": token,
			"PlateNumber":                strings.ToUpper(query.Plate),
			"StateId":                    stateID,
			"CitationNumber":             "",
		}).
		Post(c.searchURL())
	if err != nil {
		return nil, err
	}

	// no redirect string means the portal found nothing
	path := ResultPath(res.String())
	if path == "" {
		return nil, nil
	}

	res, err = c.http.R().
		SetContext(ctx).
		Get(c.baseURL + path)
	if err != nil {
		return nil, err
	}

	return c.ParseCitations(res.String(), query)
}

// ResultPath extracts the result page path from the search endpoint's
// answer. A hit comes back as a javascript snippet like
// `document.location = '/Account/Citations/...';` and a miss as markup.
func ResultPath(result string) string {
	if !strings.HasPrefix(result, "document.location") {
		return ""
	}
	idx := strings.Index(result, "/")
	if idx < 0 {
		return ""
	}
	path := result[idx:]
	path = strings.ReplaceAll(path, ";", "")
	path = strings.ReplaceAll(path, "'", "")
	return path
}

// ParseCitations pulls citation rows out of the results page table.
// Rows with fewer than 6 cells are header or filler rows and skipped.
func (c *Client) ParseCitations(html string, query finders.Query) ([]finders.ParkingViolation, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var citations []finders.ParkingViolation
	doc.Find(`table#citations-list-table tr[id^="citation"]`).Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 6 {
			return
		}

		status := htmlutil.CleanText(cells.Eq(1).Text())
		violation := finders.ParkingViolation{
			CitationNumber: htmlutil.CleanText(cells.Eq(0).Text()),
			PaymentStatus:  finders.NormalizeStatus(status),
			Amount:         finders.ParseAmount(cells.Eq(2).Text()),
			Currency:       "USD",
			IssueDate:      finders.ParseTime(cells.Eq(3).Text()),
			Tag:            query.Plate,
			State:          query.State,
			Address:        htmlutil.CleanText(cells.Eq(5).Text()),
			Agency:         c.agency,
			Link:           c.baseURL,
			FineType:       finders.FineTypeParking,
			IsActive:       true,
		}
		// the row id carries the portal's internal citation key
		if rowID, ok := row.Attr("id"); ok {
			violation.Note = rowID
		}
		citations = append(citations, violation)
	})
	return citations, nil
}

// Finder adapts a portal client to the finder interface.
type Finder struct {
	name   string
	client *Client
}

func (f *Finder) Name() string { return f.name }
func (f *Finder) Link() string { return f.client.baseURL }

func (f *Finder) Find(ctx context.Context, query finders.Query) ([]finders.ParkingViolation, error) {
	return f.client.SearchCitations(ctx, query)
}

func NewFortLauderdale() *Finder {
	return &Finder{
		name:   "City of Fort Lauderdale",
		client: NewClient("https://fortlauderdaleparking.t2hosted.com", "City of Fort Lauderdale"),
	}
}

func NewHouston() *Finder {
	return &Finder{
		name:   "City of Houston",
		client: NewClient("https://houstonparking.t2hosted.com", "City of Houston"),
	}
}
