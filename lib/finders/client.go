package finders

import (
	"net/http/cookiejar"
	"time"

	"huur-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/127.0.0.0 Safari/537.36"

type ClientOptions struct {
	// Origin and Referer are sent on every request when set. Some portals
	// reject searches without them.
	Origin  string
	Referer string
	// TracerName defaults to "finders/http".
	TracerName string
}

// NewBrowserClient returns a resty client configured the way the citation
// portals expect a browser to look: persistent cookie jar (several portals
// carry anti-CSRF session state across a GET-then-POST flow), gzip/deflate
// decompression, and realistic headers. Each finder owns its own client so
// concurrent finders never share session state.
func NewBrowserClient(opts ClientOptions) *resty.Client {
	client := resty.New()

	jar, err := cookiejar.New(nil)
	if err == nil {
		client.SetCookieJar(jar)
	}
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("User-Agent", userAgent)
	client.SetHeader("Accept", "application/json, text/plain, */*")
	client.SetHeader("Accept-Language", "en-US,en;q=0.9")
	if opts.Origin != "" {
		client.SetHeader("Origin", opts.Origin)
	}
	if opts.Referer != "" {
		client.SetHeader("Referer", opts.Referer)
	}

	// a hung provider should release its concurrency slot eventually
	client.SetTimeout(time.Second * 30)

	tracerName := opts.TracerName
	if tracerName == "" {
		tracerName = "finders/http"
	}
	telemetry.InstrumentResty(client, tracerName)

	return client
}
