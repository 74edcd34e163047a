// Package huurapi talks to the violation ingestion API that collects
// what the finders dig up.
package huurapi

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"huur-backend/lib/finders"
	"huur-backend/lib/telemetry"

	"github.com/go-resty/resty/v2"
)

type Client struct {
	http    *resty.Client
	baseURL string
}

// NewClient builds a client for the given ingestion endpoint. An api
// key, when set in HUUR_API_KEY, rides along as X-API-Key.
func NewClient(baseURL string) *Client {
	client := resty.New().
		SetHeader("Accept", "application/json")
	if apiKey := os.Getenv("HUUR_API_KEY"); apiKey != "" {
		client.SetHeader("X-API-Key", apiKey)
	}
	// a hung sink must not hold a loader slot forever
	client.SetTimeout(time.Second * 30)
	telemetry.InstrumentResty(client, "huurapi")
	return &Client{
		http:    client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// NewClientFromEnv builds a client from HUUR_API_BASE.
func NewClientFromEnv() (*Client, error) {
	baseURL := os.Getenv("HUUR_API_BASE")
	if baseURL == "" {
		return nil, fmt.Errorf("HUUR_API_BASE is not set")
	}
	return NewClient(baseURL), nil
}

func (c *Client) violationsURL() string {
	return c.baseURL + "/api/violations"
}

// CreateViolation submits one record. Submission is best effort: a
// failed push is reported as false and logged, never as an error, so
// one flaky upload can't take down a batch.
func (c *Client) CreateViolation(ctx context.Context, violation finders.ParkingViolation) bool {
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(violation).
		Post(c.violationsURL())
	if err != nil {
		slog.Warn(
			"failed to submit violation",
			"identifier", violation.Identifier(),
			"err", err,
		)
		return false
	}
	if !res.IsSuccess() {
		slog.Warn(
			"violation submission rejected",
			"identifier", violation.Identifier(),
			"status", res.Status(),
		)
		return false
	}
	return true
}

// ListViolations fetches every record the ingestion API holds. Failures
// come back as an empty list.
func (c *Client) ListViolations(ctx context.Context) []finders.ParkingViolation {
	var violations []finders.ParkingViolation
	res, err := c.http.R().
		SetContext(ctx).
		SetResult(&violations).
		Get(c.violationsURL())
	if err != nil || !res.IsSuccess() {
		return nil
	}
	return violations
}
