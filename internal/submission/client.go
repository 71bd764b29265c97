package submission

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/phya/waitlist/internal/config"
	"github.com/phya/waitlist/internal/logging"
	"github.com/phya/waitlist/internal/version"
	"github.com/phya/waitlist/internal/waitlist"
)

const (
	// WaitlistPath is the public waitlist endpoint, relative to the API base URL
	WaitlistPath = "/public/waitlist"

	// TenantQueryParam carries the tenant domain on every submission
	TenantQueryParam = "tenant_domain"

	// RequestIDHeader carries a per-call correlation id.
	// It is diagnostic only; the backend does not deduplicate on it.
	RequestIDHeader = "X-Request-ID"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client submits waitlist entries to the PHYA backend
type Client struct {
	// BaseURL is the API root (e.g., "https://api.phya.co.za/api/v1")
	BaseURL string

	// TenantDomain is sent as the tenant_domain query parameter
	TenantDomain string

	// HTTPClient is the underlying HTTP client.
	// It has no timeout: a submission waits for the platform to give up.
	HTTPClient *http.Client

	// Logger receives diagnostic output (default: the global logger)
	Logger *zap.Logger
}

// NewClient creates a client for a deployment target
func NewClient(target config.Target) *Client {
	return NewClientWithURL(target.BaseURL, target.TenantDomain)
}

// NewClientWithURL creates a client for an explicit base URL and tenant
// baseURL: API root (e.g., "http://localhost:8000/api/v1")
func NewClientWithURL(baseURL, tenant string) *Client {
	return &Client{
		BaseURL:      strings.TrimRight(baseURL, "/"),
		TenantDomain: tenant,
		HTTPClient:   &http.Client{},
	}
}

// Endpoint returns the full submission URL including the tenant query
func (c *Client) Endpoint() string {
	query := url.Values{}
	query.Set(TenantQueryParam, c.TenantDomain)
	return c.BaseURL + WaitlistPath + "?" + query.Encode()
}

// Submit sends entry to the backend in a single POST.
//
// A 2xx answer yields an Outcome (Accepted or Declined). Everything else is an
// *Error: ErrNetwork when no response arrived, ErrRejected for non-2xx
// statuses and ErrMalformed when a 2xx body cannot be decoded. Submit never
// retries; ctx is honoured only if the caller cancels it.
func (c *Client) Submit(ctx context.Context, entry *waitlist.WaitlistEntry) (Outcome, error) {
	log := c.logger()
	requestID := uuid.NewString()
	endpoint := c.Endpoint()
	start := time.Now()

	logging.LogSubmission(log, entry.Segment.String(), requestID, endpoint, waitlist.MaskEmail(entry.Email))

	payload, err := json.Marshal(entry)
	if err != nil {
		// Only reachable if the entry type stops being serialisable
		return Outcome{}, NewMalformedError(0, "failed to encode waitlist entry", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return Outcome{}, c.fail(log, NewNetworkError("failed to create POST request", err), entry, requestID, start)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set(RequestIDHeader, requestID)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return Outcome{}, c.fail(log, NewNetworkError("POST request failed", err), entry, requestID, start)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Outcome{}, c.fail(log, NewNetworkError("failed to read response body", err), entry, requestID, start)
	}
	logging.LogResponseBody(log, requestID, resp.StatusCode, body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Outcome{}, c.fail(log, NewRejectedError(resp.StatusCode, parseDetail(body)), entry, requestID, start)
	}

	var decoded waitlistResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return Outcome{}, c.fail(log, NewMalformedError(resp.StatusCode, "failed to parse JSON response", err), entry, requestID, start)
	}
	if decoded.Success == nil {
		return Outcome{}, c.fail(log, NewMalformedError(resp.StatusCode, "response has no success field", nil), entry, requestID, start)
	}

	outcome := Outcome{Kind: Declined, Message: decoded.Message}
	if *decoded.Success {
		outcome = Outcome{Kind: Accepted, Message: decoded.Message, EntryID: string(decoded.EntryID)}
	}

	logging.LogOutcome(log, entry.Segment.String(), requestID, outcome.Kind.String(), resp.StatusCode, time.Since(start))
	return outcome, nil
}

// fail stamps the request id on err and logs it
func (c *Client) fail(log *zap.Logger, err *Error, entry *waitlist.WaitlistEntry, requestID string, start time.Time) *Error {
	err.RequestID = requestID
	log.Warn("Waitlist submission failed",
		zap.String("segment", entry.Segment.String()),
		zap.String("request_id", requestID),
		zap.String("kind", err.Kind.String()),
		zap.String("subtype", err.NetworkSubtype.String()),
		zap.Int("status_code", err.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
		zap.Error(err),
	)
	return err
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient == nil {
		return http.DefaultClient
	}
	return c.HTTPClient
}

func (c *Client) logger() *zap.Logger {
	if c.Logger == nil {
		return logging.GetLogger()
	}
	return c.Logger
}

// String describes the client for diagnostic output
func (c *Client) String() string {
	return fmt.Sprintf("waitlist client %s (tenant %s)", c.BaseURL, c.TenantDomain)
}
