// Package courierapi implements the courier tracking-history client.
// One call resolves the current delivery status of a single tracking number;
// concurrency and failure isolation live in the domain resolver, not here.
package courierapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/pkg/errs"
)

// DefaultRequestTimeout bounds a single tracking-history request so one slow
// courier response cannot stall a whole resolution batch.
const DefaultRequestTimeout = 5 * time.Second

// Config carries the courier endpoint settings. An explicit struct passed to
// NewClient replaces any process-wide client state.
type Config struct {
	// BaseURL is the tracking-history endpoint, queried as <BaseURL>?cn=<trackingNumber>.
	BaseURL string

	// RequestTimeout bounds one lookup; zero selects DefaultRequestTimeout.
	RequestTimeout time.Duration
}

// Client performs tracking-history lookups against the courier.
// It implements ports.TrackingStatusProvider.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a courier client from the given config.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errs.NewValueIsRequiredError("BaseURL")
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// historyEvent is one entry of the courier's tracking-history payload.
// Only the portal-facing description matters to the dashboard.
type historyEvent struct {
	ProcessDescForPortal string `json:"ProcessDescForPortal"`
}

// LookupStatus fetches the tracking history for one tracking number and
// returns the ProcessDescForPortal of the last event in the sequence.
//
// The courier responds with a JSON array of history events:
//   - a non-empty array yields the last event's description
//   - an empty array, or a valid JSON body that is not an array, yields
//     order.StatusUnknown (the courier has no history for this number)
//   - a transport failure or a malformed body yields an errs.TrackingLookupError
//
// The call never retries.
func (c *Client) LookupStatus(ctx context.Context, trackingNumber string) (string, error) {
	if trackingNumber == "" {
		return "", errs.NewValueIsRequiredError("trackingNumber")
	}

	lookupURL := fmt.Sprintf("%s?cn=%s", c.baseURL, url.QueryEscape(trackingNumber))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return "", errs.NewTrackingLookupError(trackingNumber, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errs.NewTrackingLookupError(trackingNumber, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errs.NewTrackingLookupError(trackingNumber,
			fmt.Errorf("unexpected status %s", resp.Status))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errs.NewTrackingLookupError(trackingNumber, err)
	}

	var events []historyEvent
	if err = json.Unmarshal(body, &events); err != nil {
		if json.Valid(body) {
			// Valid JSON that is not an event array means no history.
			return order.StatusUnknown, nil
		}
		return "", errs.NewTrackingLookupError(trackingNumber, err)
	}

	if len(events) == 0 {
		return order.StatusUnknown, nil
	}
	return events[len(events)-1].ProcessDescForPortal, nil
}
