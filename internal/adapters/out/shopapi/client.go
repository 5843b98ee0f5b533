package shopapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/domain/model/product"
	"orderboard/internal/pkg/errs"
)

// DefaultRequestTimeout bounds one admin-API request.
const DefaultRequestTimeout = 10 * time.Second

// Config carries the admin-API settings for one shop.
type Config struct {
	// BaseURL is the admin API root, e.g. "https://example.myshopify.com/admin".
	BaseURL string

	// APIUser and APIPassword authenticate via HTTP basic auth.
	APIUser     string
	APIPassword string

	// RequestTimeout bounds one request; zero selects DefaultRequestTimeout.
	RequestTimeout time.Duration
}

// Client is the admin REST client. It implements both ports.OrderSource and
// ports.ProductSource.
type Client struct {
	baseURL     string
	apiUser     string
	apiPassword string
	httpClient  *http.Client
}

// NewClient creates an admin-API client from the given config.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errs.NewValueIsRequiredError("BaseURL")
	}
	if cfg.APIUser == "" {
		return nil, errs.NewValueIsRequiredError("APIUser")
	}
	if cfg.APIPassword == "" {
		return nil, errs.NewValueIsRequiredError("APIPassword")
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	return &Client{
		baseURL:     cfg.BaseURL,
		apiUser:     cfg.APIUser,
		apiPassword: cfg.APIPassword,
		httpClient:  &http.Client{Timeout: timeout},
	}, nil
}

// GetOrders returns orders created inside [createdAtMin, createdAtMax],
// ordered by creation time descending. A failure here is fatal to the
// caller's request and surfaces as errs.UpstreamUnavailableError.
func (c *Client) GetOrders(ctx context.Context, createdAtMin, createdAtMax time.Time) ([]order.Order, error) {
	query := url.Values{}
	query.Set("order", "created_at DESC")
	query.Set("created_at_min", createdAtMin.Format(time.RFC3339))
	query.Set("created_at_max", createdAtMax.Format(time.RFC3339))
	query.Set("status", "any")

	var envelope ordersEnvelope
	if err := c.getJSON(ctx, fmt.Sprintf("%s/orders.json?%s", c.baseURL, query.Encode()), &envelope); err != nil {
		return nil, errs.NewUpstreamUnavailableError("order source", err)
	}

	orders := make([]order.Order, 0, len(envelope.Orders))
	for _, dto := range envelope.Orders {
		o, err := dto.toDomain()
		if err != nil {
			return nil, errs.NewUpstreamUnavailableError("order source", err)
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// GetProduct returns one product with its variants and images.
func (c *Client) GetProduct(ctx context.Context, productID int64) (product.Product, error) {
	if productID <= 0 {
		return product.Product{}, errs.NewValueIsInvalidError("productID")
	}

	var envelope productEnvelope
	if err := c.getJSON(ctx, fmt.Sprintf("%s/products/%d.json", c.baseURL, productID), &envelope); err != nil {
		return product.Product{}, errs.NewUpstreamUnavailableError("product source", err)
	}

	p, err := envelope.Product.toDomain()
	if err != nil {
		return product.Product{}, errs.NewUpstreamUnavailableError("product source", err)
	}
	return p, nil
}

func (c *Client) getJSON(ctx context.Context, requestURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.apiUser, c.apiPassword)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
