// Package payment fronts the external checkout provider. The engine only
// ever asks it for a redirect URL; the authoritative payment outcome comes
// back through the signed webhook.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"roomly/internal/pkg/config"
	"roomly/internal/pkg/errs"

	"github.com/google/uuid"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	currency   string
	successURL string
}

func NewClient(cfg config.PaymentConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		currency:   cfg.Currency,
		successURL: cfg.SuccessURL,
	}
}

type checkoutRequest struct {
	BookingID   string `json:"booking_id"`
	Reference   string `json:"reference"`
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
	SuccessURL  string `json:"success_url"`
}

type checkoutResponse struct {
	RedirectURL string `json:"redirect_url"`
}

// CreateCheckout opens a provider checkout session carrying the booking id
// as correlation metadata and returns the redirect target. No local state
// changes here; the booking stays pending until the webhook lands.
func (c *Client) CreateCheckout(ctx context.Context, bookingID uuid.UUID, reference string, amountCents int64) (string, error) {
	payload, err := json.Marshal(checkoutRequest{
		BookingID:   bookingID.String(),
		Reference:   reference,
		AmountCents: amountCents,
		Currency:    c.currency,
		SuccessURL:  fmt.Sprintf("%s?booking=%s", c.successURL, bookingID),
	})
	if err != nil {
		return "", errs.Wrap(err, "failed to marshal checkout request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/checkout", bytes.NewReader(payload))
	if err != nil {
		return "", errs.Wrap(err, "failed to build checkout request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errs.Wrap(err, "checkout request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", errs.New(fmt.Sprintf("checkout request returned status %d", resp.StatusCode))
	}

	var out checkoutResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errs.Wrap(err, "failed to decode checkout response")
	}
	if out.RedirectURL == "" {
		return "", errs.New("checkout response missing redirect url")
	}
	return out.RedirectURL, nil
}
