package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// ProviderGateway charges cards through an external HTTP payment
// provider.  Each call runs in its own goroutine and is awaited through
// a channel, so a caller's context cancellation or the gateway's own
// timeout interrupts the wait without leaking the request: the Go
// rendition of a cancellable future.  The gateway timeout is the outer
// bound on a charge; callers must not impose a shorter one.
type ProviderGateway struct {
	client  *http.Client
	baseURL string
	apiKey  string
	timeout time.Duration
}

// NewProviderGateway builds a gateway for the provider at baseURL.
// timeout bounds each charge and refund call end to end.
func NewProviderGateway(baseURL, apiKey string, timeout time.Duration) *ProviderGateway {
	return &ProviderGateway{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		apiKey:  apiKey,
		timeout: timeout,
	}
}

// chargeRequest is the provider's wire format for a charge.
type chargeRequest struct {
	AmountCents uint32 `json:"amount_cents"`
	Currency    string `json:"currency"`
	Reference   string `json:"reference"`
}

// chargeResponse is the provider's wire format for a charge outcome.
type chargeResponse struct {
	Status    string `json:"status"`
	Reference string `json:"reference"`
}

// Charge submits a charge and awaits its completion.  A provider-side
// decline is not an error: it comes back as a ChargeResult with
// StatusDeclined.  Context cancellation or the gateway deadline yields
// ErrGatewayTimeout.
func (g *ProviderGateway) Charge(ctx context.Context, amountCents uint32) (*ChargeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	type outcome struct {
		res *ChargeResult
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := g.doCharge(ctx, amountCents)
		done <- outcome{res: res, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ErrGatewayTimeout
	case o := <-done:
		return o.res, o.err
	}
}

func (g *ProviderGateway) doCharge(ctx context.Context, amountCents uint32) (*ChargeResult, error) {
	body, err := json.Marshal(chargeRequest{
		AmountCents: amountCents,
		Currency:    "TRY",
		Reference:   uuid.NewString(),
	})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/charges", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("payment provider returned status %d", resp.StatusCode)
	}
	var out chargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	switch out.Status {
	case string(StatusApproved):
		return &ChargeResult{Status: StatusApproved, Reference: out.Reference}, nil
	case string(StatusDeclined):
		return &ChargeResult{Status: StatusDeclined, Reference: out.Reference}, nil
	default:
		return nil, fmt.Errorf("payment provider returned unknown status %q", out.Status)
	}
}

// Refund reverses a previously approved charge.  Refunds follow the
// same deadline as charges.
func (g *ProviderGateway) Refund(ctx context.Context, reference string) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	body, err := json.Marshal(map[string]string{"reference": reference})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/refunds", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("payment provider returned status %d", resp.StatusCode)
	}
	return nil
}
