package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChargeApproved(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/charges", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chargeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, uint32(25000), req.AmountCents)
		assert.Equal(t, "TRY", req.Currency)
		assert.NotEmpty(t, req.Reference)

		json.NewEncoder(w).Encode(chargeResponse{Status: "approved", Reference: "chg_123"})
	}))
	defer srv.Close()

	g := NewProviderGateway(srv.URL, "test-key", time.Second)
	res, err := g.Charge(context.Background(), 25000)
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, res.Status)
	assert.Equal(t, "chg_123", res.Reference)
}

func TestChargeDeclined(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(chargeResponse{Status: "declined", Reference: "chg_456"})
	}))
	defer srv.Close()

	g := NewProviderGateway(srv.URL, "", time.Second)
	res, err := g.Charge(context.Background(), 100)
	require.NoError(t, err, "a decline is an outcome, not an error")
	assert.Equal(t, StatusDeclined, res.Status)
	assert.Equal(t, "chg_456", res.Reference)
}

func TestChargeUnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(chargeResponse{Status: "pending", Reference: "chg_789"})
	}))
	defer srv.Close()

	g := NewProviderGateway(srv.URL, "", time.Second)
	res, err := g.Charge(context.Background(), 100)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), "pending")
}

func TestChargeNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	g := NewProviderGateway(srv.URL, "", time.Second)
	_, err := g.Charge(context.Background(), 100)
	require.Error(t, err)
}

func TestChargeTimesOut(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
		json.NewEncoder(w).Encode(chargeResponse{Status: "approved", Reference: "late"})
	}))
	defer srv.Close()
	defer close(release)

	g := NewProviderGateway(srv.URL, "", 50*time.Millisecond)
	start := time.Now()
	_, err := g.Charge(context.Background(), 100)
	require.ErrorIs(t, err, ErrGatewayTimeout)
	assert.Less(t, time.Since(start), time.Second, "deadline must bound the wait")
}

func TestChargeCancelledContext(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	g := NewProviderGateway(srv.URL, "", time.Minute)

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	_, err := g.Charge(ctx, 100)
	require.ErrorIs(t, err, ErrGatewayTimeout)
}

func TestRefund(t *testing.T) {
	var gotRef string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/refunds", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gotRef = body["reference"]
	}))
	defer srv.Close()

	g := NewProviderGateway(srv.URL, "", time.Second)
	require.NoError(t, g.Refund(context.Background(), "chg_123"))
	assert.Equal(t, "chg_123", gotRef)
}

func TestRefundNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	g := NewProviderGateway(srv.URL, "", time.Second)
	require.Error(t, g.Refund(context.Background(), "chg_123"))
}
