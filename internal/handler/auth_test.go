package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/flight-seat-booking/internal/config"
	"github.com/iliyamo/flight-seat-booking/internal/utils"
)

func loginRequest(t *testing.T, h *AuthHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Login(e.NewContext(req, rec)))
	return rec
}

func TestLogin(t *testing.T) {
	hash, err := utils.HashPassword("s3cret", 4)
	require.NoError(t, err)
	h := NewAuthHandler(config.Config{
		JWTSecret:       "test-secret",
		AccessTTLMin:    15,
		OpsEmail:        "ops@example.com",
		OpsPasswordHash: hash,
	})

	rec := loginRequest(t, h, `{"email":"Ops@Example.com","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		AccessToken string `json:"access_token"`
		ExpiresAt   string `json:"expires_at"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.AccessToken)
	require.NotEmpty(t, body.ExpiresAt)

	// The token must verify with the configured secret and carry the
	// operator as subject.
	tok, err := jwt.Parse(body.AccessToken, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	sub, err := tok.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", sub)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	hash, err := utils.HashPassword("s3cret", 4)
	require.NoError(t, err)
	h := NewAuthHandler(config.Config{
		JWTSecret:       "test-secret",
		AccessTTLMin:    15,
		OpsEmail:        "ops@example.com",
		OpsPasswordHash: hash,
	})

	for _, body := range []string{
		`{"email":"ops@example.com","password":"wrong"}`,
		`{"email":"other@example.com","password":"s3cret"}`,
	} {
		rec := loginRequest(t, h, body)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.NotContains(t, rec.Body.String(), "password", "response must not say which part failed")
	}

	rec := loginRequest(t, h, `{"email":"","password":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
