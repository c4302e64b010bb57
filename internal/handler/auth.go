package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/flight-seat-booking/internal/config"
	"github.com/iliyamo/flight-seat-booking/internal/utils"
)

// AuthHandler issues access tokens for the airline operations account.
// The service has a single operator identity configured through the
// environment (email plus bcrypt password hash); there is no user
// storage.  Tokens returned here unlock the flight and seat management
// endpoints.
type AuthHandler struct {
	cfg config.Config
}

// NewAuthHandler constructs an AuthHandler from the loaded config.
func NewAuthHandler(cfg config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// Login handles POST /v1/auth/login.  It verifies the submitted
// credentials against the configured operator account and returns a
// signed access token with its expiry.  Invalid credentials yield 401
// without revealing which part was wrong.
func (h *AuthHandler) Login(c echo.Context) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	email := strings.ToLower(strings.TrimSpace(body.Email))
	if email == "" || body.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password are required"})
	}
	if email != strings.ToLower(h.cfg.OpsEmail) || !utils.VerifyPassword(h.cfg.OpsPasswordHash, body.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	tok, err := utils.NewAccessToken(h.cfg.JWTSecret, email, h.cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to issue token"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"access_token": tok.Token,
		"expires_at":   tok.Exp.Format(time.RFC3339),
	})
}
