package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/viktorgkw/AuthTemplate/internal/api/metrics"
	"github.com/viktorgkw/AuthTemplate/internal/core/domain"
	"github.com/viktorgkw/AuthTemplate/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new account.
//
// @Summary      Register a new account
// @Tags         identity
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  registrationResponse
// @Failure      400   {object}  registrationResponse
// @Failure      500   {object}  map[string]string
// @Router       /identity/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.authService.Register(c.Request().Context(), ports.RegisterRequest{
		Email:       req.Email,
		Username:    req.Username,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(result.Status)).Inc()

	status := http.StatusOK
	if result.Status == domain.RegistrationFailed {
		status = http.StatusBadRequest
	}
	return c.JSON(status, registrationResponse{
		Status:  string(result.Status),
		Message: result.Message,
	})
}

// Login authenticates an account and returns a signed bearer token.
//
// @Summary      Login
// @Tags         identity
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  loginResponse
// @Failure      500   {object}  map[string]string
// @Router       /identity/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), ports.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	if result.Token == "" {
		metrics.LoginsTotal.WithLabelValues("failed").Inc()
		return c.JSON(http.StatusUnauthorized, loginResponse{Message: result.Message})
	}

	metrics.LoginsTotal.WithLabelValues("successful").Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: result.Token, Message: result.Message})
}

// Me returns the claims of the authenticated caller.
//
// @Summary      Current identity
// @Tags         identity
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  claimsResponse
// @Failure      401  {object}  map[string]string
// @Router       /identity/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, claims)
}
