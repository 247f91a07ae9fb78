package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxClaims extracts the token claims injected by the Auth middleware.
// An empty subject means the middleware did not run for this route.
func ctxClaims(c echo.Context) (claimsResponse, error) {
	sub, _ := c.Get("sub").(string)
	if sub == "" {
		return claimsResponse{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	email, _ := c.Get("email").(string)
	name, _ := c.Get("name").(string)
	role, _ := c.Get("role").(string)

	return claimsResponse{Subject: sub, Email: email, Name: name, Role: role}, nil
}
