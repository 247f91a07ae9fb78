package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/viktorgkw/AuthTemplate/internal/core/ports"
)

// UserHandler exposes administrator-only account lookups.
type UserHandler struct {
	store ports.UserStore
}

func NewUserHandler(store ports.UserStore) *UserHandler {
	return &UserHandler{store: store}
}

type userResponse struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	Username    string   `json:"username"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	PhoneNumber string   `json:"phone_number,omitempty"`
	IsActive    bool     `json:"is_active"`
	Roles       []string `json:"roles"`
}

// GetByEmail handles GET /identity/users/:email.
//
// @Summary      Look up an account by email
// @Tags         identity
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Account email"
// @Success      200    {object}  userResponse
// @Failure      401    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /identity/users/{email} [get]
func (h *UserHandler) GetByEmail(c echo.Context) error {
	user, err := h.store.FindByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}

	roles, err := h.store.GetRoles(c.Request().Context(), user)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{
		ID:          user.ID,
		Email:       user.Email,
		Username:    user.Username,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		PhoneNumber: user.PhoneNumber,
		IsActive:    user.IsActive,
		Roles:       roles,
	})
}
