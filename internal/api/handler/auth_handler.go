package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thevittavardhan/backend/internal/api/metrics"
	"github.com/thevittavardhan/backend/internal/core/domain"
	"github.com/thevittavardhan/backend/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// userView is the public shape of an authenticated account. The password
// hash never leaves the service layer, and email is withheld here too.
type userView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type loginResponse struct {
	Success bool     `json:"success"`
	Token   string   `json:"token"`
	User    userView `json:"user"`
}

type loginFunc func(ctx context.Context, username, password string) (string, *domain.User, error)

// LoginUser authenticates a "user" account and returns a bearer token.
//
// @Summary      User login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  Envelope
// @Failure      401   {object}  Envelope
// @Router       /api/login [post]
func (h *AuthHandler) LoginUser(c echo.Context) error {
	return h.login(c, "user", h.authService.LoginUser)
}

// LoginAdmin authenticates any account by username and returns a bearer token.
//
// @Summary      Admin login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  Envelope
// @Failure      401   {object}  Envelope
// @Router       /api/admin/login [post]
func (h *AuthHandler) LoginAdmin(c echo.Context) error {
	return h.login(c, "admin", h.authService.LoginAdmin)
}

func (h *AuthHandler) login(c echo.Context, flow string, do loginFunc) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, user, err := do(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues(flow, "failure").Inc()
		return err
	}
	metrics.LoginAttemptsTotal.WithLabelValues(flow, "success").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Success: true,
		Token:   token,
		User: userView{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role,
		},
	})
}
