package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"court/internal/model"
	"court/internal/service"
)

// AuthHandler handles signup and login endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignupRequest represents a signup request.
type SignupRequest struct {
	Name     string     `json:"name" validate:"required,min=1,max=120"`
	Email    string     `json:"email" validate:"required,email"`
	Password string     `json:"password" validate:"required,min=8,max=128"`
	Role     model.Role `json:"role" validate:"required,oneof=PLAINTIFF DEFENDANT JUROR JUDGE"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID    uint       `json:"id"`
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Role  model.Role `json:"role"`
}

// TokenResponse carries a bearer token after login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Signup godoc
// @Summary Sign up with a courtroom role
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup data"
// @Success 201 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.authService.Signup(c.Request().Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	})
}

// Login godoc
// @Summary Log in and receive a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
