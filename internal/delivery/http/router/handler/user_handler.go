package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"salesapi/internal/delivery/http/response"
	"salesapi/internal/usecase"
)

// UserHandler holds dependencies for account and authentication handlers.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// userView strips the credential hash from API responses.
type userView struct {
	ID    string `json:"id"`
	Login string `json:"login"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Register handles POST /auth/users.
func (h *UserHandler) Register(c echo.Context) error {
	var input *usecase.CreateUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	// Do not return sensitive data in the response.
	view := &userView{ID: user.ID, Login: user.Login, Name: user.Name, Role: user.Role}

	return response.Success(c, http.StatusCreated, view, "User registered successfully")
}

// Login handles POST /auth/login.
func (h *UserHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// CurrentUser handles GET /me. Anonymous requests get an empty result, not an
// error; the identify middleware never rejects.
func (h *UserHandler) CurrentUser(c echo.Context) error {
	user, err := h.uc.CurrentUser(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}
	if user == nil {
		return response.Success(c, http.StatusOK, nil, "No authenticated user")
	}

	view := &userView{ID: user.ID, Login: user.Login, Name: user.Name, Role: user.Role}

	return response.Success(c, http.StatusOK, view, "Current user retrieved successfully")
}
