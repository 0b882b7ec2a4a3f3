package handler

import (
	stderrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"poppys/internal/auth"
	"poppys/internal/errors"
	"poppys/internal/repository"
	"poppys/internal/service"
)

// UserHandler handles user endpoints.
type UserHandler struct {
	users service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// RegisterRequest represents a registration request.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url"`
}

// RegisterResponse represents a registration response.
type RegisterResponse struct {
	Message string `json:"message,omitempty"`
	Token   string `json:"token"`
}

// UpdateUserRequest represents a profile patch. Absent fields are untouched.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	PhotoURL *string `json:"photo_url"`
}

// UpdateRoleRequest represents a role patch.
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// Register godoc
// @Summary Register or return a credential for an existing identity
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 200 {object} RegisterResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, existed, err := h.users.Register(c.Request().Context(), service.RegisterInput{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		return httpError(err)
	}

	resp := RegisterResponse{Token: token}
	if existed {
		resp.Message = "User already exists"
	}
	return c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// Me godoc
// @Summary Get the caller's own profile
// @Description The target identity comes from the verified token claim, never
// @Description from a request parameter.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Router /users/email [get]
func (h *UserHandler) Me(c echo.Context) error {
	email, ok := auth.IdentityEmail(c)
	if !ok {
		return httpError(errors.ErrNoIdentity)
	}

	user, err := h.users.Profile(c.Request().Context(), email)
	if err != nil {
		if stderrors.Is(err, errors.ErrNotFound) {
			return c.JSON(http.StatusOK, nil)
		}
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// GetByEmail godoc
// @Summary Get a profile by email
// @Tags users
// @Produce json
// @Param email path string true "Email"
// @Success 200 {object} model.User
// @Router /users/email/{email} [get]
func (h *UserHandler) GetByEmail(c echo.Context) error {
	user, err := h.users.GetByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		if stderrors.Is(err, errors.ErrNotFound) {
			return c.JSON(http.StatusOK, nil)
		}
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// GetByID godoc
// @Summary Get a profile by id
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetByID(c echo.Context) error {
	id, httpErr := parseID(c, "id")
	if httpErr != nil {
		return httpErr
	}

	user, err := h.users.GetByID(c.Request().Context(), id)
	if err != nil {
		if stderrors.Is(err, errors.ErrNotFound) {
			return c.JSON(http.StatusOK, nil)
		}
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary Update profile fields
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body UpdateUserRequest true "Fields to update"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [patch]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	id, httpErr := parseID(c, "id")
	if httpErr != nil {
		return httpErr
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, err := h.users.UpdateProfile(c.Request().Context(), id, repository.UpdateUserParams{
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateRole godoc
// @Summary Update the role field
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body UpdateRoleRequest true "New role"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/role [patch]
func (h *UserHandler) UpdateRole(c echo.Context) error {
	id, httpErr := parseID(c, "id")
	if httpErr != nil {
		return httpErr
	}

	var req UpdateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.UpdateRole(c.Request().Context(), id, req.Role)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}
