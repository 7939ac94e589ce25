package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/microblog/platform/internal/core/domain"
	"github.com/microblog/platform/internal/core/ports"
)

// UserHandler serves the public identity read surface consumed by
// sibling services for reference checks and enrichment.
type UserHandler struct {
	authService ports.AuthService
}

func NewUserHandler(authService ports.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// Get handles GET /users/:id.
//
// @Summary      Get a public identity view by id
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userRefResponse
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.authService.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserRefResponse(user))
}

// List handles GET /users.
//
// @Summary      List public identity views
// @Tags         users
// @Produce      json
// @Success      200  {array}  userRefResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.authService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	resp := make([]userRefResponse, len(users))
	for i, u := range users {
		resp[i] = *toUserRefResponse(u)
	}
	return c.JSON(http.StatusOK, resp)
}

func toUserRefResponse(ref *domain.UserRef) *userRefResponse {
	if ref == nil {
		return nil
	}
	return &userRefResponse{
		ID:       ref.ID,
		Username: ref.Username,
		Email:    ref.Email,
		Role:     ref.Role,
	}
}
