package handler

import (
	"github.com/deppfellow/user-service/internal/model/user"
	"github.com/deppfellow/user-service/internal/server"
	"github.com/deppfellow/user-service/internal/service"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	Handler
	userService *service.UserService
}

func NewUserHandler(s *server.Server, userService *service.UserService) *UserHandler {
	return &UserHandler{
		Handler:     NewHandler(s),
		userService: userService,
	}
}

func (h *UserHandler) CreateUser(c echo.Context, payload *user.CreateUserPayload) (user.User, error) {
	return h.userService.CreateUser(c.Request().Context(), payload)
}

func (h *UserHandler) ListUsers(c echo.Context, payload *user.ListUsersPayload) ([]user.User, error) {
	return h.userService.ListUsers(c.Request().Context()), nil
}

func (h *UserHandler) GetUser(c echo.Context, payload *user.GetUserPayload) (user.User, error) {
	return h.userService.GetUser(c.Request().Context(), payload.ID)
}

func (h *UserHandler) UpdateUser(c echo.Context, payload *user.UpdateUserPayload) (user.User, error) {
	return h.userService.UpdateUser(c.Request().Context(), payload)
}

func (h *UserHandler) DeleteUser(c echo.Context, payload *user.GetUserPayload) error {
	return h.userService.DeleteUser(c.Request().Context(), payload.ID)
}
