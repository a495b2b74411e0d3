package router

import (
	"net/http"

	"github.com/deppfellow/user-service/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerUserRoutes(r *echo.Echo, h *handler.Handlers) {
	users := r.Group("/users")

	users.POST("", handler.Handle(h.User.Handler, h.User.CreateUser, http.StatusCreated))
	users.GET("", handler.Handle(h.User.Handler, h.User.ListUsers, http.StatusOK))
	users.GET("/:id", handler.Handle(h.User.Handler, h.User.GetUser, http.StatusOK))
	users.PUT("/:id", handler.Handle(h.User.Handler, h.User.UpdateUser, http.StatusOK))
	users.DELETE("/:id", handler.HandleNoContent(h.User.Handler, h.User.DeleteUser, http.StatusNoContent))
}
