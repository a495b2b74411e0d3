package handler

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/deppfellow/user-service/internal/server"
	"github.com/labstack/echo/v4"
)

// OpenAPIHandler serves the API docs page, which loads openapi.json from
// /static.
type OpenAPIHandler struct {
	Handler
	assets fs.FS
	page   string
}

func NewOpenAPIHandler(s *server.Server, assets fs.FS, page string) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
		assets:  assets,
		page:    page,
	}
}

// ServeOpenAPIUI serves the docs page uncached so edits show up immediately.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")

	templateBytes, err := fs.ReadFile(h.assets, h.page)
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	if err := c.HTML(http.StatusOK, string(templateBytes)); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}
