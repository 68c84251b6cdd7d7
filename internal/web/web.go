// Package web serves the embedded operator UI.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	apphttp "admin_console/internal/http"

	"github.com/gin-gonic/gin"
)

//go:embed static
var assets embed.FS

// Module serves the single page UI at / and its assets under /static.
type Module struct {
	static fs.FS
	index  []byte
}

// NewModule creates the UI module from the embedded assets.
func NewModule() (*Module, error) {
	static, err := fs.Sub(assets, "static")
	if err != nil {
		return nil, err
	}
	index, err := fs.ReadFile(static, "index.html")
	if err != nil {
		return nil, err
	}
	return &Module{static: static, index: index}, nil
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "web"
}

// RegisterRoutes mounts the UI on the engine root.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Engine.GET("/", m.serveIndex)
	ctx.Engine.StaticFS("/static", http.FS(m.static))
}

func (m *Module) serveIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", m.index)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
