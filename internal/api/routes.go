// routes.go - Route registration
package api

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all API routes with the Echo instance.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	apiGroup := e.Group("/api")

	apiGroup.GET("/health", h.HandleHealth)

	// Save file management
	apiGroup.POST("/files/upload", h.HandleUploadFile)
	apiGroup.GET("/files/recent", h.HandleRecentFiles)
	apiGroup.GET("/files/:id", h.HandleGetFile)
	apiGroup.DELETE("/files/:id", h.HandleDeleteFile)
	apiGroup.PUT("/files/:id", h.HandleRenameFile)

	// Load sessions
	apiGroup.POST("/load", h.HandleStartLoad)
	apiGroup.GET("/load/:sessionId/status", h.HandleLoadStatus)
	apiGroup.GET("/load/:sessionId/systems", h.HandleGetSystems)
	apiGroup.GET("/load/:sessionId/systems/msgpack", h.HandleGetSystemsMsgpack)
	apiGroup.GET("/load/:sessionId/systems/:index", h.HandleGetSystem)

	// Viewer configuration
	apiGroup.GET("/viewer/rules", h.HandleGetPlotRules)
	apiGroup.PUT("/viewer/rules", h.HandleUpdatePlotRules)
}
