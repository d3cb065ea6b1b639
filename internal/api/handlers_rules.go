// handlers_rules.go - Viewer plot rules handlers
package api

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"gopkg.in/yaml.v3"

	"github.com/scansector/backend/internal/models"
)

// HandleGetPlotRules returns the active marker styling rules as JSON.
func (h *Handler) HandleGetPlotRules(c echo.Context) error {
	h.rulesMu.RLock()
	rules := h.rules
	h.rulesMu.RUnlock()

	return c.JSON(http.StatusOK, rules)
}

// HandleUpdatePlotRules replaces the marker styling rules with a YAML
// document from the request body. Fields omitted from the document keep
// their built-in defaults.
func (h *Handler) HandleUpdatePlotRules(c echo.Context) error {
	data, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return NewBadRequestError("cannot read body", err)
	}

	rules := models.DefaultPlotRules()
	if err := yaml.Unmarshal(data, rules); err != nil {
		return NewBadRequestError("invalid rules YAML", err)
	}

	h.rulesMu.Lock()
	h.rules = rules
	h.rulesMu.Unlock()

	return c.JSON(http.StatusOK, rules)
}
