// Package api implements the HTTP handlers serving the viewer frontend.
package api

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/scansector/backend/internal/models"
	"github.com/scansector/backend/internal/session"
	"github.com/scansector/backend/internal/storage"
)

// Handler holds the dependencies shared by all API handlers.
type Handler struct {
	store      storage.Store
	sessionMgr *session.Manager
	version    string

	rulesMu sync.RWMutex
	rules   *models.PlotRules
}

// NewHandler creates the API handler with built-in plot rules.
func NewHandler(store storage.Store, sessionMgr *session.Manager, version string) *Handler {
	return &Handler{
		store:      store,
		sessionMgr: sessionMgr,
		version:    version,
		rules:      models.DefaultPlotRules(),
	}
}

// LoadRulesFile replaces the plot rules from a YAML file. Used at startup
// when the config points at a rules file.
func (h *Handler) LoadRulesFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading rules file: %w", err)
	}

	rules := models.DefaultPlotRules()
	if err := yaml.Unmarshal(data, rules); err != nil {
		return fmt.Errorf("parsing rules file: %w", err)
	}

	h.rulesMu.Lock()
	h.rules = rules
	h.rulesMu.Unlock()
	return nil
}
