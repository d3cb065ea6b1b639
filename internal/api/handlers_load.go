// handlers_load.go - Load session handlers
package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/scansector/backend/internal/models"
	"github.com/scansector/backend/internal/session"
)

type startLoadRequest struct {
	FileID string `json:"fileId"`
}

// HandleStartLoad begins a load session for an uploaded save file. Only
// one load may be in flight at a time; a concurrent request gets 409.
func (h *Handler) HandleStartLoad(c echo.Context) error {
	var req startLoadRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid JSON body", err)
	}
	if req.FileID == "" {
		return NewBadRequestError("fileId must not be empty", nil)
	}

	path, err := h.store.GetFilePath(req.FileID)
	if err != nil {
		return NewNotFoundError("file", req.FileID)
	}

	sess, err := h.sessionMgr.StartLoad(req.FileID, path)
	if err != nil {
		if errors.Is(err, session.ErrLoadInFlight) {
			return NewConflictError(err.Error())
		}
		return NewInternalError("failed to start load", err)
	}

	h.store.SetStatus(req.FileID, "loading")

	return c.JSON(http.StatusAccepted, sess)
}

// HandleLoadStatus reports load session progress. The frontend polls this
// once per tick until the session completes or fails.
func (h *Handler) HandleLoadStatus(c echo.Context) error {
	id := c.Param("sessionId")
	sess, ok := h.sessionMgr.GetSession(id)
	if !ok {
		return NewNotFoundError("session", id)
	}

	switch sess.Status {
	case models.SessionStatusComplete:
		h.store.SetStatus(sess.FileID, "loaded")
	case models.SessionStatusError:
		h.store.SetStatus(sess.FileID, "error")
	}

	return c.JSON(http.StatusOK, sess)
}

// HandleGetSystems returns the sorted system list of a completed session
// as lightweight summaries for the selection UI.
func (h *Handler) HandleGetSystems(c echo.Context) error {
	id := c.Param("sessionId")
	systems, ok := h.sessionMgr.Systems(id)
	if !ok {
		return NewNotFoundError("session", id)
	}

	summaries := make([]models.SystemSummary, len(systems))
	for i, sys := range systems {
		summaries[i] = models.SystemSummary{
			Index:       i,
			Name:        sys.Name,
			ObjectCount: len(sys.Objects),
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"count":   len(summaries),
		"systems": summaries,
	})
}

// HandleGetSystem returns one system, with its objects, by index in the
// sorted list.
func (h *Handler) HandleGetSystem(c echo.Context) error {
	id := c.Param("sessionId")
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return NewBadRequestError("invalid system index", err)
	}

	sys, ok := h.sessionMgr.System(id, index)
	if !ok {
		return NewNotFoundError("system", c.Param("index"))
	}

	return c.JSON(http.StatusOK, sys)
}

// HandleGetSystemsMsgpack returns the full system list, objects included,
// in one msgpack blob for the frontend's bulk transfer path.
func (h *Handler) HandleGetSystemsMsgpack(c echo.Context) error {
	id := c.Param("sessionId")
	systems, ok := h.sessionMgr.Systems(id)
	if !ok {
		return NewNotFoundError("session", id)
	}

	data, err := msgpack.Marshal(map[string]interface{}{
		"count":   len(systems),
		"systems": systems,
	})
	if err != nil {
		return NewInternalError("failed to encode msgpack", err)
	}

	return c.Blob(http.StatusOK, "application/msgpack", data)
}
