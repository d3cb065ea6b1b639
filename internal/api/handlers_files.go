// handlers_files.go - Save file management handlers
package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

const defaultRecentLimit = 20

// HandleUploadFile accepts a save file as multipart form data.
func (h *Handler) HandleUploadFile(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return NewBadRequestError("missing file field", err)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return NewBadRequestError("cannot open uploaded file", err)
	}
	defer src.Close()

	info, err := h.store.Save(fileHeader.Filename, src)
	if err != nil {
		return NewInternalError("failed to save file", err)
	}

	return c.JSON(http.StatusCreated, info)
}

// HandleRecentFiles lists the most recently uploaded save files.
func (h *Handler) HandleRecentFiles(c echo.Context) error {
	limit := defaultRecentLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return NewBadRequestError("invalid limit", err)
		}
		limit = n
	}

	list, err := h.store.List(limit)
	if err != nil {
		return NewInternalError("failed to list files", err)
	}

	return c.JSON(http.StatusOK, list)
}

// HandleGetFile returns metadata for one uploaded save file.
func (h *Handler) HandleGetFile(c echo.Context) error {
	id := c.Param("id")
	info, err := h.store.Get(id)
	if err != nil {
		return NewNotFoundError("file", id)
	}
	return c.JSON(http.StatusOK, info)
}

// HandleDeleteFile removes an uploaded save file.
func (h *Handler) HandleDeleteFile(c echo.Context) error {
	id := c.Param("id")
	if err := h.store.Delete(id); err != nil {
		return NewNotFoundError("file", id)
	}
	return c.NoContent(http.StatusNoContent)
}

type renameFileRequest struct {
	Name string `json:"name"`
}

// HandleRenameFile changes the display name of an uploaded save file.
func (h *Handler) HandleRenameFile(c echo.Context) error {
	id := c.Param("id")

	var req renameFileRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid JSON body", err)
	}
	if req.Name == "" {
		return NewBadRequestError("name must not be empty", nil)
	}

	info, err := h.store.Rename(id, req.Name)
	if err != nil {
		return NewNotFoundError("file", id)
	}
	return c.JSON(http.StatusOK, info)
}
