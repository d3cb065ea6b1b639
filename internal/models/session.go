package models

// SessionStatus represents the status of a load session.
type SessionStatus string

const (
	SessionStatusPending  SessionStatus = "pending"
	SessionStatusLoading  SessionStatus = "loading"
	SessionStatusComplete SessionStatus = "complete"
	SessionStatusError    SessionStatus = "error"
)

// LoadSession represents one load of a save file. A session runs the
// whole pipeline (read, parse, extract) to completion or failure; there
// is no mid-load cancellation.
type LoadSession struct {
	ID               string        `json:"id"`
	FileID           string        `json:"fileId"`
	Status           SessionStatus `json:"status"`
	SystemCount      int           `json:"systemCount,omitempty"`
	ObjectCount      int           `json:"objectCount,omitempty"`
	SystemsSkipped   int           `json:"systemsSkipped,omitempty"`
	ObjectsSkipped   int           `json:"objectsSkipped,omitempty"`
	ProcessingTimeMs int64         `json:"processingTimeMs,omitempty"`
	Error            string        `json:"error,omitempty"`
}

// NewLoadSession creates a new LoadSession in pending status.
func NewLoadSession(id, fileID string) *LoadSession {
	return &LoadSession{
		ID:     id,
		FileID: fileID,
		Status: SessionStatusPending,
	}
}
