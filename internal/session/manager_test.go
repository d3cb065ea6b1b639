package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/scansector/backend/internal/models"
)

func writeSave(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "campaign.xml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func waitForDone(t *testing.T, m *Manager, id string) *models.LoadSession {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		sess, ok := m.GetSession(id)
		if !ok {
			t.Fatalf("session %s disappeared", id)
		}
		if sess.Status == models.SessionStatusComplete || sess.Status == models.SessionStatusError {
			return sess
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("session %s never finished", id)
	return nil
}

func TestStartLoadCompletes(t *testing.T) {
	path := writeSave(t, `<save>
  <Sstm bN="Corvus">
    <Plnt><loc>0|0</loc><j0>{"f0":"Corvus III"}</j0></Plnt>
    <CCEnt><loc>500|-500</loc><MReq/><j0>{"f0":"Derelict Station"}</j0></CCEnt>
    <CCEnt><loc>broken</loc><j0>{"f0":"Dropped"}</j0></CCEnt>
  </Sstm>
</save>`)

	m := NewManager()
	sess, err := m.StartLoad("file-1", path)
	if err != nil {
		t.Fatalf("StartLoad failed: %v", err)
	}

	done := waitForDone(t, m, sess.ID)
	if done.Status != models.SessionStatusComplete {
		t.Fatalf("expected complete, got %s (%s)", done.Status, done.Error)
	}
	if done.SystemCount != 1 || done.ObjectCount != 2 {
		t.Errorf("unexpected counts: %+v", done)
	}
	if done.ObjectsSkipped != 1 {
		t.Errorf("expected 1 skipped object, got %d", done.ObjectsSkipped)
	}

	systems, ok := m.Systems(sess.ID)
	if !ok || len(systems) != 1 {
		t.Fatalf("Systems lookup failed: ok=%v n=%d", ok, len(systems))
	}

	sys, ok := m.System(sess.ID, 0)
	if !ok || sys.Name != "Corvus" {
		t.Fatalf("System lookup failed: ok=%v sys=%+v", ok, sys)
	}
	if _, ok := m.System(sess.ID, 1); ok {
		t.Error("out-of-range index should not resolve")
	}
}

func TestStartLoadFailsOnMalformedSave(t *testing.T) {
	path := writeSave(t, `<save><unclosed>`)

	m := NewManager()
	sess, err := m.StartLoad("file-1", path)
	if err != nil {
		t.Fatalf("StartLoad failed: %v", err)
	}

	done := waitForDone(t, m, sess.ID)
	if done.Status != models.SessionStatusError {
		t.Fatalf("expected error status, got %s", done.Status)
	}
	if done.Error == "" {
		t.Error("expected error message to be set")
	}
	if _, ok := m.Systems(sess.ID); ok {
		t.Error("failed session should expose no systems")
	}
}

func TestSingleFlight(t *testing.T) {
	path := writeSave(t, `<save><Sstm bN="A"/></save>`)

	m := NewManager()

	// Pin a session in loading state to simulate an in-flight load.
	m.mu.Lock()
	m.sessions["pinned"] = &sessionState{
		session:      &models.LoadSession{ID: "pinned", Status: models.SessionStatusLoading},
		lastAccessed: time.Now(),
	}
	m.mu.Unlock()

	if _, err := m.StartLoad("file-1", path); err != ErrLoadInFlight {
		t.Fatalf("expected ErrLoadInFlight, got %v", err)
	}

	// Once the pinned load resolves, a new one is allowed.
	m.mu.Lock()
	m.sessions["pinned"].session.Status = models.SessionStatusComplete
	m.mu.Unlock()

	sess, err := m.StartLoad("file-1", path)
	if err != nil {
		t.Fatalf("StartLoad after resolution failed: %v", err)
	}
	waitForDone(t, m, sess.ID)
}

func TestCleanupOldSessions(t *testing.T) {
	m := NewManager()

	m.mu.Lock()
	m.sessions["stale"] = &sessionState{
		session:      &models.LoadSession{ID: "stale", Status: models.SessionStatusComplete},
		lastAccessed: time.Now().Add(-time.Hour),
	}
	m.sessions["busy"] = &sessionState{
		session:      &models.LoadSession{ID: "busy", Status: models.SessionStatusLoading},
		lastAccessed: time.Now().Add(-time.Hour),
	}
	m.mu.Unlock()

	removed := m.CleanupOldSessions(30 * time.Minute)
	if removed != 1 {
		t.Errorf("expected 1 removed, got %d", removed)
	}
	if _, ok := m.GetSession("busy"); !ok {
		t.Error("in-flight session must survive cleanup")
	}
	if _, ok := m.GetSession("stale"); ok {
		t.Error("stale session should be gone")
	}
}
