package storage

import (
	"bytes"
	"os"
	"testing"
)

func TestLocalStoreSaveAndGet(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore failed: %v", err)
	}

	data := []byte(`<save><Sstm bN="Corvus"/></save>`)
	info, err := store.Save("campaign.xml", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if info.Size != int64(len(data)) {
		t.Errorf("expected size %d, got %d", len(data), info.Size)
	}
	if info.Status != "uploaded" {
		t.Errorf("expected status uploaded, got %s", info.Status)
	}

	got, err := store.Get(info.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != "campaign.xml" {
		t.Errorf("expected campaign.xml, got %s", got.Name)
	}

	path, err := store.GetFilePath(info.ID)
	if err != nil {
		t.Fatalf("GetFilePath failed: %v", err)
	}
	onDisk, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading stored file: %v", err)
	}
	if !bytes.Equal(onDisk, data) {
		t.Error("stored bytes differ from uploaded bytes")
	}
}

func TestLocalStoreListOrderAndLimit(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"a.xml", "b.xml", "c.xml"} {
		if _, err := store.SaveBytes(name, []byte("<x/>")); err != nil {
			t.Fatalf("SaveBytes %s failed: %v", name, err)
		}
	}

	list, err := store.List(2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 files, got %d", len(list))
	}
}

func TestLocalStoreDelete(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	info, err := store.SaveBytes("gone.xml", []byte("<x/>"))
	if err != nil {
		t.Fatal(err)
	}
	path, _ := store.GetFilePath(info.ID)

	if err := store.Delete(info.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Get(info.ID); err == nil {
		t.Error("expected Get to fail after delete")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected file removed from disk")
	}

	if err := store.Delete("missing"); err == nil {
		t.Error("expected Delete of unknown id to fail")
	}
}

func TestLocalStoreRenameAndStatus(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	info, err := store.SaveBytes("old.xml", []byte("<x/>"))
	if err != nil {
		t.Fatal(err)
	}

	renamed, err := store.Rename(info.ID, "new.xml")
	if err != nil {
		t.Fatalf("Rename failed: %v", err)
	}
	if renamed.Name != "new.xml" {
		t.Errorf("expected new.xml, got %s", renamed.Name)
	}

	store.SetStatus(info.ID, "loaded")
	got, _ := store.Get(info.ID)
	if got.Status != "loaded" {
		t.Errorf("expected status loaded, got %s", got.Status)
	}
}
