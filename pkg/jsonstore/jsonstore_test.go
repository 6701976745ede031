package jsonstore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type doc struct {
	Items []string `json:"items"`
}

func TestWriteThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "doc.json")

	if err := WriteAtomic(path, doc{Items: []string{"a", "b"}}); err != nil {
		t.Fatalf("WriteAtomic() error: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("temp file left behind")
	}

	var got doc
	found, err := Read(path, &got)
	if err != nil || !found {
		t.Fatalf("Read() = %v, %v", found, err)
	}
	if strings.Join(got.Items, ",") != "a,b" {
		t.Errorf("unexpected items %v", got.Items)
	}
}

func TestReadMissingAndEmpty(t *testing.T) {
	dir := t.TempDir()

	var d doc
	found, err := Read(filepath.Join(dir, "missing.json"), &d)
	if found || err != nil {
		t.Errorf("missing file: found=%v err=%v", found, err)
	}

	empty := filepath.Join(dir, "empty.json")
	os.WriteFile(empty, nil, 0o644)
	found, err = Read(empty, &d)
	if !found || err != nil {
		t.Errorf("empty file: found=%v err=%v", found, err)
	}
}

func TestCorruptAndQuarantine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	os.WriteFile(path, []byte(`{"items": [`), 0o644)

	var d doc
	_, err := Read(path, &d)
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}

	now := time.Unix(1710000000, 0)
	backup, err := Quarantine(path, now)
	if err != nil {
		t.Fatalf("Quarantine() error: %v", err)
	}
	if !strings.HasSuffix(backup, ".corrupted.1710000000") {
		t.Errorf("unexpected backup name %s", backup)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("original file should be moved away")
	}
}
