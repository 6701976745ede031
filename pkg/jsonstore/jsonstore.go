package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ErrCorrupt is returned by Read when the file exists but does not decode.
var ErrCorrupt = errors.New("corrupt json file")

// CorruptSuffix is inserted between the file name and the timestamp of a
// quarantined file.
const CorruptSuffix = ".corrupted."

// Read decodes path into v. A missing file is not an error and leaves v
// untouched; found reports whether the file existed.
func Read(path string, v any) (found bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	if len(data) == 0 {
		return true, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return true, fmt.Errorf("%w: %s: %v", ErrCorrupt, path, err)
	}
	return true, nil
}

// WriteAtomic encodes v and replaces path through a temp file and rename, so
// readers never observe a half-written file.
func WriteAtomic(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", path, err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp file %s: %w", tempPath, err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// Quarantine moves an unreadable file aside as <path>.corrupted.<unix-ts>
// and returns the new location.
func Quarantine(path string, now time.Time) (string, error) {
	backup := fmt.Sprintf("%s%s%d", path, CorruptSuffix, now.Unix())
	if err := os.Rename(path, backup); err != nil {
		return "", fmt.Errorf("quarantine %s: %w", path, err)
	}
	return backup, nil
}
