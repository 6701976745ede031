package errors_test

import (
	"errors"
	"fmt"
	"os"
	"testing"

	pkgErrors "homework-assistant/pkg/errors"
)

func TestStoreIOError(t *testing.T) {
	base := os.ErrPermission
	err := fmt.Errorf("flush: %w", pkgErrors.NewStoreIOError("write", base))

	if !errors.Is(err, pkgErrors.ErrStoreIO) {
		t.Errorf("expected error to match ErrStoreIO")
	}
	if !errors.Is(err, os.ErrPermission) {
		t.Errorf("expected error to unwrap to the cause")
	}

	var sErr *pkgErrors.StoreIOError
	if !errors.As(err, &sErr) || sErr.Op != "write" {
		t.Errorf("expected StoreIOError with op write, got %v", sErr)
	}

	if pkgErrors.NewStoreIOError("write", nil) != nil {
		t.Errorf("expected nil for nil cause")
	}
}

func TestHTTPError(t *testing.T) {
	err := pkgErrors.NewHTTPError(409, "conflict")
	if err.Error() != "conflict" || err.StatusCode != 409 {
		t.Errorf("unexpected http error: %+v", err)
	}
}
