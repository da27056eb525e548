//go:build !windows

package shell_test

import (
	"errors"
	"testing"

	"thumbwarm/internal/shell"
)

func TestNewUnsupportedOffWindows(t *testing.T) {
	backend, err := shell.New(shell.Options{Dimensions: 72})
	if backend != nil {
		t.Fatal("expected nil backend")
	}
	if !errors.Is(err, shell.ErrUnsupported) {
		t.Fatalf("unexpected error: %v", err)
	}
}
