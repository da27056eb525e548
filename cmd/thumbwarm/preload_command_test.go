package main

import (
	"strings"
	"testing"
)

func TestAcquireRunLockRefusesSecondHolder(t *testing.T) {
	dir := t.TempDir()

	first, err := acquireRunLock(dir)
	if err != nil {
		t.Fatalf("first acquire: %v", err)
	}

	if _, err := acquireRunLock(dir); err == nil {
		t.Fatal("second acquire succeeded while the first run held the lock")
	} else if !strings.Contains(err.Error(), "already active") {
		t.Fatalf("unexpected refusal: %v", err)
	}

	if err := first.Unlock(); err != nil {
		t.Fatalf("release: %v", err)
	}

	second, err := acquireRunLock(dir)
	if err != nil {
		t.Fatalf("lock not reacquirable after release: %v", err)
	}
	if err := second.Unlock(); err != nil {
		t.Fatalf("release: %v", err)
	}
}
