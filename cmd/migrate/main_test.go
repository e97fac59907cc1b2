package main

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestMigrationSourceURL(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	url, err := migrationSourceURL(dir)
	if err != nil {
		t.Fatalf("migrationSourceURL returned error: %v", err)
	}
	if !strings.HasPrefix(url, "file://") || !strings.HasSuffix(url, filepath.ToSlash(dir)) {
		t.Fatalf("unexpected source url %q", url)
	}
}

func TestMigrationSourceURL_MissingDir(t *testing.T) {
	t.Parallel()

	if _, err := migrationSourceURL(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
