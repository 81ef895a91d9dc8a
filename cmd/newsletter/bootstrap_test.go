package main

import (
	"context"
	"os"
	"testing"
	"time"

	"llm-newsletter-bot/internal/archive"
	"llm-newsletter-bot/internal/store"
)

func writeStaleArchive(t *testing.T, dir string) string {
	t.Helper()
	p, err := archive.New(dir).Write(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), "old issue")
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	stale := time.Now().AddDate(0, 0, -30)
	if err := os.Chtimes(p, stale, stale); err != nil {
		t.Fatalf("Chtimes failed: %v", err)
	}
	return p
}

func TestCompressOldArchives(t *testing.T) {
	dir := t.TempDir()
	p := writeStaleArchive(t, dir)
	t.Setenv("NEWSLETTER_ARCHIVE_RETENTION_DAYS", "7")

	cfg := &store.Config{}
	cfg.Archive.Dir = dir
	compressOldArchives(context.Background(), cfg)

	if _, err := os.Stat(p); !os.IsNotExist(err) {
		t.Error("Expected stale archive to be compressed")
	}
	if _, err := os.Stat(p + ".gz"); err != nil {
		t.Errorf("Expected gzip archive: %v", err)
	}
}

func TestCompressOldArchivesRejectsBadRetention(t *testing.T) {
	dir := t.TempDir()
	p := writeStaleArchive(t, dir)
	t.Setenv("NEWSLETTER_ARCHIVE_RETENTION_DAYS", "abc")

	cfg := &store.Config{}
	cfg.Archive.Dir = dir
	compressOldArchives(context.Background(), cfg)

	if _, err := os.Stat(p); err != nil {
		t.Errorf("Expected archive to be untouched on a bad retention value: %v", err)
	}
	if _, err := os.Stat(p + ".gz"); !os.IsNotExist(err) {
		t.Error("Expected no gzip archive on a bad retention value")
	}
}
