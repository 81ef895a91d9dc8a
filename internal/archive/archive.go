package archive

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Store writes one newsletter file per calendar date into the archive
// directory. Writes are byte-exact and last-write-wins for a given date.
type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) filepathFor(date time.Time) string {
	return filepath.Join(s.dir, "newsletter_"+date.Format("2006-01-02")+".md")
}

// Write stores content under the date's filename, creating the archive
// directory if needed. Returns the written path.
func (s *Store) Write(date time.Time, content string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create archive dir %s: %w", s.dir, err)
	}
	p := s.filepathFor(date)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write archive file %s: %w", p, err)
	}
	return p, nil
}

// CompressOlder gzips archive files older than retentionDays. Failures on
// individual files are skipped; retention never aborts a run.
func (s *Store) CompressOlder(retentionDays int) error {
	if retentionDays <= 0 {
		return nil
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	return filepath.WalkDir(s.dir, func(p string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(p) != ".md" {
			return nil
		}
		info, er := os.Stat(p)
		if er != nil || !info.ModTime().Before(cutoff) {
			return nil
		}
		compressFile(p)
		return nil
	})
}

// compressFile gzips p into p.gz. A pre-existing .gz (possibly a leftover
// from an interrupted run) is overwritten, never trusted. The original is
// removed only after the compressed copy is fully written and closed.
func compressFile(p string) {
	in, err := os.Open(p)
	if err != nil {
		return
	}
	defer in.Close()

	gz := p + ".gz"
	out, err := os.OpenFile(gz, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return
	}
	gw := gzip.NewWriter(out)
	_, err = io.Copy(gw, in)
	if cerr := gw.Close(); err == nil {
		err = cerr
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		// never leave a partial .gz behind
		_ = os.Remove(gz)
		return
	}
	_ = os.Remove(p)
}
