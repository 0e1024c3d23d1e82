package repo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/odvcencio/gitlet/pkg/object"
)

// The global log is a newest-first append of every commit ever made,
// kept as a plain text file so it survives branch deletion.
func (r *Repo) globalLogPath() string {
	return filepath.Join(r.GitletDir, "global log")
}

func (r *Repo) seedGlobalLog(c *object.Commit) error {
	if err := os.WriteFile(r.globalLogPath(), []byte(renderCommit(c)), 0o644); err != nil {
		return fmt.Errorf("seed global log: %w", err)
	}
	return nil
}

// prependGlobalLog puts the new commit's entry ahead of the existing
// contents, rewriting the file atomically.
func (r *Repo) prependGlobalLog(c *object.Commit) error {
	existing, err := os.ReadFile(r.globalLogPath())
	if err != nil {
		return fmt.Errorf("global log: %w", err)
	}
	updated := renderCommit(c) + "\n" + string(existing)

	tmp, err := os.CreateTemp(r.GitletDir, ".global-log-*")
	if err != nil {
		return fmt.Errorf("global log: tmpfile: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(updated); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("global log: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("global log: close: %w", err)
	}
	if err := os.Rename(tmpName, r.globalLogPath()); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("global log: rename: %w", err)
	}
	return nil
}

func (r *Repo) readGlobalLog() (string, error) {
	data, err := os.ReadFile(r.globalLogPath())
	if err != nil {
		return "", fmt.Errorf("global log: %w", err)
	}
	return string(data), nil
}
