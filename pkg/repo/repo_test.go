package repo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/odvcencio/gitlet/pkg/object"
)

func newTestRepo(t *testing.T) *Repo {
	t.Helper()
	r, err := Init(t.TempDir())
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	return r
}

func writeWorkFile(t *testing.T, r *Repo, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(r.RootDir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func readWorkFile(t *testing.T, r *Repo, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(r.RootDir, name))
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return string(data)
}

func workFileExists(r *Repo, name string) bool {
	_, err := os.Stat(filepath.Join(r.RootDir, name))
	return err == nil
}

// addCommit stages one file and commits it.
func addCommit(t *testing.T, r *Repo, name, content, msg string) object.Hash {
	t.Helper()
	writeWorkFile(t, r, name, content)
	if err := r.Add(name); err != nil {
		t.Fatalf("Add(%s): %v", name, err)
	}
	h, err := r.Commit(msg)
	if err != nil {
		t.Fatalf("Commit(%q): %v", msg, err)
	}
	return h
}

func tip(t *testing.T, r *Repo) *object.Commit {
	t.Helper()
	b, err := r.currentBranch()
	if err != nil {
		t.Fatalf("currentBranch: %v", err)
	}
	c, err := r.loadCommit(b.Tip)
	if err != nil {
		t.Fatalf("loadCommit: %v", err)
	}
	return c
}
