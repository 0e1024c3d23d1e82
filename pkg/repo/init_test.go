package repo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// Test 1: Init lays out .gitlet with refs, staging, objects, HEAD and a
// master branch pointing at the initial commit.
func TestInit_Layout(t *testing.T) {
	root := t.TempDir()
	r, err := Init(root)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	for _, dir := range []string{"refs", "staging", "objects"} {
		info, err := os.Stat(filepath.Join(r.GitletDir, dir))
		if err != nil || !info.IsDir() {
			t.Errorf("missing directory %s: %v", dir, err)
		}
	}

	b, err := r.currentBranch()
	if err != nil {
		t.Fatalf("currentBranch: %v", err)
	}
	if b.Name != "master" {
		t.Errorf("branch = %s, want master", b.Name)
	}

	c, err := r.loadCommit(b.Tip)
	if err != nil {
		t.Fatalf("loadCommit: %v", err)
	}
	if c.Message != "initial commit" || c.Timestamp != 0 {
		t.Errorf("initial commit = %+v", c)
	}
	if c.Parent1 != "" || c.Parent2 != "" {
		t.Errorf("initial commit has parents: %+v", c)
	}
}

// Test 2: two fresh repositories share the same initial commit id, since
// the record carries no clock or randomness.
func TestInit_DeterministicInitialCommit(t *testing.T) {
	r1 := newTestRepo(t)
	r2 := newTestRepo(t)

	if tip(t, r1).ID != tip(t, r2).ID {
		t.Errorf("initial ids differ: %s vs %s", tip(t, r1).ID, tip(t, r2).ID)
	}
}

// Test 3: initializing twice is refused.
func TestInit_AlreadyExists(t *testing.T) {
	root := t.TempDir()
	if _, err := Init(root); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if _, err := Init(root); !errors.Is(err, ErrRepoExists) {
		t.Errorf("second Init err = %v, want ErrRepoExists", err)
	}
}

// Test 4: Open refuses a directory with no .gitlet and does not search
// parents.
func TestOpen_NoRepo(t *testing.T) {
	if _, err := Open(t.TempDir()); !errors.Is(err, ErrNoRepo) {
		t.Errorf("Open err = %v, want ErrNoRepo", err)
	}

	r := newTestRepo(t)
	sub := filepath.Join(r.RootDir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if _, err := Open(sub); !errors.Is(err, ErrNoRepo) {
		t.Errorf("Open(subdir) err = %v, want ErrNoRepo", err)
	}
}

// Test 5: Open on an initialized repository sees the same state.
func TestOpen_Reopens(t *testing.T) {
	r := newTestRepo(t)
	h := addCommit(t, r, "a.txt", "hello", "add a")

	again, err := Open(r.RootDir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if tip(t, again).ID != h {
		t.Errorf("reopened tip = %s, want %s", tip(t, again).ID, h)
	}
}
