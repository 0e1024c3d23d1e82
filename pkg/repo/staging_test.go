package repo

import (
	"errors"
	"os"
	"testing"
)

// Test 1: add copies the file into the staging area.
func TestAdd_Stages(t *testing.T) {
	r := newTestRepo(t)
	writeWorkFile(t, r, "a.txt", "hello")

	if err := r.Add("a.txt"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	staged, err := r.stagedFiles()
	if err != nil {
		t.Fatalf("stagedFiles: %v", err)
	}
	if len(staged) != 1 || staged[0] != "a.txt" {
		t.Errorf("staged = %v, want [a.txt]", staged)
	}
	data, err := os.ReadFile(r.stagingPath("a.txt"))
	if err != nil || string(data) != "hello" {
		t.Errorf("staged copy = %q, %v", data, err)
	}
}

// Test 2: adding a missing file is refused.
func TestAdd_MissingFile(t *testing.T) {
	r := newTestRepo(t)
	if err := r.Add("ghost.txt"); !errors.Is(err, ErrNoSuchFile) {
		t.Errorf("Add err = %v, want ErrNoSuchFile", err)
	}
}

// Test 3: re-adding a file identical to its committed version unstages
// it instead of staging a no-op.
func TestAdd_IdenticalUnstages(t *testing.T) {
	r := newTestRepo(t)
	addCommit(t, r, "a.txt", "hello", "add a")

	writeWorkFile(t, r, "a.txt", "changed")
	if err := r.Add("a.txt"); err != nil {
		t.Fatalf("Add changed: %v", err)
	}
	writeWorkFile(t, r, "a.txt", "hello")
	if err := r.Add("a.txt"); err != nil {
		t.Fatalf("Add reverted: %v", err)
	}

	staged, err := r.stagedFiles()
	if err != nil {
		t.Fatalf("stagedFiles: %v", err)
	}
	if len(staged) != 0 {
		t.Errorf("staged = %v, want empty", staged)
	}
}

// Test 4: adding a removal-staged file cancels the pending removal.
func TestAdd_CancelsRemoval(t *testing.T) {
	r := newTestRepo(t)
	addCommit(t, r, "a.txt", "hello", "add a")

	if err := r.Rm("a.txt"); err != nil {
		t.Fatalf("Rm: %v", err)
	}
	writeWorkFile(t, r, "a.txt", "hello")
	if err := r.Add("a.txt"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	b, err := r.currentBranch()
	if err != nil {
		t.Fatalf("currentBranch: %v", err)
	}
	if len(b.Removals) != 0 {
		t.Errorf("removals = %v, want empty", b.Removals)
	}
}

// Test 5: add "." stages every top-level file, skipping directories.
func TestAdd_Dot(t *testing.T) {
	r := newTestRepo(t)
	writeWorkFile(t, r, "a.txt", "a")
	writeWorkFile(t, r, "b.txt", "b")
	if err := os.Mkdir(r.RootDir+"/dir", 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if err := r.Add("."); err != nil {
		t.Fatalf("Add(.): %v", err)
	}
	staged, err := r.stagedFiles()
	if err != nil {
		t.Fatalf("stagedFiles: %v", err)
	}
	if len(staged) != 2 || staged[0] != "a.txt" || staged[1] != "b.txt" {
		t.Errorf("staged = %v, want [a.txt b.txt]", staged)
	}
}

// Test 6: rm on a tracked file stages the removal and deletes the
// working copy.
func TestRm_Tracked(t *testing.T) {
	r := newTestRepo(t)
	addCommit(t, r, "a.txt", "hello", "add a")

	if err := r.Rm("a.txt"); err != nil {
		t.Fatalf("Rm: %v", err)
	}
	if workFileExists(r, "a.txt") {
		t.Error("working copy still exists")
	}
	b, err := r.currentBranch()
	if err != nil {
		t.Fatalf("currentBranch: %v", err)
	}
	if !b.StagedForRemoval("a.txt") {
		t.Errorf("removals = %v, want [a.txt]", b.Removals)
	}
}

// Test 7: rm on a staged-but-untracked file only unstages it and keeps
// the working copy.
func TestRm_StagedOnly(t *testing.T) {
	r := newTestRepo(t)
	writeWorkFile(t, r, "a.txt", "hello")
	if err := r.Add("a.txt"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := r.Rm("a.txt"); err != nil {
		t.Fatalf("Rm: %v", err)
	}
	if !workFileExists(r, "a.txt") {
		t.Error("working copy deleted, want kept")
	}
	staged, err := r.stagedFiles()
	if err != nil {
		t.Fatalf("stagedFiles: %v", err)
	}
	if len(staged) != 0 {
		t.Errorf("staged = %v, want empty", staged)
	}
}

// Test 8: rm with nothing to do is refused.
func TestRm_NoReason(t *testing.T) {
	r := newTestRepo(t)
	writeWorkFile(t, r, "a.txt", "hello")
	if err := r.Rm("a.txt"); !errors.Is(err, ErrNoReasonToRemove) {
		t.Errorf("Rm err = %v, want ErrNoReasonToRemove", err)
	}
}
