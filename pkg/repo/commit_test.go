package repo

import (
	"errors"
	"testing"
)

// Test 1: committing with an empty staging area and no removals is
// refused.
func TestCommit_NoChanges(t *testing.T) {
	r := newTestRepo(t)
	if _, err := r.Commit("nothing"); !errors.Is(err, ErrNoChanges) {
		t.Errorf("Commit err = %v, want ErrNoChanges", err)
	}
}

// Test 2: the message check comes after the no-changes check, so an
// empty message with staged work is its own condition.
func TestCommit_EmptyMessage(t *testing.T) {
	r := newTestRepo(t)
	writeWorkFile(t, r, "a.txt", "hello")
	if err := r.Add("a.txt"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := r.Commit(""); !errors.Is(err, ErrEmptyMessage) {
		t.Errorf("Commit err = %v, want ErrEmptyMessage", err)
	}
}

// Test 3: a commit snapshots the staged file, advances the tip, links
// the parent, and empties the staging area.
func TestCommit_Snapshot(t *testing.T) {
	r := newTestRepo(t)
	initial := tip(t, r).ID
	h := addCommit(t, r, "a.txt", "hello", "add a")

	c := tip(t, r)
	if c.ID != h {
		t.Errorf("tip = %s, want %s", c.ID, h)
	}
	if c.Parent1 != initial {
		t.Errorf("parent = %s, want %s", c.Parent1, initial)
	}
	entry, ok := c.EntryFor("a.txt")
	if !ok {
		t.Fatal("a.txt not tracked")
	}
	data, err := r.Store.ReadBlob(entry)
	if err != nil || string(data) != "hello" {
		t.Errorf("blob = %q, %v", data, err)
	}

	staged, err := r.stagedFiles()
	if err != nil {
		t.Fatalf("stagedFiles: %v", err)
	}
	if len(staged) != 0 {
		t.Errorf("staged after commit = %v, want empty", staged)
	}
}

// Test 4: files inherit from the parent commit unless restaged.
func TestCommit_InheritsParentFiles(t *testing.T) {
	r := newTestRepo(t)
	addCommit(t, r, "a.txt", "a", "add a")
	addCommit(t, r, "b.txt", "b", "add b")

	c := tip(t, r)
	if !c.ContainsName("a.txt") || !c.ContainsName("b.txt") {
		t.Errorf("tracked = %v, want a.txt and b.txt", c.Names())
	}
}

// Test 5: a staged removal drops the file from the new commit and
// clears the removal stage.
func TestCommit_Removal(t *testing.T) {
	r := newTestRepo(t)
	addCommit(t, r, "a.txt", "a", "add a")
	addCommit(t, r, "b.txt", "b", "add b")

	if err := r.Rm("a.txt"); err != nil {
		t.Fatalf("Rm: %v", err)
	}
	if _, err := r.Commit("drop a"); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	c := tip(t, r)
	if c.ContainsName("a.txt") {
		t.Error("a.txt still tracked after removal commit")
	}
	if !c.ContainsName("b.txt") {
		t.Error("b.txt lost")
	}
	b, err := r.currentBranch()
	if err != nil {
		t.Fatalf("currentBranch: %v", err)
	}
	if len(b.Removals) != 0 {
		t.Errorf("removals after commit = %v, want empty", b.Removals)
	}
}

// Test 6: identical content under two names shares one blob but stays
// two tracked entries.
func TestCommit_SameContentTwoNames(t *testing.T) {
	r := newTestRepo(t)
	writeWorkFile(t, r, "a.txt", "same")
	writeWorkFile(t, r, "b.txt", "same")
	if err := r.Add("a.txt"); err != nil {
		t.Fatalf("Add a: %v", err)
	}
	if err := r.Add("b.txt"); err != nil {
		t.Fatalf("Add b: %v", err)
	}
	if _, err := r.Commit("both"); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	c := tip(t, r)
	ea, _ := c.EntryFor("a.txt")
	eb, _ := c.EntryFor("b.txt")
	if ea.Blob() != eb.Blob() {
		t.Errorf("blobs differ: %s vs %s", ea.Blob(), eb.Blob())
	}
	if ea == eb {
		t.Error("entries should differ by name")
	}
}

// Test 7: commits stay readable by abbreviated id.
func TestCommit_ResolveByPrefix(t *testing.T) {
	r := newTestRepo(t)
	h := addCommit(t, r, "a.txt", "hello", "add a")

	c, err := r.resolveCommit(string(h[:8]))
	if err != nil {
		t.Fatalf("resolveCommit: %v", err)
	}
	if c.ID != h {
		t.Errorf("resolved %s, want %s", c.ID, h)
	}
	if _, err := r.resolveCommit("ffffffffff"); !errors.Is(err, ErrNoSuchCommit) {
		t.Errorf("resolve unknown err = %v, want ErrNoSuchCommit", err)
	}
}
