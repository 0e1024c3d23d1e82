package repo

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/odvcencio/gitlet/pkg/object"
)

// Merge folds the given branch into the active one. Clean differences
// are staged automatically; diverging edits to the same file produce a
// conflict file with both versions. A merge commit is created either
// way, unless the merge is trivial.
func (r *Repo) Merge(w io.Writer, givenName string) error {
	staged, err := r.stagedFiles()
	if err != nil {
		return err
	}
	b, err := r.currentBranch()
	if err != nil {
		return err
	}
	if len(staged) > 0 || len(b.Removals) > 0 {
		return ErrUncommittedChanges
	}
	if !r.branchExists(givenName) {
		return ErrNoSuchBranch
	}
	if givenName == b.Name {
		return ErrMergeSelf
	}
	if err := r.untrackedCheck(); err != nil {
		return err
	}

	given, err := r.readBranch(givenName)
	if err != nil {
		return err
	}
	base, err := r.mergeBase(b.Tip, given.Tip)
	if err != nil {
		return err
	}

	if base.ID == given.Tip {
		fmt.Fprintln(w, "Given branch is an ancestor of the current branch.")
		return nil
	}
	if base.ID == b.Tip {
		tip, err := r.loadCommit(given.Tip)
		if err != nil {
			return err
		}
		b.Tip = given.Tip
		if err := r.writeBranch(b); err != nil {
			return err
		}
		if err := r.materialize(tip); err != nil {
			return err
		}
		fmt.Fprintln(w, "Current branch fast-forwarded.")
		return nil
	}

	cur, err := r.loadCommit(b.Tip)
	if err != nil {
		return err
	}
	giv, err := r.loadCommit(given.Tip)
	if err != nil {
		return err
	}

	r.Logger.Debug("merging",
		zap.String("given", givenName),
		zap.String("base", string(base.ID)))

	visited := make(map[string]bool)
	conflicted := false

	if err := r.mergeGivenFiles(cur, giv, base, visited, &conflicted); err != nil {
		return err
	}
	if err := r.mergeCurrentFiles(cur, giv, base, visited, &conflicted); err != nil {
		return err
	}
	if err := r.mergeAncestorFiles(cur, giv, base, visited, &conflicted); err != nil {
		return err
	}

	if conflicted {
		fmt.Fprintln(w, "Encountered a merge conflict.")
	}
	msg := fmt.Sprintf("Merged %s into %s.", givenName, b.Name)
	if _, err := r.commit(msg, given.Tip, true); err != nil {
		return err
	}
	return nil
}

// mergeGivenFiles handles names present in the given tip: take the
// given version when the current side left the file alone, flag a
// conflict when both sides changed it differently.
func (r *Repo) mergeGivenFiles(cur, giv, base *object.Commit, visited map[string]bool, conflicted *bool) error {
	for _, name := range giv.Names() {
		if visited[name] {
			continue
		}
		gEntry, _ := giv.EntryFor(name)
		cEntry, cHas := cur.EntryFor(name)
		aEntry, aHas := base.EntryFor(name)

		switch {
		case (cHas && aHas && cEntry == aEntry) || (!cHas && !aHas):
			if err := r.restoreFile(giv, name); err != nil {
				return err
			}
			if err := r.Add(name); err != nil {
				return err
			}
			visited[name] = true
		case cHas && !aHas && gEntry != cEntry:
			if err := r.writeConflict(name, cur, giv); err != nil {
				return err
			}
			*conflicted = true
			visited[name] = true
		}
	}
	return nil
}

// mergeCurrentFiles handles names present in the current tip: drop
// files the given side deleted without touching, flag a conflict when
// the given side rewrote a file the ancestor never had.
func (r *Repo) mergeCurrentFiles(cur, giv, base *object.Commit, visited map[string]bool, conflicted *bool) error {
	for _, name := range cur.Names() {
		if visited[name] {
			continue
		}
		cEntry, _ := cur.EntryFor(name)
		gEntry, gHas := giv.EntryFor(name)
		_, aHas := base.EntryFor(name)

		switch {
		case !gHas && base.ContainsEntry(cEntry):
			if err := r.Rm(name); err != nil {
				return err
			}
			visited[name] = true
		case gHas && !aHas && gEntry != cEntry:
			if err := r.writeConflict(name, cur, giv); err != nil {
				return err
			}
			*conflicted = true
			visited[name] = true
		}
	}
	return nil
}

// mergeAncestorFiles handles names the split point tracked: any side
// that changed the file while the other deleted or also changed it
// differently is a conflict.
func (r *Repo) mergeAncestorFiles(cur, giv, base *object.Commit, visited map[string]bool, conflicted *bool) error {
	for _, name := range base.Names() {
		if visited[name] {
			continue
		}
		aEntry, _ := base.EntryFor(name)
		cEntry, cHas := cur.EntryFor(name)
		gEntry, gHas := giv.EntryFor(name)
		cExact := cHas && cEntry == aEntry
		gExact := gHas && gEntry == aEntry

		conflict := (cHas && gHas && !cExact && !gExact && cEntry != gEntry) ||
			(cHas && !gHas && !cExact) ||
			(gHas && !cHas && !gExact)
		if !conflict {
			continue
		}
		if err := r.writeConflict(name, cur, giv); err != nil {
			return err
		}
		*conflicted = true
		visited[name] = true
	}
	return nil
}

// writeConflict writes both versions of name into the working file,
// marker-delimited, and stages the result. A side that deleted the
// file contributes nothing between its markers.
func (r *Repo) writeConflict(name string, cur, giv *object.Commit) error {
	var curBody, givBody []byte
	if entry, ok := cur.EntryFor(name); ok {
		data, err := r.Store.ReadBlob(entry)
		if err != nil {
			return fmt.Errorf("merge %q: %w", name, err)
		}
		curBody = data
	}
	if entry, ok := giv.EntryFor(name); ok {
		data, err := r.Store.ReadBlob(entry)
		if err != nil {
			return fmt.Errorf("merge %q: %w", name, err)
		}
		givBody = data
	}

	var buf []byte
	buf = append(buf, "<<<<<<< HEAD\n"...)
	buf = append(buf, curBody...)
	buf = append(buf, "\n=======\n"...)
	buf = append(buf, givBody...)
	buf = append(buf, ">>>>>>>"...)

	if err := os.WriteFile(filepath.Join(r.RootDir, name), buf, 0o644); err != nil {
		return fmt.Errorf("merge %q: write conflict: %w", name, err)
	}
	return r.Add(name)
}
