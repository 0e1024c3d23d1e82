package repo

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/odvcencio/gitlet/pkg/object"
)

// Status writes the five status sections: branches, staged files,
// removed files, unstaged modifications, and untracked files.
func (r *Repo) Status(w io.Writer) error {
	b, err := r.currentBranch()
	if err != nil {
		return err
	}
	tip, err := r.loadCommit(b.Tip)
	if err != nil {
		return err
	}

	branches, err := r.listBranches()
	if err != nil {
		return err
	}
	staged, err := r.stagedFiles()
	if err != nil {
		return err
	}
	working, err := r.workingFiles()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "=== Branches ===")
	for _, name := range branches {
		if name == b.Name {
			fmt.Fprintf(w, "*%s\n", name)
		} else {
			fmt.Fprintln(w, name)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "=== Staged Files ===")
	for _, name := range staged {
		fmt.Fprintln(w, name)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "=== Removed Files ===")
	for _, name := range b.Removals {
		fmt.Fprintln(w, name)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "=== Modifications Not Staged For Commit ===")
	if err := r.writeModifications(w, b, tip, staged, working); err != nil {
		return err
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "=== Untracked Files ===")
	untracked, err := r.untrackedFiles(b, tip)
	if err != nil {
		return err
	}
	for _, name := range untracked {
		fmt.Fprintln(w, name)
	}
	fmt.Fprintln(w)

	return nil
}

// writeModifications reports files whose working state diverged from
// what a commit would record: modified copies first, then staged files
// deleted from the working tree, then tracked files deleted without rm.
func (r *Repo) writeModifications(w io.Writer, b *Branch, tip *object.Commit, staged, working []string) error {
	stagedSet := make(map[string]bool, len(staged))
	for _, name := range staged {
		stagedSet[name] = true
	}
	workingSet := make(map[string]bool, len(working))
	for _, name := range working {
		workingSet[name] = true
	}

	for _, name := range working {
		data, err := os.ReadFile(filepath.Join(r.RootDir, name))
		if err != nil {
			return fmt.Errorf("status: read %q: %w", name, err)
		}
		switch {
		case stagedSet[name]:
			stagedData, err := os.ReadFile(r.stagingPath(name))
			if err != nil {
				return fmt.Errorf("status: read staged %q: %w", name, err)
			}
			if !bytes.Equal(data, stagedData) {
				fmt.Fprintf(w, "%s (modified)\n", name)
			}
		case tip.ContainsName(name) && !b.StagedForRemoval(name):
			if !tip.ContainsEntry(object.NewEntry(object.HashBytes(data), name)) {
				fmt.Fprintf(w, "%s (modified)\n", name)
			}
		}
	}

	for _, name := range staged {
		if !workingSet[name] {
			fmt.Fprintf(w, "%s (deleted)\n", name)
		}
	}

	for _, name := range tip.Names() {
		if !b.StagedForRemoval(name) && !stagedSet[name] && !workingSet[name] {
			fmt.Fprintf(w, "%s (deleted)\n", name)
		}
	}
	return nil
}
