package repo

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/odvcencio/gitlet/pkg/object"
)

func (r *Repo) stagingPath(name string) string {
	return filepath.Join(r.GitletDir, "staging", name)
}

// stagedFiles returns the names currently staged for addition, sorted.
func (r *Repo) stagedFiles() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(r.GitletDir, "staging"))
	if err != nil {
		return nil, fmt.Errorf("read staging: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// workingFiles returns the top-level regular files of the working
// directory, sorted. Subdirectories are not tracked.
func (r *Repo) workingFiles() ([]string, error) {
	entries, err := os.ReadDir(r.RootDir)
	if err != nil {
		return nil, fmt.Errorf("read working dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Add stages a working file for the next commit. "." stages every
// top-level file. A file identical to its tracked version is unstaged
// instead, and a pending removal of the name is cancelled either way.
func (r *Repo) Add(name string) error {
	if name == "." {
		files, err := r.workingFiles()
		if err != nil {
			return err
		}
		for _, f := range files {
			if err := r.Add(f); err != nil {
				return err
			}
		}
		return nil
	}

	data, err := os.ReadFile(filepath.Join(r.RootDir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNoSuchFile
		}
		return fmt.Errorf("add %q: %w", name, err)
	}

	b, err := r.currentBranch()
	if err != nil {
		return err
	}
	if b.unstageRemoval(name) {
		if err := r.writeBranch(b); err != nil {
			return err
		}
	}

	tip, err := r.loadCommit(b.Tip)
	if err != nil {
		return err
	}
	entry := object.NewEntry(object.HashBytes(data), name)
	if tip.ContainsEntry(entry) {
		if err := os.Remove(r.stagingPath(name)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("add %q: unstage: %w", name, err)
		}
		return nil
	}

	if err := os.WriteFile(r.stagingPath(name), data, 0o644); err != nil {
		return fmt.Errorf("add %q: stage: %w", name, err)
	}
	r.Logger.Debug("staged file", zap.String("file", name), zap.String("blob", string(entry.Blob())))
	return nil
}

// Rm unstages a file and, if the tip tracks it, stages it for removal
// and deletes the working copy.
func (r *Repo) Rm(name string) error {
	staged := true
	if err := os.Remove(r.stagingPath(name)); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("rm %q: unstage: %w", name, err)
		}
		staged = false
	}

	b, err := r.currentBranch()
	if err != nil {
		return err
	}
	tip, err := r.loadCommit(b.Tip)
	if err != nil {
		return err
	}

	if tip.ContainsName(name) {
		b.stageRemoval(name)
		if err := r.writeBranch(b); err != nil {
			return err
		}
		if err := os.Remove(filepath.Join(r.RootDir, name)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("rm %q: delete: %w", name, err)
		}
		r.Logger.Debug("staged removal", zap.String("file", name))
		return nil
	}
	if !staged {
		return ErrNoReasonToRemove
	}
	return nil
}

// clearStaging empties the staging directory.
func (r *Repo) clearStaging() error {
	files, err := r.stagedFiles()
	if err != nil {
		return err
	}
	for _, f := range files {
		if err := os.Remove(r.stagingPath(f)); err != nil {
			return fmt.Errorf("clear staging: %w", err)
		}
	}
	return nil
}
