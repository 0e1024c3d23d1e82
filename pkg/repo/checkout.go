package repo

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/odvcencio/gitlet/pkg/object"
)

// CheckoutFile restores a file from the active branch's tip.
func (r *Repo) CheckoutFile(name string) error {
	b, err := r.currentBranch()
	if err != nil {
		return err
	}
	tip, err := r.loadCommit(b.Tip)
	if err != nil {
		return err
	}
	return r.restoreFile(tip, name)
}

// CheckoutFileAt restores a file from the commit named by a full or
// abbreviated id.
func (r *Repo) CheckoutFileAt(prefix, name string) error {
	c, err := r.resolveCommit(prefix)
	if err != nil {
		return err
	}
	return r.restoreFile(c, name)
}

// CheckoutBranch switches the working tree to the named branch.
func (r *Repo) CheckoutBranch(name string) error {
	cur, err := r.head()
	if err != nil {
		return err
	}
	if name == cur {
		return ErrSameBranch
	}
	if !r.branchExists(name) {
		return ErrNoSuchBranch
	}
	if err := r.untrackedCheck(); err != nil {
		return err
	}

	target, err := r.readBranch(name)
	if err != nil {
		return err
	}
	tip, err := r.loadCommit(target.Tip)
	if err != nil {
		return err
	}
	if err := r.setHead(name); err != nil {
		return err
	}
	if err := r.materialize(tip); err != nil {
		return err
	}
	r.Logger.Debug("checked out branch", zap.String("branch", name), zap.String("tip", string(target.Tip)))
	return nil
}

// restoreFile writes the commit's version of name into the working
// directory, overwriting any existing copy.
func (r *Repo) restoreFile(c *object.Commit, name string) error {
	entry, ok := c.EntryFor(name)
	if !ok {
		return ErrFileNotInCommit
	}
	if err := r.Store.CopyBlobTo(entry, filepath.Join(r.RootDir, name)); err != nil {
		return fmt.Errorf("checkout %q: %w", name, err)
	}
	return nil
}

// materialize replaces the working tree with the commit's files and
// clears the staging area.
func (r *Repo) materialize(c *object.Commit) error {
	working, err := r.workingFiles()
	if err != nil {
		return err
	}
	for _, name := range working {
		if err := os.Remove(filepath.Join(r.RootDir, name)); err != nil {
			return fmt.Errorf("checkout: remove %q: %w", name, err)
		}
	}
	for _, name := range c.Names() {
		if err := r.restoreFile(c, name); err != nil {
			return err
		}
	}
	return r.clearStaging()
}

// untrackedFiles returns working files that would be lost by a tree
// replacement: neither tracked nor staged, or staged for removal.
func (r *Repo) untrackedFiles(b *Branch, tip *object.Commit) ([]string, error) {
	working, err := r.workingFiles()
	if err != nil {
		return nil, err
	}
	var names []string
	for _, name := range working {
		staged := false
		if _, err := os.Stat(r.stagingPath(name)); err == nil {
			staged = true
		}
		if (!tip.ContainsName(name) && !staged) || b.StagedForRemoval(name) {
			names = append(names, name)
		}
	}
	return names, nil
}

// untrackedCheck fails when an untracked working file would be
// overwritten or deleted by a tree replacement.
func (r *Repo) untrackedCheck() error {
	b, err := r.currentBranch()
	if err != nil {
		return err
	}
	tip, err := r.loadCommit(b.Tip)
	if err != nil {
		return err
	}
	untracked, err := r.untrackedFiles(b, tip)
	if err != nil {
		return err
	}
	if len(untracked) > 0 {
		return ErrUntrackedInTheWay
	}
	return nil
}
