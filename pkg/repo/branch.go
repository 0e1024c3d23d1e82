package repo

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// CreateBranch makes a new branch pointing at the current tip. The
// active branch does not change.
func (r *Repo) CreateBranch(name string) error {
	if r.branchExists(name) {
		return ErrBranchExists
	}
	cur, err := r.currentBranch()
	if err != nil {
		return err
	}
	if err := r.writeBranch(&Branch{Name: name, Tip: cur.Tip}); err != nil {
		return err
	}
	r.Logger.Debug("created branch", zap.String("branch", name), zap.String("tip", string(cur.Tip)))
	return nil
}

// RemoveBranch deletes the branch pointer. Commits stay reachable
// through the global log.
func (r *Repo) RemoveBranch(name string) error {
	cur, err := r.head()
	if err != nil {
		return err
	}
	if name == cur {
		return ErrRemoveCurrent
	}
	if !r.branchExists(name) {
		return ErrBranchMissing
	}
	if err := os.Remove(r.refPath(name)); err != nil {
		return fmt.Errorf("rm-branch %q: %w", name, err)
	}
	return nil
}
