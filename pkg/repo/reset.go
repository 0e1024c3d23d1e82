package repo

import (
	"go.uber.org/zap"
)

// Reset moves the active branch to the commit named by a full or
// abbreviated id and replaces the working tree with its files.
func (r *Repo) Reset(prefix string) error {
	if err := r.untrackedCheck(); err != nil {
		return err
	}
	c, err := r.resolveCommit(prefix)
	if err != nil {
		return err
	}

	b, err := r.currentBranch()
	if err != nil {
		return err
	}
	b.Tip = c.ID
	if err := r.writeBranch(b); err != nil {
		return err
	}
	if err := r.materialize(c); err != nil {
		return err
	}
	r.Logger.Debug("reset branch", zap.String("branch", b.Name), zap.String("tip", string(c.ID)))
	return nil
}
