package repo

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/odvcencio/gitlet/pkg/object"
)

// Init creates a fresh repository at path: the .gitlet/ layout, the
// initial commit, and a master branch pointing at it.
func Init(path string) (*Repo, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("init: abs path: %w", err)
	}

	gitletDir := filepath.Join(abs, ".gitlet")
	if info, err := os.Stat(gitletDir); err == nil && info.IsDir() {
		return nil, ErrRepoExists
	}

	for _, dir := range []string{gitletDir, filepath.Join(gitletDir, "refs"), filepath.Join(gitletDir, "staging")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("init: mkdir %s: %w", dir, err)
		}
	}

	r, err := newRepo(abs, gitletDir)
	if err != nil {
		return nil, err
	}
	if err := r.Store.Init(); err != nil {
		return nil, fmt.Errorf("init: %w", err)
	}

	initial := &object.Commit{
		Message:     "initial commit",
		Timestamp:   0,
		DisplayTime: time.UnixMilli(0).Format(displayLayout),
	}
	id, err := r.Store.WriteCommit(initial)
	if err != nil {
		return nil, fmt.Errorf("init: %w", err)
	}
	if err := r.seedGlobalLog(initial); err != nil {
		return nil, err
	}

	master := &Branch{Name: "master", Tip: id}
	if err := r.writeBranch(master); err != nil {
		return nil, err
	}
	if err := r.setHead("master"); err != nil {
		return nil, err
	}

	r.Logger.Debug("repository initialized", zap.String("commit", string(id)))
	return r, nil
}
