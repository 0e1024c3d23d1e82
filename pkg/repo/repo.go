package repo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/odvcencio/gitlet/internal/logging"
	"github.com/odvcencio/gitlet/pkg/object"
)

const commitCacheSize = 512

// Repo is an opened Gitlet repository. Every operation takes the handle
// explicitly; nothing is process-global.
type Repo struct {
	RootDir   string        // working directory root
	GitletDir string        // .gitlet/ directory
	Store     *object.Store // content-addressed object store
	Logger    *zap.Logger

	commits *lru.Cache[object.Hash, *object.Commit]
}

// Open opens the repository rooted at path. The working directory must
// contain .gitlet/ directly; gitlet does not search parent directories.
func Open(path string) (*Repo, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("open: abs path: %w", err)
	}

	gitletDir := filepath.Join(abs, ".gitlet")
	info, err := os.Stat(gitletDir)
	if err != nil || !info.IsDir() {
		return nil, ErrNoRepo
	}

	return newRepo(abs, gitletDir)
}

func newRepo(root, gitletDir string) (*Repo, error) {
	cache, err := lru.New[object.Hash, *object.Commit](commitCacheSize)
	if err != nil {
		return nil, fmt.Errorf("open: commit cache: %w", err)
	}

	cfg, err := loadConfig(gitletDir)
	if err != nil {
		return nil, err
	}
	logger, err := buildLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("open: logger: %w", err)
	}

	return &Repo{
		RootDir:   root,
		GitletDir: gitletDir,
		Store:     object.NewStore(gitletDir),
		Logger:    logger,
		commits:   cache,
	}, nil
}

func buildLogger(cfg *Config) (*zap.Logger, error) {
	level, file := cfg.Log.Level, cfg.Log.File
	if env := os.Getenv("GITLET_LOG"); env != "" && file == "" {
		level, file = "debug", env
	}
	if file == "" {
		return logging.Nop(), nil
	}
	if level == "" {
		level = "debug"
	}
	return logging.New(level, file)
}

// loadCommit reads a commit by full fingerprint, through the LRU cache.
// Commits are immutable, so cached records are shared freely.
func (r *Repo) loadCommit(h object.Hash) (*object.Commit, error) {
	if c, ok := r.commits.Get(h); ok {
		return c, nil
	}
	c, err := r.Store.ReadCommit(h)
	if err != nil {
		return nil, err
	}
	r.commits.Add(h, c)
	return c, nil
}

// resolveCommit resolves a full or partial commit id, mapping store
// lookup failures to their user-facing conditions.
func (r *Repo) resolveCommit(prefix string) (*object.Commit, error) {
	c, err := r.Store.FindCommit(prefix)
	if err != nil {
		if errors.Is(err, object.ErrNoSuchCommit) {
			return nil, ErrNoSuchCommit
		}
		if errors.Is(err, object.ErrAmbiguousCommit) {
			return nil, ErrAmbiguousCommit
		}
		return nil, err
	}
	r.commits.Add(c.ID, c)
	return c, nil
}
