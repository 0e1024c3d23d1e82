package repo

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/odvcencio/gitlet/pkg/object"
)

// Branch is a named pointer to a commit plus the removal stage owned by
// that branch, persisted as a TOML document under .gitlet/refs/<name>.
type Branch struct {
	Name     string      `toml:"name"`
	Tip      object.Hash `toml:"tip"`
	Removals []string    `toml:"removals"`
}

// StagedForRemoval reports whether name is in the branch's removal stage.
func (b *Branch) StagedForRemoval(name string) bool {
	for _, f := range b.Removals {
		if f == name {
			return true
		}
	}
	return false
}

// stageRemoval adds name to the removal stage, keeping it sorted.
func (b *Branch) stageRemoval(name string) {
	if b.StagedForRemoval(name) {
		return
	}
	b.Removals = append(b.Removals, name)
	sort.Strings(b.Removals)
}

// unstageRemoval drops name from the removal stage, reporting whether it
// was present.
func (b *Branch) unstageRemoval(name string) bool {
	for i, f := range b.Removals {
		if f == name {
			b.Removals = append(b.Removals[:i], b.Removals[i+1:]...)
			return true
		}
	}
	return false
}

func (r *Repo) refPath(name string) string {
	return filepath.Join(r.GitletDir, "refs", name)
}

func (r *Repo) headPath() string {
	return filepath.Join(r.GitletDir, "HEAD")
}

// head returns the name of the active branch.
func (r *Repo) head() (string, error) {
	data, err := os.ReadFile(r.headPath())
	if err != nil {
		return "", fmt.Errorf("read HEAD: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// setHead points HEAD at the named branch.
func (r *Repo) setHead(name string) error {
	if err := os.WriteFile(r.headPath(), []byte(name), 0o644); err != nil {
		return fmt.Errorf("write HEAD: %w", err)
	}
	return nil
}

// currentBranch loads the branch record HEAD names.
func (r *Repo) currentBranch() (*Branch, error) {
	name, err := r.head()
	if err != nil {
		return nil, err
	}
	return r.readBranch(name)
}

func (r *Repo) branchExists(name string) bool {
	info, err := os.Stat(r.refPath(name))
	return err == nil && !info.IsDir()
}

func (r *Repo) readBranch(name string) (*Branch, error) {
	data, err := os.ReadFile(r.refPath(name))
	if err != nil {
		return nil, fmt.Errorf("read branch %q: %w", name, err)
	}
	var b Branch
	if err := toml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("read branch %q: unmarshal: %w", name, err)
	}
	return &b, nil
}

// writeBranch persists a branch record atomically: temp file in refs/,
// then rename over the ref.
func (r *Repo) writeBranch(b *Branch) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(b); err != nil {
		return fmt.Errorf("write branch %q: encode: %w", b.Name, err)
	}

	refsDir := filepath.Join(r.GitletDir, "refs")
	tmp, err := os.CreateTemp(refsDir, ".ref-tmp-*")
	if err != nil {
		return fmt.Errorf("write branch %q: tmpfile: %w", b.Name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write branch %q: write: %w", b.Name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write branch %q: close: %w", b.Name, err)
	}
	if err := os.Rename(tmpName, r.refPath(b.Name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write branch %q: rename: %w", b.Name, err)
	}
	return nil
}

// listBranches returns every branch name, sorted.
func (r *Repo) listBranches() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(r.GitletDir, "refs"))
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}
