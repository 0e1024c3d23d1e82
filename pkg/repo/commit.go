package repo

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/odvcencio/gitlet/pkg/object"
)

// Commit records the staged changes as a new commit on the active
// branch and returns its id.
func (r *Repo) Commit(message string) (object.Hash, error) {
	return r.commit(message, "", false)
}

// commit is the shared commit pathway. A merge commit passes its second
// parent and allowEmpty, since a merge records the result even when the
// staging area ended up empty.
func (r *Repo) commit(message string, mergeParent object.Hash, allowEmpty bool) (object.Hash, error) {
	staged, err := r.stagedFiles()
	if err != nil {
		return "", err
	}
	b, err := r.currentBranch()
	if err != nil {
		return "", err
	}
	if !allowEmpty && len(staged) == 0 && len(b.Removals) == 0 {
		return "", ErrNoChanges
	}
	if message == "" {
		return "", ErrEmptyMessage
	}

	parent, err := r.loadCommit(b.Tip)
	if err != nil {
		return "", err
	}
	tracked := parent.EntryMap()

	for _, name := range staged {
		data, err := os.ReadFile(r.stagingPath(name))
		if err != nil {
			return "", fmt.Errorf("commit: read staged %q: %w", name, err)
		}
		entry := object.NewEntry(object.HashBytes(data), name)
		tracked[name] = entry.Blob()
		if err := r.Store.MoveBlobFrom(r.stagingPath(name), entry); err != nil {
			return "", fmt.Errorf("commit: %w", err)
		}
	}
	for _, name := range b.Removals {
		delete(tracked, name)
	}

	now := time.Now()
	c := &object.Commit{
		Message:     message,
		Timestamp:   now.UnixMilli(),
		DisplayTime: now.Format(displayLayout),
		Parent1:     b.Tip,
		Parent2:     mergeParent,
		Entries:     object.EntriesFromMap(tracked),
	}
	id, err := r.Store.WriteCommit(c)
	if err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	r.commits.Add(id, c)

	b.Tip = id
	b.Removals = nil
	if err := r.writeBranch(b); err != nil {
		return "", err
	}
	if err := r.prependGlobalLog(c); err != nil {
		return "", err
	}

	r.Logger.Debug("created commit",
		zap.String("commit", string(id)),
		zap.String("branch", b.Name),
		zap.Int("files", len(c.Entries)))
	return id, nil
}
