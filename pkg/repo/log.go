package repo

import (
	"fmt"
	"io"
	"strings"

	"github.com/odvcencio/gitlet/pkg/object"
)

const displayLayout = "Mon Jan 02 15:04:05 2006 -0700"

// renderCommit produces the display block for one commit: the ===
// header, its id, merge parents if any, the date line, and the message.
func renderCommit(c *object.Commit) string {
	var sb strings.Builder
	sb.WriteString("===\n")
	fmt.Fprintf(&sb, "commit %s\n", c.ID)
	if c.IsMerge() {
		fmt.Fprintf(&sb, "Merge: %s %s\n", c.Parent1[:7], c.Parent2[:7])
	}
	fmt.Fprintf(&sb, "Date: %s\n", c.DisplayTime)
	sb.WriteString(c.Message)
	sb.WriteString("\n")
	return sb.String()
}

// Log writes the history of the active branch, newest first, following
// first parents only.
func (r *Repo) Log(w io.Writer) error {
	b, err := r.currentBranch()
	if err != nil {
		return err
	}
	for id := b.Tip; id != ""; {
		c, err := r.loadCommit(id)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, renderCommit(c))
		id = c.Parent1
	}
	return nil
}

// GlobalLog writes the display block of every commit ever made, in
// reverse creation order across all branches.
func (r *Repo) GlobalLog(w io.Writer) error {
	contents, err := r.readGlobalLog()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, contents)
	return nil
}

// Find prints the ids of every commit whose message matches exactly,
// one per line.
func (r *Repo) Find(w io.Writer, message string) error {
	ids, err := r.allCommitIDs()
	if err != nil {
		return err
	}
	found := false
	for _, id := range ids {
		c, err := r.loadCommit(id)
		if err != nil {
			return err
		}
		if c.Message == message {
			fmt.Fprintln(w, id)
			found = true
		}
	}
	if !found {
		return ErrNoCommitWithMessage
	}
	return nil
}

// allCommitIDs lists every commit id recorded in the global log, newest
// first. Only lines of the form "commit <40 hex>" count; a message line
// of any other shape is skipped.
func (r *Repo) allCommitIDs() ([]object.Hash, error) {
	contents, err := r.readGlobalLog()
	if err != nil {
		return nil, err
	}
	var ids []object.Hash
	for _, line := range strings.Split(contents, "\n") {
		rest, ok := strings.CutPrefix(line, "commit ")
		if !ok || len(rest) != object.HashLength || !isHex(rest) {
			continue
		}
		ids = append(ids, object.Hash(rest))
	}
	return ids, nil
}

func isHex(s string) bool {
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
