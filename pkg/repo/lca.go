package repo

import (
	"github.com/odvcencio/gitlet/pkg/object"
)

// mergeBase finds the latest common ancestor of two tips: the first
// commit reached by a breadth-first walk from given whose id is also an
// ancestor of current. Both parents of a merge commit count.
func (r *Repo) mergeBase(curTip, givenTip object.Hash) (*object.Commit, error) {
	seen := make(map[object.Hash]bool)
	var initial object.Hash
	queue := []object.Hash{curTip}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if seen[id] {
			continue
		}
		seen[id] = true
		c, err := r.loadCommit(id)
		if err != nil {
			return nil, err
		}
		if c.Parent1 == "" {
			initial = id
		}
		if c.Parent1 != "" {
			queue = append(queue, c.Parent1)
		}
		if c.Parent2 != "" {
			queue = append(queue, c.Parent2)
		}
	}

	visited := make(map[object.Hash]bool)
	queue = []object.Hash{givenTip}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if visited[id] {
			continue
		}
		visited[id] = true
		if seen[id] {
			return r.loadCommit(id)
		}
		c, err := r.loadCommit(id)
		if err != nil {
			return nil, err
		}
		if c.Parent1 != "" {
			queue = append(queue, c.Parent1)
		}
		if c.Parent2 != "" {
			queue = append(queue, c.Parent2)
		}
	}

	// Every history descends from the same initial commit, so the walks
	// always intersect before this point; the initial commit is the
	// fallback.
	return r.loadCommit(initial)
}
