package object

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoSuchCommit reports a commit lookup (full id or prefix) that
// matched nothing.
var ErrNoSuchCommit = errors.New("no commit with that id")

// ErrAmbiguousCommit reports a short prefix that matched more than one
// commit record.
var ErrAmbiguousCommit = errors.New("ambiguous commit id")

const hexDigits = "0123456789abcdef"

// Store is a content-addressed object store with a 2-character fan-out
// bucket layout: objects/ab/cdef0123... It holds both blobs and commit
// records in one namespace. Blob filenames are the fingerprint remainder
// with the original filename appended; commit filenames are exactly the
// fingerprint remainder, so the two are told apart by length.
type Store struct {
	root string
}

// NewStore creates a Store rooted at the given directory (typically
// .gitlet/). Call Init once to lay out the buckets.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// Init creates objects/ and all 256 buckets up front, so commit-time
// moves into the store never need to create directories.
func (s *Store) Init() error {
	for i := 0; i < len(hexDigits); i++ {
		for j := 0; j < len(hexDigits); j++ {
			bucket := string(hexDigits[i]) + string(hexDigits[j])
			if err := os.MkdirAll(filepath.Join(s.root, "objects", bucket), 0o755); err != nil {
				return fmt.Errorf("store init: mkdir bucket %s: %w", bucket, err)
			}
		}
	}
	return nil
}

// entryPath returns the filesystem path for a tracked-file entry. The
// first two fingerprint characters select the bucket; the remainder plus
// the original filename is the object filename.
func (s *Store) entryPath(e Entry) string {
	return filepath.Join(s.root, "objects", string(e[:2]), string(e[2:]))
}

func (s *Store) commitPath(h Hash) string {
	return filepath.Join(s.root, "objects", string(h[:2]), string(h[2:]))
}

// MoveBlobFrom moves the file at src into the store under entry.
// Overwriting an existing object is fine: same entry means same bytes.
func (s *Store) MoveBlobFrom(src string, e Entry) error {
	if err := os.Rename(src, s.entryPath(e)); err != nil {
		return fmt.Errorf("store blob %s: %w", e.Name(), err)
	}
	return nil
}

// CopyBlobTo copies the blob named by entry to the destination path,
// overwriting whatever is there.
func (s *Store) CopyBlobTo(e Entry, dest string) error {
	src, err := os.Open(s.entryPath(e))
	if err != nil {
		return fmt.Errorf("store read blob %s: %w", e.Name(), err)
	}
	defer src.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("store copy blob %s: %w", e.Name(), err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return fmt.Errorf("store copy blob %s: %w", e.Name(), err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("store copy blob %s: %w", e.Name(), err)
	}
	return nil
}

// ReadBlob returns the stored bytes of a tracked-file entry.
func (s *Store) ReadBlob(e Entry) ([]byte, error) {
	data, err := os.ReadFile(s.entryPath(e))
	if err != nil {
		return nil, fmt.Errorf("store read blob %s: %w", e.Name(), err)
	}
	return data, nil
}

// WriteCommit serializes and stores a commit record, returning its
// fingerprint. The write is atomic: temp file in the bucket, then
// rename. The commit's ID field is set on success.
func (s *Store) WriteCommit(c *Commit) (Hash, error) {
	raw := MarshalCommit(c)
	h := HashBytes(raw)

	dir := filepath.Join(s.root, "objects", string(h[:2]))
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return "", fmt.Errorf("store commit tmpfile: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("store commit write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("store commit close: %w", err)
	}
	if err := os.Rename(tmpName, s.commitPath(h)); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("store commit rename: %w", err)
	}

	c.ID = h
	return h, nil
}

// ReadCommit retrieves a commit record by its full fingerprint.
func (s *Store) ReadCommit(h Hash) (*Commit, error) {
	if len(h) != HashLength {
		return nil, ErrNoSuchCommit
	}
	raw, err := os.ReadFile(s.commitPath(h))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSuchCommit
		}
		return nil, fmt.Errorf("store read commit %s: %w", h, err)
	}
	c, err := UnmarshalCommit(raw)
	if err != nil {
		return nil, fmt.Errorf("store read commit %s: %w", h, err)
	}
	c.ID = h
	return c, nil
}

// FindCommit resolves a commit by any fingerprint prefix of length >= 2.
// The first two characters select the bucket; the remainder is matched
// against filenames of commit-record length. A prefix matching more than
// one record is ErrAmbiguousCommit.
func (s *Store) FindCommit(prefix string) (*Commit, error) {
	if len(prefix) < 2 || len(prefix) > HashLength {
		return nil, ErrNoSuchCommit
	}

	bucket := filepath.Join(s.root, "objects", prefix[:2])
	dirEntries, err := os.ReadDir(bucket)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSuchCommit
		}
		return nil, fmt.Errorf("store find commit %s: %w", prefix, err)
	}

	rest := prefix[2:]
	var match string
	for _, de := range dirEntries {
		name := de.Name()
		if len(name) != CommitNameLength || !strings.HasPrefix(name, rest) {
			continue
		}
		if match != "" {
			return nil, ErrAmbiguousCommit
		}
		match = name
	}
	if match == "" {
		return nil, ErrNoSuchCommit
	}
	return s.ReadCommit(Hash(prefix[:2] + match))
}
