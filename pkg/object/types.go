package object

import "sort"

// Hash is a 40-character hex-encoded SHA-1 digest.
type Hash string

const (
	// HashLength is the length of a hex-encoded fingerprint.
	HashLength = 40
	// CommitNameLength is the object filename length of a commit record:
	// a full fingerprint minus the two characters consumed by the bucket.
	// Blob filenames carry the original filename appended and are always
	// longer, which is how the two kinds share one namespace.
	CommitNameLength = HashLength - 2
)

// Entry is one tracked file of a commit: the blob fingerprint with the
// original filename appended. Encoding both into one string makes
// "same name with same content" a single string equality.
type Entry string

// NewEntry builds an Entry from a blob fingerprint and a filename.
func NewEntry(blob Hash, name string) Entry {
	return Entry(string(blob) + name)
}

// Blob returns the fingerprint half of the entry.
func (e Entry) Blob() Hash {
	return Hash(e[:HashLength])
}

// Name returns the original filename half of the entry.
func (e Entry) Name() string {
	return string(e[HashLength:])
}

// Commit is an immutable node of the commit DAG.
type Commit struct {
	Message     string
	Timestamp   int64  // milliseconds since epoch
	DisplayTime string // pre-rendered timestamp for log output
	Parent1     Hash   // empty for the initial commit
	Parent2     Hash   // set only on merge commits
	Entries     []Entry

	// ID is the fingerprint of the serialized record. Set when the
	// commit is stored or loaded; never part of the serialized form.
	ID Hash
}

// IsMerge reports whether the commit has a second parent.
func (c *Commit) IsMerge() bool {
	return c.Parent2 != ""
}

// Names returns the tracked filenames in lexicographic order.
func (c *Commit) Names() []string {
	names := make([]string, 0, len(c.Entries))
	for _, e := range c.Entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// ContainsName reports whether the commit tracks a file with this name,
// at any content.
func (c *Commit) ContainsName(name string) bool {
	_, ok := c.EntryFor(name)
	return ok
}

// ContainsEntry reports whether the commit tracks this exact
// (fingerprint, filename) entry.
func (c *Commit) ContainsEntry(entry Entry) bool {
	for _, e := range c.Entries {
		if e == entry {
			return true
		}
	}
	return false
}

// EntryFor returns the tracked entry for a filename, if any.
func (c *Commit) EntryFor(name string) (Entry, bool) {
	for _, e := range c.Entries {
		if e.Name() == name {
			return e, true
		}
	}
	return "", false
}

// EntryMap returns the tracked set as a filename-to-fingerprint mapping.
// Used when deriving a child commit's tracked set from its parent's.
func (c *Commit) EntryMap() map[string]Hash {
	m := make(map[string]Hash, len(c.Entries))
	for _, e := range c.Entries {
		m[e.Name()] = e.Blob()
	}
	return m
}

// EntriesFromMap converts a filename-to-fingerprint mapping back into a
// sorted entry list.
func EntriesFromMap(m map[string]Hash) []Entry {
	entries := make([]Entry, 0, len(m))
	for name, blob := range m {
		entries = append(entries, NewEntry(blob, name))
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i] < entries[j] })
	return entries
}
