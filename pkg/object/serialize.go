package object

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// MarshalCommit serializes a Commit to a deterministic text format:
//
//	timestamp T
//	display D
//	parent H       (absent for the initial commit)
//	merge H        (absent for non-merge commits)
//	file E         (sorted, zero or more)
//
//	<message>
//
// Commit identity is the hash of these bytes, so equal logical records
// must produce equal byte sequences. Entries are sorted on the way out.
func MarshalCommit(c *Commit) []byte {
	sorted := make([]Entry, len(c.Entries))
	copy(sorted, c.Entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "timestamp %d\n", c.Timestamp)
	fmt.Fprintf(&buf, "display %s\n", c.DisplayTime)
	if c.Parent1 != "" {
		fmt.Fprintf(&buf, "parent %s\n", string(c.Parent1))
	}
	if c.Parent2 != "" {
		fmt.Fprintf(&buf, "merge %s\n", string(c.Parent2))
	}
	for _, e := range sorted {
		fmt.Fprintf(&buf, "file %s\n", string(e))
	}
	buf.WriteByte('\n')
	buf.WriteString(c.Message)
	return buf.Bytes()
}

// UnmarshalCommit parses a Commit from its serialized form. The ID field
// is left empty; callers that know the fingerprint set it themselves.
func UnmarshalCommit(data []byte) (*Commit, error) {
	idx := bytes.Index(data, []byte("\n\n"))
	if idx < 0 {
		return nil, fmt.Errorf("unmarshal commit: missing header/message separator")
	}
	header := string(data[:idx])
	message := string(data[idx+2:])

	c := &Commit{Message: message}
	for _, line := range strings.Split(header, "\n") {
		key, val, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("unmarshal commit: malformed header line %q", line)
		}
		switch key {
		case "timestamp":
			ts, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("unmarshal commit: bad timestamp %q: %w", val, err)
			}
			c.Timestamp = ts
		case "display":
			c.DisplayTime = val
		case "parent":
			c.Parent1 = Hash(val)
		case "merge":
			c.Parent2 = Hash(val)
		case "file":
			if len(val) <= HashLength {
				return nil, fmt.Errorf("unmarshal commit: entry %q shorter than a fingerprint", val)
			}
			c.Entries = append(c.Entries, Entry(val))
		default:
			return nil, fmt.Errorf("unmarshal commit: unknown header key %q", key)
		}
	}
	return c, nil
}
