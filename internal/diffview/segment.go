package diffview

import (
	"fmt"
	"strings"
)

// Kind classifies a diff segment or a rendered line.
type Kind int

const (
	Unchanged Kind = iota
	Added
	Removed
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case Unchanged:
		return "unchanged"
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Changed reports whether the kind is Added or Removed.
func (k Kind) Changed() bool {
	return k == Added || k == Removed
}

// mustKnow panics on a kind outside the closed set. Segments come from a
// trusted differ, so an unknown kind is a programming error.
func (k Kind) mustKnow() Kind {
	switch k {
	case Unchanged, Added, Removed:
		return k
	}
	panic(fmt.Sprintf("diffview: unknown segment kind %d", int(k)))
}

// Segment is a run of same-kind lines emitted by a line differ. Text may
// hold several newline-separated lines.
type Segment struct {
	Text string
	Kind Kind
}

// SplitLines breaks a segment's text into lines. A trailing newline does not
// produce an empty trailing line, but an unterminated final line is kept.
func SplitLines(text string) []string {
	parts := strings.Split(text, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}
