package dicom

import (
	"fmt"
	"strings"

	"github.com/codeninja55/dcmfx/dicom/tag"
)

// PathEntry identifies one step in a Path: either a top-level data element
// (ItemIndex unset, -1) or the Nth item (0-based) of a sequence element.
type PathEntry struct {
	Tag       tag.Tag
	ItemIndex int
}

// Path locates a data element within a (possibly nested) data set, as a
// sequence of (sequence tag, item index) steps ending in the element's own
// tag. An empty Path refers to a top-level element of the root data set.
//
// Used by error reporting (dcmerror.Error.Path is a single tag today; Path
// generalizes that to nested locations for print/filter/insert transforms
// operating below the root) and by the location stack to describe where a
// token currently sits.
type Path struct {
	entries []PathEntry
}

// NewPath returns an empty, root-level Path.
func NewPath() Path {
	return Path{}
}

// Push returns a new Path with one more (sequenceTag, itemIndex) step
// appended, for descending into a sequence item.
func (p Path) Push(sequenceTag tag.Tag, itemIndex int) Path {
	next := make([]PathEntry, len(p.entries)+1)
	copy(next, p.entries)
	next[len(p.entries)] = PathEntry{Tag: sequenceTag, ItemIndex: itemIndex}
	return Path{entries: next}
}

// Pop returns a new Path with the last step removed. Popping an empty Path
// returns an empty Path.
func (p Path) Pop() Path {
	if len(p.entries) == 0 {
		return p
	}
	return Path{entries: append([]PathEntry(nil), p.entries[:len(p.entries)-1]...)}
}

// Depth returns the sequence nesting depth (0 at the root data set).
func (p Path) Depth() int {
	return len(p.entries)
}

// WithTag returns a new Path for the element identified by t at the current
// nesting depth - i.e. the full location of a data element, as opposed to
// the sequence/item steps leading to its containing data set.
func (p Path) WithTag(t tag.Tag) Path {
	return p.Push(t, -1)
}

// String renders the path in "(gggg,eeee)[n].(gggg,eeee)" form.
func (p Path) String() string {
	var sb strings.Builder
	for i, e := range p.entries {
		if i > 0 {
			sb.WriteString(".")
		}
		sb.WriteString(e.Tag.String())
		if e.ItemIndex >= 0 {
			sb.WriteString(fmt.Sprintf("[%d]", e.ItemIndex))
		}
	}
	return sb.String()
}

// Entries returns a copy of the path's steps.
func (p Path) Entries() []PathEntry {
	out := make([]PathEntry, len(p.entries))
	copy(out, p.entries)
	return out
}
