package transform

import (
	"github.com/codeninja55/dcmfx/dicom"
	"github.com/codeninja55/dcmfx/dicom/tag"
)

// KeepFunc decides whether the element at path/t should be kept. path is
// the chain of enclosing sequence tags (root-to-leaf); item position within
// a sequence is not tracked, so a predicate cannot distinguish "item 0 of
// SQ X" from "item 1 of SQ X" - only the tag chain.
type KeepFunc func(path []tag.Tag, t tag.Tag) bool

type filterFrame struct {
	seqTag tag.Tag
	skip   bool
}

// Filter drops data elements a KeepFunc rejects, including their entire
// value - for a sequence or encapsulated pixel data element, everything
// nested underneath it. Memory use is O(nesting depth), never O(data set
// size): a dropped element's bytes are never buffered, just consumed and
// discarded token by token.
type Filter struct {
	keep   KeepFunc
	frames []filterFrame
	// skipPlain is set while swallowing a plain (non-sequence) element's
	// value bytes after its header was rejected.
	skipPlain bool
}

// NewFilter returns a Filter that keeps exactly the elements keep accepts.
func NewFilter(keep KeepFunc) *Filter {
	return &Filter{keep: keep, frames: []filterFrame{{}}}
}

// ByTag returns a KeepFunc that drops elements whose tag is in drop,
// regardless of nesting depth - the common case of "remove these specific
// tags wherever they appear".
func ByTag(drop ...tag.Tag) KeepFunc {
	set := make(map[tag.Tag]bool, len(drop))
	for _, t := range drop {
		set[t] = true
	}
	return func(_ []tag.Tag, t tag.Tag) bool {
		return !set[t]
	}
}

func (f *Filter) top() filterFrame {
	return f.frames[len(f.frames)-1]
}

func (f *Filter) path() []tag.Tag {
	out := make([]tag.Tag, 0, len(f.frames)-1)
	for _, fr := range f.frames[1:] {
		out = append(out, fr.seqTag)
	}
	return out
}

func (f *Filter) Apply(tok dicom.Token) ([]dicom.Token, error) {
	switch t := tok.(type) {
	case dicom.FilePreambleAndDICMPrefixToken, dicom.FileMetaInformationToken, dicom.EndToken:
		return []dicom.Token{tok}, nil

	case dicom.DataElementHeaderToken:
		f.skipPlain = f.top().skip || !f.keep(f.path(), t.Tag)
		if f.skipPlain {
			return nil, nil
		}
		return []dicom.Token{tok}, nil

	case dicom.DataElementValueBytesToken:
		if f.skipPlain || f.top().skip {
			return nil, nil
		}
		return []dicom.Token{tok}, nil

	case dicom.SequenceStartToken:
		f.skipPlain = false
		skip := f.top().skip || !f.keep(f.path(), t.Tag)
		f.frames = append(f.frames, filterFrame{seqTag: t.Tag, skip: skip})
		if skip {
			return nil, nil
		}
		return []dicom.Token{tok}, nil

	case dicom.SequenceItemStartToken, dicom.PixelDataItemToken:
		if f.top().skip {
			return nil, nil
		}
		return []dicom.Token{tok}, nil

	case dicom.SequenceItemDelimiterToken:
		if f.top().skip {
			return nil, nil
		}
		return []dicom.Token{tok}, nil

	case dicom.SequenceDelimiterToken:
		fr := f.top()
		f.frames = f.frames[:len(f.frames)-1]
		if fr.skip {
			return nil, nil
		}
		return []dicom.Token{tok}, nil

	default:
		return []dicom.Token{tok}, nil
	}
}
