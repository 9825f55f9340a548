package transform

import (
	"github.com/codeninja55/dcmfx/dicom"
	"github.com/codeninja55/dcmfx/dicom/element"
	"github.com/codeninja55/dcmfx/dicom/tag"
)

// Insert adds or overwrites top-level data elements in a token stream.
// Elements are only inserted at the root data set level: the standard
// requires a data set's elements to stream in ascending tag order, so
// Insert buffers root-level DataElementHeaderToken tags just long enough
// to know where each replacement's tag sorts relative to the element
// currently arriving, never buffering element values or nested sequence
// content.
type Insert struct {
	// pending holds elements not yet emitted, sorted ascending by tag.
	pending []*element.Element
	depth   int
	// replacing is set while swallowing the value/subtree of a root
	// element whose tag is being overwritten by one of pending.
	replacing bool
}

// NewInsert returns an Insert that adds or overwrites the given elements at
// the root of the data set.
func NewInsert(elements ...*element.Element) *Insert {
	ins := &Insert{pending: append([]*element.Element(nil), elements...)}
	sortElements(ins.pending)
	return ins
}

func sortElements(els []*element.Element) {
	for i := 1; i < len(els); i++ {
		for j := i; j > 0 && els[j].Tag().Compare(els[j-1].Tag()) < 0; j-- {
			els[j], els[j-1] = els[j-1], els[j]
		}
	}
}

func (ins *Insert) Apply(tok dicom.Token) ([]dicom.Token, error) {
	switch t := tok.(type) {
	case dicom.FilePreambleAndDICMPrefixToken, dicom.FileMetaInformationToken:
		return []dicom.Token{tok}, nil

	case dicom.EndToken:
		out := ins.flushAll()
		out = append(out, tok)
		return out, nil

	case dicom.DataElementHeaderToken:
		if ins.depth > 0 {
			if ins.replacing {
				return nil, nil
			}
			return []dicom.Token{tok}, nil
		}
		var out []dicom.Token
		out = append(out, ins.flushBefore(t.Tag)...)
		if ins.popReplacement(t.Tag) != nil {
			ins.replacing = true
			return out, nil
		}
		ins.replacing = false
		return append(out, tok), nil

	case dicom.DataElementValueBytesToken:
		if ins.replacing {
			return nil, nil
		}
		return []dicom.Token{tok}, nil

	case dicom.SequenceStartToken:
		var out []dicom.Token
		if ins.depth == 0 {
			out = append(out, ins.flushBefore(t.Tag)...)
			ins.replacing = ins.popReplacement(t.Tag) != nil
		}
		ins.depth++
		if ins.replacing {
			return out, nil
		}
		return append(out, tok), nil

	case dicom.SequenceDelimiterToken:
		ins.depth--
		if ins.replacing {
			if ins.depth == 0 {
				ins.replacing = false
			}
			return nil, nil
		}
		return []dicom.Token{tok}, nil

	case dicom.SequenceItemStartToken, dicom.SequenceItemDelimiterToken, dicom.PixelDataItemToken:
		if ins.replacing {
			return nil, nil
		}
		return []dicom.Token{tok}, nil

	default:
		return []dicom.Token{tok}, nil
	}
}

// popReplacement removes and returns the pending element for tag t, if any.
func (ins *Insert) popReplacement(t tag.Tag) *element.Element {
	for i, el := range ins.pending {
		if el.Tag().Equals(t) {
			ins.pending = append(ins.pending[:i], ins.pending[i+1:]...)
			return el
		}
	}
	return nil
}

// flushBefore emits every still-pending element whose tag sorts before t,
// as a fresh header+value token pair each, since they have no counterpart
// left in the upstream to replace.
func (ins *Insert) flushBefore(t tag.Tag) []dicom.Token {
	var out []dicom.Token
	for len(ins.pending) > 0 && ins.pending[0].Tag().Compare(t) < 0 {
		out = append(out, elementTokens(ins.pending[0])...)
		ins.pending = ins.pending[1:]
	}
	return out
}

// flushAll emits every remaining pending element, for the case where
// Insert's new tags all sort after the last element the upstream produced.
func (ins *Insert) flushAll() []dicom.Token {
	var out []dicom.Token
	for _, el := range ins.pending {
		out = append(out, elementTokens(el)...)
	}
	ins.pending = nil
	return out
}

func elementTokens(el *element.Element) []dicom.Token {
	data := el.Value().Bytes()
	return []dicom.Token{
		dicom.DataElementHeaderToken{Tag: el.Tag(), VR: el.VR(), Length: uint32(len(data))},
		dicom.DataElementValueBytesToken{Data: data, Final: true},
	}
}
