package dicom

import (
	"fmt"
	"strings"

	"github.com/codeninja55/dcmfx/dicom/value"
	"github.com/codeninja55/dcmfx/dicom/vr"
)

// Item is one entry of a Sequence of Items (SQ) element: a nested DataSet.
// An Item is itself a full data set and may contain further sequences,
// down to the configured maximum sequence depth.
type Item = DataSet

// SequenceValue is the value.Value implementation for SQ data elements. It
// lives in the root dicom package rather than dicom/value because an Item
// is a DataSet, and dicom/value must not import the package that imports
// it; SequenceValue satisfies value.Value structurally without either
// package needing to import the other's concrete type.
type SequenceValue struct {
	items []*Item
}

// NewSequenceValue builds a SequenceValue from the given items, in order.
func NewSequenceValue(items []*Item) *SequenceValue {
	cp := make([]*Item, len(items))
	copy(cp, items)
	return &SequenceValue{items: cp}
}

// VR always returns vr.SequenceOfItems.
func (s *SequenceValue) VR() vr.VR { return vr.SequenceOfItems }

// Items returns the sequence's items in order. The returned slice is a copy.
func (s *SequenceValue) Items() []*Item {
	out := make([]*Item, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of items in the sequence.
func (s *SequenceValue) Len() int { return len(s.items) }

// Bytes is not meaningful for a sequence value - sequences are encoded as a
// nested token/item stream, not a flat byte run - and always returns nil.
// Writers must special-case VR.IsSequence() rather than calling Bytes.
func (s *SequenceValue) Bytes() []byte { return nil }

// String renders a short summary, e.g. "Sequence of 3 item(s)".
func (s *SequenceValue) String() string {
	return fmt.Sprintf("Sequence of %d item(s)", len(s.items))
}

// Equals returns true if other is a *SequenceValue with the same items,
// compared element-by-element via DataSet equality.
func (s *SequenceValue) Equals(other value.Value) bool {
	o, ok := other.(*SequenceValue)
	if !ok || o == nil || len(o.items) != len(s.items) {
		return false
	}
	for i := range s.items {
		if !s.items[i].Equals(o.items[i]) {
			return false
		}
	}
	return true
}

// EncapsulatedPixelDataValue is the value.Value implementation for a Pixel
// Data (or Float/Double Pixel Data) element encoded with an undefined
// length, whose value is a Basic (or Extended) Offset Table followed by one
// or more compressed frame fragments rather than a plain byte run.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_A.4
type EncapsulatedPixelDataValue struct {
	vr vr.VR
	// OffsetTable holds the Basic Offset Table's byte offsets (one per
	// frame, relative to the start of the first fragment after the table
	// item), decoded from the first pixel data item. Empty if the encoder
	// left the Basic Offset Table item empty.
	OffsetTable []uint32
	// Fragments holds the compressed byte fragments after the offset
	// table item, in stream order. A frame may span more than one
	// fragment; frame boundaries are recovered from OffsetTable (or, absent
	// one, by treating each fragment as one frame).
	Fragments [][]byte
}

// NewEncapsulatedPixelDataValue builds an EncapsulatedPixelDataValue for the
// given VR (OB, OW, or UN), offset table, and fragments.
func NewEncapsulatedPixelDataValue(v vr.VR, offsetTable []uint32, fragments [][]byte) *EncapsulatedPixelDataValue {
	ot := make([]uint32, len(offsetTable))
	copy(ot, offsetTable)
	fr := make([][]byte, len(fragments))
	copy(fr, fragments)
	return &EncapsulatedPixelDataValue{vr: v, OffsetTable: ot, Fragments: fr}
}

// VR returns the element's VR (OB, OW, or UN).
func (e *EncapsulatedPixelDataValue) VR() vr.VR { return e.vr }

// Bytes is not meaningful for encapsulated pixel data and always returns
// nil; use Fragments and OffsetTable directly, or the pixel-data frame
// transform to recover per-frame byte ranges.
func (e *EncapsulatedPixelDataValue) Bytes() []byte { return nil }

// String renders a short summary.
func (e *EncapsulatedPixelDataValue) String() string {
	return fmt.Sprintf("Encapsulated pixel data: %d fragment(s), %d offset table entr(y/ies)",
		len(e.Fragments), len(e.OffsetTable))
}

// Equals returns true if other is an *EncapsulatedPixelDataValue with the
// same VR, offset table, and fragment bytes.
func (e *EncapsulatedPixelDataValue) Equals(other value.Value) bool {
	o, ok := other.(*EncapsulatedPixelDataValue)
	if !ok || o == nil || o.vr != e.vr || len(o.Fragments) != len(e.Fragments) || len(o.OffsetTable) != len(e.OffsetTable) {
		return false
	}
	for i := range e.OffsetTable {
		if e.OffsetTable[i] != o.OffsetTable[i] {
			return false
		}
	}
	for i := range e.Fragments {
		if string(e.Fragments[i]) != string(o.Fragments[i]) {
			return false
		}
	}
	return true
}

// FrameCount returns the number of frames recoverable from this value: the
// offset table's length if non-empty, otherwise the fragment count (the
// common case of one fragment per frame).
func (e *EncapsulatedPixelDataValue) FrameCount() int {
	if len(e.OffsetTable) > 0 {
		return len(e.OffsetTable)
	}
	return len(e.Fragments)
}

// joinFragmentBytes concatenates fragment byte slices for debugging/printing
// without allocating more than necessary for the common single-fragment case.
func joinFragmentBytes(fragments [][]byte) string {
	if len(fragments) == 1 {
		return string(fragments[0])
	}
	var sb strings.Builder
	for _, f := range fragments {
		sb.Write(f)
	}
	return sb.String()
}
