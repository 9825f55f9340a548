// Package locstack implements the location stack the P10 reader consults
// while streaming tokens: it tracks how deeply nested the current data
// element is within sequences and items, the data set(s) that are
// currently open, the Specific Character Set in effect at each nesting
// level, and the small set of "clarifying" elements (PixelRepresentation,
// WaveformBitsAllocated, and private creators) needed to disambiguate a VR
// that Explicit VR alone does not pin down.
package locstack

import (
	"github.com/codeninja55/dcmfx/dicom/tag"
	"github.com/codeninja55/dcmfx/dicom/vr"
)

// EntryKind distinguishes the three levels of nesting a location stack
// frame can represent.
type EntryKind int

const (
	// RootEntry is the single, permanent bottom frame for the main data set.
	RootEntry EntryKind = iota
	// SequenceEntry is pushed when a SequenceStart token opens an SQ (or
	// encapsulated pixel data) element.
	SequenceEntry
	// ItemEntry is pushed when a SequenceItemStart token opens one item of
	// the enclosing sequence.
	ItemEntry
)

// entry is one frame of the stack.
type entry struct {
	kind EntryKind
	tag  tag.Tag
	vr   vr.VR
	// endsAt is the stream byte offset at which a definite-length
	// sequence/item ends, so the reader can synthesize the matching
	// delimiter token without relying on an explicit one being present.
	// Unused for undefined-length frames, which are tracked instead by
	// explicit delimiter tokens.
	endsAt          uint64
	undefinedLength bool

	characterSet []string
	// forceImplicitVR is set on a frame opened by a UN element with an
	// undefined length (DICOM CP-246): its nested content is decoded as
	// Implicit VR Little Endian regardless of the stream's transfer syntax,
	// since the true VR of its contents could not be determined.
	forceImplicitVR bool

	pixelRepresentation   *uint16
	waveformBitsAllocated *uint16
	privateCreators       map[uint16]string
}

// Stack is the location stack for one P10 instance being read.
type Stack struct {
	frames []entry
}

// New returns a Stack containing only the root frame.
func New() *Stack {
	return &Stack{frames: []entry{{kind: RootEntry}}}
}

// Depth returns the sequence/item nesting depth, 0 at the root data set.
func (s *Stack) Depth() int {
	return len(s.frames) - 1
}

// PushSequence opens a new sequence frame for the SQ (or encapsulated
// pixel data OB/OW/UN) element t, inheriting the enclosing frame's
// character set and forced-implicit-VR state.
func (s *Stack) PushSequence(t tag.Tag, elemVR vr.VR, length uint32, streamOffset uint64) {
	parent := s.top()
	s.frames = append(s.frames, entry{
		kind:            SequenceEntry,
		tag:             t,
		vr:              elemVR,
		endsAt:          streamOffset + uint64(length),
		undefinedLength: length == 0xFFFFFFFF,
		characterSet:    parent.characterSet,
		forceImplicitVR: parent.forceImplicitVR || (elemVR == vr.Unknown && length == 0xFFFFFFFF),
	})
}

// PushItem opens a new item frame within the currently open sequence.
func (s *Stack) PushItem(length uint32, streamOffset uint64) {
	parent := s.top()
	s.frames = append(s.frames, entry{
		kind:            ItemEntry,
		endsAt:          streamOffset + uint64(length),
		undefinedLength: length == 0xFFFFFFFF,
		characterSet:    parent.characterSet,
		forceImplicitVR: parent.forceImplicitVR,
	})
}

// Pop closes the most recently opened frame (sequence or item). Popping
// the root frame is a no-op: callers should check Depth() > 0 first if
// they need to detect an unbalanced delimiter.
func (s *Stack) Pop() {
	if len(s.frames) <= 1 {
		return
	}
	s.frames = s.frames[:len(s.frames)-1]
}

// top returns the current (innermost) frame.
func (s *Stack) top() *entry {
	return &s.frames[len(s.frames)-1]
}

// AtBoundary returns true if streamOffset has reached or passed the
// definite length end of the current frame, meaning the reader should
// synthesize the matching delimiter instead of waiting for an explicit one.
func (s *Stack) AtBoundary(streamOffset uint64) bool {
	f := s.top()
	if f.kind == RootEntry || f.undefinedLength {
		return false
	}
	return streamOffset >= f.endsAt
}

// InSequence returns true if the current frame is a sequence (not an item
// or the root), i.e. the next token may only be a SequenceItemStart or the
// sequence's delimiter.
func (s *Stack) InSequence() bool {
	return s.top().kind == SequenceEntry
}

// ForceImplicitVR returns true if the current frame's contents must be
// decoded as Implicit VR Little Endian per CP-246, regardless of the
// stream's transfer syntax.
func (s *Stack) ForceImplicitVR() bool {
	return s.top().forceImplicitVR
}

// SetCharacterSet records the Specific Character Set (0008,0005) value in
// effect for the current frame and its descendants.
func (s *Stack) SetCharacterSet(values []string) {
	cp := make([]string, len(values))
	copy(cp, values)
	s.top().characterSet = cp
}

// CharacterSet returns the Specific Character Set value in effect for the
// current frame, inherited from its ancestors if never set locally.
func (s *Stack) CharacterSet() []string {
	return s.top().characterSet
}

// SetPixelRepresentation records the current frame's Pixel Representation
// (0028,0103) value (0 = unsigned, 1 = 2's complement signed), used to
// resolve the US/SS ambiguity on SmallestImagePixelValue, LargestImagePixelValue,
// and PixelPaddingValue.
func (s *Stack) SetPixelRepresentation(v uint16) {
	s.top().pixelRepresentation = &v
}

// SetWaveformBitsAllocated records the current frame's Waveform Bits
// Allocated (003A,021A) value, used to resolve the OB/OW ambiguity on
// WaveformData.
func (s *Stack) SetWaveformBitsAllocated(v uint16) {
	s.top().waveformBitsAllocated = &v
}

// SetPrivateCreator records the LO value of a private creator element
// (gggg,00xx where xx is 10-FF) so later private data elements in the same
// group can report a meaningful Info even without a vendor dictionary.
func (s *Stack) SetPrivateCreator(group uint16, creator string) {
	f := s.top()
	if f.privateCreators == nil {
		f.privateCreators = make(map[uint16]string)
	}
	f.privateCreators[group] = creator
}

// PrivateCreator returns the creator string registered for group, if any.
func (s *Stack) PrivateCreator(group uint16) (string, bool) {
	f := s.top()
	if f.privateCreators == nil {
		return "", false
	}
	c, ok := f.privateCreators[group]
	return c, ok
}

// ResolveAmbiguousVR applies the clarifying elements captured at the
// current nesting level to pick a concrete VR for a data element declared
// with one of DICOM's ambiguous VR lists (e.g. "US or SS"), per PS3.5
// Section 6.2.2. candidates lists the VRs the dictionary allows for t, in
// the standard's preferred order; the first candidate is returned unchanged
// if no clarifying element resolves the ambiguity.
func (s *Stack) ResolveAmbiguousVR(t tag.Tag, candidates []vr.VR) vr.VR {
	if len(candidates) == 1 {
		return candidates[0]
	}
	f := s.top()

	switch t {
	case tag.SmallestImagePixelValue, tag.LargestImagePixelValue, tag.PixelPaddingValue:
		if f.pixelRepresentation != nil && *f.pixelRepresentation == 1 {
			return vr.SignedShort
		}
		return vr.UnsignedShort
	case tag.OverlayData:
		return vr.OtherWord
	}

	// WaveformData (003A,1000) is not in the curated tag dictionary yet;
	// resolve it by group/element directly so the rule is still exercised.
	if t.Group == 0x003A && t.Element == 0x1000 {
		if f.waveformBitsAllocated != nil && *f.waveformBitsAllocated == 8 {
			return vr.OtherByte
		}
		return vr.OtherWord
	}

	if t.IsPrivate() && t.Element >= 0x1000 {
		// Private data element: without a vendor dictionary the true VR
		// cannot be known, so it is always decoded as UN per PS3.5 6.2.2.
		return vr.Unknown
	}

	return candidates[0]
}
