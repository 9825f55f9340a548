package p10read

import (
	"fmt"

	"github.com/codeninja55/dcmfx/dicom"
	"github.com/codeninja55/dcmfx/dicom/dcmerror"
	"github.com/codeninja55/dcmfx/dicom/tag"
	"github.com/codeninja55/dcmfx/dicom/vr"
)

var (
	itemTag      = tag.New(0xFFFE, 0xE000)
	itemDelimTag = tag.New(0xFFFE, 0xE00D)
	seqDelimTag  = tag.New(0xFFFE, 0xE0DD)
)

// readDataSetStep emits exactly one token from the main data set (or a
// nested item / pixel data fragment stream), or blocks on DataRequired.
func (r *Reader) readDataSetStep() (dicom.Token, error) {
	if r.pendingValueRemaining > 0 {
		return r.emitValueChunk()
	}

	if len(r.buf) == 0 && r.eof && r.loc.Depth() == 0 {
		return dicom.EndToken{}, nil
	}

	// A definite-length sequence or item may end without an explicit
	// delimiter in the byte stream; synthesize the matching token once the
	// declared length has been consumed.
	if r.loc.Depth() > 0 && r.loc.AtBoundary(r.offset) {
		return r.closeCurrentFrame()
	}

	if err := r.need(4); err != nil {
		return nil, err
	}
	t := r.peekTag()

	if r.loc.Depth() > 0 && r.seqKind[len(r.seqKind)-1].itemKind == itemFramePixelFragment {
		return r.readPixelDataItemHeader(t)
	}
	if r.loc.InSequence() {
		return r.readSequenceItemHeader(t)
	}
	if t.Equals(itemDelimTag) && r.loc.Depth() > 0 {
		return r.closeCurrentFrame()
	}

	return r.readElement(t)
}

// peekTag reads the 4-byte tag at the front of the buffer without
// consuming it. Callers must have already confirmed at least 4 bytes are
// available via need(4).
func (r *Reader) peekTag() tag.Tag {
	group := r.order.Uint16(r.buf[0:2])
	elem := r.order.Uint16(r.buf[2:4])
	return tag.New(group, elem)
}

// closeCurrentFrame pops the location stack's current sequence or item
// frame and returns the matching delimiter token. If the bytes at the
// current offset actually are an explicit delimiter element, they are
// consumed; otherwise (a definite-length frame ending exactly at its
// declared length) the token is synthesized with no bytes consumed.
func (r *Reader) closeCurrentFrame() (dicom.Token, error) {
	wasSeq := r.loc.InSequence()

	if len(r.buf) >= 8 {
		t := r.peekTag()
		if (wasSeq && t.Equals(seqDelimTag)) || (!wasSeq && t.Equals(itemDelimTag)) {
			r.take(8) // tag + 4-byte zero length
		}
	}

	r.loc.Pop()
	r.seqKind = r.seqKind[:len(r.seqKind)-1]

	if wasSeq {
		return dicom.SequenceDelimiterToken{}, nil
	}
	return dicom.SequenceItemDelimiterToken{}, nil
}

// readSequenceItemHeader consumes an Item (FFFE,E000) or
// SequenceDelimitationItem (FFFE,E0DD) header for a plain SQ sequence.
func (r *Reader) readSequenceItemHeader(t tag.Tag) (dicom.Token, error) {
	if t.Equals(seqDelimTag) {
		return r.closeCurrentFrame()
	}
	if !t.Equals(itemTag) {
		return nil, dcmerror.New(dcmerror.TokenStreamInvalid, "read_sequence_item",
			fmt.Sprintf("expected Item or SequenceDelimitationItem, got %s", t)).WithOffset(int64(r.offset))
	}
	if err := r.need(8); err != nil {
		return nil, err
	}
	raw := r.take(8)
	length := r.order.Uint32(raw[4:8])

	r.loc.PushItem(length, r.offset)
	r.seqKind = append(r.seqKind, openSeq{itemKind: itemFrameDataSet})
	return dicom.SequenceItemStartToken{Length: length}, nil
}

// readPixelDataItemHeader consumes an Item (the Basic Offset Table, or a
// fragment) or SequenceDelimitationItem header within encapsulated pixel
// data.
func (r *Reader) readPixelDataItemHeader(t tag.Tag) (dicom.Token, error) {
	if t.Equals(seqDelimTag) {
		return r.closeCurrentFrame()
	}
	if !t.Equals(itemTag) {
		return nil, dcmerror.New(dcmerror.TokenStreamInvalid, "read_pixel_data_item",
			fmt.Sprintf("expected Item or SequenceDelimitationItem, got %s", t)).WithOffset(int64(r.offset))
	}
	if err := r.need(8); err != nil {
		return nil, err
	}
	raw := r.take(8)
	length := r.order.Uint32(raw[4:8])
	if length == dicom.LengthUndefined {
		return nil, dcmerror.New(dcmerror.MalformedData, "read_pixel_data_item", "pixel data item may not have undefined length").WithOffset(int64(r.offset))
	}
	if err := r.checkMaxToken(length); err != nil {
		return nil, err
	}
	r.pendingValueRemaining = length
	return dicom.PixelDataItemToken{Length: length}, nil
}

// readElement consumes a normal (non-item, non-delimiter) data element
// header and dispatches based on its resolved VR.
func (r *Reader) readElement(t tag.Tag) (dicom.Token, error) {
	if t.Equals(itemTag) || t.Equals(itemDelimTag) || t.Equals(seqDelimTag) {
		return nil, dcmerror.New(dcmerror.TokenStreamInvalid, "read_element",
			fmt.Sprintf("unexpected item/delimiter tag %s outside a sequence", t)).WithOffset(int64(r.offset))
	}

	useExplicit := r.explicitVR && !r.loc.ForceImplicitVR()

	var elemVR vr.VR
	var length uint32
	var headerLen int
	var err error

	if useExplicit {
		elemVR, length, headerLen, err = r.peekExplicitHeader(t)
	} else {
		elemVR, length, headerLen, err = r.peekImplicitHeader(t)
	}
	if err != nil {
		return nil, err
	}
	r.take(headerLen)

	if elemVR.IsSequence() || (length == dicom.LengthUndefined && elemVR.IsEncapsulatable()) {
		r.loc.PushSequence(t, elemVR, length, r.offset)
		isPixelData := !elemVR.IsSequence()
		kind := openSeq{pixelData: isPixelData}
		if isPixelData {
			kind.itemKind = itemFramePixelFragment
		}
		r.seqKind = append(r.seqKind, kind)
		return dicom.SequenceStartToken{Tag: t, VR: elemVR, Length: length}, nil
	}

	if length == dicom.LengthUndefined {
		return nil, dcmerror.New(dcmerror.MalformedData, "read_element",
			fmt.Sprintf("element %s VR %s may not have undefined length", t, elemVR)).WithOffset(int64(r.offset))
	}

	if err := r.checkMaxToken(length); err != nil {
		return nil, err
	}

	r.trackClarifyingElement(t, elemVR, length)
	r.pendingValueRemaining = length
	return dicom.DataElementHeaderToken{Tag: t, VR: elemVR, Length: length}, nil
}

// checkMaxToken enforces the configured memory bound on a single element's
// (or pixel data fragment's) declared length.
func (r *Reader) checkMaxToken(length uint32) error {
	if r.cfg.MaxTokenSize > 0 && length > r.cfg.MaxTokenSize {
		return dcmerror.New(dcmerror.MaximumExceeded, "read_element",
			fmt.Sprintf("value length %d exceeds configured maximum %d", length, r.cfg.MaxTokenSize))
	}
	return nil
}

// peekExplicitHeader parses an Explicit VR element header (tag already
// consumed into t) without consuming any bytes. Returns the header's total
// length in bytes including the already-accounted-for 4-byte tag.
func (r *Reader) peekExplicitHeader(t tag.Tag) (vr.VR, uint32, int, error) {
	if err := r.need(6); err != nil {
		return 0, 0, 0, err
	}
	vrStr := string(r.buf[4:6])
	elemVR, ok := tryParseVR(vrStr)
	if !ok {
		if !r.cfg.AllowInvalidVR {
			return 0, 0, 0, dcmerror.New(dcmerror.MalformedData, "read_element",
				fmt.Sprintf("invalid VR bytes %q for tag %s", vrStr, t)).WithOffset(int64(r.offset))
		}
		elemVR = vr.Unknown
	}

	if elemVR.UsesExplicitLength32() {
		if err := r.need(12); err != nil {
			return 0, 0, 0, err
		}
		length := r.order.Uint32(r.buf[8:12])
		return elemVR, length, 12, nil
	}

	length16 := r.order.Uint16(r.buf[6:8])
	return elemVR, uint32(length16), 8, nil
}

// peekImplicitHeader parses an Implicit VR element header (tag already
// consumed into t), resolving the VR from the tag dictionary (applying
// ambiguous-VR disambiguation via the location stack).
func (r *Reader) peekImplicitHeader(t tag.Tag) (vr.VR, uint32, int, error) {
	if err := r.need(8); err != nil {
		return 0, 0, 0, err
	}
	length := r.order.Uint32(r.buf[4:8])

	candidates := candidateVRs(t)
	elemVR := r.loc.ResolveAmbiguousVR(t, candidates)
	return elemVR, length, 8, nil
}

// candidateVRs returns the dictionary VR list for t, defaulting to UN for
// tags with no dictionary entry (odd-numbered private data elements, or
// tags this package's curated dictionary does not carry).
func candidateVRs(t tag.Tag) []vr.VR {
	if info, err := tag.Find(t); err == nil && len(info.VRs) > 0 {
		return info.VRs
	}
	return []vr.VR{vr.Unknown}
}

func tryParseVR(s string) (vr.VR, bool) {
	v, err := vr.Parse(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

// emitValueChunk emits one DataElementValueBytesToken, bounded by the
// reader's configured maximum token size, for the value currently being
// read (a plain element's value or a pixel data fragment's bytes).
func (r *Reader) emitValueChunk() (dicom.Token, error) {
	chunkSize := r.pendingValueRemaining
	if r.cfg.MaxTokenSize > 0 && chunkSize > r.cfg.MaxTokenSize {
		chunkSize = r.cfg.MaxTokenSize
	}
	if err := r.need(int(chunkSize)); err != nil {
		return nil, err
	}
	data := r.take(int(chunkSize))
	r.pendingValueRemaining -= chunkSize
	final := r.pendingValueRemaining == 0
	// Odd-length values are padded by the writer to keep elements even
	// length; the padding byte travels as ordinary value bytes and is
	// trimmed by whoever decodes the typed value (p10build), not here.
	return dicom.DataElementValueBytesToken{Data: append([]byte(nil), data...), Final: final}, nil
}

// trackClarifyingElement feeds a handful of well-known elements into the
// location stack as they stream past, so later ambiguous-VR elements in the
// same scope (PixelRepresentation -> SmallestImagePixelValue, etc.) resolve
// correctly even though the reader never materializes a full DataSet.
func (r *Reader) trackClarifyingElement(t tag.Tag, elemVR vr.VR, length uint32) {
	if t.Equals(tag.PixelRepresentation) && length == 2 && len(r.buf) >= 2 {
		r.loc.SetPixelRepresentation(r.order.Uint16(r.buf[:2]))
	}
	if t.Equals(tag.WaveformBitsAllocated) && length == 2 && len(r.buf) >= 2 {
		r.loc.SetWaveformBitsAllocated(r.order.Uint16(r.buf[:2]))
	}
	if t.IsPrivate() && t.Element >= 0x10 && t.Element <= 0xFF && elemVR == vr.LongString && len(r.buf) >= int(length) {
		r.loc.SetPrivateCreator(t.Group, trimPad(r.buf[:length]))
	}
}

func trimPad(b []byte) string {
	s := string(b)
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == 0) {
		s = s[:len(s)-1]
	}
	return s
}
