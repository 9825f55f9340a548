package dicom

import (
	"github.com/codeninja55/dcmfx/dicom/tag"
	"github.com/codeninja55/dcmfx/dicom/value"
	"github.com/codeninja55/dcmfx/dicom/vr"
)

// Token is the unit of exchange between a streaming P10 reader, the token
// transforms, a writer, and the data-set builder. A conforming token stream
// for one P10 instance is:
//
//	FilePreambleAndDICMPrefix
//	FileMetaInformation
//	( DataElementHeader DataElementValueBytes+
//	| SequenceStart ( SequenceItemStart ... SequenceItemDelimiter )* SequenceDelimiter
//	| SequenceStart ( PixelDataItem DataElementValueBytes* )+ SequenceDelimiter
//	)*
//	End
//
// SequenceStart takes the place of the element header for SQ elements and
// encapsulated pixel data; no DataElementHeader precedes it. The delimiter
// tokens are present for definite-length sequences and items too: the reader
// synthesizes them once the declared length has been consumed.
//
// Every concrete token type below implements Token via an unexported marker
// method, so the set of token kinds is closed to this package.
type Token interface {
	token()
}

// FilePreambleAndDICMPrefixToken is the first token of every stream: the
// 128-byte preamble (opaque, not interpreted) followed by the "DICM" magic.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part10.html#sect_7.1
type FilePreambleAndDICMPrefixToken struct {
	Preamble [128]byte
}

func (FilePreambleAndDICMPrefixToken) token() {}

// FileMetaInformationToken carries the fully decoded File Meta Information
// group (0002,xxxx), including the Transfer Syntax UID that governs every
// token that follows it.
type FileMetaInformationToken struct {
	DataSet *DataSet
}

func (FileMetaInformationToken) token() {}

// DataElementHeaderToken announces a data element about to be read: its
// tag, VR, and the declared length of its value in bytes. A length of
// LengthUndefined means the value's end is signalled later in the stream
// (sequences and encapsulated pixel data).
type DataElementHeaderToken struct {
	Tag    tag.Tag
	VR     vr.VR
	Length uint32
}

// LengthUndefined is the DICOM sentinel value (0xFFFFFFFF) marking a data
// element or sequence item whose length is determined by a later
// delimiter token rather than stated up front.
const LengthUndefined uint32 = 0xFFFFFFFF

func (DataElementHeaderToken) token() {}

// DataElementValueBytesToken carries one chunk of a data element's value.
// A single element may be split across multiple tokens (the reader emits
// chunks bounded by its configured maximum token size); Final is true on
// the last chunk for that element.
type DataElementValueBytesToken struct {
	Data  []byte
	Final bool
}

func (DataElementValueBytesToken) token() {}

// SequenceStartToken opens a Sequence of Items (SQ) data element. VR
// distinguishes a standard SQ sequence from a UN/OB/OW element holding
// encapsulated pixel data, which uses the same item-framing but is
// represented by PixelDataItemToken instead of SequenceItemStartToken.
type SequenceStartToken struct {
	Tag    tag.Tag
	VR     vr.VR
	Length uint32
}

func (SequenceStartToken) token() {}

// SequenceDelimiterToken closes the most recently opened sequence.
type SequenceDelimiterToken struct{}

func (SequenceDelimiterToken) token() {}

// SequenceItemStartToken opens one Item within a sequence. Length is
// LengthUndefined when the item's end is instead signalled by a
// SequenceItemDelimiterToken.
type SequenceItemStartToken struct {
	Length uint32
}

func (SequenceItemStartToken) token() {}

// SequenceItemDelimiterToken closes the most recently opened item.
type SequenceItemDelimiterToken struct{}

func (SequenceItemDelimiterToken) token() {}

// PixelDataItemToken carries one fragment of encapsulated pixel data: either
// the Basic Offset Table (the first item in the sequence, may be empty) or
// a compressed frame fragment.
type PixelDataItemToken struct {
	Length uint32
}

func (PixelDataItemToken) token() {}

// EndToken is the final token of every stream, emitted once the data set
// (and, for a writer, the caller) has no more tokens to produce.
type EndToken struct{}

func (EndToken) token() {}

// valueTokenFor adapts a fully-decoded value.Value into the single
// DataElementValueBytesToken the builder and writer expect for non-sequence,
// non-encapsulated elements.
func valueTokenFor(v value.Value) DataElementValueBytesToken {
	return DataElementValueBytesToken{Data: v.Bytes(), Final: true}
}
