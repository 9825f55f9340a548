// Package p10write implements a push-based streaming writer for the DICOM
// Part 10 file format: the inverse of package p10read. Tokens are fed in one
// at a time via WriteToken, in the same order p10read.Reader.ReadTokens (or a
// transform pipeline reading from it) would produce them, and encoded P10
// bytes are accumulated for retrieval via TakeBytes.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part10.html
package p10write

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"

	"github.com/codeninja55/dcmfx/dicom"
	"github.com/codeninja55/dcmfx/dicom/config"
	"github.com/codeninja55/dcmfx/dicom/dcmerror"
	"github.com/codeninja55/dcmfx/dicom/tag"
	"github.com/codeninja55/dcmfx/dicom/uid"
	"github.com/codeninja55/dcmfx/dicom/vr"
)

var (
	itemTag      = tag.New(0xFFFE, 0xE000)
	itemDelimTag = tag.New(0xFFFE, 0xE00D)
	seqDelimTag  = tag.New(0xFFFE, 0xE0DD)
)

type frameKind int

const (
	frameSequence frameKind = iota
	framePixelData
)

type openFrame struct {
	kind frameKind
}

// Writer is a push-based P10 token writer, the inverse of p10read.Reader.
// It is not safe for concurrent use.
type Writer struct {
	cfg   config.WriteConfig
	ts    uid.TransferSyntax
	order binary.ByteOrder

	out  bytes.Buffer
	sink io.Writer // &out, or a flate.Writer over out once the deflated transfer syntax's File Meta has been written

	deflate *flate.Writer

	wroteFileMeta bool
	ended         bool

	frames []openFrame

	pendingHeader *dicom.DataElementHeaderToken
	pendingValue  bytes.Buffer

	pendingPixelItem bool
	pendingPixelLen  uint32
}

// NewWriter returns a Writer that encodes tokens for the given transfer
// syntax. The caller is responsible for including a matching Transfer Syntax
// UID element in the FileMetaInformationToken's DataSet; ts governs how the
// writer itself encodes the main data set (implicit/explicit VR, byte order,
// deflation), independent of what the File Meta element says.
func NewWriter(cfg config.WriteConfig, ts uid.TransferSyntax) *Writer {
	w := &Writer{cfg: cfg, ts: ts}
	if ts.LittleEndian {
		w.order = binary.LittleEndian
	} else {
		w.order = binary.BigEndian
	}
	w.sink = &w.out
	return w
}

// WriteToken encodes one token, appending the resulting bytes to the
// writer's internal output buffer (retrieved via TakeBytes).
func (w *Writer) WriteToken(tok dicom.Token) error {
	if w.ended {
		return dcmerror.New(dcmerror.WriteAfterCompletion, "write_token", "writer already reached End")
	}

	switch t := tok.(type) {
	case dicom.FilePreambleAndDICMPrefixToken:
		w.out.Write(t.Preamble[:])
		w.out.WriteString("DICM")
		return nil

	case dicom.FileMetaInformationToken:
		return w.writeFileMeta(t.DataSet)

	case dicom.DataElementHeaderToken:
		return w.onHeader(t)

	case dicom.DataElementValueBytesToken:
		return w.onValueBytes(t)

	case dicom.SequenceStartToken:
		return w.onSequenceStart(t)

	case dicom.SequenceItemStartToken:
		return w.onItemStart()

	case dicom.SequenceItemDelimiterToken:
		return w.onItemEnd()

	case dicom.SequenceDelimiterToken:
		return w.onSequenceEnd()

	case dicom.PixelDataItemToken:
		return w.onPixelDataItem(t)

	case dicom.EndToken:
		return w.onEnd()

	default:
		return dcmerror.New(dcmerror.TokenStreamInvalid, "write_token", fmt.Sprintf("unrecognized token %T", tok))
	}
}

// TakeBytes drains and returns all bytes produced so far that have not yet
// been retrieved.
func (w *Writer) TakeBytes() []byte {
	b := append([]byte(nil), w.out.Bytes()...)
	w.out.Reset()
	return b
}

func (w *Writer) onHeader(t dicom.DataElementHeaderToken) error {
	if w.pendingHeader != nil || w.pendingPixelItem {
		return dcmerror.New(dcmerror.TokenStreamInvalid, "write_token", "new element header while previous element value incomplete")
	}
	h := t
	w.pendingHeader = &h
	w.pendingValue.Reset()
	return nil
}

func (w *Writer) onValueBytes(t dicom.DataElementValueBytesToken) error {
	if w.pendingHeader == nil && !w.pendingPixelItem {
		return dcmerror.New(dcmerror.TokenStreamInvalid, "write_token", "value bytes with no open element header or pixel data item")
	}
	w.pendingValue.Write(t.Data)
	if !t.Final {
		return nil
	}

	raw := append([]byte(nil), w.pendingValue.Bytes()...)
	w.pendingValue.Reset()

	if w.pendingPixelItem {
		w.pendingPixelItem = false
		w.writeItemHeader(uint32(len(raw)))
		w.sink.Write(raw)
		return nil
	}

	h := *w.pendingHeader
	w.pendingHeader = nil
	data := reorderValueBytes(h.VR, raw, w.order)
	w.writeHeader(h.Tag, h.VR, uint32(len(data)))
	w.sink.Write(data)
	return nil
}

// onSequenceStart always encodes the sequence (or encapsulated pixel data
// element) with an undefined length terminated by a delimiter, regardless of
// what Length the token carries: computing a definite length up front would
// require buffering the whole sequence before its header could be written,
// defeating the point of a streaming writer. Readers (including this
// package's own p10read) treat undefined-length sequences identically to
// definite-length ones.
func (w *Writer) onSequenceStart(t dicom.SequenceStartToken) error {
	w.writeHeader(t.Tag, t.VR, dicom.LengthUndefined)
	kind := frameSequence
	if !t.VR.IsSequence() {
		kind = framePixelData
	}
	w.frames = append(w.frames, openFrame{kind: kind})
	return nil
}

func (w *Writer) onSequenceEnd() error {
	if len(w.frames) == 0 {
		return dcmerror.New(dcmerror.TokenStreamInvalid, "write_token", "sequence delimiter with no open sequence")
	}
	w.frames = w.frames[:len(w.frames)-1]
	w.writeDelimiter(seqDelimTag)
	return nil
}

func (w *Writer) onItemStart() error {
	if len(w.frames) == 0 || w.frames[len(w.frames)-1].kind != frameSequence {
		return dcmerror.New(dcmerror.TokenStreamInvalid, "write_token", "item start outside a plain sequence")
	}
	w.writeItemHeader(dicom.LengthUndefined)
	return nil
}

func (w *Writer) onItemEnd() error {
	if len(w.frames) == 0 || w.frames[len(w.frames)-1].kind != frameSequence {
		return dcmerror.New(dcmerror.TokenStreamInvalid, "write_token", "item delimiter outside a plain sequence")
	}
	w.writeDelimiter(itemDelimTag)
	return nil
}

func (w *Writer) onPixelDataItem(t dicom.PixelDataItemToken) error {
	if len(w.frames) == 0 || w.frames[len(w.frames)-1].kind != framePixelData {
		return dcmerror.New(dcmerror.TokenStreamInvalid, "write_token", "pixel data item outside encapsulated pixel data")
	}
	if t.Length == 0 {
		w.writeItemHeader(0)
		return nil
	}
	w.pendingPixelItem = true
	w.pendingPixelLen = t.Length
	w.pendingValue.Reset()
	return nil
}

func (w *Writer) onEnd() error {
	if w.deflate != nil {
		if err := w.deflate.Close(); err != nil {
			return dcmerror.New(dcmerror.IOFailure, "write_token", err.Error())
		}
	}
	w.ended = true
	return nil
}

func (w *Writer) writeItemHeader(length uint32) {
	var hdr [8]byte
	binary.LittleEndian.PutUint16(hdr[0:2], itemTag.Group)
	binary.LittleEndian.PutUint16(hdr[2:4], itemTag.Element)
	binary.LittleEndian.PutUint32(hdr[4:8], length)
	w.sink.Write(hdr[:])
}

func (w *Writer) writeDelimiter(t tag.Tag) {
	var hdr [8]byte
	binary.LittleEndian.PutUint16(hdr[0:2], t.Group)
	binary.LittleEndian.PutUint16(hdr[2:4], t.Element)
	// delimiter items always carry a zero length field
	w.sink.Write(hdr[:])
}

// writeHeader encodes a data element header for the main data set, per the
// writer's configured transfer syntax, to the current sink.
func (w *Writer) writeHeader(t tag.Tag, v vr.VR, length uint32) {
	b := encodeHeader(t, v, length, w.order, w.ts.ExplicitVR)
	w.sink.Write(b)
}

// encodeHeader renders one data element header (tag + optional VR +
// length field) for the given byte order and VR encoding mode.
func encodeHeader(t tag.Tag, v vr.VR, length uint32, order binary.ByteOrder, explicitVR bool) []byte {
	if !explicitVR {
		hdr := make([]byte, 8)
		order.PutUint16(hdr[0:2], t.Group)
		order.PutUint16(hdr[2:4], t.Element)
		order.PutUint32(hdr[4:8], length)
		return hdr
	}

	vrStr := v.String()
	if v.UsesExplicitLength32() {
		hdr := make([]byte, 12)
		order.PutUint16(hdr[0:2], t.Group)
		order.PutUint16(hdr[2:4], t.Element)
		hdr[4], hdr[5] = vrStr[0], vrStr[1]
		// hdr[6:8] reserved, left zero
		order.PutUint32(hdr[8:12], length)
		return hdr
	}
	hdr := make([]byte, 8)
	order.PutUint16(hdr[0:2], t.Group)
	order.PutUint16(hdr[2:4], t.Element)
	hdr[4], hdr[5] = vrStr[0], vrStr[1]
	order.PutUint16(hdr[6:8], uint16(length))
	return hdr
}

// writeFileMeta encodes the File Meta Information group, which per the
// standard is always Explicit VR Little Endian regardless of the main data
// set's transfer syntax, synthesizing the (0002,0000) group length element
// from the encoded size of everything that follows it.
func (w *Writer) writeFileMeta(ds *dicom.DataSet) error {
	if w.wroteFileMeta {
		return dcmerror.New(dcmerror.TokenStreamInvalid, "write_token", "File Meta Information written twice")
	}
	w.wroteFileMeta = true

	var body bytes.Buffer
	for _, el := range ds.Elements() {
		if el.Tag().Equals(tag.FileMetaInformationGroupLength) {
			continue
		}
		data := el.Value().Bytes()
		body.Write(encodeHeader(el.Tag(), el.VR(), uint32(len(data)), binary.LittleEndian, true))
		body.Write(data)
	}

	groupLenHdr := encodeHeader(tag.FileMetaInformationGroupLength, vr.UnsignedLong, 4, binary.LittleEndian, true)
	w.out.Write(groupLenHdr)
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(body.Len()))
	w.out.Write(lenBuf[:])
	w.out.Write(body.Bytes())

	if w.ts.Deflated {
		w.deflate, _ = flate.NewWriter(&w.out, w.cfg.ZlibCompressionLevel)
		w.sink = w.deflate
	}
	return nil
}

// reorderValueBytes treats data as already encoded little endian (the
// convention package value's Bytes() methods use) and byte-swaps it into
// the target order when the writer's transfer syntax is big endian. Bytes
// that already arrived in the target order (the common case: tokens read
// from a little-endian source written back out little-endian, which covers
// every transfer syntax this package supports writing except the retired
// Explicit VR Big Endian) pass through unchanged.
func reorderValueBytes(v vr.VR, data []byte, order binary.ByteOrder) []byte {
	if order == binary.LittleEndian {
		return data
	}
	width := v.ElementWidth()
	if width <= 1 || len(data)%width != 0 {
		return data
	}
	out := make([]byte, len(data))
	for i := 0; i < len(data); i += width {
		for j := 0; j < width; j++ {
			out[i+j] = data[i+width-1-j]
		}
	}
	return out
}
