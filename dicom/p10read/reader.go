// Package p10read implements a push-based streaming reader for the DICOM
// Part 10 file format: bytes are supplied incrementally via WriteBytes, and
// fully-formed tokens are drained via ReadTokens as soon as enough bytes
// have arrived to produce them. Partial input never blocks indefinitely -
// ReadTokens returns a *dcmerror.Error with Kind dcmerror.DataRequired
// instead, and the caller is expected to WriteBytes more and call again.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part10.html
package p10read

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"

	"github.com/codeninja55/dcmfx/dicom"
	"github.com/codeninja55/dcmfx/dicom/config"
	"github.com/codeninja55/dcmfx/dicom/dcmerror"
	"github.com/codeninja55/dcmfx/dicom/locstack"
	"github.com/codeninja55/dcmfx/dicom/tag"
	"github.com/codeninja55/dcmfx/dicom/uid"
	"github.com/codeninja55/dcmfx/dicom/vr"
)

type phase int

const (
	phasePreamble phase = iota
	phaseFileMeta
	phaseInflate
	phaseDataSet
	phaseDone
)

// itemFrameKind distinguishes what a currently-open ItemEntry frame is
// collecting, since both sequence items and pixel data fragments share the
// same (FFFE,E000) Item wire framing.
type itemFrameKind int

const (
	itemFrameDataSet itemFrameKind = iota
	itemFramePixelFragment
)

// openSeq tracks one nesting level's kind (plain sequence vs. encapsulated
// pixel data), alongside the shared locstack.Stack nesting tracked there.
type openSeq struct {
	pixelData   bool
	itemKind    itemFrameKind
	bytesOfFrag int // reserved for future frame-boundary bookkeeping
}

// Reader is a push-based P10 token reader. It is not safe for concurrent
// use.
type Reader struct {
	cfg config.ReadConfig

	buf []byte
	eof bool

	phase  phase
	offset uint64

	order      binary.ByteOrder
	explicitVR bool
	deflated   bool
	ts         uid.TransferSyntax

	loc     *locstack.Stack
	seqKind []openSeq // parallel stack to loc's sequence/item frames

	fileMeta *dicom.DataSet

	pendingValueRemaining uint32

	done bool
}

// NewReader returns a Reader ready to have its first bytes written to it.
func NewReader(cfg config.ReadConfig) *Reader {
	return &Reader{
		cfg:   cfg,
		phase: phasePreamble,
		order: binary.LittleEndian,
		loc:   locstack.New(),
	}
}

// WriteBytes appends more stream bytes for the reader to parse. eof must be
// true on (and only on) the call supplying the final bytes of the stream
// (an empty data slice with eof=true is valid, signalling "no more bytes").
// Writing after the reader has already observed eof is an error.
func (r *Reader) WriteBytes(data []byte, eof bool) error {
	if r.eof {
		return dcmerror.New(dcmerror.WriteAfterCompletion, "write_bytes", "reader already reached end of stream")
	}
	r.buf = append(r.buf, data...)
	r.eof = eof
	return nil
}

// ReadTokens parses as many complete tokens as the currently buffered bytes
// allow and returns them. It returns a *dcmerror.Error with Kind
// DataRequired if no further tokens can be produced without more bytes
// (and eof has not been signalled), or DataEndedUnexpectedly if eof was
// signalled while a token was only partially readable.
func (r *Reader) ReadTokens() ([]dicom.Token, error) {
	var out []dicom.Token
	for {
		if r.done {
			return out, nil
		}
		tok, err := r.step()
		if err != nil {
			if dcmerror.Is(err, dcmerror.DataRequired) && len(out) > 0 {
				return out, nil
			}
			return out, err
		}
		if tok == nil {
			return out, nil
		}
		out = append(out, tok)
		if _, isEnd := tok.(dicom.EndToken); isEnd {
			r.done = true
			return out, nil
		}
	}
}

// step produces at most one token, or returns (nil, DataRequired) if the
// buffer does not yet hold enough bytes.
func (r *Reader) step() (dicom.Token, error) {
	switch r.phase {
	case phasePreamble:
		return r.readPreamble()
	case phaseFileMeta:
		return r.readFileMeta()
	case phaseInflate:
		if err := r.inflateRemainder(); err != nil {
			return nil, err
		}
		r.phase = phaseDataSet
		return r.step()
	case phaseDataSet:
		return r.readDataSetStep()
	default:
		return dicom.EndToken{}, nil
	}
}

// need reports whether the buffer has at least n unconsumed bytes, and
// returns the right blocked/ended error otherwise.
func (r *Reader) need(n int) error {
	if len(r.buf) >= n {
		return nil
	}
	if r.eof {
		return dcmerror.New(dcmerror.DataEndedUnexpectedly, "read_tokens", fmt.Sprintf("need %d bytes, stream ended with %d", n, len(r.buf)))
	}
	return dcmerror.New(dcmerror.DataRequired, "read_tokens", fmt.Sprintf("need %d bytes, have %d", n, len(r.buf)))
}

func (r *Reader) take(n int) []byte {
	b := r.buf[:n]
	r.buf = r.buf[n:]
	r.offset += uint64(n)
	return b
}

func (r *Reader) readPreamble() (dicom.Token, error) {
	const preambleAndMagicLen = 128 + 4
	if err := r.need(preambleAndMagicLen); err != nil {
		return nil, err
	}
	raw := r.take(preambleAndMagicLen)
	if string(raw[128:132]) != "DICM" {
		return nil, dcmerror.New(dcmerror.MalformedData, "read_preamble", "missing DICM magic at byte 128").WithOffset(128)
	}
	var preamble [128]byte
	copy(preamble[:], raw[:128])
	r.phase = phaseFileMeta
	return dicom.FilePreambleAndDICMPrefixToken{Preamble: preamble}, nil
}

// readFileMeta parses the whole File Meta Information group (always
// Explicit VR Little Endian) in one pass: the group length element tells
// us exactly how many further bytes belong to the group.
func (r *Reader) readFileMeta() (dicom.Token, error) {
	if err := r.need(12); err != nil {
		return nil, err
	}
	groupHeader := r.buf[:12]
	group := binary.LittleEndian.Uint16(groupHeader[0:2])
	elem := binary.LittleEndian.Uint16(groupHeader[2:4])
	vrStr := string(groupHeader[4:6])
	if group != tag.MetadataGroup || elem != 0x0000 || vrStr != "UL" {
		return nil, dcmerror.New(dcmerror.MalformedData, "read_file_meta",
			"expected (0002,0000) UL group length element first").WithOffset(int64(r.offset))
	}
	groupLength := binary.LittleEndian.Uint32(groupHeader[8:12])

	if err := r.need(12 + int(groupLength)); err != nil {
		return nil, err
	}
	r.take(12)
	body := r.take(int(groupLength))

	ds := dicom.NewDataSet()
	pos := 0
	for pos < len(body) {
		elTag, elVR, length, headerLen, err := decodeExplicitHeader(body[pos:], binary.LittleEndian)
		if err != nil {
			return nil, fmt.Errorf("parsing file meta element: %w", err)
		}
		pos += headerLen
		if pos+int(length) > len(body) {
			return nil, dcmerror.New(dcmerror.MalformedData, "read_file_meta", "element value overruns group length")
		}
		valueBytes := body[pos : pos+int(length)]
		pos += int(length)

		v, err := decodeLeafValue(elVR, valueBytes, binary.LittleEndian, nil)
		if err != nil {
			return nil, fmt.Errorf("decoding file meta element %s: %w", elTag, err)
		}
		el, err := newElement(elTag, elVR, v)
		if err != nil {
			return nil, err
		}
		if err := ds.Add(el); err != nil {
			return nil, err
		}
	}

	tsElem, err := ds.Get(tag.TransferSyntaxUID)
	if err != nil {
		return nil, dcmerror.New(dcmerror.MalformedData, "read_file_meta", "missing Transfer Syntax UID")
	}
	ts, err := uid.TransferSyntaxFor(tsElem.Value().String())
	if err != nil {
		return nil, dcmerror.New(dcmerror.UnsupportedTransferSyntax, "read_file_meta", err.Error())
	}
	r.ts = ts
	r.explicitVR = ts.ExplicitVR
	r.deflated = ts.Deflated
	if ts.LittleEndian {
		r.order = binary.LittleEndian
	} else {
		r.order = binary.BigEndian
	}
	r.fileMeta = ds

	if r.deflated {
		r.phase = phaseInflate
	} else {
		r.phase = phaseDataSet
	}
	return dicom.FileMetaInformationToken{DataSet: ds}, nil
}

// inflateRemainder requires the whole remaining (compressed) stream to have
// arrived, then replaces the buffer with its inflated contents. Deflated
// Explicit VR Little Endian is rare enough in practice, and klauspost's
// flate.Reader interface is pull-based, that buffering the full remainder
// before inflating is a deliberate simplification over a truly incremental
// decompressor.
func (r *Reader) inflateRemainder() error {
	if !r.eof {
		return dcmerror.New(dcmerror.DataRequired, "inflate", "deflated transfer syntax requires the full stream before decompression")
	}
	fr := flate.NewReader(bytes.NewReader(r.buf))
	defer fr.Close()
	out, err := io.ReadAll(fr)
	if err != nil {
		return dcmerror.New(dcmerror.MalformedData, "inflate", err.Error())
	}
	r.buf = out
	return nil
}
