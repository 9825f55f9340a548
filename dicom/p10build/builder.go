// Package p10build implements the data-set builder (C6): it consumes a
// P10 token stream - typically from p10read.Reader.ReadTokens, but equally
// from a transform pipeline - and assembles a single in-memory
// *dicom.DataSet, including nested sequences/items and encapsulated pixel
// data.
//
// Building a data set is inherently O(data set size) in memory, unlike the
// O(1) streaming transforms in package transform; it exists for callers
// that want random access to a whole instance (or one of its sequences)
// rather than a one-pass streaming edit.
package p10build

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/codeninja55/dcmfx/dicom"
	"github.com/codeninja55/dcmfx/dicom/charset"
	"github.com/codeninja55/dcmfx/dicom/config"
	"github.com/codeninja55/dcmfx/dicom/dcmerror"
	"github.com/codeninja55/dcmfx/dicom/element"
	"github.com/codeninja55/dcmfx/dicom/tag"
	"github.com/codeninja55/dcmfx/dicom/value"
	"github.com/codeninja55/dcmfx/dicom/vr"
)

// frame is one level of nesting being assembled: the root data set, an open
// sequence's accumulated items, or one open item's accumulated elements.
type frame struct {
	isSequence bool
	seqTag     tag.Tag
	seqVR      vr.VR
	isPixel    bool

	items []*dicom.Item
	ds    *dicom.DataSet

	curHeader   *dicom.DataElementHeaderToken
	curValue    bytes.Buffer
	curIsPixel  bool
	offsetTable []uint32
	fragments   [][]byte
	haveBOT     bool
}

// Builder assembles a *dicom.DataSet from a token stream, one Add call per
// token, in order.
type Builder struct {
	cfg          config.ReadConfig
	stack        []*frame
	characterSet []string
	order        binary.ByteOrder

	preamble *[128]byte
	fileMeta *dicom.DataSet
	result   *dicom.DataSet
	ended    bool
}

// NewBuilder returns a Builder ready to receive tokens. Its byte order is
// fixed to little endian; it is only used to decode the Basic Offset Table
// of encapsulated pixel data, which is always little endian regardless of
// the outer transfer syntax's declared order for the main data set proper.
func NewBuilder(cfg config.ReadConfig) *Builder {
	b := &Builder{cfg: cfg, order: binary.LittleEndian}
	b.stack = []*frame{{ds: dicom.NewDataSet()}}
	return b
}

// Add feeds one token into the builder. ForceEnd should be called instead
// of relying on an EndToken if the caller wants to stop early (e.g. after
// the tags it cares about have all been seen) and still retrieve a valid,
// if partial, DataSet.
func (b *Builder) Add(tok dicom.Token) error {
	if b.ended {
		return dcmerror.New(dcmerror.TokenStreamInvalid, "build", "token received after End")
	}

	switch t := tok.(type) {
	case dicom.FilePreambleAndDICMPrefixToken:
		p := t.Preamble
		b.preamble = &p

	case dicom.FileMetaInformationToken:
		b.fileMeta = t.DataSet

	case dicom.DataElementHeaderToken:
		return b.onHeader(t)

	case dicom.DataElementValueBytesToken:
		return b.onValueBytes(t)

	case dicom.SequenceStartToken:
		return b.onSequenceStart(t)

	case dicom.SequenceItemStartToken:
		return b.onItemStart()

	case dicom.SequenceItemDelimiterToken:
		return b.onItemEnd()

	case dicom.SequenceDelimiterToken:
		return b.onSequenceEnd()

	case dicom.PixelDataItemToken:
		return b.onPixelDataItem(t)

	case dicom.EndToken:
		b.ForceEnd()

	default:
		return dcmerror.New(dcmerror.TokenStreamInvalid, "build", fmt.Sprintf("unrecognized token %T", tok))
	}
	return nil
}

// ForceEnd finalizes the data set being built regardless of whether an
// EndToken has arrived, so callers that stop consuming a token stream
// early (e.g. once a tag of interest has been seen) can still retrieve a
// result.
func (b *Builder) ForceEnd() {
	if b.ended {
		return
	}
	root := b.stack[0]
	b.result = root.ds
	b.ended = true
}

// DataSet returns the assembled data set. Valid once Add has processed an
// EndToken or ForceEnd has been called; returns the (possibly incomplete)
// root data set built so far if called earlier.
func (b *Builder) DataSet() *dicom.DataSet {
	if b.result != nil {
		return b.result
	}
	return b.stack[0].ds
}

// FileMetaInformation returns the File Meta Information data set observed,
// or nil if none has arrived yet.
func (b *Builder) FileMetaInformation() *dicom.DataSet {
	return b.fileMeta
}

func (b *Builder) top() *frame {
	return b.stack[len(b.stack)-1]
}

func (b *Builder) onHeader(t dicom.DataElementHeaderToken) error {
	f := b.top()
	if f.curHeader != nil {
		return dcmerror.New(dcmerror.TokenStreamInvalid, "build", "new element header while previous element value incomplete")
	}
	h := t
	f.curHeader = &h
	f.curValue.Reset()

	if t.Tag.Equals(tag.SpecificCharacterSet) {
		// captured once value bytes arrive, see onValueBytes
	}
	return nil
}

func (b *Builder) onValueBytes(t dicom.DataElementValueBytesToken) error {
	f := b.top()
	if f.curHeader == nil {
		return dcmerror.New(dcmerror.TokenStreamInvalid, "build", "value bytes with no open element header")
	}
	if b.cfg.MaxStringSize > 0 && f.curHeader.VR.IsStringType() && uint32(f.curValue.Len()+len(t.Data)) > b.cfg.MaxStringSize {
		return dcmerror.New(dcmerror.MaximumExceeded, "build", "string value exceeds configured maximum size")
	}
	f.curValue.Write(t.Data)
	if !t.Final {
		return nil
	}

	h := *f.curHeader
	f.curHeader = nil
	raw := append([]byte(nil), f.curValue.Bytes()...)
	f.curValue.Reset()

	if f.curIsPixel {
		f.curIsPixel = false
		if !f.haveBOT {
			f.haveBOT = true
			f.offsetTable = decodeOffsetTable(raw)
			return nil
		}
		f.fragments = append(f.fragments, raw)
		return nil
	}

	dec, _ := charset.NewDecoder(b.characterSet)
	val, err := decodeLeafValue(h.VR, raw, b.order, dec)
	if err != nil {
		return fmt.Errorf("decoding value for %s: %w", h.Tag, err)
	}
	el, err := element.NewElement(h.Tag, h.VR, val)
	if err != nil {
		return err
	}
	if err := f.ds.Add(el); err != nil {
		return err
	}

	if h.Tag.Equals(tag.SpecificCharacterSet) {
		if sv, ok := val.(*value.StringValue); ok {
			b.characterSet = sv.Strings()
		}
	}
	return nil
}

// decodeOffsetTable parses a Basic Offset Table item's raw bytes (always
// little endian 32-bit entries, per PS3.5 Annex A.4) into frame byte
// offsets.
func decodeOffsetTable(raw []byte) []uint32 {
	if len(raw)%4 != 0 {
		return nil
	}
	out := make([]uint32, len(raw)/4)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(raw[i*4 : i*4+4])
	}
	return out
}

func (b *Builder) onSequenceStart(t dicom.SequenceStartToken) error {
	isPixel := !t.VR.IsSequence()
	nf := &frame{isSequence: true, seqTag: t.Tag, seqVR: t.VR, isPixel: isPixel}
	b.stack = append(b.stack, nf)
	return nil
}

func (b *Builder) onSequenceEnd() error {
	f := b.top()
	if !f.isSequence {
		return dcmerror.New(dcmerror.TokenStreamInvalid, "build", "sequence delimiter with no open sequence")
	}
	b.stack = b.stack[:len(b.stack)-1]
	parent := b.top()

	var val value.Value
	if f.isPixel {
		val = dicom.NewEncapsulatedPixelDataValue(f.seqVR, f.offsetTable, f.fragments)
	} else {
		val = dicom.NewSequenceValue(f.items)
	}
	el, err := element.NewElement(f.seqTag, f.seqVR, val)
	if err != nil {
		return err
	}
	return parent.ds.Add(el)
}

func (b *Builder) onItemStart() error {
	parent := b.top()
	if !parent.isSequence || parent.isPixel {
		return dcmerror.New(dcmerror.TokenStreamInvalid, "build", "item start outside a plain sequence")
	}
	nf := &frame{ds: dicom.NewDataSet()}
	b.stack = append(b.stack, nf)
	return nil
}

func (b *Builder) onItemEnd() error {
	f := b.top()
	if f.isSequence {
		return dcmerror.New(dcmerror.TokenStreamInvalid, "build", "item delimiter with no open item")
	}
	b.stack = b.stack[:len(b.stack)-1]
	parent := b.top()
	if !parent.isSequence {
		return dcmerror.New(dcmerror.TokenStreamInvalid, "build", "item closed outside a sequence")
	}
	parent.items = append(parent.items, f.ds)
	return nil
}

func (b *Builder) onPixelDataItem(t dicom.PixelDataItemToken) error {
	f := b.top()
	if !f.isSequence || !f.isPixel {
		return dcmerror.New(dcmerror.TokenStreamInvalid, "build", "pixel data item outside encapsulated pixel data")
	}
	if t.Length == 0 {
		// A zero-length item carries no value bytes token; resolve it
		// immediately rather than waiting for one that will never arrive.
		if !f.haveBOT {
			f.haveBOT = true
		} else {
			f.fragments = append(f.fragments, []byte{})
		}
		return nil
	}
	f.curValue.Reset()
	f.curIsPixel = true
	f.curHeader = &dicom.DataElementHeaderToken{Tag: f.seqTag, VR: f.seqVR, Length: t.Length}
	return nil
}
