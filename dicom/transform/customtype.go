package transform

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/codeninja55/dcmfx/dicom"
	"github.com/codeninja55/dcmfx/dicom/element"
	"github.com/codeninja55/dcmfx/dicom/tag"
	"github.com/codeninja55/dcmfx/dicom/value"
	"github.com/codeninja55/dcmfx/dicom/vr"
)

// CustomType taps a fixed set of root-level tags as they pass through a
// token stream, decoding each one's value and invoking onElement - without
// removing, altering, or buffering anything else. It is the cheap
// alternative to p10build.Builder for callers that only need a handful of
// attributes (e.g. Rows/Columns/BitsAllocated to size a frame) and would
// rather not assemble a whole DataSet to get them.
//
// Only top-level elements are gathered; a tag of interest nested inside a
// sequence is not reported.
type CustomType struct {
	interest  map[tag.Tag]bool
	onElement func(*element.Element)
	order     binary.ByteOrder

	depth         int
	curHeader     *dicom.DataElementHeaderToken
	curValue      bytes.Buffer
	curInterested bool
}

// NewCustomType returns a CustomType gathering tags, calling onElement for
// each decoded value of interest as soon as it has fully streamed past.
func NewCustomType(onElement func(*element.Element), tags ...tag.Tag) *CustomType {
	interest := make(map[tag.Tag]bool, len(tags))
	for _, t := range tags {
		interest[t] = true
	}
	return &CustomType{interest: interest, onElement: onElement, order: binary.LittleEndian}
}

func (c *CustomType) Apply(tok dicom.Token) ([]dicom.Token, error) {
	switch t := tok.(type) {
	case dicom.DataElementHeaderToken:
		if c.depth == 0 && c.interest[t.Tag] {
			h := t
			c.curHeader = &h
			c.curValue.Reset()
			c.curInterested = true
		} else {
			c.curInterested = false
		}

	case dicom.DataElementValueBytesToken:
		if c.curInterested {
			c.curValue.Write(t.Data)
			if t.Final {
				c.emit()
			}
		}

	case dicom.SequenceStartToken:
		c.depth++
		c.curInterested = false

	case dicom.SequenceDelimiterToken:
		c.depth--
	}

	return []dicom.Token{tok}, nil
}

func (c *CustomType) emit() {
	h := c.curHeader
	c.curHeader = nil
	c.curInterested = false
	raw := append([]byte(nil), c.curValue.Bytes()...)
	c.curValue.Reset()

	val, err := decodeCustomTypeValue(h.VR, raw, c.order)
	if err != nil {
		return
	}
	el, err := element.NewElement(h.Tag, h.VR, val)
	if err != nil {
		return
	}
	c.onElement(el)
}

func decodeCustomTypeValue(v vr.VR, raw []byte, order binary.ByteOrder) (value.Value, error) {
	switch {
	case v.IsNumericType():
		return decodeNumeric(v, raw, order)
	case v.IsStringType():
		var parts []string
		s := string(bytes.TrimRight(raw, " \x00"))
		if v == vr.PersonName {
			parts = []string{s}
		} else {
			parts = splitBackslash(s)
		}
		return value.NewStringValue(v, parts)
	default:
		return value.NewBytesValue(v, raw)
	}
}

func splitBackslash(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}

func decodeNumeric(v vr.VR, raw []byte, order binary.ByteOrder) (value.Value, error) {
	width := v.ElementWidth()
	if width == 0 || len(raw)%width != 0 {
		return value.NewBytesValue(vr.Unknown, raw)
	}
	count := len(raw) / width
	if v == vr.FloatingPointSingle || v == vr.FloatingPointDouble {
		floats := make([]float64, count)
		for i := 0; i < count; i++ {
			floats[i] = decodeFloatWidth(v, raw[i*width:(i+1)*width], order)
		}
		return value.NewFloatValue(v, floats)
	}
	ints := make([]int64, count)
	for i := 0; i < count; i++ {
		ints[i] = decodeIntWidth(v, raw[i*width:(i+1)*width], order)
	}
	return value.NewIntValue(v, ints)
}

func decodeFloatWidth(v vr.VR, chunk []byte, order binary.ByteOrder) float64 {
	if v == vr.FloatingPointSingle {
		return float64(math.Float32frombits(order.Uint32(chunk)))
	}
	return math.Float64frombits(order.Uint64(chunk))
}

func decodeIntWidth(v vr.VR, chunk []byte, order binary.ByteOrder) int64 {
	switch v {
	case vr.SignedShort:
		return int64(int16(order.Uint16(chunk)))
	case vr.UnsignedShort:
		return int64(order.Uint16(chunk))
	case vr.SignedLong:
		return int64(int32(order.Uint32(chunk)))
	case vr.UnsignedLong:
		return int64(order.Uint32(chunk))
	case vr.SignedVeryLong, vr.UnsignedVeryLong:
		return int64(order.Uint64(chunk))
	default:
		return 0
	}
}
