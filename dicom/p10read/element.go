package p10read

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/codeninja55/dcmfx/dicom/charset"
	"github.com/codeninja55/dcmfx/dicom/element"
	"github.com/codeninja55/dcmfx/dicom/tag"
	"github.com/codeninja55/dcmfx/dicom/value"
	"github.com/codeninja55/dcmfx/dicom/vr"
)

// decodeExplicitHeader parses one Explicit VR Little Endian element header
// from the front of buf, returning the header's total length in bytes.
// Used only for File Meta Information, which the standard always encodes
// Explicit VR Little Endian regardless of the main data set's transfer
// syntax.
func decodeExplicitHeader(buf []byte, order binary.ByteOrder) (tag.Tag, vr.VR, uint32, int, error) {
	if len(buf) < 8 {
		return tag.Tag{}, 0, 0, 0, fmt.Errorf("truncated element header")
	}
	group := order.Uint16(buf[0:2])
	elemNum := order.Uint16(buf[2:4])
	t := tag.New(group, elemNum)

	elemVR, ok := tryParseVR(string(buf[4:6]))
	if !ok {
		elemVR = vr.Unknown
	}

	if elemVR.UsesExplicitLength32() {
		if len(buf) < 12 {
			return tag.Tag{}, 0, 0, 0, fmt.Errorf("truncated element header")
		}
		return t, elemVR, order.Uint32(buf[8:12]), 12, nil
	}
	return t, elemVR, uint32(order.Uint16(buf[6:8])), 8, nil
}

// decodeLeafValue builds a typed value.Value from raw bytes for a
// non-sequence element, using dec to decode string VRs (may be nil, in
// which case raw bytes are interpreted as UTF-8/ASCII).
func decodeLeafValue(v vr.VR, raw []byte, order binary.ByteOrder, dec charset.Decoder) (value.Value, error) {
	switch {
	case v.IsStringType():
		text := strings.TrimRight(string(raw), " \x00")
		if dec != nil {
			decoded, err := dec.Decode([]byte(text))
			if err == nil {
				text = decoded
			}
		}
		var parts []string
		if v == vr.PersonName {
			parts = []string{text}
		} else {
			parts = strings.Split(text, "\\")
		}
		return value.NewStringValue(v, parts)

	case v.IsNumericType():
		return decodeNumericValue(v, raw, order)

	default:
		return value.NewBytesValue(v, append([]byte(nil), raw...))
	}
}

// decodeNumericValue decodes fixed-width binary VRs into an IntValue or
// FloatValue, per the active byte order.
func decodeNumericValue(v vr.VR, raw []byte, order binary.ByteOrder) (value.Value, error) {
	width := v.ElementWidth()
	if width == 0 || len(raw)%width != 0 {
		return value.NewBytesValue(v, append([]byte(nil), raw...))
	}
	count := len(raw) / width

	switch v {
	case vr.FloatingPointSingle, vr.FloatingPointDouble:
		floats := make([]float64, count)
		for i := 0; i < count; i++ {
			chunk := raw[i*width : (i+1)*width]
			floats[i] = decodeFloat(v, chunk, order)
		}
		return value.NewFloatValue(v, floats)
	default:
		ints := make([]int64, count)
		for i := 0; i < count; i++ {
			chunk := raw[i*width : (i+1)*width]
			ints[i] = decodeInt(v, chunk, order)
		}
		return value.NewIntValue(v, ints)
	}
}

func decodeFloat(v vr.VR, chunk []byte, order binary.ByteOrder) float64 {
	if v == vr.FloatingPointSingle {
		bits := order.Uint32(chunk)
		return float64(math.Float32frombits(bits))
	}
	bits := order.Uint64(chunk)
	return math.Float64frombits(bits)
}

func decodeInt(v vr.VR, chunk []byte, order binary.ByteOrder) int64 {
	switch v {
	case vr.SignedShort:
		return int64(int16(order.Uint16(chunk)))
	case vr.UnsignedShort:
		return int64(order.Uint16(chunk))
	case vr.SignedLong:
		return int64(int32(order.Uint32(chunk)))
	case vr.UnsignedLong:
		return int64(order.Uint32(chunk))
	case vr.SignedVeryLong:
		return int64(order.Uint64(chunk))
	case vr.UnsignedVeryLong:
		return int64(order.Uint64(chunk))
	default:
		return 0
	}
}

// newElement wraps element.NewElement for readability at call sites.
func newElement(t tag.Tag, v vr.VR, val value.Value) (*element.Element, error) {
	return element.NewElement(t, v, val)
}
