package p10build

import (
	"encoding/binary"
	"math"
	"strings"

	"github.com/codeninja55/dcmfx/dicom/charset"
	"github.com/codeninja55/dcmfx/dicom/value"
	"github.com/codeninja55/dcmfx/dicom/vr"
)

// decodeLeafValue builds a typed value.Value from a fully-accumulated
// element's raw bytes, decoding string VRs via dec (the decoder for the
// Specific Character Set in effect at this point in the stream).
func decodeLeafValue(v vr.VR, raw []byte, order binary.ByteOrder, dec charset.Decoder) (value.Value, error) {
	switch {
	case v.IsStringType():
		text := strings.TrimRight(string(raw), " \x00")
		if dec != nil {
			if decoded, err := dec.Decode([]byte(text)); err == nil {
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

func decodeNumericValue(v vr.VR, raw []byte, order binary.ByteOrder) (value.Value, error) {
	width := v.ElementWidth()
	if width == 0 || len(raw)%width != 0 {
		return value.NewBytesValue(v, append([]byte(nil), raw...))
	}
	count := len(raw) / width

	if v == vr.FloatingPointSingle || v == vr.FloatingPointDouble {
		floats := make([]float64, count)
		for i := 0; i < count; i++ {
			chunk := raw[i*width : (i+1)*width]
			if v == vr.FloatingPointSingle {
				floats[i] = float64(math.Float32frombits(order.Uint32(chunk)))
			} else {
				floats[i] = math.Float64frombits(order.Uint64(chunk))
			}
		}
		return value.NewFloatValue(v, floats)
	}

	ints := make([]int64, count)
	for i := 0; i < count; i++ {
		chunk := raw[i*width : (i+1)*width]
		switch v {
		case vr.SignedShort:
			ints[i] = int64(int16(order.Uint16(chunk)))
		case vr.UnsignedShort:
			ints[i] = int64(order.Uint16(chunk))
		case vr.SignedLong:
			ints[i] = int64(int32(order.Uint32(chunk)))
		case vr.UnsignedLong:
			ints[i] = int64(order.Uint32(chunk))
		case vr.SignedVeryLong, vr.UnsignedVeryLong:
			ints[i] = int64(order.Uint64(chunk))
		}
	}
	return value.NewIntValue(v, ints)
}
