package transform_test

import (
	"encoding/binary"
	"testing"

	"github.com/codeninja55/dcmfx/dicom"
	"github.com/codeninja55/dcmfx/dicom/element"
	"github.com/codeninja55/dcmfx/dicom/tag"
	"github.com/codeninja55/dcmfx/dicom/transform"
	"github.com/codeninja55/dcmfx/dicom/value"
	"github.com/codeninja55/dcmfx/dicom/vr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomType_GathersRootLevelNumericTag(t *testing.T) {
	var rows, columns int64
	var seen int

	ct := transform.NewCustomType(func(el *element.Element) {
		seen++
		switch {
		case el.Tag().Equals(tag.Rows):
			rows = el.Value().(*value.IntValue).Ints()[0]
		case el.Tag().Equals(tag.Columns):
			columns = el.Value().(*value.IntValue).Ints()[0]
		}
	}, tag.Rows, tag.Columns)

	rowsBytes := make([]byte, 2)
	binary.LittleEndian.PutUint16(rowsBytes, 512)
	colsBytes := make([]byte, 2)
	binary.LittleEndian.PutUint16(colsBytes, 256)

	tokens := []dicom.Token{
		dicom.DataElementHeaderToken{Tag: tag.Rows, VR: vr.UnsignedShort, Length: 2},
		dicom.DataElementValueBytesToken{Data: rowsBytes, Final: true},
		dicom.DataElementHeaderToken{Tag: tag.Columns, VR: vr.UnsignedShort, Length: 2},
		dicom.DataElementValueBytesToken{Data: colsBytes, Final: true},
	}

	out, err := transform.Run(tokens, ct)
	require.NoError(t, err)
	require.Len(t, out, len(tokens))
	assert.Equal(t, 2, seen)
	assert.Equal(t, int64(512), rows)
	assert.Equal(t, int64(256), columns)
}

func TestCustomType_IgnoresNestedTagsOfInterest(t *testing.T) {
	seen := 0
	ct := transform.NewCustomType(func(el *element.Element) { seen++ }, tag.Rows)

	seqTag := tag.New(0x0008, 0x1140)
	rowsBytes := make([]byte, 2)
	binary.LittleEndian.PutUint16(rowsBytes, 128)

	tokens := []dicom.Token{
		dicom.SequenceStartToken{Tag: seqTag, VR: vr.SequenceOfItems, Length: dicom.LengthUndefined},
		dicom.SequenceItemStartToken{Length: dicom.LengthUndefined},
		dicom.DataElementHeaderToken{Tag: tag.Rows, VR: vr.UnsignedShort, Length: 2},
		dicom.DataElementValueBytesToken{Data: rowsBytes, Final: true},
		dicom.SequenceItemDelimiterToken{},
		dicom.SequenceDelimiterToken{},
	}

	out, err := transform.Run(tokens, ct)
	require.NoError(t, err)
	require.Len(t, out, len(tokens))
	assert.Equal(t, 0, seen)
}
