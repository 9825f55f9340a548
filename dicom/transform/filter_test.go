package transform_test

import (
	"testing"

	"github.com/codeninja55/dcmfx/dicom"
	"github.com/codeninja55/dcmfx/dicom/tag"
	"github.com/codeninja55/dcmfx/dicom/transform"
	"github.com/codeninja55/dcmfx/dicom/vr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_DropsPlainElementAndValue(t *testing.T) {
	f := transform.NewFilter(transform.ByTag(tag.PatientName))

	tokens := []dicom.Token{
		dicom.DataElementHeaderToken{Tag: tag.PatientName, VR: vr.PersonName, Length: 8},
		dicom.DataElementValueBytesToken{Data: []byte("Doe^Jane"), Final: true},
		dicom.DataElementHeaderToken{Tag: tag.PatientID, VR: vr.LongString, Length: 4},
		dicom.DataElementValueBytesToken{Data: []byte("1234"), Final: true},
	}

	out, err := transform.Run(tokens, f)
	require.NoError(t, err)
	require.Len(t, out, 2)
	hdr, ok := out[0].(dicom.DataElementHeaderToken)
	require.True(t, ok)
	assert.Equal(t, tag.PatientID, hdr.Tag)
}

func TestFilter_DropsWholeSequenceSubtree(t *testing.T) {
	seqTag := tag.New(0x0008, 0x1140) // ReferencedImageSequence
	f := transform.NewFilter(transform.ByTag(seqTag))

	tokens := []dicom.Token{
		dicom.SequenceStartToken{Tag: seqTag, VR: vr.SequenceOfItems, Length: dicom.LengthUndefined},
		dicom.SequenceItemStartToken{Length: dicom.LengthUndefined},
		dicom.DataElementHeaderToken{Tag: tag.New(0x0008, 0x1150), VR: vr.UniqueIdentifier, Length: 2},
		dicom.DataElementValueBytesToken{Data: []byte("1\x00"), Final: true},
		dicom.SequenceItemDelimiterToken{},
		dicom.SequenceDelimiterToken{},
		dicom.DataElementHeaderToken{Tag: tag.PatientID, VR: vr.LongString, Length: 4},
		dicom.DataElementValueBytesToken{Data: []byte("1234"), Final: true},
	}

	out, err := transform.Run(tokens, f)
	require.NoError(t, err)
	require.Len(t, out, 2)
	hdr, ok := out[0].(dicom.DataElementHeaderToken)
	require.True(t, ok)
	assert.Equal(t, tag.PatientID, hdr.Tag)
}

func TestFilter_DropsEncapsulatedPixelDataItems(t *testing.T) {
	f := transform.NewFilter(transform.ByTag(tag.PixelData))

	tokens := []dicom.Token{
		dicom.SequenceStartToken{Tag: tag.PixelData, VR: vr.OtherByte, Length: dicom.LengthUndefined},
		dicom.PixelDataItemToken{Length: 0},
		dicom.PixelDataItemToken{Length: 4},
		dicom.DataElementValueBytesToken{Data: []byte{1, 2, 3, 4}, Final: true},
		dicom.SequenceDelimiterToken{},
	}

	out, err := transform.Run(tokens, f)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestByTag_KeepsUnlistedTags(t *testing.T) {
	keep := transform.ByTag(tag.PatientName)
	assert.False(t, keep(nil, tag.PatientName))
	assert.True(t, keep(nil, tag.PatientID))
}
