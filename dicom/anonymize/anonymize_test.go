package anonymize_test

import (
	"testing"

	"github.com/codeninja55/dcmfx/dicom"
	"github.com/codeninja55/dcmfx/dicom/anonymize"
	"github.com/codeninja55/dcmfx/dicom/config"
	"github.com/codeninja55/dcmfx/dicom/p10build"
	"github.com/codeninja55/dcmfx/dicom/tag"
	"github.com/codeninja55/dcmfx/dicom/transform"
	"github.com/codeninja55/dcmfx/dicom/vr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headerToken(tg tag.Tag, v vr.VR, s string) dicom.Token {
	return dicom.DataElementHeaderToken{Tag: tg, VR: v, Length: uint32(len(s))}
}

func runThroughBuilder(t *testing.T, tokens []dicom.Token) *dicom.DataSet {
	t.Helper()
	cfg, err := config.NewReadConfig(config.DefaultReadConfig())
	require.NoError(t, err)
	b := p10build.NewBuilder(*cfg)
	for _, tok := range tokens {
		require.NoError(t, b.Add(tok))
	}
	return b.DataSet()
}

func patientTokens() []dicom.Token {
	return []dicom.Token{
		headerToken(tag.PatientName, vr.PersonName, "Smith^John"),
		dicom.DataElementValueBytesToken{Data: []byte("Smith^John"), Final: true},
		headerToken(tag.PatientID, vr.LongString, "PAT123"),
		dicom.DataElementValueBytesToken{Data: []byte("PAT123"), Final: true},
		headerToken(tag.PatientBirthDate, vr.Date, "19750315"),
		dicom.DataElementValueBytesToken{Data: []byte("19750315"), Final: true},
		headerToken(tag.StudyInstanceUID, vr.UniqueIdentifier, "1.2.3.4\x00"),
		dicom.DataElementValueBytesToken{Data: []byte("1.2.3.4\x00"), Final: true},
		dicom.EndToken{},
	}
}

func TestAnonymizer_BasicProfileReplacesPatientIdentity(t *testing.T) {
	az := anonymize.NewAnonymizer(anonymize.ProfileBasic)
	tr, err := az.Transform()
	require.NoError(t, err)

	out, err := transform.Run(patientTokens(), tr)
	require.NoError(t, err)

	ds := runThroughBuilder(t, out)

	name, err := ds.Get(tag.PatientName)
	require.NoError(t, err)
	assert.Equal(t, "ANONYMOUS", name.Value().String())

	birth, err := ds.Get(tag.PatientBirthDate)
	require.NoError(t, err)
	assert.Equal(t, "", birth.Value().String())

	studyUID, err := ds.Get(tag.StudyInstanceUID)
	require.NoError(t, err)
	assert.NotEqual(t, "1.2.3.4", studyUID.Value().String())
	assert.NotEmpty(t, studyUID.Value().String())
}

func TestAnonymizer_RetainUIDsKeepsOriginalUID(t *testing.T) {
	az := anonymize.NewAnonymizerWithConfig(anonymize.Config{
		Profile: anonymize.ProfileBasic,
		Options: anonymize.Options{RetainUIDs: true},
	})
	tr, err := az.Transform()
	require.NoError(t, err)

	out, err := transform.Run(patientTokens(), tr)
	require.NoError(t, err)

	ds := runThroughBuilder(t, out)
	studyUID, err := ds.Get(tag.StudyInstanceUID)
	require.NoError(t, err)
	assert.Equal(t, "1.2.3.4", studyUID.Value().String())
}

func TestAnonymizer_CustomActionRemoveDropsTag(t *testing.T) {
	az := anonymize.NewAnonymizerWithConfig(anonymize.Config{
		Profile: anonymize.ProfileCustom,
		CustomActions: map[tag.Tag]anonymize.Action{
			tag.PatientName: anonymize.ActionRemove,
		},
	})
	tr, err := az.Transform()
	require.NoError(t, err)

	out, err := transform.Run(patientTokens(), tr)
	require.NoError(t, err)

	ds := runThroughBuilder(t, out)
	assert.False(t, ds.Contains(tag.PatientName))
}

func TestAnonymizer_CustomActionKeepOverridesDefault(t *testing.T) {
	az := anonymize.NewAnonymizerWithConfig(anonymize.Config{
		Profile: anonymize.ProfileCustom,
		CustomActions: map[tag.Tag]anonymize.Action{
			tag.PatientName: anonymize.ActionKeep,
		},
	})
	tr, err := az.Transform()
	require.NoError(t, err)

	out, err := transform.Run(patientTokens(), tr)
	require.NoError(t, err)

	ds := runThroughBuilder(t, out)
	name, err := ds.Get(tag.PatientName)
	require.NoError(t, err)
	assert.Equal(t, "Smith^John", name.Value().String())
}

func TestAnonymizer_RemovesPrivateTagsWhenConfigured(t *testing.T) {
	az := anonymize.NewAnonymizer(anonymize.ProfileBasic)
	tr, err := az.Transform()
	require.NoError(t, err)

	privateTag := tag.New(0x0009, 0x0010)
	tokens := []dicom.Token{
		dicom.DataElementHeaderToken{Tag: privateTag, VR: vr.LongString, Length: 4},
		dicom.DataElementValueBytesToken{Data: []byte("ACME"), Final: true},
		dicom.EndToken{},
	}

	out, err := transform.Run(tokens, tr)
	require.NoError(t, err)

	ds := runThroughBuilder(t, out)
	assert.False(t, ds.Contains(privateTag))
}

func TestAnonymizer_RemoveOverlaysDropsOverlayGroup(t *testing.T) {
	az := anonymize.NewAnonymizerWithConfig(anonymize.Config{
		Profile: anonymize.ProfileBasic,
		Options: anonymize.Options{RemoveOverlays: true},
	})
	tr, err := az.Transform()
	require.NoError(t, err)

	overlayTag := tag.New(0x6000, 0x3000)
	tokens := []dicom.Token{
		dicom.DataElementHeaderToken{Tag: overlayTag, VR: vr.OtherWord, Length: 2},
		dicom.DataElementValueBytesToken{Data: []byte{0x00, 0x01}, Final: true},
		dicom.EndToken{},
	}

	out, err := transform.Run(tokens, tr)
	require.NoError(t, err)

	ds := runThroughBuilder(t, out)
	assert.False(t, ds.Contains(overlayTag))
}
