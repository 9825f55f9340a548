package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codeninja55/dcmfx/cmd/dcmfx/internal/commands"
	"github.com/codeninja55/dcmfx/dicom"
	"github.com/codeninja55/dcmfx/dicom/config"
	"github.com/codeninja55/dcmfx/dicom/element"
	"github.com/codeninja55/dcmfx/dicom/p10build"
	"github.com/codeninja55/dcmfx/dicom/p10read"
	"github.com/codeninja55/dcmfx/dicom/p10write"
	"github.com/codeninja55/dcmfx/dicom/tag"
	"github.com/codeninja55/dcmfx/dicom/uid"
	"github.com/codeninja55/dcmfx/dicom/value"
	"github.com/codeninja55/dcmfx/dicom/vr"
)

func mustElement(t *testing.T, tg tag.Tag, v vr.VR, val value.Value) *element.Element {
	t.Helper()
	el, err := element.NewElement(tg, v, val)
	require.NoError(t, err)
	return el
}

func buildFileMeta(t *testing.T) *dicom.DataSet {
	t.Helper()
	ds := dicom.NewDataSet()

	tsVal, err := value.NewStringValue(vr.UniqueIdentifier, []string{uid.ExplicitVRLittleEndian.String()})
	require.NoError(t, err)
	require.NoError(t, ds.Add(mustElement(t, tag.TransferSyntaxUID, vr.UniqueIdentifier, tsVal)))

	sopClassVal, err := value.NewStringValue(vr.UniqueIdentifier, []string{"1.2.840.10008.5.1.4.1.1.7"})
	require.NoError(t, err)
	require.NoError(t, ds.Add(mustElement(t, tag.MediaStorageSOPClassUID, vr.UniqueIdentifier, sopClassVal)))

	sopInstanceVal, err := value.NewStringValue(vr.UniqueIdentifier, []string{"1.2.3.4.5.6.7.8.9"})
	require.NoError(t, err)
	require.NoError(t, ds.Add(mustElement(t, tag.MediaStorageSOPInstanceUID, vr.UniqueIdentifier, sopInstanceVal)))

	return ds
}

// writeFixture builds a minimal Explicit VR Little Endian P10 file
// containing a single Patient Name element and writes it to dir/name.
func writeFixture(t *testing.T, dir, name string) string {
	t.Helper()

	ts, err := uid.TransferSyntaxFor(uid.ExplicitVRLittleEndian.String())
	require.NoError(t, err)
	writeCfg, err := config.NewWriteConfig(config.DefaultWriteConfig())
	require.NoError(t, err)

	w := p10write.NewWriter(*writeCfg, ts)
	nameVal, err := value.NewStringValue(vr.PersonName, []string{"Doe^Jane"})
	require.NoError(t, err)

	tokens := []dicom.Token{
		dicom.FilePreambleAndDICMPrefixToken{},
		dicom.FileMetaInformationToken{DataSet: buildFileMeta(t)},
		dicom.DataElementHeaderToken{Tag: tag.PatientName, VR: vr.PersonName, Length: uint32(len(nameVal.Bytes()))},
		dicom.DataElementValueBytesToken{Data: nameVal.Bytes(), Final: true},
		dicom.EndToken{},
	}
	for _, tok := range tokens {
		require.NoError(t, w.WriteToken(tok))
	}

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, w.TakeBytes(), 0o644))
	return path
}

func readBackPatientName(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	readCfg, err := config.NewReadConfig(config.DefaultReadConfig())
	require.NoError(t, err)

	r := p10read.NewReader(*readCfg)
	require.NoError(t, r.WriteBytes(data, true))
	toks, err := r.ReadTokens()
	require.NoError(t, err)

	b := p10build.NewBuilder(*readCfg)
	for _, tok := range toks {
		require.NoError(t, b.Add(tok))
	}

	ds := b.DataSet()
	require.NotNil(t, ds)
	el, err := ds.Get(tag.PatientName)
	require.NoError(t, err)
	return el.Value().String()
}

func TestModifyCmd_AnonymizeReplacesPatientName(t *testing.T) {
	dir := t.TempDir()
	src := writeFixture(t, dir, "in.dcm")
	outPath := filepath.Join(dir, "out.dcm")

	cmd := commands.ModifyCmd{
		Path:           src,
		Anonymize:      true,
		OutputFilename: outPath,
	}
	require.NoError(t, cmd.Run())

	name := readBackPatientName(t, outPath)
	require.Equal(t, "ANONYMOUS", name)
}

func TestModifyCmd_DeleteTagsRemovesElement(t *testing.T) {
	dir := t.TempDir()
	src := writeFixture(t, dir, "in.dcm")
	outPath := filepath.Join(dir, "out.dcm")

	cmd := commands.ModifyCmd{
		Path:           src,
		DeleteTags:     []string{"0010,0010"},
		OutputFilename: outPath,
	}
	require.NoError(t, cmd.Run())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	readCfg, err := config.NewReadConfig(config.DefaultReadConfig())
	require.NoError(t, err)
	r := p10read.NewReader(*readCfg)
	require.NoError(t, r.WriteBytes(data, true))
	toks, err := r.ReadTokens()
	require.NoError(t, err)
	b := p10build.NewBuilder(*readCfg)
	for _, tok := range toks {
		require.NoError(t, b.Add(tok))
	}
	require.False(t, b.DataSet().Contains(tag.PatientName))
}

func TestModifyCmd_RequiresOutputDestination(t *testing.T) {
	dir := t.TempDir()
	src := writeFixture(t, dir, "in.dcm")

	cmd := commands.ModifyCmd{Path: src}
	require.Error(t, cmd.Run())
}
