package p10read_test

import (
	"encoding/binary"
	"testing"

	"github.com/codeninja55/dcmfx/dicom/config"
	"github.com/codeninja55/dcmfx/dicom/dcmerror"
	"github.com/codeninja55/dcmfx/dicom/p10read"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReader(t *testing.T) *p10read.Reader {
	t.Helper()
	cfg, err := config.NewReadConfig(config.DefaultReadConfig())
	require.NoError(t, err)
	return p10read.NewReader(*cfg)
}

func preambleAndMagic() []byte {
	return append(make([]byte, 128), []byte("DICM")...)
}

// explicitHeader encodes one Explicit VR Little Endian element header with a
// 16-bit length field, followed by value.
func explicitElement(group, elem uint16, vrStr string, value []byte) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint16(b[0:2], group)
	binary.LittleEndian.PutUint16(b[2:4], elem)
	b[4], b[5] = vrStr[0], vrStr[1]
	binary.LittleEndian.PutUint16(b[6:8], uint16(len(value)))
	return append(b, value...)
}

func fileMetaBytes(transferSyntaxUID string) []byte {
	tsVal := []byte(transferSyntaxUID)
	if len(tsVal)%2 != 0 {
		tsVal = append(tsVal, 0)
	}
	body := explicitElement(0x0002, 0x0010, "UI", tsVal)

	groupLen := make([]byte, 8)
	binary.LittleEndian.PutUint16(groupLen[0:2], 0x0002)
	binary.LittleEndian.PutUint16(groupLen[2:4], 0x0000)
	groupLen[4], groupLen[5] = 'U', 'L'
	binary.LittleEndian.PutUint16(groupLen[6:8], 4)
	var lenVal [4]byte
	binary.LittleEndian.PutUint32(lenVal[:], uint32(len(body)))

	out := append(groupLen, lenVal[:]...)
	return append(out, body...)
}

func TestReader_MissingDICMMagicIsMalformed(t *testing.T) {
	r := newReader(t)
	raw := append(make([]byte, 128), []byte("XXXX")...)
	require.NoError(t, r.WriteBytes(raw, true))

	_, err := r.ReadTokens()
	require.Error(t, err)
	assert.True(t, dcmerror.Is(err, dcmerror.MalformedData))
}

func TestReader_PartialPreambleBlocksOnDataRequired(t *testing.T) {
	r := newReader(t)
	raw := preambleAndMagic()
	require.NoError(t, r.WriteBytes(raw[:100], false))

	_, err := r.ReadTokens()
	require.Error(t, err)
	assert.True(t, dcmerror.Is(err, dcmerror.DataRequired))

	require.NoError(t, r.WriteBytes(raw[100:], true))
	toks, err := r.ReadTokens()
	require.NotEmpty(t, toks, "the preamble token should be produced even though the stream ends right after it")
	if err != nil {
		assert.True(t, dcmerror.Is(err, dcmerror.DataEndedUnexpectedly))
	}
}

func TestReader_WriteAfterCompletionIsRejected(t *testing.T) {
	r := newReader(t)
	require.NoError(t, r.WriteBytes(nil, true))
	err := r.WriteBytes([]byte("more"), true)
	require.Error(t, err)
	assert.True(t, dcmerror.Is(err, dcmerror.WriteAfterCompletion))
}

func TestReader_UnsupportedTransferSyntaxIsRejected(t *testing.T) {
	r := newReader(t)
	var raw []byte
	raw = append(raw, preambleAndMagic()...)
	raw = append(raw, fileMetaBytes("9.9.9.9.9.9")...)
	require.NoError(t, r.WriteBytes(raw, true))

	_, err := r.ReadTokens()
	require.Error(t, err)
	assert.True(t, dcmerror.Is(err, dcmerror.UnsupportedTransferSyntax))
}
