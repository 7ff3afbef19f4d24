package dictionary

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordtiles/internal/model"
)

func TestParseEncoding(t *testing.T) {
	for _, s := range []string{"", "utf-8", "UTF8"} {
		enc, err := ParseEncoding(s)
		require.NoError(t, err)
		assert.Equal(t, EncodingUTF8, enc)
	}
	for _, s := range []string{"iso-8859-1", "Latin1", "latin-1"} {
		enc, err := ParseEncoding(s)
		require.NoError(t, err)
		assert.Equal(t, EncodingLatin1, enc)
	}

	_, err := ParseEncoding("ebcdic")
	assert.ErrorIs(t, err, model.ErrUnknownEncoding)
}

func TestReadWordsUTF8(t *testing.T) {
	words, err := ReadWords(strings.NewReader("zèbre\n\n  mot \nété\n"), EncodingUTF8)
	require.NoError(t, err)
	assert.Equal(t, []string{"zèbre", "mot", "été"}, words)
}

func TestReadWordsLatin1(t *testing.T) {
	// "café\nété\n" in ISO-8859-1
	raw := []byte{'c', 'a', 'f', 0xE9, '\n', 0xE9, 't', 0xE9, '\n'}

	words, err := ReadWords(bytes.NewReader(raw), EncodingLatin1)
	require.NoError(t, err)
	assert.Equal(t, []string{"café", "été"}, words)
}

func TestReadWordsUnknownEncoding(t *testing.T) {
	_, err := ReadWords(strings.NewReader("mot\n"), Encoding("koi8-r"))
	assert.ErrorIs(t, err, model.ErrUnknownEncoding)
}

func TestFingerprintIsOrderSensitive(t *testing.T) {
	a := Fingerprint([]string{"ab", "ba"})
	b := Fingerprint([]string{"ba", "ab"})

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, Fingerprint([]string{"ab", "ba"}))
	// Line framing keeps word boundaries apart
	assert.NotEqual(t, Fingerprint([]string{"abc"}), Fingerprint([]string{"ab", "c"}))
}
