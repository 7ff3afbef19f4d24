package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/mcoot/wordtiles/internal/model"
)

// Encoding names the character set of a word list file
type Encoding string

const (
	EncodingUTF8   Encoding = "utf-8"
	EncodingLatin1 Encoding = "iso-8859-1"
)

// ParseEncoding accepts the usual spellings of the supported encodings
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "utf-8", "utf8":
		return EncodingUTF8, nil
	case "iso-8859-1", "iso8859-1", "latin1", "latin-1":
		return EncodingLatin1, nil
	default:
		return "", fmt.Errorf("%w: %s", model.ErrUnknownEncoding, s)
	}
}

// ReadWords reads one word per line, skipping blank lines
func ReadWords(r io.Reader, enc Encoding) ([]string, error) {
	switch enc {
	case EncodingUTF8, "":
	case EncodingLatin1:
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	default:
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownEncoding, enc)
	}

	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
