package converter

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// decodeText interprets raw input bytes as UTF-8, falling back to ISO-8859-1
// when the bytes are not valid UTF-8. There is no further fallback chain:
// those two encodings cover the overwhelming majority of HTML sources in the
// wild, and ISO-8859-1 accepts any byte sequence.
func decodeText(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode input as ISO-8859-1: %w", err)
	}
	return string(decoded), nil
}
