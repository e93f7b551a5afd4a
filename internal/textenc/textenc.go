// Package textenc normalizes raw document bytes to validator-ready text.
package textenc

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/eykd/mdvet-go/internal/domain"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Normalize decodes raw bytes into validator-ready text: UTF-16 input is
// converted to UTF-8 (BOM-sniffed), a leading UTF-8 BOM is stripped, and
// CRLF/CR line endings become LF. Input that is not text (NUL bytes,
// invalid UTF-8) fails with an error wrapping domain.ErrInvalidInput.
func Normalize(data []byte) (string, error) {
	decoded, err := decode(data)
	if err != nil {
		return "", err
	}

	if bytes.IndexByte(decoded, 0) >= 0 {
		return "", fmt.Errorf("document contains NUL bytes: %w", domain.ErrInvalidInput)
	}
	if !utf8.Valid(decoded) {
		return "", fmt.Errorf("document is not valid UTF-8: %w", domain.ErrInvalidInput)
	}

	text := strings.ReplaceAll(string(decoded), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return text, nil
}

// decode converts BOM-marked UTF-16 input to UTF-8 and strips a UTF-8 BOM.
func decode(data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return data[len(bomUTF8):], nil
	case bytes.HasPrefix(data, bomUTF16LE), bytes.HasPrefix(data, bomUTF16BE):
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		out, _, err := transform.Bytes(dec, data)
		if err != nil {
			return nil, fmt.Errorf("decoding UTF-16: %w", domain.ErrInvalidInput)
		}
		return out, nil
	default:
		return data, nil
	}
}
