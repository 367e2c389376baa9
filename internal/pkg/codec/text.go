package codec

import (
	"fmt"
	"unicode"

	"golang.org/x/text/encoding"
	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// TextEncoding selects how text is turned into bytes
type TextEncoding string

const (
	TextEncodingUTF8  TextEncoding = "UTF8"
	TextEncodingUTF16 TextEncoding = "UTF16"
	TextEncodingUTF32 TextEncoding = "UTF32"
	TextEncodingASCII TextEncoding = "ASCII"
)

// UTF-16 and UTF-32 are little endian without a byte order mark
func (e TextEncoding) encoding() (encoding.Encoding, error) {
	switch e {
	case TextEncodingUTF8, "":
		return xunicode.UTF8, nil
	case TextEncodingUTF16:
		return xunicode.UTF16(xunicode.LittleEndian, xunicode.IgnoreBOM), nil
	case TextEncodingUTF32:
		return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM), nil
	default:
		return nil, malformed("unknown text encoding %q", string(e))
	}
}

// asciiReplacer maps every non-ASCII rune to '?'
var asciiReplacer = runes.Map(func(r rune) rune {
	if r > unicode.MaxASCII {
		return '?'
	}
	return r
})

// EncodeText converts text into bytes with the selected encoding
func EncodeText(text string, enc TextEncoding) ([]byte, error) {
	if enc == TextEncodingASCII {
		out, _, err := transform.String(asciiReplacer, text)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
		}
		return []byte(out), nil
	}

	e, err := enc.encoding()
	if err != nil {
		return nil, err
	}
	out, err := e.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}
	return out, nil
}

// DecodeText converts bytes produced by EncodeText back into text
func DecodeText(data []byte, enc TextEncoding) (string, error) {
	if enc == TextEncodingASCII {
		out, _, err := transform.Bytes(asciiReplacer, data)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
		}
		return string(out), nil
	}

	e, err := enc.encoding()
	if err != nil {
		return "", err
	}
	out, err := e.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}
	return string(out), nil
}
