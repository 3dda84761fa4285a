package strutil

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

const upperHex = "0123456789ABCDEF"

// EncodeURL form-encodes s using its UTF-8 bytes.
//
// Letters, digits and ".-*_" pass through, a space becomes '+', and every
// other byte becomes %XX with upper-case hex. This is the
// application/x-www-form-urlencoded flavour, which differs from
// url.QueryEscape in leaving '*' alone and escaping '~'.
func EncodeURL(s string) string {
	return formEncode([]byte(s))
}

// EncodeURLISO form-encodes s after converting it to ISO-8859-1. Some older
// servers expect Latin-1 for umlauts. Characters outside Latin-1 are sent as
// '?'.
func EncodeURLISO(s string) string {
	b := make([]byte, 0, len(s))
	for _, r := range s {
		c, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			c = '?'
		}
		b = append(b, c)
	}
	return formEncode(b)
}

// DecodeURL reverses EncodeURL. Byte sequences that are not valid UTF-8 are
// replaced with U+FFFD.
func DecodeURL(s string) (string, error) {
	raw, err := url.QueryUnescape(s)
	if err != nil {
		return "", fmt.Errorf("failed to decode url: %w", err)
	}
	return strings.ToValidUTF8(raw, "\uFFFD"), nil
}

// DecodeURLISO reverses EncodeURLISO, reading each decoded byte as a Latin-1
// character.
func DecodeURLISO(s string) (string, error) {
	raw, err := url.QueryUnescape(s)
	if err != nil {
		return "", fmt.Errorf("failed to decode url: %w", err)
	}
	out, err := charmap.ISO8859_1.NewDecoder().String(raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode latin-1: %w", err)
	}
	return out, nil
}

func formEncode(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9',
			c == '.', c == '-', c == '*', c == '_':
			sb.WriteByte(c)
		case c == ' ':
			sb.WriteByte('+')
		default:
			sb.WriteByte('%')
			sb.WriteByte(upperHex[c>>4])
			sb.WriteByte(upperHex[c&0x0f])
		}
	}
	return sb.String()
}
