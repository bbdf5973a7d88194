package httpclient

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// DecodeBody converts response bytes to a string. Invalid UTF-8 sequences
// are replaced with U+FFFD; decoding never fails.
func DecodeBody(body []byte) string {
	if utf8.Valid(body) {
		return string(body)
	}
	decoded, err := unicode.UTF8.NewDecoder().Bytes(body)
	if err != nil {
		// []rune conversion also maps each invalid byte to U+FFFD
		return string([]rune(string(body)))
	}
	return string(decoded)
}
