package util

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
)

var indentRe = regexp.MustCompile("(?m)^")

func Indent(text string, indent string) string {
	if text == "" {
		return text
	}
	return indentRe.ReplaceAllString(text, indent)
}

func Hex(stream []uint8) string {
	if len(stream) == 0 {
		return "[]"
	}
	s := make([]string, len(stream))
	for i, b := range stream {
		s[i] = fmt.Sprintf("%02X", b)
	}
	return "[" + strings.Join(s, " ") + "]"
}

// DecodeLatin1 は、M8 の文字列バイト列を UTF-8 に変換します。
// 0x00-0xFF の全バイトが U+0000-U+00FF に一対一で対応するため、可逆です。
func DecodeLatin1(b []byte) string {
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(s)
}

// EncodeLatin1 は DecodeLatin1 の逆変換です。U+00FF を超える文字はエラーになります。
func EncodeLatin1(s string) ([]byte, error) {
	b, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, errors.Wrapf(err, "cannot encode %q", s)
	}
	return b, nil
}

// HexOr formats v as two hex digits, or dashes for the 0xFF sentinel.
func HexOr(v uint8, empty string) string {
	if v == 0xFF {
		return empty
	}
	return fmt.Sprintf("%02X", v)
}
