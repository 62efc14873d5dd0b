package report

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
)

// appendFloat appends the shortest round-trip text of a finite f: a trailing
// ".0" on integral values and exponent form outside [1e-4, 1e16), so 5 is
// "5.0", 0.3 is "0.3" and 0.00001 is "1e-05".
func appendFloat(dst []byte, f float64) []byte {
	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp, _ := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return append(dst, sci...)
	}
	start := len(dst)
	dst = strconv.AppendFloat(dst, f, 'f', -1, 64)
	if bytes.IndexByte(dst[start:], '.') < 0 {
		dst = append(dst, ".0"...)
	}
	return dst
}

// textFloat renders f for the row format; non-finite values are nan, inf and -inf.
func textFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return string(appendFloat(nil, f))
}

// appendJSONFloat writes f as a document number. Non-finite values use the
// bare NaN, Infinity and -Infinity literals.
func appendJSONFloat(dst []byte, f float64) []byte {
	switch {
	case math.IsNaN(f):
		return append(dst, "NaN"...)
	case math.IsInf(f, 1):
		return append(dst, "Infinity"...)
	case math.IsInf(f, -1):
		return append(dst, "-Infinity"...)
	}
	return appendFloat(dst, f)
}

func textBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

const hexDigits = "0123456789abcdef"

// appendJSONString appends s as a quoted, ASCII-only JSON string. Runes from
// DEL upward become \uXXXX escapes, as surrogate pairs outside the BMP.
func appendJSONString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for _, r := range s {
		switch r {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		default:
			switch {
			case r < 0x20, r >= 0x7f && r <= 0xffff:
				dst = appendUnicodeEscape(dst, r)
			case r > 0xffff:
				hi, lo := utf16.EncodeRune(r)
				dst = appendUnicodeEscape(appendUnicodeEscape(dst, hi), lo)
			default:
				dst = append(dst, byte(r))
			}
		}
	}
	return append(dst, '"')
}

func appendUnicodeEscape(dst []byte, r rune) []byte {
	return append(dst, '\\', 'u',
		hexDigits[r>>12&0xf], hexDigits[r>>8&0xf], hexDigits[r>>4&0xf], hexDigits[r&0xf])
}
