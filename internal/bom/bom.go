// Package bom classifies a byte stream by its leading byte-order mark.
//
// Only the marker itself is inspected. Whatever follows it is assumed to be
// encoded as the marker declares and is never validated:
//
//	FF FE     utf-16le   wide,   marker 2
//	FE FF     utf-16be   wide,   marker 2
//	EF BB BF  utf-8-bom  narrow, marker 3
//	(other)   utf-8      narrow, marker 0
package bom

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

// Encoding is the text encoding declared by a byte-order mark.
type Encoding int

const (
	// Narrow is 8-bit text without a marker.
	Narrow Encoding = iota
	// NarrowMarked is 8-bit text led by EF BB BF.
	NarrowMarked
	// WideLE is 16-bit little-endian text led by FF FE.
	WideLE
	// WideBE is 16-bit big-endian text led by FE FF.
	WideBE
)

// Detect returns the encoding declared by the leading bytes of b.
// The wide markers are checked before the 3-byte narrow marker.
func Detect(b []byte) Encoding {
	if len(b) >= 2 {
		switch {
		case b[0] == 0xFF && b[1] == 0xFE:
			return WideLE
		case b[0] == 0xFE && b[1] == 0xFF:
			return WideBE
		}
	}
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return NarrowMarked
	}
	return Narrow
}

// Wide reports whether the text uses 16-bit code units.
func (e Encoding) Wide() bool { return e == WideLE || e == WideBE }

// MarkerLen returns the number of marker bytes preceding the payload.
func (e Encoding) MarkerLen() int {
	switch e {
	case WideLE, WideBE:
		return 2
	case NarrowMarked:
		return 3
	default:
		return 0
	}
}

// Payload returns b with the marker stripped. If b is shorter than the
// marker, the result is empty.
func (e Encoding) Payload(b []byte) []byte {
	n := e.MarkerLen()
	if n > len(b) {
		return b[len(b):]
	}
	return b[n:]
}

func (e Encoding) String() string {
	switch e {
	case Narrow:
		return "utf-8"
	case NarrowMarked:
		return "utf-8-bom"
	case WideLE:
		return "utf-16le"
	case WideBE:
		return "utf-16be"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

// ToUTF8 converts a marker-less payload to UTF-8 for clipboard APIs that only
// take UTF-8 strings. Narrow payloads are returned as they are.
func (e Encoding) ToUTF8(payload []byte) ([]byte, error) {
	var order unicode.Endianness
	switch e {
	case WideLE:
		order = unicode.LittleEndian
	case WideBE:
		order = unicode.BigEndian
	default:
		return payload, nil
	}
	out, err := unicode.UTF16(order, unicode.IgnoreBOM).NewDecoder().Bytes(payload)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", e, err)
	}
	return out, nil
}
