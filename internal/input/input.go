// Package input reads the bounded chunk of standard input that cyoclip puts
// on the clipboard.
package input

import (
	"fmt"
	"io"
	"os"
)

// MaxBytes is the most input cyoclip will consume (1 MiB).
const MaxBytes = 1 << 20

// Result is the outcome of a bounded read.
type Result struct {
	Data []byte
	// Truncated is set when the read stopped at the limit and the stream
	// holds, or may hold, more. The surplus is left unread.
	Truncated bool
}

// Read reads r until end of stream or until limit bytes have been read,
// whichever comes first. A limit <= 0 means MaxBytes. No byte past the
// limit is consumed.
//
// Whether a full read was cut short is asked of r without reading from it
// (see remaining). A pipe cannot answer, so a pipe that fills the limit
// exactly is reported as truncated.
func Read(r io.Reader, limit int64) (Result, error) {
	if limit <= 0 {
		limit = MaxBytes
	}
	data, err := io.ReadAll(io.LimitReader(r, limit))
	if err != nil {
		return Result{}, fmt.Errorf("read stdin: %w", err)
	}
	if int64(len(data)) < limit {
		return Result{Data: data}, nil
	}
	n, known := remaining(r)
	return Result{Data: data, Truncated: !known || n > 0}, nil
}

// remaining reports how many unread bytes r still holds, when r can tell.
func remaining(r io.Reader) (int64, bool) {
	switch s := r.(type) {
	case interface{ Len() int }:
		return int64(s.Len()), true
	case *os.File:
		fi, err := s.Stat()
		if err != nil || !fi.Mode().IsRegular() {
			return 0, false
		}
		off, err := s.Seek(0, io.SeekCurrent)
		if err != nil {
			return 0, false
		}
		return fi.Size() - off, true
	}
	return 0, false
}
