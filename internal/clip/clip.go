// Package clip places text on the system clipboard. Build constraints select
// the native backend:
//
//	native_windows.go  Win32 via golang.org/x/sys/windows (GlobalAlloc + SetClipboardData)
//	native_darwin.go   macOS via golang.design/x/clipboard
//	native_linux.go    X11 via golang.design/x/clipboard
//	native_other.go    unsupported stub
//
// Portable backends work everywhere the tools behind them do:
//
//	command.go         pbcopy / xclip / xsel / wl-copy / clip via github.com/atotto/clipboard
//	osc52.go           terminal OSC 52 escape via github.com/aymanbagabas/go-osc52/v2
package clip

import (
	"context"
	"log/slog"

	"go.klb.dev/cyoclip/internal/bom"
)

// Backend is the narrow interface every clipboard implementation satisfies.
// Open, Empty, SetText and Close map one-to-one onto the platform's
// exclusive-access protocol; Replace drives them in order.
type Backend interface {
	// Name returns a human-readable name for the backend.
	Name() string

	// Alloc returns a block of exactly len(payload) bytes holding a copy of
	// payload, in memory the clipboard can take ownership of.
	Alloc(payload []byte) (Block, error)

	// Open takes exclusive ownership of the clipboard.
	Open() error

	// Empty clears every format currently on the clipboard.
	Empty() error

	// SetText installs b as the clipboard's text. enc picks the wide or
	// narrow text format. On success the clipboard owns b.
	SetText(b Block, enc bom.Encoding) error

	// Close releases ownership taken by Open.
	Close() error
}

// Block is a payload staged for the clipboard.
type Block interface {
	// Len is the payload size in bytes.
	Len() int

	// Free releases the block. Once the clipboard has accepted the block it
	// belongs to the clipboard and Free does nothing.
	Free() error
}

// Holder is implemented by backends whose clipboard content only lives as
// long as the writing process (an X11 selection owner, for instance). Hold
// blocks until another application takes the clipboard or ctx is done.
type Holder interface {
	Hold(ctx context.Context) error
}

// Prepare stages the payload of data, i.e. data minus the enc marker, in a
// block allocated by be.
func Prepare(be Backend, data []byte, enc bom.Encoding) (Block, error) {
	offset := enc.MarkerLen()
	if offset > len(data) {
		return nil, newError(KindAllocation, "marker exceeds input", nil)
	}
	return be.Alloc(data[offset:])
}

// Replace opens the clipboard, empties it, installs b and closes it again.
// The clipboard is closed on every path out once Open has succeeded. If
// Replace fails the caller still owns b.
func Replace(be Backend, b Block, enc bom.Encoding) error {
	if err := be.Open(); err != nil {
		return newError(KindUnavailable, "unable to open clipboard", err)
	}
	defer func() {
		if err := be.Close(); err != nil {
			slog.Warn("clipboard close failed", "backend", be.Name(), "err", err)
		}
	}()

	if err := be.Empty(); err != nil {
		return newError(KindUnavailable, "unable to empty clipboard", err)
	}
	if err := be.SetText(b, enc); err != nil {
		return newError(KindInstall, "unable to set clipboard data", err)
	}
	return nil
}

// Copy detects the encoding of data and puts its payload on the clipboard.
func Copy(be Backend, data []byte) (bom.Encoding, error) {
	enc := bom.Detect(data)
	b, err := Prepare(be, data, enc)
	if err != nil {
		return enc, err
	}
	if err := Replace(be, b, enc); err != nil {
		if ferr := b.Free(); ferr != nil {
			slog.Warn("free transfer block", "backend", be.Name(), "err", ferr)
		}
		return enc, err
	}
	LogPayload(be.Name(), enc, enc.Payload(data))
	return enc, nil
}
