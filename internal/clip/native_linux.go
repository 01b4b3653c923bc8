//go:build linux && !android

package clip

import (
	"context"
	"errors"
	"log/slog"

	"golang.design/x/clipboard"
)

// x11Backend owns the CLIPBOARD selection through golang.design/x/clipboard.
// X11 serves a selection from the owning process, so the content disappears
// when cyoclip exits unless the caller holds it.
type x11Backend struct {
	portable
	changed <-chan struct{}
}

// newNative returns the X11 backend, or an error when no display is
// reachable or cyoclip was built without cgo.
func newNative() (Backend, error) {
	if err := clipboard.Init(); err != nil {
		return nil, err
	}
	b := &x11Backend{}
	b.portable = portable{
		name: "X11 selection",
		write: func(text []byte) error {
			ch := clipboard.Write(clipboard.FmtText, text)
			if ch == nil {
				return errors.New("selection write rejected")
			}
			b.changed = ch
			return nil
		},
	}
	return b, nil
}

// Hold serves the selection until another client takes it over.
func (b *x11Backend) Hold(ctx context.Context) error {
	if b.changed == nil {
		return nil
	}
	slog.Debug("holding selection", "backend", b.name)
	select {
	case <-b.changed:
		slog.Debug("selection taken over")
		return nil
	case <-ctx.Done():
		slog.Debug("stopped holding selection", "reason", context.Cause(ctx))
		return nil
	}
}
