//go:build darwin

package clip

import (
	"errors"

	"golang.design/x/clipboard"
)

// newNative returns the macOS NSPasteboard backend. The pasteboard keeps
// its content after cyoclip exits.
func newNative() (Backend, error) {
	if err := clipboard.Init(); err != nil {
		return nil, err
	}
	return &portable{
		name: "macOS NSPasteboard",
		write: func(text []byte) error {
			if clipboard.Write(clipboard.FmtText, text) == nil {
				return errors.New("pasteboard write rejected")
			}
			return nil
		},
	}, nil
}
