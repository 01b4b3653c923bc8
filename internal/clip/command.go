package clip

import (
	"errors"

	atotto "github.com/atotto/clipboard"
)

// writeAll is swapped out in tests.
var writeAll = atotto.WriteAll

// newCommand returns a backend that pipes text into the platform's clipboard
// utility (pbcopy, xclip, xsel, wl-copy, termux-clipboard-set or the Win32
// API on Windows). The utility keeps the content alive after cyoclip exits.
func newCommand() (Backend, error) {
	if atotto.Unsupported {
		return nil, errors.New("no clipboard utility found (install xclip, xsel or wl-clipboard)")
	}
	return &portable{
		name: "clipboard utility",
		write: func(text []byte) error {
			return writeAll(string(text))
		},
	}, nil
}
