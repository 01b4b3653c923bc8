package clip

import (
	"errors"
	"io"
	"os"
	"strings"

	osc52 "github.com/aymanbagabas/go-osc52/v2"

	"go.klb.dev/cyoclip/internal/logging"
)

// openTerminal returns a writer on the controlling terminal: stderr when it
// is one, /dev/tty otherwise. Swapped out in tests.
var openTerminal = func() (io.WriteCloser, error) {
	if logging.IsTTY(os.Stderr) {
		return nopCloser{os.Stderr}, nil
	}
	f, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return nil, errors.New("no controlling terminal for OSC 52")
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// newOSC52 returns a backend that asks the terminal emulator to set the
// clipboard. It works across SSH, but only with terminals that honor OSC 52.
func newOSC52() (Backend, error) {
	w, err := openTerminal()
	if err != nil {
		return nil, err
	}
	_ = w.Close()

	return &portable{
		name: "terminal (OSC 52)",
		write: func(text []byte) error {
			w, err := openTerminal()
			if err != nil {
				return err
			}
			defer w.Close()
			_, err = osc52Sequence(string(text), os.Getenv("TMUX"), os.Getenv("TERM")).WriteTo(w)
			return err
		},
	}, nil
}

// osc52Sequence wraps the escape for tmux or screen when running inside one.
func osc52Sequence(text, tmux, term string) osc52.Sequence {
	seq := osc52.New(text)
	switch {
	case tmux != "":
		seq = seq.Tmux()
	case strings.HasPrefix(term, "screen"):
		seq = seq.Screen()
	}
	return seq
}
