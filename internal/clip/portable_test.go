package clip

import (
	"bytes"
	"encoding/base64"
	"errors"
	"io"
	"strings"
	"testing"

	atotto "github.com/atotto/clipboard"

	"go.klb.dev/cyoclip/internal/bom"
)

func newRecorder() (*portable, *[][]byte) {
	var writes [][]byte
	return &portable{
		name: "recorder",
		write: func(text []byte) error {
			writes = append(writes, append([]byte{}, text...))
			return nil
		},
	}, &writes
}

func TestPortableCopy(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"empty", nil, ""},
		{"plain", []byte("Hello"), "Hello"},
		{"utf8 marker stripped", []byte{0xEF, 0xBB, 0xBF, 'H', 'i'}, "Hi"},
		{"utf16le decoded", []byte{0xFF, 0xFE, 0x48, 0x00, 0x65, 0x00}, "He"},
		{"utf16be decoded", []byte{0xFE, 0xFF, 0x00, 0x48, 0x00, 0x65}, "He"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, writes := newRecorder()
			if _, err := Copy(p, tt.in); err != nil {
				t.Fatalf("Copy: %v", err)
			}
			if len(*writes) != 1 {
				t.Fatalf("writes = %d, want 1", len(*writes))
			}
			if got := string((*writes)[0]); got != tt.want {
				t.Errorf("written = %q, want %q", got, tt.want)
			}
			if p.open {
				t.Error("session left open")
			}
		})
	}
}

func TestPortableSessionGuard(t *testing.T) {
	p, _ := newRecorder()
	b, _ := p.Alloc([]byte("x"))

	if err := p.Empty(); !errors.Is(err, errNotOpen) {
		t.Errorf("Empty before Open = %v, want %v", err, errNotOpen)
	}
	if err := p.SetText(b, bom.Narrow); !errors.Is(err, errNotOpen) {
		t.Errorf("SetText before Open = %v, want %v", err, errNotOpen)
	}
	if err := p.Open(); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := p.Open(); !errors.Is(err, errAlreadyOpen) {
		t.Errorf("second Open = %v, want %v", err, errAlreadyOpen)
	}
	if err := p.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if err := p.Close(); !errors.Is(err, errNotOpen) {
		t.Errorf("second Close = %v, want %v", err, errNotOpen)
	}
}

func TestHeapBlockOwnership(t *testing.T) {
	src := []byte("payload")
	b := newHeapBlock(src)
	src[0] = 'X'
	if string(b.data) != "payload" {
		t.Errorf("block aliases its source: %q", b.data)
	}

	p, _ := newRecorder()
	_ = p.Open()
	if err := p.SetText(b, bom.Narrow); err != nil {
		t.Fatalf("SetText: %v", err)
	}
	_ = b.Free()
	if b.data == nil {
		t.Error("Free released a block the clipboard owns")
	}

	freed := newHeapBlock([]byte("gone"))
	_ = freed.Free()
	if err := p.SetText(freed, bom.Narrow); !errors.Is(err, errReleased) {
		t.Errorf("SetText(freed) = %v, want %v", err, errReleased)
	}
}

func TestPortableWriteFailureFreesBlock(t *testing.T) {
	boom := errors.New("xclip exited 1")
	p := &portable{name: "broken", write: func([]byte) error { return boom }}

	b, err := Prepare(p, []byte("hello"), bom.Narrow)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	err = Replace(p, b, bom.Narrow)
	if !errors.Is(err, ErrInstall) || !errors.Is(err, boom) {
		t.Fatalf("Replace = %v, want install failure wrapping %v", err, boom)
	}
	if p.open {
		t.Error("session left open after failed install")
	}

	if _, err := Copy(p, []byte("hello")); err == nil {
		t.Fatal("Copy: expected error")
	}
}

func TestPortableForeignBlock(t *testing.T) {
	p, _ := newRecorder()
	_ = p.Open()
	if err := p.SetText(&fakeBlock{}, bom.Narrow); err == nil {
		t.Error("SetText accepted a block from another backend")
	}
}

func TestCommandBackend(t *testing.T) {
	if atotto.Unsupported {
		t.Skip("no clipboard utility on this host")
	}
	var got string
	saved := writeAll
	writeAll = func(s string) error { got = s; return nil }
	t.Cleanup(func() { writeAll = saved })

	be, err := newCommand()
	if err != nil {
		t.Fatalf("newCommand: %v", err)
	}
	if _, err := Copy(be, []byte{0xFF, 0xFE, 'o', 0, 'k', 0}); err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if got != "ok" {
		t.Errorf("utility received %q, want %q", got, "ok")
	}
}

type bufTerminal struct{ bytes.Buffer }

func (*bufTerminal) Close() error { return nil }

func TestOSC52Backend(t *testing.T) {
	t.Setenv("TMUX", "")
	t.Setenv("TERM", "xterm-256color")

	term := &bufTerminal{}
	saved := openTerminal
	openTerminal = func() (io.WriteCloser, error) { return term, nil }
	t.Cleanup(func() { openTerminal = saved })

	be, err := newOSC52()
	if err != nil {
		t.Fatalf("newOSC52: %v", err)
	}
	if _, err := Copy(be, []byte{0xEF, 0xBB, 0xBF, 'H', 'i'}); err != nil {
		t.Fatalf("Copy: %v", err)
	}
	want := "]52;c;" + base64.StdEncoding.EncodeToString([]byte("Hi"))
	if !strings.Contains(term.String(), want) {
		t.Errorf("terminal got %q, want it to contain %q", term.String(), want)
	}
}

func TestOSC52NoTerminal(t *testing.T) {
	saved := openTerminal
	openTerminal = func() (io.WriteCloser, error) { return nil, errors.New("no tty") }
	t.Cleanup(func() { openTerminal = saved })

	if _, err := newOSC52(); err == nil {
		t.Error("newOSC52 succeeded without a terminal")
	}
}

func TestOSC52Multiplexers(t *testing.T) {
	plain := osc52Sequence("x", "", "xterm").String()
	tmux := osc52Sequence("x", "/tmp/tmux-1000/default,1,0", "screen").String()
	screen := osc52Sequence("x", "", "screen.xterm-256color").String()

	if !strings.HasPrefix(plain, "\x1b]52;") {
		t.Errorf("plain = %q, want a bare OSC 52", plain)
	}
	if !strings.HasPrefix(tmux, "\x1bPtmux;") {
		t.Errorf("tmux = %q, want tmux passthrough", tmux)
	}
	if !strings.HasPrefix(screen, "\x1bP") || strings.HasPrefix(screen, "\x1bPtmux;") {
		t.Errorf("screen = %q, want screen DCS passthrough", screen)
	}
}
