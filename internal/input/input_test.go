package input

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name      string
		in        []byte
		limit     int64
		wantLen   int
		truncated bool
	}{
		{"empty", nil, 8, 0, false},
		{"short", []byte("hello"), 8, 5, false},
		{"exactly full", []byte("12345678"), 8, 8, false},
		{"one over", []byte("123456789"), 8, 8, true},
		{"far over", bytes.Repeat([]byte{'x'}, 100), 8, 8, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Read(bytes.NewReader(tt.in), tt.limit)
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			if len(res.Data) != tt.wantLen {
				t.Errorf("len(Data) = %d, want %d", len(res.Data), tt.wantLen)
			}
			if res.Truncated != tt.truncated {
				t.Errorf("Truncated = %v, want %v", res.Truncated, tt.truncated)
			}
			if !bytes.Equal(res.Data, tt.in[:tt.wantLen]) {
				t.Errorf("Data = %q, want prefix %q", res.Data, tt.in[:tt.wantLen])
			}
		})
	}
}

func TestReadDefaultLimit(t *testing.T) {
	in := bytes.Repeat([]byte{'a'}, MaxBytes+1024)
	res, err := Read(bytes.NewReader(in), 0)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(res.Data) != MaxBytes {
		t.Errorf("len(Data) = %d, want %d", len(res.Data), MaxBytes)
	}
	if !res.Truncated {
		t.Error("Truncated = false, want true")
	}
}

// countingReader hides the concrete reader so Read cannot ask how much is
// left, and counts what was taken from it.
type countingReader struct {
	r io.Reader
	n int
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += n
	return n, err
}

func TestReadLeavesSurplusUnread(t *testing.T) {
	tests := []struct {
		name string
		in   string
		rest string
	}{
		{"over the limit", "abcdefghij", "efghij"},
		{"exactly full", "abcd", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cr := &countingReader{r: strings.NewReader(tt.in)}
			res, err := Read(cr, 4)
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			if cr.n != 4 {
				t.Errorf("consumed %d bytes, want 4", cr.n)
			}
			if string(res.Data) != "abcd" {
				t.Errorf("Data = %q, want %q", res.Data, "abcd")
			}
			// A plain stream cannot say whether it had more.
			if !res.Truncated {
				t.Error("Truncated = false, want true")
			}
			rest, _ := io.ReadAll(cr.r)
			if string(rest) != tt.rest {
				t.Errorf("remaining = %q, want %q", rest, tt.rest)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		truncated bool
	}{
		{"exactly full", "abcd", false},
		{"over the limit", "abcdefgh", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "in")
			if err := os.WriteFile(path, []byte(tt.in), 0o600); err != nil {
				t.Fatal(err)
			}
			f, err := os.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()

			res, err := Read(f, 4)
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			if res.Truncated != tt.truncated {
				t.Errorf("Truncated = %v, want %v", res.Truncated, tt.truncated)
			}
			off, _ := f.Seek(0, io.SeekCurrent)
			if off != 4 {
				t.Errorf("file offset = %d, want 4", off)
			}
		})
	}
}

type failingReader struct{ err error }

func (f failingReader) Read([]byte) (int, error) { return 0, f.err }

func TestReadError(t *testing.T) {
	boom := errors.New("broken pipe")
	_, err := Read(failingReader{err: boom}, 0)
	if err == nil {
		t.Fatal("Read: expected error")
	}
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, want wrapping %v", err, boom)
	}
}
