//go:build windows

package clip

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"go.klb.dev/cyoclip/internal/bom"
)

const (
	cfText        = 1  // CF_TEXT
	cfUnicodeText = 13 // CF_UNICODETEXT
	gmemMoveable  = 0x0002
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procOpenClipboard    = user32.NewProc("OpenClipboard")
	procEmptyClipboard   = user32.NewProc("EmptyClipboard")
	procSetClipboardData = user32.NewProc("SetClipboardData")
	procCloseClipboard   = user32.NewProc("CloseClipboard")

	procGlobalAlloc  = kernel32.NewProc("GlobalAlloc")
	procGlobalLock   = kernel32.NewProc("GlobalLock")
	procGlobalUnlock = kernel32.NewProc("GlobalUnlock")
	procGlobalFree   = kernel32.NewProc("GlobalFree")
	procMoveMemory   = kernel32.NewProc("RtlMoveMemory")
)

// globalBlock is a movable HGLOBAL. SetClipboardData takes ownership of it.
type globalBlock struct {
	h        windows.Handle
	n        int
	accepted bool
}

func (b *globalBlock) Len() int { return b.n }

func (b *globalBlock) Free() error {
	if b.accepted || b.h == 0 {
		return nil
	}
	if r, _, err := procGlobalFree.Call(uintptr(b.h)); r != 0 {
		return fmt.Errorf("GlobalFree: %w", err)
	}
	b.h = 0
	return nil
}

type windowsBackend struct{}

// newNative returns the Win32 clipboard backend.
func newNative() (Backend, error) {
	if err := user32.Load(); err != nil {
		return nil, err
	}
	if err := kernel32.Load(); err != nil {
		return nil, err
	}
	return &windowsBackend{}, nil
}

func (windowsBackend) Name() string { return "Windows Clipboard" }

func (windowsBackend) Alloc(payload []byte) (Block, error) {
	n := len(payload)
	h, _, err := procGlobalAlloc.Call(gmemMoveable, uintptr(n))
	if h == 0 {
		return nil, newError(KindAllocation, "unable to allocate memory", err)
	}
	b := &globalBlock{h: windows.Handle(h), n: n}

	// A zero-size movable block is allocated discarded and cannot be
	// locked; there is nothing to copy into it anyway.
	if n == 0 {
		return b, nil
	}

	p, _, err := procGlobalLock.Call(h)
	if p == 0 {
		_ = b.Free()
		return nil, newError(KindAllocation, "unable to lock memory", err)
	}
	// p stays a uintptr; RtlMoveMemory copies through it.
	procMoveMemory.Call(p, uintptr(unsafe.Pointer(&payload[0])), uintptr(n))
	procGlobalUnlock.Call(h)
	return b, nil
}

func (windowsBackend) Open() error {
	if r, _, err := procOpenClipboard.Call(0); r == 0 {
		return err
	}
	return nil
}

func (windowsBackend) Empty() error {
	if r, _, err := procEmptyClipboard.Call(); r == 0 {
		return err
	}
	return nil
}

func (windowsBackend) SetText(b Block, enc bom.Encoding) error {
	gb, ok := b.(*globalBlock)
	if !ok {
		return fmt.Errorf("foreign transfer block %T", b)
	}
	if gb.h == 0 {
		return errReleased
	}
	format := uintptr(cfText)
	if enc.Wide() {
		format = cfUnicodeText
	}
	if r, _, err := procSetClipboardData.Call(format, uintptr(gb.h)); r == 0 {
		return err
	}
	gb.accepted = true
	return nil
}

func (windowsBackend) Close() error {
	if r, _, err := procCloseClipboard.Call(); r == 0 {
		return err
	}
	return nil
}
