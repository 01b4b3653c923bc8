package clip

import (
	"errors"
	"fmt"

	"go.klb.dev/cyoclip/internal/bom"
)

var (
	errNotOpen     = errors.New("clipboard not open")
	errAlreadyOpen = errors.New("clipboard already open")
	errReleased    = errors.New("transfer block already released")
)

// heapBlock is a private copy of the payload. It serves backends whose
// platform API copies the text itself.
type heapBlock struct {
	data     []byte
	freed    bool
	accepted bool
}

func newHeapBlock(payload []byte) *heapBlock {
	data := make([]byte, len(payload))
	copy(data, payload)
	return &heapBlock{data: data}
}

func (b *heapBlock) Len() int { return len(b.data) }

func (b *heapBlock) Free() error {
	if b.accepted || b.freed {
		return nil
	}
	b.freed = true
	b.data = nil
	return nil
}

// portable adapts a "write this UTF-8 text" function to the Backend
// protocol. Open and Close only guard the session; Empty has nothing to do
// because every write replaces the whole clipboard.
type portable struct {
	name  string
	write func(text []byte) error
	open  bool
}

func (p *portable) Name() string { return p.name }

func (p *portable) Alloc(payload []byte) (Block, error) {
	return newHeapBlock(payload), nil
}

func (p *portable) Open() error {
	if p.open {
		return errAlreadyOpen
	}
	p.open = true
	return nil
}

func (p *portable) Empty() error {
	if !p.open {
		return errNotOpen
	}
	return nil
}

func (p *portable) SetText(b Block, enc bom.Encoding) error {
	if !p.open {
		return errNotOpen
	}
	hb, ok := b.(*heapBlock)
	if !ok {
		return fmt.Errorf("%s: foreign transfer block %T", p.name, b)
	}
	if hb.freed {
		return errReleased
	}
	text, err := enc.ToUTF8(hb.data)
	if err != nil {
		return err
	}
	if err := p.write(text); err != nil {
		return err
	}
	hb.accepted = true
	return nil
}

func (p *portable) Close() error {
	if !p.open {
		return errNotOpen
	}
	p.open = false
	return nil
}
