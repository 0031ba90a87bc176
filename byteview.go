package vectorview

import (
	"bytes"

	"github.com/pkg/errors"
)

// ByteView holds a read-only view of bytes owned by someone else.
type ByteView struct {
	v View[byte, uint]
}

// NewByteView aliases b; later writes to b show through the view.
func NewByteView(b []byte) ByteView {
	return ByteView{v: FromSlice[byte, uint](b)}
}

func (b ByteView) Len() int {
	return int(b.v.Size())
}

// At returns the byte at i, or ErrOutOfRange.
func (b ByteView) At(i int) (byte, error) {
	if i < 0 {
		return 0, errors.Wrapf(ErrOutOfRange, "index %d, size %d", i, b.Len())
	}
	return b.v.At(uint(i))
}

// View exposes the underlying generic view.
func (b ByteView) View() View[byte, uint] {
	return b.v
}

// ByteSlice returns a copy to prevent external mutation.
func (b ByteView) ByteSlice() []byte {
	return cloneBytes(b.bytes())
}

func (b ByteView) String() string {
	return string(b.bytes())
}

func (b ByteView) Equal(other ByteView) bool {
	return bytes.Equal(b.bytes(), other.bytes())
}

func (b ByteView) bytes() []byte {
	return elems(b.v.Data(), b.v.Size())
}

func cloneBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
