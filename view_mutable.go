package vectorview

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// MutableView is a View that may also modify the elements it refers to.
// Its size and base never change.
type MutableView[T any, S constraints.Unsigned] struct {
	data *T
	size S
}

// NewMutable returns a mutable view of size elements starting at data.
func NewMutable[T any, S constraints.Unsigned](data *T, size S) MutableView[T, S] {
	return MutableView[T, S]{data: data, size: size}
}

// MutableFromSlice captures the current base address and length of s.
func MutableFromSlice[T any, S constraints.Unsigned](s []T) MutableView[T, S] {
	v := FromSlice[T, S](s)
	return MutableView[T, S]{data: v.data, size: v.size}
}

// View narrows m to a read-only view of the same buffer and size.
func (m MutableView[T, S]) View() View[T, S] {
	return View[T, S]{data: m.data, size: m.size}
}

// Index reads the element at i without the ErrOutOfRange check.
func (m MutableView[T, S]) Index(i S) T {
	return elems(m.data, m.size)[i]
}

// Ref returns a writable reference to the element at i without the
// ErrOutOfRange check.
func (m MutableView[T, S]) Ref(i S) *T {
	return &elems(m.data, m.size)[i]
}

// Set stores x at i without the ErrOutOfRange check.
func (m MutableView[T, S]) Set(i S, x T) {
	elems(m.data, m.size)[i] = x
}

// At returns the element at i, or ErrOutOfRange if i >= Size().
func (m MutableView[T, S]) At(i S) (T, error) {
	return m.View().At(i)
}

// RefAt returns a writable reference to the element at i, or ErrOutOfRange
// if i >= Size().
func (m MutableView[T, S]) RefAt(i S) (*T, error) {
	if i >= m.size {
		return nil, overrun(i, m.size)
	}
	return &elems(m.data, m.size)[i], nil
}

func (m MutableView[T, S]) Data() *T { return m.data }

func (m MutableView[T, S]) Size() S { return m.size }

func (m MutableView[T, S]) Empty() bool { return m.size == 0 }

func (m MutableView[T, S]) String() string {
	return fmt.Sprintf("MutableView[size=%d]", m.size)
}
