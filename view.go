// Package vectorview provides non-owning views over contiguous memory.
//
// A view is a (base pointer, length) pair. It never allocates, copies or
// frees the elements it points at, and it does not track the lifetime of the
// buffer: keeping the buffer alive and unchanged in length is up to the
// caller. Views are not synchronized.
package vectorview

import (
	"fmt"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// ErrOutOfRange is returned by the checked accessors when the index is not
// below the view size.
var ErrOutOfRange = errors.New("buffer overrun")

// View is a read-only window onto caller-owned contiguous storage.
type View[T any, S constraints.Unsigned] struct {
	data *T
	size S
}

// New returns a view of size elements starting at data.
// The pointer is not validated.
func New[T any, S constraints.Unsigned](data *T, size S) View[T, S] {
	return View[T, S]{data: data, size: size}
}

// FromSlice captures the current base address and length of s.
// Growing s afterwards may leave the view pointing at the old array.
func FromSlice[T any, S constraints.Unsigned](s []T) View[T, S] {
	return View[T, S]{data: unsafe.SliceData(s), size: sizeOf[S](len(s))}
}

// Index returns the element at i without the ErrOutOfRange check.
// An index past the end panics.
func (v View[T, S]) Index(i S) T {
	return elems(v.data, v.size)[i]
}

// At returns the element at i, or ErrOutOfRange if i >= Size().
func (v View[T, S]) At(i S) (T, error) {
	if i >= v.size {
		var zero T
		return zero, overrun(i, v.size)
	}
	return elems(v.data, v.size)[i], nil
}

// Data returns the base pointer. Callers must not write through it.
func (v View[T, S]) Data() *T { return v.data }

// Size returns the number of elements visible through the view.
func (v View[T, S]) Size() S { return v.size }

func (v View[T, S]) Empty() bool { return v.size == 0 }

func (v View[T, S]) String() string {
	return fmt.Sprintf("View[size=%d]", v.size)
}

func elems[T any, S constraints.Unsigned](data *T, size S) []T {
	if data == nil {
		return nil
	}
	return unsafe.Slice(data, size)
}

// sizeOf converts a slice length to S, refusing lengths S cannot hold.
func sizeOf[S constraints.Unsigned](n int) S {
	s := S(n)
	if uint64(s) != uint64(n) {
		panic(fmt.Sprintf("vectorview: length %d does not fit in %T", n, s))
	}
	return s
}

func overrun[S constraints.Unsigned](i, size S) error {
	return errors.Wrapf(ErrOutOfRange, "index %d, size %d", i, size)
}
