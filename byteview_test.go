package vectorview

import (
	"testing"

	"github.com/pkg/errors"
)

func TestByteViewAliasesInput(t *testing.T) {
	b := []byte("hello")
	bv := NewByteView(b)
	if bv.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", bv.Len())
	}
	b[0] = 'j'
	if got := bv.String(); got != "jello" {
		t.Fatalf("String() = %q, want jello", got)
	}
	if c, err := bv.At(0); err != nil || c != 'j' {
		t.Errorf("At(0) = %q, %v", c, err)
	}
}

func TestByteViewByteSliceCopies(t *testing.T) {
	b := []byte("abc")
	bv := NewByteView(b)
	out := bv.ByteSlice()
	out[0] = 'x'
	if b[0] != 'a' || bv.String() != "abc" {
		t.Fatal("ByteSlice should return a copy")
	}
}

func TestByteViewAtBounds(t *testing.T) {
	bv := NewByteView([]byte("ab"))
	for _, i := range []int{-1, 2, 10} {
		if _, err := bv.At(i); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("At(%d) error = %v, want ErrOutOfRange", i, err)
		}
	}
	if _, err := NewByteView(nil).At(0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("At(0) on empty view: %v", err)
	}
}

func TestByteViewEqual(t *testing.T) {
	a := NewByteView([]byte("same"))
	b := NewByteView([]byte("same"))
	c := NewByteView([]byte("diff"))
	if !a.Equal(b) {
		t.Error("equal contents should compare equal")
	}
	if a.Equal(c) {
		t.Error("different contents should not compare equal")
	}
	if !NewByteView(nil).Equal(NewByteView([]byte{})) {
		t.Error("empty views should compare equal")
	}
}

func TestByteViewGenericView(t *testing.T) {
	b := []byte{1, 2, 3}
	v := NewByteView(b).View()
	if v.Size() != 3 || v.Data() != &b[0] {
		t.Fatal("View() should alias the input")
	}
}
