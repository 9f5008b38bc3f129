package bitvec

import (
	"testing"
)

// expectPanic fails the test unless fn panics.
func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s should panic", name)
		}
	}()
	fn()
}

func TestNewAllocation(t *testing.T) {
	tests := []struct {
		width         uint64
		wantWords     uint64
		wantHeapWords int
	}{
		{0, 0, 0},
		{1, 1, 0},
		{3, 1, 0},
		{64, 1, 0},
		{255, 4, 0},
		{256, 4, 0},
		{257, 5, 1},
		{320, 5, 1},
		{1000, 16, 12},
	}
	for _, tt := range tests {
		v := New(tt.width)
		if v.Width() != tt.width {
			t.Errorf("New(%d).Width() = %d, want %d", tt.width, v.Width(), tt.width)
		}
		if v.NumWords() != tt.wantWords {
			t.Errorf("New(%d).NumWords() = %d, want %d", tt.width, v.NumWords(), tt.wantWords)
		}
		if v.HeapWords() != tt.wantHeapWords {
			t.Errorf("New(%d).HeapWords() = %d, want %d", tt.width, v.HeapWords(), tt.wantHeapWords)
		}
	}
}

func TestZeroValue(t *testing.T) {
	var v BitVector
	if v.Width() != 0 {
		t.Errorf("zero value Width() = %d, want 0", v.Width())
	}
	if v.NumWords() != 0 {
		t.Errorf("zero value NumWords() = %d, want 0", v.NumWords())
	}
	if v.OnesCount() != 0 {
		t.Errorf("zero value OnesCount() = %d, want 0", v.OnesCount())
	}
	if got := v.Text(2); got != "" {
		t.Errorf("zero value Text(2) = %q, want empty", got)
	}
	other := New(0)
	if !v.Equal(other) {
		t.Errorf("zero value should equal New(0)")
	}
	if v.Less(other) {
		t.Errorf("width-0 Less should be false")
	}
	// Defined no-ops at width 0.
	v.Inc()
	v.Dec()
	v.Not()
	v.ShiftLeft(8)
}

func TestGetSetFlip(t *testing.T) {
	width := uint64(300) // Spans inline words and one extension word.
	v := New(width)

	for i := uint64(0); i < width; i++ {
		if v.Get(i) {
			t.Fatalf("bit %d should be 0 initially", i)
		}
	}

	positions := []uint64{0, 1, 63, 64, 255, 256, 299}
	for _, p := range positions {
		v.Set(p, true)
	}
	for _, p := range positions {
		if !v.Get(p) {
			t.Errorf("bit %d should be set", p)
		}
	}
	if v.Get(2) || v.Get(65) || v.Get(254) || v.Get(298) {
		t.Errorf("unset bits should stay clear")
	}

	v.Set(64, false)
	if v.Get(64) {
		t.Errorf("bit 64 should be clear after Set(64, false)")
	}

	v.Flip(64)
	if !v.Get(64) {
		t.Errorf("bit 64 should be set after Flip")
	}
	v.Flip(64)
	if v.Get(64) {
		t.Errorf("bit 64 should be clear after double Flip")
	}

	if got, want := v.OnesCount(), uint64(len(positions)-1); got != want {
		t.Errorf("OnesCount() = %d, want %d", got, want)
	}
}

func TestAccessOutOfBounds(t *testing.T) {
	v := New(100)
	expectPanic(t, "Get(100)", func() { v.Get(100) })
	expectPanic(t, "Set(100)", func() { v.Set(100, true) })
	expectPanic(t, "Flip(100)", func() { v.Flip(100) })

	empty := New(0)
	expectPanic(t, "Get(0) at width 0", func() { empty.Get(0) })
}

func TestResizeInlineToHeap(t *testing.T) {
	v := New(100)
	v.Set(0, true)
	v.Set(99, true)

	v.Resize(500)
	if v.Width() != 500 {
		t.Fatalf("Width() after Resize = %d, want 500", v.Width())
	}
	if got, want := v.HeapWords(), 4; got != want {
		t.Errorf("HeapWords() after Resize(500) = %d, want %d", got, want)
	}
	// Old bits survive, new bits are zero.
	if !v.Get(0) || !v.Get(99) {
		t.Errorf("bits set before growing should survive")
	}
	for _, p := range []uint64{100, 256, 499} {
		if v.Get(p) {
			t.Errorf("bit %d should be zero after growing", p)
		}
	}
}

func TestResizeHeapToInline(t *testing.T) {
	v := New(500)
	v.Set(490, true)
	v.Resize(64)
	if v.HeapWords() != 0 {
		t.Errorf("HeapWords() after shrinking below inline = %d, want 0", v.HeapWords())
	}
	if v.Width() != 64 {
		t.Errorf("Width() = %d, want 64", v.Width())
	}
}

func TestResizeReusesExtension(t *testing.T) {
	v := New(1000) // 16 words, 12 on the heap.
	v.Set(999, true)
	v.Set(600, true)

	v.Resize(400) // 7 words, 3 on the heap; allocation is kept.
	if got, want := v.HeapWords(), 12; got != want {
		t.Errorf("HeapWords() after shrink = %d, want %d (allocation reused)", got, want)
	}

	// Growing back within the same allocation exposes the stale words
	// again: nothing was cleared.
	v.Resize(1000)
	if got, want := v.HeapWords(), 12; got != want {
		t.Errorf("HeapWords() after regrow = %d, want %d", got, want)
	}
	if !v.Get(999) || !v.Get(600) {
		t.Errorf("stale bits should resurface after shrink and regrow")
	}
}

func TestResizeGrowPreservesAndZeroes(t *testing.T) {
	v := New(300)
	v.Set(299, true)
	v.Set(257, true)
	v.Resize(2000)
	if !v.Get(299) || !v.Get(257) {
		t.Errorf("extension words should be preserved across a growing Resize")
	}
	for _, p := range []uint64{300, 1024, 1999} {
		if v.Get(p) {
			t.Errorf("bit %d should be zero in the grown tail", p)
		}
	}
}

func TestCloneIsolation(t *testing.T) {
	v := New(1000)
	v.Set(3, true)
	v.Set(500, true)

	c := v.Clone()
	if !c.Equal(v) {
		t.Fatalf("clone should equal its source")
	}
	if c.HeapWords() == 0 {
		t.Fatalf("clone of a wide vector should carry its own extension")
	}

	// Mutating either side must not leak into the other, including the
	// heap extension.
	c.Set(500, false)
	c.Set(900, true)
	if !v.Get(500) || v.Get(900) {
		t.Errorf("mutating the clone changed the source")
	}
	v.Flip(3)
	if !c.Get(3) {
		t.Errorf("mutating the source changed the clone")
	}
}

func TestCopyFrom(t *testing.T) {
	src := New(700)
	src.Set(0, true)
	src.Set(650, true)

	dst := New(10)
	dst.Set(5, true)
	dst.CopyFrom(src)

	if dst.Width() != 700 {
		t.Fatalf("Width() after CopyFrom = %d, want 700", dst.Width())
	}
	if !dst.Equal(src) {
		t.Errorf("destination should equal source after CopyFrom")
	}
	if dst.Get(5) {
		t.Errorf("old contents should be gone after CopyFrom")
	}

	// Deep copy: no shared extension storage.
	dst.Set(650, false)
	if !src.Get(650) {
		t.Errorf("CopyFrom must not share storage with the source")
	}
}

func TestCopyFromSelf(t *testing.T) {
	v := New(300)
	v.Set(42, true)
	v.CopyFrom(v)
	if v.Width() != 300 || !v.Get(42) {
		t.Errorf("self CopyFrom should be a no-op")
	}
}

func TestCopyFromShrinks(t *testing.T) {
	src := New(7)
	src.Set(2, true)

	dst := New(1000)
	dst.Set(999, true)
	dst.CopyFrom(src)

	if dst.Width() != 7 {
		t.Fatalf("Width() after shrinking CopyFrom = %d, want 7", dst.Width())
	}
	if !dst.Equal(src) {
		t.Errorf("destination should equal source after shrinking CopyFrom")
	}
}
