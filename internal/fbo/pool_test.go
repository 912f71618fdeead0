package fbo

import (
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/vpipe/gpu"
)

func newTestPool() *Pool {
	return New(gpu.NullDeviceHandle{}, gputypes.TextureFormatRGBA8Unorm)
}

func TestGetAppendsWhenEmpty(t *testing.T) {
	p := newTestPool()
	var used Used

	tex, ok := p.Get(&used, 100, 200)
	if !ok {
		t.Fatal("Get() failed on empty pool")
	}
	if tex.Width() != 100 || tex.Height() != 200 {
		t.Errorf("Get() size = (%d,%d), want (100,200)", tex.Width(), tex.Height())
	}
	if p.Len() != 1 {
		t.Errorf("Len() = %d, want 1", p.Len())
	}
}

func TestGetReusesNearestUnusedEntry(t *testing.T) {
	p := newTestPool()
	var used Used

	// Create three distinctly-sized entries, marking each free again
	// after creation so Get must choose among them.
	for _, size := range []int{64, 128, 256} {
		_, ok := p.Get(&used, size, size)
		if !ok {
			t.Fatalf("Get(%d) failed", size)
		}
	}
	used.Reset(p.Len())

	// Request a size closest to the 128 entry (index 1).
	tex, ok := p.Get(&used, 130, 130)
	if !ok {
		t.Fatal("Get() failed")
	}
	if tex.Width() != 130 {
		t.Errorf("expected entry recreated at 130, got width %d", tex.Width())
	}
	if p.Len() != 3 {
		t.Errorf("Len() = %d, want 3 (no new entry should have been appended)", p.Len())
	}
}

func TestGetTieBreaksOnFirstEncountered(t *testing.T) {
	p := newTestPool()
	var used Used

	// Two entries equidistant from the request; both at delta 20.
	p.Get(&used, 90, 90)
	p.Get(&used, 110, 110)
	used.Reset(p.Len())

	tex, ok := p.Get(&used, 100, 100)
	if !ok {
		t.Fatal("Get() failed")
	}
	// Entry 0 (originally 90x90) has delta 20, entry 1 (110x110) has
	// delta 20 too; first-encountered tie-break picks entry 0.
	if tex != mustEntry(p, 0) {
		t.Error("Get() did not tie-break to the first-encountered entry")
	}
}

func mustEntry(p *Pool, i int) *gpu.PooledTexture {
	return p.entries[i]
}

func TestUsedNeverShrinksRelativeToPool(t *testing.T) {
	p := newTestPool()
	var used Used

	for i := 0; i < 5; i++ {
		p.Get(&used, i+1, i+1)
		if used.Len() != p.Len() {
			t.Errorf("after %d Get calls: used.Len()=%d, pool.Len()=%d", i+1, used.Len(), p.Len())
		}
	}
}

func TestGetMarksEntryUsed(t *testing.T) {
	p := newTestPool()
	var used Used

	p.Get(&used, 50, 50)
	// A second Get at the same size, without resetting used, must
	// append a new entry rather than reuse the claimed one.
	p.Get(&used, 50, 50)
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (second Get should not reuse the claimed entry)", p.Len())
	}
}
