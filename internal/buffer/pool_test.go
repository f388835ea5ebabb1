package buffer

import "testing"

func TestPoolGetReturnsZeroed(t *testing.T) {
	p := NewPool()

	sp := p.Get(8)
	if len(*sp) != 8 {
		t.Fatalf("len = %d, want 8", len(*sp))
	}

	for i, v := range *sp {
		if v != 0 {
			t.Fatalf("scratch[%d] = %v, want 0", i, v)
		}
	}

	p.Put(sp)
}

func TestPoolReuseIsZeroed(t *testing.T) {
	p := NewPool()

	sp := p.Get(4)
	(*sp)[0] = 42
	(*sp)[1] = 43
	p.Put(sp)

	sp2 := p.Get(4)
	for i, v := range *sp2 {
		if v != 0 {
			t.Fatalf("reused scratch[%d] = %v, want 0", i, v)
		}
	}

	p.Put(sp2)
}

func TestPoolGetNegativeLength(t *testing.T) {
	p := NewPool()
	sp := p.Get(-3)
	if len(*sp) != 0 {
		t.Fatalf("len = %d, want 0", len(*sp))
	}
	p.Put(sp)
}

func TestPoolPutNilSafe(_ *testing.T) {
	p := NewPool()
	p.Put(nil) // must not panic
}
