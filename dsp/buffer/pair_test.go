package buffer

import "testing"

func TestNewZeroFilled(t *testing.T) {
	p := New(8)
	if p.Len() != 8 {
		t.Fatalf("Len = %d, want 8", p.Len())
	}
	for i := range p.Re {
		if p.Re[i] != 0 || p.Im[i] != 0 {
			t.Fatalf("bin %d not zero: %v %v", i, p.Re[i], p.Im[i])
		}
	}
}

func TestNewNegativeLength(t *testing.T) {
	p := New(-3)
	if p.Len() != 0 {
		t.Fatalf("Len = %d, want 0", p.Len())
	}
}

func TestFromSlicesMismatch(t *testing.T) {
	_, err := FromSlices(make([]float64, 4), make([]float64, 5))
	if err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
}

func TestFromSlicesShared(t *testing.T) {
	re := []float64{1, 2}
	im := []float64{3, 4}
	p, err := FromSlices(re, im)
	if err != nil {
		t.Fatalf("FromSlices error: %v", err)
	}
	p.Re[0] = 9
	if re[0] != 9 {
		t.Fatal("FromSlices should not copy")
	}
}

func TestFromRealPads(t *testing.T) {
	p := FromReal([]float64{1, 2, 3}, 8)
	if p.Len() != 8 {
		t.Fatalf("Len = %d, want 8", p.Len())
	}
	if p.Re[0] != 1 || p.Re[2] != 3 || p.Re[3] != 0 {
		t.Fatalf("unexpected real part: %v", p.Re)
	}
	for i, v := range p.Im {
		if v != 0 {
			t.Fatalf("Im[%d] = %v, want 0", i, v)
		}
	}
}

func TestFromRealShortTarget(t *testing.T) {
	p := FromReal([]float64{1, 2, 3}, 2)
	if p.Len() != 3 {
		t.Fatalf("Len = %d, want 3 (n below input length must not truncate)", p.Len())
	}
}

func TestResizeZeroesExposedElements(t *testing.T) {
	p := New(4)
	for i := range p.Re {
		p.Re[i] = 1
		p.Im[i] = -1
	}
	p.Resize(2)
	p.Resize(4)
	if p.Re[2] != 0 || p.Re[3] != 0 || p.Im[2] != 0 || p.Im[3] != 0 {
		t.Fatalf("stale data exposed after shrink/grow: %v %v", p.Re, p.Im)
	}
}

func TestCopyIsDeep(t *testing.T) {
	p := New(2)
	p.Re[0] = 1
	c := p.Copy()
	c.Re[0] = 5
	if p.Re[0] != 1 {
		t.Fatal("Copy must not alias the source")
	}
}

func TestPoolReuse(t *testing.T) {
	pool := NewPool()
	a := pool.Get(16)
	a.Re[0] = 42
	pool.Put(a)

	b := pool.Get(16)
	if b.Len() != 16 {
		t.Fatalf("Len = %d, want 16", b.Len())
	}
	if b.Re[0] != 0 {
		t.Fatalf("pooled pair not zeroed: %v", b.Re[0])
	}
	pool.Put(b)

	// Put(nil) must be a no-op.
	pool.Put(nil)
}
