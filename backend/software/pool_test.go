package software

import (
	"image"
	"testing"
)

func TestBufferPool(t *testing.T) {
	p := newBufferPool(1)

	a := p.get(4, 2)
	if a.Bounds().Size() != image.Pt(4, 2) {
		t.Fatalf("get() size = %v", a.Bounds().Size())
	}
	a.Pix[0] = 0xff
	p.put(a)
	p.put(p.get(8, 8))
	p.put(image.NewRGBA(image.Rect(0, 0, 4, 2))) // over the limit
	if p.size() != 2 {
		t.Errorf("size() = %d, want 2", p.size())
	}

	b := p.get(4, 2)
	if b != a {
		t.Error("get() did not reuse the pooled buffer")
	}
	if b.Pix[0] != 0 {
		t.Error("reused buffer not cleared")
	}
	p.put(nil)
	if p.size() != 1 {
		t.Errorf("size() = %d, want 1", p.size())
	}
}
