package software

import (
	"image"
	"sync"
)

// bufferPool recycles back buffers by size, so resizing back and forth or
// re-initializing the backend does not allocate a new frame each time.
// It is safe for concurrent use.
type bufferPool struct {
	mu      sync.Mutex
	buckets map[image.Point][]*image.RGBA
	max     int // per size, 0 means unlimited
}

func newBufferPool(maxPerSize int) *bufferPool {
	return &bufferPool{
		buckets: make(map[image.Point][]*image.RGBA),
		max:     maxPerSize,
	}
}

// get returns a zeroed width x height buffer.
func (p *bufferPool) get(width, height int) *image.RGBA {
	key := image.Pt(width, height)

	p.mu.Lock()
	bucket := p.buckets[key]
	if n := len(bucket); n > 0 {
		buf := bucket[n-1]
		p.buckets[key] = bucket[:n-1]
		p.mu.Unlock()
		clear(buf.Pix)
		return buf
	}
	p.mu.Unlock()

	return image.NewRGBA(image.Rectangle{Max: key})
}

// put hands buf back. Buffers beyond the per-size limit are dropped.
func (p *bufferPool) put(buf *image.RGBA) {
	if buf == nil {
		return
	}
	key := buf.Bounds().Size()

	p.mu.Lock()
	defer p.mu.Unlock()
	bucket := p.buckets[key]
	if p.max > 0 && len(bucket) >= p.max {
		return
	}
	p.buckets[key] = append(bucket, buf)
}

// size returns the number of pooled buffers.
func (p *bufferPool) size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, b := range p.buckets {
		n += len(b)
	}
	return n
}

// buffers is shared by all software states.
var buffers = newBufferPool(2)
