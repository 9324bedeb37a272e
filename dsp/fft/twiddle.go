package fft

import (
	"math"
	"sync"
)

// table holds cos/sin of -2*pi*i/n for bin indices 0..n/2-1.
// Tables are immutable once built and shared across transforms.
type table struct {
	cos []float64
	sin []float64
}

var (
	twiddleMu    sync.RWMutex
	twiddleCache = map[int]*table{}
)

// twiddles returns the cached twiddle table for transform size n,
// building it on first use. This is the only place the transform
// evaluates sin/cos.
func twiddles(n int) *table {
	twiddleMu.RLock()
	t, ok := twiddleCache[n]
	twiddleMu.RUnlock()
	if ok {
		return t
	}

	twiddleMu.Lock()
	defer twiddleMu.Unlock()

	// Another goroutine may have populated the entry while we waited.
	if t, ok := twiddleCache[n]; ok {
		return t
	}

	half := n / 2
	t = &table{
		cos: make([]float64, half),
		sin: make([]float64, half),
	}
	for i := 0; i < half; i++ {
		angle := -2 * math.Pi * float64(i) / float64(n)
		t.cos[i] = math.Cos(angle)
		t.sin[i] = math.Sin(angle)
	}

	twiddleCache[n] = t

	return t
}
