// Package random generates randomized sensor data for tests and tools.
package random

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	mathrand "math/rand"
	"sync"
)

// source is seeded from crypto/rand once per binary and is safe for concurrent use
var source = func() *lockedRand {
	buf := make([]byte, 8)
	_, err := io.ReadFull(rand.Reader, buf)
	if err != nil {
		panic(err)
	}
	src := mathrand.NewSource(int64(binary.LittleEndian.Uint64(buf)))
	return &lockedRand{r: mathrand.New(src)}
}()

type lockedRand struct {
	mu sync.Mutex
	r  *mathrand.Rand
}

// intn returns a number in [from, to)
func (l *lockedRand) intn(from, to int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(to-from) + from
}

func (l *lockedRand) float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}
