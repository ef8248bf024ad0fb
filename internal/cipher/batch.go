package cipher

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ritikkr220-wq/SCT-CS-2/internal/pixel"
)

// minChunk is the smallest slice of pixels handed to a worker.
const minChunk = 16 * 1024

// ApplyAll returns a new slice with out[i] = t.Apply(src[i]). The input is
// split into contiguous chunks processed concurrently; workers <= 0 uses
// GOMAXPROCS.
func (t Transform) ApplyAll(src []pixel.Pixel, workers int) []pixel.Pixel {
	dst := make([]pixel.Pixel, len(src))

	n := chunkCount(len(src), workers)
	if n <= 1 {
		t.applyRange(dst, src)
		return dst
	}

	size := (len(src) + n - 1) / n
	var g errgroup.Group
	for start := 0; start < len(src); start += size {
		end := min(start+size, len(src))
		g.Go(func() error {
			t.applyRange(dst[start:end], src[start:end])
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	return dst
}

func (t Transform) applyRange(dst, src []pixel.Pixel) {
	for i, p := range src {
		dst[i] = t.Apply(p)
	}
}

func chunkCount(n, workers int) int {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunks := (n + minChunk - 1) / minChunk
	return min(workers, chunks)
}

// Run validates p and transforms src in one call.
func Run(src []pixel.Pixel, p Params) ([]pixel.Pixel, error) {
	t, err := NewTransform(p)
	if err != nil {
		return nil, err
	}
	return t.ApplyAll(src, p.Workers), nil
}
