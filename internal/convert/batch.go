package convert

import (
	"context"
	"log/slog"
	"sync"

	"github.com/sky/skygo/internal/crs"
)

// BatchPool converts large coordinate batches with a fixed number of
// goroutines. The rotation matrix and E-terms are computed once per batch
// and shared read-only across workers, so the fan-out needs no
// synchronization beyond partitioning the input.
type BatchPool struct {
	workers int
	logger  *slog.Logger
}

// NewBatchPool creates a pool with the given number of workers.
func NewBatchPool(workers int, logger *slog.Logger) *BatchPool {
	if workers < 1 {
		workers = 1
	}
	return &BatchPool{workers: workers, logger: logger}
}

// ConvertBatch behaves like the package-level ConvertBatch but spreads the
// per-point work across the pool's workers. Output order matches input
// order; each worker owns a contiguous index range of the result slice.
func (bp *BatchPool) ConvertBatch(ctx context.Context, source, target crs.System, coords []float64) ([]Position, error) {
	if len(coords)%2 != 0 {
		return nil, &RangeError{Coord: "coords length", Value: float64(len(coords)), Min: 0, Max: 0}
	}

	n := len(coords) / 2
	if n == 0 {
		return nil, nil
	}

	p, err := NewPipeline(source, target)
	if err != nil {
		return nil, err
	}

	workers := bp.workers
	if workers > n {
		workers = n
	}

	out := make([]Position, n)
	errs := make([]error, workers)
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > n {
			end = n
		}
		if start >= end {
			break
		}

		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				if ctx.Err() != nil {
					errs[w] = ctx.Err()
					return
				}
				pos, err := p.Apply(coords[2*i], coords[2*i+1])
				if err != nil {
					errs[w] = err
					return
				}
				out[i] = pos
			}
		}(w, start, end)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			bp.logger.Warn("batch conversion failed",
				"source", source.String(),
				"target", target.String(),
				"error", err,
			)
			return nil, err
		}
	}
	return out, nil
}
