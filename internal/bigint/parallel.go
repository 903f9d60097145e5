// Package bigint implements arbitrary-precision unsigned integer arithmetic.
// This file contains the parallel variant of schoolbook multiplication.
package bigint

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"
)

// ProductParallel returns a × b, computing the schoolbook partial products
// across multiple goroutines. The result is identical to Product for every
// input; this is the same O(len(a)·len(b)) algorithm with the limbs of b
// partitioned into contiguous spans, one goroutine folding each span into a
// partial sum and the partial sums merged sequentially at the end.
//
// When either operand is below opts.ParallelThreshold limbs the call
// degrades to the sequential loop, where the goroutine and merge overhead
// is not worth paying. Cancellation is honored between spans: if ctx is
// canceled before every span has been folded, the error from ctx is
// returned and no result is produced.
//
// Parameters:
//   - ctx: The context for managing cancellation.
//   - a: The first factor.
//   - b: The second factor.
//   - opts: Configuration options for the computation.
//
// Returns:
//   - BigInt: The product a × b.
//   - error: A context error if ctx was canceled, nil otherwise.
func ProductParallel(ctx context.Context, a, b BigInt, opts Options) (result BigInt, err error) {
	tracer := otel.Tracer("bigint")
	ctx, span := tracer.Start(ctx, "ProductParallel")
	defer span.End()

	start := time.Now()
	defer func() {
		observe(opProductParallel, start, err)
	}()

	opts = normalizeOptions(opts)
	if len(a.limbs) < opts.ParallelThreshold || len(b.limbs) < opts.ParallelThreshold {
		return mul(a, b), nil
	}

	// Partition b's limbs into one contiguous span per worker. Span offsets
	// are absolute limb indices, so each partial sum comes out already
	// shifted and the merge is plain addition.
	spans := limbSpans(len(b.limbs), opts.Workers)
	partials := make([]BigInt, len(spans))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for w, sp := range spans {
		w, sp := w, sp
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			acc := Zero()
			for i := sp.begin; i < sp.end; i++ {
				if d := b.limbs[i]; d != 0 {
					acc = addShifted(acc, atomicProduct(a, d), i)
				}
			}
			partials[w] = acc
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return BigInt{}, err
	}

	result = Zero()
	for _, p := range partials {
		result = add(result, p)
	}

	log.Debug().
		Int("limbs_a", len(a.limbs)).
		Int("limbs_b", len(b.limbs)).
		Int("spans", len(spans)).
		Msg("parallel product completed")
	return result, nil
}

// limbSpan is a half-open range [begin, end) of limb indices.
type limbSpan struct {
	begin, end int
}

// limbSpans splits n limb indices into at most workers contiguous spans of
// near-equal size. It never returns an empty span.
func limbSpans(n, workers int) []limbSpan {
	if workers > n {
		workers = n
	}
	spans := make([]limbSpan, 0, workers)
	size := n / workers
	extra := n % workers
	begin := 0
	for w := 0; w < workers; w++ {
		end := begin + size
		if w < extra {
			end++
		}
		spans = append(spans, limbSpan{begin: begin, end: end})
		begin = end
	}
	return spans
}
