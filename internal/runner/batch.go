package runner

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Batch plays count consecutive seeds starting at seed using up to workers
// goroutines. Each seed owns its RNG, so reports match sequential plays.
// Reports are returned in seed order.
func (r *Runner) Batch(ctx context.Context, seed uint64, count, workers int) ([]*Report, error) {
	if count <= 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = 1
	}

	reports := make([]*Report, count)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < count; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rep, err := r.Play(seed + uint64(i))
			if err != nil {
				return err
			}
			reports[i] = rep
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
