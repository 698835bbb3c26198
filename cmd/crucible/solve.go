package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/crucible/grid"
	"github.com/katalvlaran/crucible/search"
)

// solveAll runs one search per regime concurrently on the shared grid and
// returns the outcomes in regime order. Budget exhaustion is an outcome, not
// an error; any other failure cancels the remaining searches.
func solveAll(ctx context.Context, logger zerolog.Logger, g *grid.Grid, regimes []search.Regime, opts []search.Option) ([]outcome, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	outs := make([]outcome, len(regimes))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, r := range regimes {
		i, r := i, r
		eg.Go(func() error {
			ropts := append([]search.Option{search.WithContext(egCtx)}, opts...)
			began := time.Now()
			res, err := search.Search(g, r, ropts...)
			elapsed := time.Since(began)

			budget := errors.Is(err, search.ErrBudgetExceeded)
			if err != nil && !budget {
				return fmt.Errorf("%s: %w", r.Name(), err)
			}

			outs[i] = newOutcome(g, r, res, budget)
			outs[i].Elapsed = elapsed.String()
			logger.Info().
				Str("regime", r.Name()).
				Str("status", outs[i].Status).
				Int64("cost", res.Cost).
				Bool("found", res.Found).
				Int("expanded", res.Expanded).
				Dur("elapsed", elapsed).
				Msg("regime solved")

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return outs, nil
}
