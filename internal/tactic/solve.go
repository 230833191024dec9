package tactic

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/ChizhovVadim/chesscore/pkg/common"
	"github.com/ChizhovVadim/chesscore/pkg/engine"
)

type Settings struct {
	Depth       int
	MoveTime    time.Duration
	Concurrency int
	Book        []common.BookMove
}

type Result struct {
	ID       string
	Fen      string
	BestMove engine.MoveCandidate
	Score    int
	Nodes    int64
	Solved   bool
	TimedOut bool
}

type Summary struct {
	Total   int
	Solved  int
	Nodes   int64
	Elapsed time.Duration
}

// Solve searches every test with a pool of workers, one engine each.
// A test that runs out of MoveTime is scored by the best root move the
// engine had published. Results keep the order of tests.
func Solve(
	ctx context.Context,
	tests []EpdItem,
	newEngine func() *engine.Engine,
	settings Settings,
	logger zerolog.Logger,
) ([]Result, Summary, error) {
	var start = time.Now()
	var results = make([]Result, len(tests))
	var concurrency = max(1, settings.Concurrency)

	g, ctx := errgroup.WithContext(ctx)

	var indexes = make(chan int)
	g.Go(func() error {
		defer close(indexes)
		for i := range tests {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case indexes <- i:
			}
		}
		return nil
	})

	for w := 0; w < concurrency; w++ {
		g.Go(func() error {
			var eng = newEngine()
			eng.Prepare()
			for i := range indexes {
				var res, err = solveOne(ctx, eng, &tests[i], settings)
				if err != nil {
					return fmt.Errorf("test %d %v: %w", i+1, tests[i].ID, err)
				}
				results[i] = res
				logger.Debug().
					Str("id", res.ID).
					Str("move", res.BestMove.String()).
					Int("score", res.Score).
					Bool("solved", res.Solved).
					Msg("tactic-test")
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, Summary{}, err
	}

	var summary = Summary{
		Total: len(results),
		Solved: lo.CountBy(results, func(r Result) bool {
			return r.Solved
		}),
		Nodes: lo.SumBy(results, func(r Result) int64 {
			return r.Nodes
		}),
		Elapsed: time.Since(start),
	}
	return results, summary, nil
}

func solveOne(ctx context.Context, eng *engine.Engine, test *EpdItem, settings Settings) (Result, error) {
	var searchCtx = ctx
	if settings.MoveTime > 0 {
		var cancel context.CancelFunc
		searchCtx, cancel = context.WithTimeout(ctx, settings.MoveTime)
		defer cancel()
	}
	var result = Result{
		ID:  test.ID,
		Fen: test.Position.Fen(),
	}
	var searchResult, err = eng.Search(searchCtx, engine.SearchParams{
		Board: test.Position,
		Depth: settings.Depth,
		Book:  settings.Book,
	})
	if err != nil {
		if ctx.Err() != nil || !errors.Is(err, context.DeadlineExceeded) {
			return Result{}, err
		}
		// empty when no root move finished in time
		result.BestMove, _ = eng.BestSoFar()
		result.TimedOut = true
	} else {
		result.BestMove = searchResult.BestMove
		result.Score = searchResult.Score
		result.Nodes = searchResult.Nodes + searchResult.QNodes
	}
	result.Solved = lo.ContainsBy(test.BestMoves, func(m common.Move) bool {
		return m.From() == result.BestMove.From && m.To() == result.BestMove.To
	})
	return result, nil
}
