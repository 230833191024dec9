package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	. "github.com/ChizhovVadim/chesscore/pkg/common"
)

var (
	ErrInvalidDepth  = errors.New("invalid search depth")
	ErrInvalidBoard  = errors.New("invalid board")
	ErrNoLegalMoves  = errors.New("no legal moves")
	errBadEvaluation = errors.New("bad eval builder")
)

type Engine struct {
	Options
	evalBuilder func() Evaluator
	evaluator   Evaluator
	killers     *killerTable
	progress    atomic.Int32
	bestSoFar   atomic.Pointer[MoveCandidate]
	mu          sync.Mutex
}

func NewEngine(evalBuilder func() Evaluator) *Engine {
	return &Engine{
		Options:     NewOptions(),
		evalBuilder: evalBuilder,
	}
}

func (e *Engine) Prepare() {
	if e.evaluator == nil {
		e.evaluator = e.evalBuilder()
		if e.evaluator == nil {
			panic(errBadEvaluation)
		}
	}
	if e.killers == nil {
		e.killers = newKillerTable()
	}
}

// Search finds the best move for the side to move of params.Board. It
// blocks until the search completes or ctx is done; on cancellation it
// returns ctx.Err() and BestSoFar keeps the last published root move.
// One Engine runs one search at a time.
func (e *Engine) Search(ctx context.Context, params SearchParams) (result SearchResult, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if params.Depth < 1 || params.Depth > MaxDepth {
		return SearchResult{}, fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidDepth, params.Depth, MaxDepth)
	}
	var root = params.Board.Copy()
	if root.KingSquare(root.WhoseMove) == SquareNone || root.KingSquare(root.WhoseMove.Opposite()) == SquareNone {
		return SearchResult{}, fmt.Errorf("%w: missing king", ErrInvalidBoard)
	}
	GenerateValidMoves(&root)
	if root.InCheck(root.WhoseMove.Opposite()) {
		return SearchResult{}, fmt.Errorf("%w: side not to move is in check", ErrInvalidBoard)
	}

	e.Prepare()
	e.killers.reset()
	e.progress.Store(0)
	e.bestSoFar.Store(nil)

	var s = &searcher{
		ctx:       ctx,
		evaluator: e.evaluator,
		killers:   e.killers,
	}

	var start = time.Now()
	e.Logger.Info().
		Str("fen", root.Fen()).
		Int("depth", params.Depth).
		Msg("search-started")

	defer func() {
		if r := recover(); r != nil {
			if r == errSearchCancelled {
				e.Logger.Info().
					Int64("nodes", s.nodes).
					Int64("qnodes", s.qnodes).
					Dur("elapsed", time.Since(start)).
					Msg("search-cancelled")
				result = SearchResult{}
				err = ctx.Err()
				return
			}
			panic(r)
		}
	}()

	result, err = e.iterativeSearch(s, &root, params.Depth, params)
	if err != nil {
		return SearchResult{}, err
	}
	e.Logger.Info().
		Str("bestmove", result.BestMove.String()).
		Int("score", result.Score).
		Int("depth", result.Depth).
		Int64("nodes", result.Nodes).
		Int64("qnodes", result.QNodes).
		Str("pv", result.PV).
		Dur("elapsed", time.Since(start)).
		Msg("search-finished")
	return result, nil
}

// Progress is the share of root moves searched so far, 0..100.
func (e *Engine) Progress() int {
	return int(e.progress.Load())
}

// BestSoFar is the best root move published by the current or last search.
func (e *Engine) BestSoFar() (MoveCandidate, bool) {
	var m = e.bestSoFar.Load()
	if m == nil {
		return emptyCandidate, false
	}
	return *m, true
}
