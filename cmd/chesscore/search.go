package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/ChizhovVadim/chesscore/internal/book"
	"github.com/ChizhovVadim/chesscore/pkg/common"
	"github.com/ChizhovVadim/chesscore/pkg/engine"
)

func searchHandler(args []string) error {
	var (
		fen       = common.InitialPositionFen
		depth     = engine.NewOptions().Depth
		moveTime  time.Duration
		useBook   = true
		bookFile  = ""
		extension = true
		evalName  = ""
	)

	var flagset = flag.NewFlagSet("search", flag.ContinueOnError)
	flagset.StringVar(&fen, "fen", fen, "position to search")
	flagset.IntVar(&depth, "depth", depth, "search depth")
	flagset.DurationVar(&moveTime, "movetime", moveTime, "stop the search after this long, 0 for no limit")
	flagset.BoolVar(&useBook, "book", useBook, "score book repetitions as draws")
	flagset.StringVar(&bookFile, "bookfile", bookFile, "opening lines file, one SAN line per row, instead of the built-in book")
	flagset.BoolVar(&extension, "extension", extension, "search deeper in simplified positions")
	flagset.StringVar(&evalName, "eval", evalName, "evaluation: default or material")
	if err := flagset.Parse(args); err != nil {
		return err
	}

	var b, err = common.NewBoardFromFEN(fen)
	if err != nil {
		return err
	}
	bookMoves, err := loadBook(useBook, bookFile)
	if err != nil {
		return err
	}

	var ctx, stop = signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if moveTime > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, moveTime)
		defer cancel()
	}

	var eng = newEngine(evalName, extension)
	result, err := eng.Search(ctx, engine.SearchParams{
		Board: b,
		Depth: depth,
		Book:  bookMoves,
		Progress: func(r engine.SearchResult) {
			logger.Info().
				Int("progress", eng.Progress()).
				Str("move", r.BestMove.String()).
				Int("score", r.Score).
				Int64("nodes", r.Nodes).
				Str("pv", r.PV).
				Msg("search-progress")
		},
	})
	if err != nil {
		var best, ok = eng.BestSoFar()
		if !ok || ctx.Err() == nil {
			return err
		}
		logger.Warn().Err(err).Msg("search stopped early")
		fmt.Println("bestmove", best)
		return nil
	}
	fmt.Println("bestmove", result.BestMove)
	fmt.Println("score", formatScore(result.Score))
	fmt.Println("depth", result.Depth)
	fmt.Println("nodes", result.Nodes, "qnodes", result.QNodes)
	fmt.Println("pv", result.PV)
	return nil
}

func loadBook(useBook bool, bookFile string) ([]common.BookMove, error) {
	if !useBook {
		return nil, nil
	}
	if bookFile != "" {
		return book.LoadFile(mapPath(bookFile), logger)
	}
	return book.Default(logger)
}

func formatScore(score int) string {
	if engine.IsMateScore(score) {
		if score > 0 {
			return fmt.Sprintf("mate (%d)", score)
		}
		return fmt.Sprintf("mated (%d)", score)
	}
	return fmt.Sprintf("cp %d", score)
}
