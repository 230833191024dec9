package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/ChizhovVadim/chesscore/internal/book"
	"github.com/ChizhovVadim/chesscore/internal/pgn"
	"github.com/ChizhovVadim/chesscore/internal/puzzle"
	"github.com/ChizhovVadim/chesscore/pkg/common"
	"github.com/ChizhovVadim/chesscore/pkg/engine"
)

// puzzleHandler sets up a random endgame and lets the engine play both
// sides, printing the game as PGN.
func puzzleHandler(args []string) error {
	var (
		kindName = puzzle.RookKing.String()
		depth    = engine.NewOptions().Depth
		maxPlies = 100
	)

	var flagset = flag.NewFlagSet("puzzle", flag.ContinueOnError)
	flagset.StringVar(&kindName, "kind", kindName, "krk, kpk or kbnk")
	flagset.IntVar(&depth, "depth", depth, "search depth")
	flagset.IntVar(&maxPlies, "plies", maxPlies, "stop the game after this many plies")
	if err := flagset.Parse(args); err != nil {
		return err
	}
	var kind, err = puzzle.ParseKind(kindName)
	if err != nil {
		return err
	}

	var start = puzzle.New(kind)
	logger.Info().Str("kind", kind.String()).Str("fen", start.Fen()).Msg("puzzle")

	record, err := playGame(context.Background(), newEngine("", true), start, depth, maxPlies)
	if err != nil {
		return err
	}
	record.White = name
	record.Black = name
	record.Tags = append(record.Tags, pgn.Tag{Key: "Event", Value: "puzzle " + kind.String()})
	text, err := pgn.Render(record)
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}

func playGame(ctx context.Context, eng *engine.Engine, start common.Board, depth, maxPlies int) (pgn.Record, error) {
	var bookMoves, err = book.Default(logger)
	if err != nil {
		return pgn.Record{}, err
	}
	var record = pgn.Record{
		Date:     time.Now(),
		Round:    1,
		StartFen: start.Fen(),
		Result:   pgn.GameResultNone,
	}
	var pos = start
	for ply := 0; ply < maxPlies; ply++ {
		if status, over := engine.GameOver(&pos); over {
			logger.Info().Str("status", status.String()).Int("ply", ply).Msg("game over")
			record.Result = status.Result()
			break
		}
		if pos.PieceCount() == 2 {
			logger.Info().Int("ply", ply).Msg("bare kings")
			record.Result = pgn.GameResultDraw
			break
		}
		var result, err = eng.Search(ctx, engine.SearchParams{
			Board: pos,
			Depth: depth,
			Book:  bookMoves,
		})
		if err != nil {
			return pgn.Record{}, err
		}
		var move, ok = common.ParseMoveLAN(&pos, result.BestMove.String())
		if !ok {
			return pgn.Record{}, fmt.Errorf("engine move %v not legal in %v", result.BestMove, pos.Fen())
		}
		child, ok := common.MakeLegalMove(&pos, move)
		if !ok {
			return pgn.Record{}, fmt.Errorf("engine move %v not legal in %v", result.BestMove, pos.Fen())
		}
		record.Moves = append(record.Moves, move.String())
		pos = child
	}
	return record, nil
}
