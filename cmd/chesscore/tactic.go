package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/ChizhovVadim/chesscore/internal/tactic"
	"github.com/ChizhovVadim/chesscore/pkg/engine"
)

func tacticHandler(args []string) error {
	var (
		filePath    = "~/chess/tests/tests.epd"
		depth       = engine.NewOptions().Depth
		moveTime    = 3 * time.Second
		concurrency = runtime.NumCPU()
		verbose     = false
		evalName    = ""
	)

	var flagset = flag.NewFlagSet("tactic", flag.ContinueOnError)
	flagset.StringVar(&filePath, "epd", filePath, "EPD test suite")
	flagset.IntVar(&depth, "depth", depth, "search depth")
	flagset.DurationVar(&moveTime, "movetime", moveTime, "time limit per position")
	flagset.IntVar(&concurrency, "workers", concurrency, "positions searched in parallel")
	flagset.BoolVar(&verbose, "v", verbose, "print every position")
	flagset.StringVar(&evalName, "eval", evalName, "evaluation: default or material")
	if err := flagset.Parse(args); err != nil {
		return err
	}
	filePath = mapPath(filePath)

	logger.Info().
		Str("filepath", filePath).
		Int("depth", depth).
		Dur("moveTime", moveTime).
		Int("workers", concurrency).
		Msg("solveTactic started")
	defer logger.Info().Msg("solveTactic finished")

	var tests, err = tactic.LoadEpd(filePath, logger)
	if err != nil {
		return err
	}

	var ctx, stop = signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, summary, err := tactic.Solve(ctx, tests,
		func() *engine.Engine { return newEngine(evalName, true) },
		tactic.Settings{
			Depth:       depth,
			MoveTime:    moveTime,
			Concurrency: concurrency,
		}, logger)
	if err != nil {
		return err
	}
	for i, r := range results {
		if verbose || !r.Solved {
			fmt.Printf("%4d %-6v %-5v %v %v\n", i+1, r.BestMove, r.Solved, r.ID, r.Fen)
		}
	}
	fmt.Printf("Solved: %v/%v Nodes: %v Elapsed: %v\n",
		summary.Solved, summary.Total, summary.Nodes, summary.Elapsed.Round(time.Millisecond))
	return nil
}

// mapPath expands a leading ~/ to the home directory and ./ to the
// directory of the executable.
func mapPath(path string) string {
	switch {
	case strings.HasPrefix(path, "~/"):
		if curUser, err := user.Current(); err == nil {
			return filepath.Join(curUser.HomeDir, strings.TrimPrefix(path, "~/"))
		}
	case strings.HasPrefix(path, "./"):
		if exePath, err := os.Executable(); err == nil {
			return filepath.Join(filepath.Dir(exePath), strings.TrimPrefix(path, "./"))
		}
	}
	return path
}
