package main

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ChizhovVadim/chesscore/pkg/engine"
	"github.com/ChizhovVadim/chesscore/pkg/eval"
	"github.com/ChizhovVadim/chesscore/pkg/eval/material"
)

/*
Counter Copyright (C) 2017-2023 Vadim Chizhov
This program is free software: you can redistribute it and/or modify it under the terms of the GNU General Public License as published by the Free Software Foundation, either version 3 of the License, or (at your option) any later version.
This program is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU General Public License for more details.
You should have received a copy of the GNU General Public License along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

const name = "chesscore"

var (
	versionName = "dev"
	buildDate   = "(null)"
	gitRevision = "(null)"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
	With().Timestamp().Logger()

func main() {
	var err = run(os.Args[1:])
	if err != nil {
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func run(args []string) error {
	logger.Debug().
		Str("version", versionName).
		Str("buildDate", buildDate).
		Str("gitRevision", gitRevision).
		Str("runtime", runtime.Version()).
		Int("numCPU", runtime.NumCPU()).
		Msg(name)

	var handlers = map[string]func(args []string) error{
		"search": searchHandler,
		"tactic": tacticHandler,
		"puzzle": puzzleHandler,
	}
	if len(args) == 0 {
		return fmt.Errorf("command required: %v", commandNames(handlers))
	}
	var handler, found = handlers[args[0]]
	if !found {
		return fmt.Errorf("command not found %v, expected one of %v", args[0], commandNames(handlers))
	}
	return handler(args[1:])
}

func commandNames(handlers map[string]func(args []string) error) string {
	var names []string
	for name := range handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func newEvaluator(evalName string) func() engine.Evaluator {
	switch evalName {
	case "material":
		return func() engine.Evaluator {
			return material.NewEvaluationService()
		}
	default:
		return func() engine.Evaluator {
			return eval.NewEvaluationService()
		}
	}
}

func newEngine(evalName string, simplifiedExtension bool) *engine.Engine {
	var eng = engine.NewEngine(newEvaluator(evalName))
	eng.SimplifiedExtension = simplifiedExtension
	eng.Logger = logger.With().Str("component", "engine").Logger()
	return eng
}
