package tactic

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ChizhovVadim/chesscore/pkg/common"
)

type EpdItem struct {
	Content   string
	ID        string
	Position  common.Board
	BestMoves []common.Move
}

func LoadEpd(filePath string, logger zerolog.Logger) ([]EpdItem, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadEpd(file, logger)
}

// ReadEpd parses one test per line. Lines that fail to parse are logged
// and skipped.
func ReadEpd(r io.Reader, logger zerolog.Logger) ([]EpdItem, error) {
	var result []EpdItem
	var scanner = bufio.NewScanner(r)
	for scanner.Scan() {
		var line = strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var test, err = parseEpdTest(line)
		if err != nil {
			logger.Warn().Err(err).Msg("epd-line-skipped")
			continue
		}
		result = append(result, test)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read epd: %w", err)
	}
	return result, nil
}

func parseEpdTest(s string) (EpdItem, error) {
	var bmBegin = strings.Index(s, "bm ")
	if bmBegin < 0 {
		return EpdItem{}, fmt.Errorf("best move not found %v", s)
	}
	var bmEnd = strings.Index(s[bmBegin:], ";")
	if bmEnd < 0 {
		return EpdItem{}, fmt.Errorf("best move not terminated %v", s)
	}
	bmEnd += bmBegin
	var fen = strings.TrimSpace(s[:bmBegin])
	if len(strings.Fields(fen)) == 4 {
		fen += " 0 1"
	}
	var sBestMoves = strings.Fields(s[bmBegin:bmEnd])[1:]

	var p, err = common.NewBoardFromFEN(fen)
	if err != nil {
		return EpdItem{}, err
	}

	var bestMoves []common.Move
	for _, sBestMove := range sBestMoves {
		var move, ok = common.ParseMoveSAN(&p, sBestMove)
		if !ok {
			return EpdItem{}, fmt.Errorf("parse move failed %v", s)
		}
		bestMoves = append(bestMoves, move)
	}
	if len(bestMoves) == 0 {
		return EpdItem{}, fmt.Errorf("empty best moves %v", s)
	}

	return EpdItem{
		Content:   s,
		ID:        parseID(s[bmEnd:]),
		Position:  p,
		BestMoves: bestMoves,
	}, nil
}

func parseID(ops string) string {
	var index = strings.Index(ops, "id ")
	if index < 0 {
		return ""
	}
	var id = ops[index+len("id "):]
	if end := strings.Index(id, ";"); end >= 0 {
		id = id[:end]
	}
	return strings.Trim(strings.TrimSpace(id), "\"")
}
