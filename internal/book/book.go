package book

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/ChizhovVadim/chesscore/internal/pgn"
	"github.com/ChizhovVadim/chesscore/pkg/common"
)

//go:embed openings.txt
var openingsTxt string

// Default returns the book built from the embedded opening lines.
func Default(logger zerolog.Logger) ([]common.BookMove, error) {
	return Parse(strings.NewReader(openingsTxt), logger)
}

func LoadFile(filePath string, logger zerolog.Logger) ([]common.BookMove, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Parse(file, logger)
}

// Parse reads one SAN line per row, each played from the initial position.
// Every move of every line becomes a book entry keyed by the position it
// reaches. Lines with an illegal move are logged and skipped from that move on.
func Parse(r io.Reader, logger zerolog.Logger) ([]common.BookMove, error) {
	var result []common.BookMove
	var scanner = bufio.NewScanner(r)
	var lineNumber = 0
	for scanner.Scan() {
		lineNumber++
		var line = strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		var moves, err = parseLine(line)
		if err != nil {
			logger.Warn().Err(err).Int("line", lineNumber).Msg("book-line-skipped")
		}
		result = append(result, moves...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read book: %w", err)
	}
	return lo.UniqBy(result, func(m common.BookMove) string {
		return m.Move + " " + m.EndingKey
	}), nil
}

func parseLine(line string) ([]common.BookMove, error) {
	var items, err = pgn.ParseMovetext(startPosition, line)
	var result = lo.Map(items, func(item pgn.Item, _ int) common.BookMove {
		return common.BookMove{
			Move:      item.Move.String(),
			EndingKey: common.PositionKey(&item.Position),
		}
	})
	return result, err
}

var startPosition, _ = common.NewBoardFromFEN(common.InitialPositionFen)
