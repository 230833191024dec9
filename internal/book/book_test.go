package book

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ChizhovVadim/chesscore/pkg/common"
)

func TestDefaultBook(t *testing.T) {
	var moves, err = Default(zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	// 20 lines of 10 plies with shared prefixes
	if len(moves) < 50 {
		t.Error(len(moves))
	}
	var start, _ = common.NewBoardFromFEN(common.InitialPositionFen)
	var e4, _ = common.ParseMoveLAN(&start, "e2e4")
	var child, _ = common.MakeLegalMove(&start, e4)
	var found = false
	for _, m := range moves {
		if m.Move == "e2e4" && m.EndingKey == common.PositionKey(&child) {
			found = true
		}
	}
	if !found {
		t.Error("1. e4 missing")
	}
}

func TestParseSkipsBadLines(t *testing.T) {
	var text = strings.Join([]string{
		"// comment",
		"",
		"1. e4 e5 2. Nf3",
		"1. d4 Ke7 2. c4",
		"1. e4 e5",
	}, "\n")
	var moves, err = Parse(strings.NewReader(text), zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	var want = []string{"e2e4", "e7e5", "g1f3", "d2d4"}
	if len(moves) != len(want) {
		t.Fatal(moves)
	}
	for i := range want {
		if moves[i].Move != want[i] {
			t.Error(i, moves[i], want[i])
		}
	}
	if !strings.HasSuffix(moves[2].EndingKey, " b KQkq -") {
		t.Error(moves[2].EndingKey)
	}
}

func TestLoadFile(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "book.txt")
	if err := os.WriteFile(path, []byte("1. Nf3 d5\n1. Nf3 Nf6\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var moves, err = LoadFile(path, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	// the shared first move is kept once
	var want = []string{"g1f3", "d7d5", "g8f6"}
	if len(moves) != len(want) {
		t.Fatal(moves)
	}
	for i := range want {
		if moves[i].Move != want[i] {
			t.Error(i, moves[i], want[i])
		}
	}

	if _, err = LoadFile(filepath.Join(t.TempDir(), "missing.txt"), zerolog.Nop()); err == nil {
		t.Error("expected error")
	}
}
