package engine

import (
	"context"
	"testing"

	. "github.com/ChizhovVadim/chesscore/pkg/common"
	"github.com/ChizhovVadim/chesscore/pkg/eval/material"
)

var materialEval = material.NewEvaluationService()

func newTestSearcher(ctx context.Context) *searcher {
	return &searcher{
		ctx:       ctx,
		evaluator: materialEval,
		killers:   newKillerTable(),
	}
}

func mustBoard(t *testing.T, fen string) Board {
	t.Helper()
	var b, err = NewBoardFromFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func playLAN(t *testing.T, b Board, moves ...string) Board {
	t.Helper()
	for _, lan := range moves {
		var mv, ok = ParseMoveLAN(&b, lan)
		if !ok {
			t.Fatal("illegal move", lan, b.Fen())
		}
		b, _ = MakeLegalMove(&b, mv)
	}
	return b
}

// negamaxReference is full-width negamax with the same leaf and terminal
// rules as alphaBeta and a full-window quiescence at the horizon.
func (s *searcher) negamaxReference(b *Board, depth int, extended bool) int {
	if b.HalfMoveClock >= 100 || b.RepeatedMove >= 3 {
		return valueDraw
	}
	if depth <= 0 {
		if !extended && b.IsCheck() {
			depth = 1
			extended = true
		} else {
			return s.quiescence(b, -valueInfinity, valueInfinity)
		}
	}
	var side = b.WhoseMove
	var best = -valueInfinity
	var hasLegalMove = false
	for from := range b.Squares {
		var piece = &b.Squares[from]
		if piece.IsEmpty() || piece.Color != side {
			continue
		}
		for x := piece.ValidMoves; x != 0; x &= x - 1 {
			var child = s.play(b, MoveCandidate{From: from, To: FirstOne(x)})
			if child.InCheck(side) {
				continue
			}
			hasLegalMove = true
			var value = -s.negamaxReference(&child, depth-1, extended)
			if value > best {
				best = value
			}
		}
	}
	if !hasLegalMove {
		if b.IsCheck() {
			return -MateValue - depth
		}
		return valueDraw
	}
	return best
}

func TestAlphaBetaMatchesNegamax(t *testing.T) {
	var tests = []struct {
		fen   string
		depth int
	}{
		{InitialPositionFen, 2},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 1},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2},
		{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3},
		{"6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", 3},
		{"7k/5K2/8/8/8/8/8/6R1 b - - 0 1", 3},
		{"r1bqkbnr/pppp1ppp/2n5/4p3/3PP3/5N2/PPP2PPP/RNBQKB1R b KQkq - 0 3", 2},
		{"4k3/8/8/3q4/8/2N5/8/4K3 w - - 0 1", 3},
	}
	for _, test := range tests {
		var b = mustBoard(t, test.fen)
		var s = newTestSearcher(context.Background())
		var pv pvLine
		var got = s.alphaBeta(&b, test.depth, -valueInfinity, valueInfinity, false, &pv)

		var reference = mustBoard(t, test.fen)
		var want = newTestSearcher(context.Background()).negamaxReference(&reference, test.depth, false)
		if got != want {
			t.Error(test.fen, test.depth, got, want)
		}
	}
}

func TestQuiescenceNotBelowStandPat(t *testing.T) {
	var fens = []string{
		InitialPositionFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"6k1/8/4p3/3p4/8/8/8/3Q2K1 w - - 0 1",
		"4k3/8/8/3q4/8/2N5/8/4K3 w - - 0 1",
	}
	for _, fen := range fens {
		var b = mustBoard(t, fen)
		var s = newTestSearcher(context.Background())
		var standPat = sideToMoveScore(materialEval.Evaluate(&b), b.WhoseMove)
		if v := s.quiescence(&b, -valueInfinity, valueInfinity); v < standPat {
			t.Error(fen, v, standPat)
		}
	}
}

func TestQuiescenceSkipsNonNegativeExchange(t *testing.T) {
	// Qxd5 is the only capture; the pawn is guarded by e6.
	var b = mustBoard(t, "6k1/8/4p3/3p4/8/8/8/3Q2K1 w - - 0 1")
	if see := staticExchange(&b.Squares[SquareD5]); see < 0 {
		t.Fatal(see)
	}
	var s = newTestSearcher(context.Background())
	var v = s.quiescence(&b, -valueInfinity, valueInfinity)
	if s.qnodes != 1 || s.copies != 0 {
		t.Error(s.qnodes, s.copies)
	}
	if v != materialEval.Evaluate(&b) {
		t.Error(v)
	}
}

func TestFreeCaptureRefutedByQuiescence(t *testing.T) {
	var b = mustBoard(t, "6k1/8/4p3/3p4/8/8/8/3Q2K1 w - - 0 1")
	var child = playLAN(t, b, "d1d5")
	if materialEval.Evaluate(&child) <= materialEval.Evaluate(&b) {
		t.Fatal("static eval should like the capture")
	}
	var s = newTestSearcher(context.Background())
	var standPat = sideToMoveScore(materialEval.Evaluate(&child), child.WhoseMove)
	if v := s.quiescence(&child, -valueInfinity, valueInfinity); v != standPat+PieceValue(Queen) {
		t.Error("recapture not seen", v, standPat)
	}

	var pv pvLine
	s.alphaBeta(&b, 1, -valueInfinity, valueInfinity, false, &pv)
	if len(pv.moves) == 0 || pv.moves[0].String() == "d1d5" {
		t.Error(pv.String())
	}
}

func TestRepetitionIsDraw(t *testing.T) {
	var b = mustBoard(t, "4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	b = playLAN(t, b, "e1d1", "e8d8", "d1e1", "d8e8", "e1d1", "e8d8", "d1e1", "d8e8")
	if b.RepeatedMove != 3 {
		t.Fatal(b.RepeatedMove)
	}
	var s = newTestSearcher(context.Background())
	var pv pvLine
	if v := s.alphaBeta(&b, 3, -valueInfinity, valueInfinity, false, &pv); v != 0 {
		t.Error(v)
	}
	if s.copies != 0 {
		t.Error("repetition should not expand", s.copies)
	}
}

func TestFiftyMoveRuleIsDraw(t *testing.T) {
	var tests = []struct {
		fen  string
		draw bool
	}{
		{"4k3/8/8/8/8/8/8/Q3K3 w - - 100 80", true},
		{"4k3/8/8/8/8/8/8/Q3K3 w - - 0 80", false},
	}
	for _, test := range tests {
		var b = mustBoard(t, test.fen)
		var s = newTestSearcher(context.Background())
		var pv pvLine
		var v = s.alphaBeta(&b, 2, -valueInfinity, valueInfinity, false, &pv)
		if (v == 0) != test.draw {
			t.Error(test.fen, v)
		}
	}
}

func TestRookMateFound(t *testing.T) {
	// Black must play Kh7, then Rh1 mates.
	var b = mustBoard(t, "7k/5K2/8/8/8/8/8/6R1 b - - 0 1")
	var s = newTestSearcher(context.Background())
	var pv pvLine
	var v = s.alphaBeta(&b, 4, -valueInfinity, valueInfinity, false, &pv)
	if v > -MateValue {
		t.Error(v)
	}
}

func TestMateAndStalemateScores(t *testing.T) {
	var tests = []struct {
		name      string
		fen       string
		depth     int
		want      int
		triedMove bool
	}{
		{"back rank mate", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 1 1", 2, -MateValue - 2, false},
		{"bare king stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", 3, 0, false},
		// the pinned knight has moves but none of them is legal
		{"pinned knight stalemate", "7Q/8/8/8/1N6/8/1n1N4/k6K b - - 0 1", 2, 0, true},
		{"pinned knight mate", "R6Q/8/8/8/1N6/8/1n1N4/k6K b - - 0 1", 2, -MateValue - 2, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var b = mustBoard(t, test.fen)
			var s = newTestSearcher(context.Background())
			var pv pvLine
			if v := s.alphaBeta(&b, test.depth, -valueInfinity, valueInfinity, false, &pv); v != test.want {
				t.Error(v, test.want)
			}
			if test.triedMove && (s.copies == 0 || !b.StaleMate) {
				t.Error("stalemate found without trying the moves", s.copies, b.StaleMate)
			}
			if test.triedMove && len(orderMoves(&b, s.killers, test.depth)) == 0 {
				t.Error("expected candidate moves")
			}
		})
	}
}

func TestCheckExtension(t *testing.T) {
	// At the horizon with the side to move mated, the extension lets the
	// mate detector see it instead of handing off to quiescence.
	var b = mustBoard(t, "R5k1/5ppp/8/8/8/8/8/6K1 b - - 1 1")
	var s = newTestSearcher(context.Background())
	var pv pvLine
	if v := s.alphaBeta(&b, 0, -valueInfinity, valueInfinity, false, &pv); v != -MateValue-1 {
		t.Error(v)
	}
	s = newTestSearcher(context.Background())
	if v := s.alphaBeta(&b, 0, -valueInfinity, valueInfinity, true, &pv); IsMateScore(v) {
		t.Error("extended node should go to quiescence", v)
	}
}

type countingContext struct {
	context.Context
	limit    int
	calls    int
	onCancel func()
}

func (c *countingContext) Err() error {
	c.calls++
	if c.calls > c.limit {
		if c.calls == c.limit+1 && c.onCancel != nil {
			c.onCancel()
		}
		return context.Canceled
	}
	return nil
}

func TestCancellationStopsWithinOneNode(t *testing.T) {
	for _, limit := range []int{0, 1, 10, 500} {
		var ctx = &countingContext{Context: context.Background(), limit: limit}
		var s = newTestSearcher(ctx)
		var copiesAtCancel int64 = -1
		ctx.onCancel = func() {
			copiesAtCancel = s.copies
		}
		var b = mustBoard(t, InitialPositionFen)

		var recovered interface{}
		func() {
			defer func() {
				recovered = recover()
			}()
			var pv pvLine
			s.alphaBeta(&b, 4, -valueInfinity, valueInfinity, false, &pv)
		}()

		if recovered != errSearchCancelled {
			t.Fatal(limit, recovered)
		}
		if ctx.calls != limit+1 {
			t.Error("search continued after cancel", limit, ctx.calls)
		}
		if s.copies != copiesAtCancel {
			t.Error("board copied after cancel", limit, s.copies, copiesAtCancel)
		}
	}
}
