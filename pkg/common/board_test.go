package common

import (
	"testing"
)

func TestFenRoundTrip(t *testing.T) {
	var tests = []struct {
		fen  string
		want string
	}{
		{InitialPositionFen, InitialPositionFen},
		{"rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 3", "rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 3"},
		// no black pawn can take on e3
		{"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1"},
		// rook has left h1
		{"r3k2r/8/8/8/8/8/8/R3K1R1 w KQkq - 0 1", "r3k2r/8/8/8/8/8/8/R3K1R1 w Qkq - 0 1"},
		{"7k/5K2/8/8/8/8/8/6R1 b - - 12 40", "7k/5K2/8/8/8/8/8/6R1 b - - 12 40"},
	}
	for _, test := range tests {
		var b, err = NewBoardFromFEN(test.fen)
		if err != nil {
			t.Fatal(err)
		}
		if got := b.Fen(); got != test.want {
			t.Error(test.fen, got)
		}
	}
}

func TestFenInvalid(t *testing.T) {
	var tests = []string{
		"",
		"8/8/8/8/8/8/8/8 w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		// side not to move is in check
		"4k3/8/8/8/8/8/8/4K2r b - - 0 1",
	}
	for _, fen := range tests {
		if _, err := NewBoardFromFEN(fen); err == nil {
			t.Error("expected error", fen)
		}
	}
}

func TestKeyMatchesRecompute(t *testing.T) {
	var b, err = NewBoardFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	for _, lan := range []string{"e1g1", "b4c3", "d2c3", "e8c8", "a2a4"} {
		var mv, ok = ParseMoveLAN(&b, lan)
		if !ok {
			t.Fatal("illegal move", lan, b.Fen())
		}
		b, _ = MakeLegalMove(&b, mv)
		if b.Key != b.computeKey() {
			t.Error("key mismatch after", lan)
		}
		var fromFen, _ = NewBoardFromFEN(b.Fen())
		if fromFen.Key != b.Key {
			t.Error("key differs from fen", lan, b.Fen())
		}
	}
}

func TestRepetition(t *testing.T) {
	var b, err = NewBoardFromFEN(InitialPositionFen)
	if err != nil {
		t.Fatal(err)
	}
	if b.RepeatedMove != 1 {
		t.Error(b.RepeatedMove)
	}
	var shuffle = []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	for round := 2; round <= 3; round++ {
		for _, lan := range shuffle {
			var mv, _ = ParseMoveLAN(&b, lan)
			b, _ = MakeLegalMove(&b, mv)
		}
		if b.RepeatedMove != round {
			t.Error(round, b.RepeatedMove)
		}
	}
	var mv, _ = ParseMoveLAN(&b, "e2e4")
	b, _ = MakeLegalMove(&b, mv)
	if b.RepeatedMove != 1 || b.HalfMoveClock != 0 {
		t.Error(b.RepeatedMove, b.HalfMoveClock)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	var b, _ = NewBoardFromFEN(InitialPositionFen)
	var child = b.Copy()
	ApplyMove(&child, SquareE2, SquareE4, Empty)
	if b.Squares[SquareE2].Type != Pawn || !b.Squares[SquareE4].IsEmpty() {
		t.Error("parent board changed")
	}
	if b.WhoseMove != White || child.WhoseMove != Black {
		t.Error(b.WhoseMove, child.WhoseMove)
	}
}

func TestPieceCount(t *testing.T) {
	var tests = []struct {
		fen  string
		want int
	}{
		{InitialPositionFen, 32},
		{"4k3/8/8/8/8/8/8/4K3 w - - 0 1", 2},
		{"4k3/8/2np4/4P3/3P4/8/8/4K3 w - - 0 1", 6},
	}
	for _, test := range tests {
		var b, err = NewBoardFromFEN(test.fen)
		if err != nil {
			t.Fatal(err)
		}
		if got := b.PieceCount(); got != test.want {
			t.Error(test.fen, got, test.want)
		}
		if b.Occupancy()&SquareMask[SquareE8] == 0 {
			t.Error(test.fen, "king square not occupied")
		}
	}
}

func TestAttackedDefendedValues(t *testing.T) {
	// e5 pawn is hit by the d6 pawn and the c6 knight, guarded by the d4 pawn
	var b, err = NewBoardFromFEN("4k3/8/2np4/4P3/3P4/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	var p = b.Squares[SquareE5]
	if p.AttackedValue != 6+3 {
		t.Error("attacked", p.AttackedValue)
	}
	if p.DefendedValue != 6 {
		t.Error("defended", p.DefendedValue)
	}
}

func TestSAN(t *testing.T) {
	var b, _ = NewBoardFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	var tests = []struct {
		san string
		lan string
	}{
		{"O-O", "e1g1"},
		{"O-O-O", "e1c1"},
		{"Nxf7", "e5f7"},
		{"dxe6", "d5e6"},
		{"Qxf6", "f3f6"},
		{"Bxa6", "e2a6"},
		{"gxh3", "g2h3"},
	}
	for _, test := range tests {
		var mv, ok = ParseMoveSAN(&b, test.san)
		if !ok || mv.String() != test.lan {
			t.Error(test.san, mv, ok)
		}
	}
	if _, ok := ParseMoveSAN(&b, "Ke3"); ok {
		t.Error("illegal move parsed")
	}
}

func TestPromotion(t *testing.T) {
	var b, err = NewBoardFromFEN("8/P6k/8/8/8/8/8/K7 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	var ml = GenerateLegalMoves(&b)
	var promotions = 0
	for _, mv := range ml {
		if mv.Promotion() != Empty {
			promotions++
		}
	}
	if promotions != 4 {
		t.Error(promotions)
	}
	var child = b.Copy()
	ApplyMove(&child, SquareA7, SquareA8, Empty)
	if child.Squares[SquareA8].Type != Queen {
		t.Error(child.Squares[SquareA8].Type)
	}
}
