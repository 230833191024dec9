package common

import (
	"testing"
)

//https://www.chessprogramming.org/Perft_Results
func TestPerft(t *testing.T) {
	var tests = []struct {
		fen   string
		depth int
		nodes int
	}{
		{
			fen:   InitialPositionFen,
			depth: 4,
			nodes: 197281,
		},
		{
			fen:   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -",
			depth: 3,
			nodes: 97862,
		},
		{
			fen:   "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -",
			depth: 4,
			nodes: 43238,
		},
		{
			fen:   "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
			depth: 3,
			nodes: 9467,
		},
		{
			fen:   "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
			depth: 2,
			nodes: 1486,
		},
		{
			fen:   "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
			depth: 2,
			nodes: 2079,
		},
	}
	for i, test := range tests {
		var b, err = NewBoardFromFEN(test.fen)
		if err != nil {
			t.Fatal(err)
		}
		var nodes = Perft(&b, test.depth)
		if nodes != test.nodes {
			t.Error(i, test, nodes)
		}
	}
}

func Perft(b *Board, depth int) int {
	var ml = GenerateLegalMoves(b)
	if depth <= 1 {
		return len(ml)
	}
	var result = 0
	for _, move := range ml {
		if child, ok := MakeLegalMove(b, move); ok {
			result += Perft(&child, depth-1)
		}
	}
	return result
}
