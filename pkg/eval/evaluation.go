package eval

import (
	. "github.com/ChizhovVadim/chesscore/pkg/common"
)

const (
	minorPhase = 1
	rookPhase  = 2
	queenPhase = 4
	totalPhase = 2 * (4*minorPhase + 2*rookPhase + queenPhase)
)

const (
	scaleDraw   = 0
	scaleHard   = 1
	scaleNormal = 4
)

var material = [...]Score{
	Pawn:   S(100, 120),
	Knight: S(320, 300),
	Bishop: S(325, 315),
	Rook:   S(500, 540),
	Queen:  S(975, 1000),
	King:   S(0, 0),
}

var bishopPair = S(30, 50)

// Piece-square tables indexed by relativeSq32: files a-d mirrored onto e-h,
// rank 1 first from the owner's side.
var pst = [King + 1][32]Score{
	Pawn: {
		S(0, 0), S(0, 0), S(0, 0), S(0, 0),
		S(-5, 5), S(0, 5), S(0, 5), S(-10, 5),
		S(-5, 5), S(0, 5), S(5, 5), S(10, 5),
		S(-5, 10), S(0, 10), S(10, 10), S(25, 10),
		S(0, 20), S(5, 20), S(15, 20), S(30, 20),
		S(10, 45), S(15, 45), S(20, 45), S(35, 45),
		S(20, 80), S(25, 80), S(30, 80), S(40, 80),
		S(0, 0), S(0, 0), S(0, 0), S(0, 0),
	},
	Knight: {
		S(-50, -40), S(-20, -30), S(-15, -20), S(-10, -15),
		S(-25, -30), S(-10, -15), S(0, -5), S(5, 0),
		S(-15, -20), S(5, -5), S(10, 5), S(15, 10),
		S(-10, -15), S(5, 0), S(15, 10), S(20, 20),
		S(-10, -15), S(10, 0), S(20, 10), S(25, 20),
		S(-15, -20), S(10, -5), S(20, 5), S(25, 10),
		S(-25, -30), S(-10, -15), S(5, -5), S(10, 0),
		S(-60, -40), S(-25, -30), S(-15, -20), S(-10, -15),
	},
	Bishop: {
		S(-15, -15), S(-5, -10), S(-10, -5), S(-5, -5),
		S(0, -10), S(10, -5), S(5, 0), S(5, 0),
		S(-5, -5), S(10, 0), S(10, 5), S(10, 5),
		S(-5, -5), S(5, 0), S(15, 5), S(15, 10),
		S(-5, -5), S(10, 0), S(15, 5), S(15, 10),
		S(-5, -5), S(5, 0), S(10, 5), S(10, 5),
		S(-10, -10), S(0, -5), S(0, 0), S(0, 0),
		S(-20, -15), S(-10, -10), S(-10, -5), S(-10, -5),
	},
	Rook: {
		S(-5, 0), S(0, 0), S(5, 0), S(10, 0),
		S(-10, 0), S(-5, 0), S(0, 0), S(0, 0),
		S(-10, 0), S(-5, 0), S(0, 0), S(0, 0),
		S(-10, 0), S(-5, 0), S(0, 0), S(0, 0),
		S(-5, 5), S(0, 5), S(0, 5), S(5, 5),
		S(0, 5), S(5, 5), S(5, 5), S(10, 5),
		S(15, 10), S(20, 10), S(20, 10), S(20, 10),
		S(5, 5), S(5, 5), S(5, 5), S(10, 5),
	},
	Queen: {
		S(-15, -25), S(-10, -15), S(-5, -10), S(0, -5),
		S(-10, -15), S(0, -5), S(5, 0), S(5, 0),
		S(-5, -10), S(5, 0), S(5, 5), S(5, 10),
		S(-5, -5), S(0, 5), S(5, 10), S(5, 15),
		S(-5, -5), S(0, 5), S(5, 10), S(5, 15),
		S(-5, -10), S(0, 0), S(5, 5), S(5, 10),
		S(-10, -15), S(-5, -5), S(0, 0), S(0, 0),
		S(-15, -25), S(-10, -15), S(-5, -10), S(-5, -5),
	},
	King: {
		S(20, -50), S(30, -30), S(10, -20), S(0, -15),
		S(10, -30), S(10, -10), S(-10, 0), S(-15, 5),
		S(-15, -20), S(-20, 0), S(-25, 10), S(-30, 15),
		S(-25, -15), S(-30, 5), S(-35, 20), S(-40, 25),
		S(-35, -15), S(-40, 5), S(-45, 20), S(-50, 25),
		S(-35, -20), S(-40, 0), S(-45, 10), S(-50, 15),
		S(-35, -30), S(-40, -10), S(-45, 0), S(-50, 5),
		S(-35, -50), S(-40, -30), S(-45, -20), S(-50, -15),
	},
}

// EvaluationService is a tapered material and piece-square evaluator.
// It is stateful scratch space and must not be shared between goroutines.
type EvaluationService struct {
	pieceCount [2][King + 1]int
	force      [2]int
	kingSq     [2]int
}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

// Evaluate returns the static score of b from White's point of view.
func (e *EvaluationService) Evaluate(b *Board) int {
	for pt := Pawn; pt <= King; pt++ {
		e.pieceCount[White][pt] = 0
		e.pieceCount[Black][pt] = 0
	}
	e.kingSq[White] = SquareNone
	e.kingSq[Black] = SquareNone

	var s Score
	for sq := range b.Squares {
		var p = &b.Squares[sq]
		if p.IsEmpty() {
			continue
		}
		var v = material[p.Type] + pst[p.Type][relativeSq32(p.Color, sq)]
		if p.Color == White {
			s += v
		} else {
			s -= v
		}
		e.pieceCount[p.Color][p.Type]++
		if p.Type == King {
			e.kingSq[p.Color] = sq
		}
	}

	for side := White; side <= Black; side++ {
		e.force[side] = minorPhase*(e.pieceCount[side][Knight]+e.pieceCount[side][Bishop]) +
			rookPhase*e.pieceCount[side][Rook] + queenPhase*e.pieceCount[side][Queen]
	}

	if e.pieceCount[White][Bishop] >= 2 {
		s += bishopPair
	}
	if e.pieceCount[Black][Bishop] >= 2 {
		s -= bishopPair
	}

	var phase = Min(e.force[White]+e.force[Black], totalPhase)
	var result = (s.Mg()*phase + s.Eg()*(totalPhase-phase)) / totalPhase

	result += e.mopUp(White) - e.mopUp(Black)

	if result > 0 {
		result = result * e.computeFactor(White) / scaleNormal
	} else {
		result = result * e.computeFactor(Black) / scaleNormal
	}
	return result
}

// mopUp drives a bare enemy king to the edge and brings the own king close.
func (e *EvaluationService) mopUp(side Color) int {
	var opp = side.Opposite()
	if e.force[opp] != 0 || e.pieceCount[opp][Pawn] != 0 ||
		e.force[side] < rookPhase || e.kingSq[side] == SquareNone || e.kingSq[opp] == SquareNone {
		return 0
	}
	return 10*centerDistance(e.kingSq[opp]) + 4*(7-SquareDistance(e.kingSq[side], e.kingSq[opp]))
}

func (e *EvaluationService) computeFactor(side Color) int {
	var opp = side.Opposite()
	if e.pieceCount[side][Pawn] == 0 {
		if e.force[side] <= minorPhase {
			return scaleDraw
		}
		if e.force[side] == 2*minorPhase && e.pieceCount[side][Knight] == 2 && e.pieceCount[opp][Pawn] == 0 {
			return scaleDraw
		}
		if e.force[side]-e.force[opp] <= minorPhase && e.force[opp] != 0 {
			return scaleHard
		}
	}
	return scaleNormal
}
