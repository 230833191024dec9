package common

import (
	"strings"
)

// ParseMoveLAN finds the legal move written as e2e4 or e7e8q.
func ParseMoveLAN(b *Board, lan string) (Move, bool) {
	for _, mv := range GenerateLegalMoves(b) {
		if strings.EqualFold(mv.String(), lan) {
			return mv, true
		}
	}
	return MoveEmpty, false
}

// MoveToSAN writes mv in short algebraic notation without check suffixes.
// ml is the legal move list of b and is used for disambiguation.
func MoveToSAN(b *Board, ml []Move, mv Move) string {
	const PieceNames = "NBRQK"
	if mv.MovingPiece() == King && FileDistance(mv.From(), mv.To()) == 2 {
		if mv.To() > mv.From() {
			return "O-O"
		}
		return "O-O-O"
	}
	var strPiece, strCapture, strFrom, strTo, strPromotion string
	if mv.MovingPiece() != Pawn {
		strPiece = string(PieceNames[mv.MovingPiece()-Knight])
	}
	strTo = SquareName(mv.To())
	if mv.CapturedPiece() != Empty {
		strCapture = "x"
		if mv.MovingPiece() == Pawn {
			strFrom = SquareName(mv.From())[:1]
		}
	}
	if mv.Promotion() != Empty {
		strPromotion = "=" + string(PieceNames[mv.Promotion()-Knight])
	}
	var ambiguity = false
	var uniqCol = true
	var uniqRow = true
	for _, mv1 := range ml {
		if mv1.From() == mv.From() {
			continue
		}
		if mv1.To() != mv.To() {
			continue
		}
		if mv1.MovingPiece() != mv.MovingPiece() || mv.MovingPiece() == Pawn {
			continue
		}
		ambiguity = true
		if File(mv1.From()) == File(mv.From()) {
			uniqCol = false
		}
		if Rank(mv1.From()) == Rank(mv.From()) {
			uniqRow = false
		}
	}
	if ambiguity {
		if uniqCol {
			strFrom = SquareName(mv.From())[:1]
		} else if uniqRow {
			strFrom = SquareName(mv.From())[1:2]
		} else {
			strFrom = SquareName(mv.From())
		}
	}
	return strPiece + strFrom + strCapture + strTo + strPromotion
}

func ParseMoveSAN(b *Board, san string) (Move, bool) {
	var index = strings.IndexAny(san, "+#?!")
	if index >= 0 {
		san = san[:index]
	}
	san = strings.ReplaceAll(san, "0", "O")
	var ml = GenerateLegalMoves(b)
	for _, mv := range ml {
		if san == MoveToSAN(b, ml, mv) {
			return mv, true
		}
	}
	return MoveEmpty, false
}
