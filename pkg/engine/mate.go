package engine

import (
	. "github.com/ChizhovVadim/chesscore/pkg/common"
)

type GameStatus int

const (
	StatusOngoing GameStatus = iota
	StatusWhiteMated
	StatusBlackMated
	StatusStalemate
	StatusRepetition
	StatusFiftyMoves
)

func (s GameStatus) String() string {
	switch s {
	case StatusWhiteMated:
		return "white is checkmated"
	case StatusBlackMated:
		return "black is checkmated"
	case StatusStalemate:
		return "stalemate"
	case StatusRepetition:
		return "threefold repetition"
	case StatusFiftyMoves:
		return "fifty move rule"
	}
	return "ongoing"
}

// Result is the PGN result token for a finished game, or "*".
func (s GameStatus) Result() string {
	switch s {
	case StatusWhiteMated:
		return "0-1"
	case StatusBlackMated:
		return "1-0"
	case StatusStalemate, StatusRepetition, StatusFiftyMoves:
		return "1/2-1/2"
	}
	return "*"
}

// searchForMate reports whether the side to move has no move that leaves
// its king safe. If so it marks b as checkmate (when in check) or stalemate.
// b must have been through GenerateValidMoves.
func searchForMate(b *Board) bool {
	var side = b.WhoseMove
	for from := range b.Squares {
		var piece = &b.Squares[from]
		if piece.IsEmpty() || piece.Color != side {
			continue
		}
		for x := piece.ValidMoves; x != 0; x &= x - 1 {
			var child = b.Copy()
			ApplyMove(&child, from, FirstOne(x), Queen)
			GenerateValidMoves(&child)
			if !child.InCheck(side) {
				return false
			}
		}
	}
	if b.InCheck(side) {
		if side == White {
			b.WhiteMate = true
		} else {
			b.BlackMate = true
		}
	} else {
		b.StaleMate = true
	}
	return true
}

// GameOver classifies b by the rules the search itself applies.
func GameOver(b *Board) (GameStatus, bool) {
	var scratch = b.Copy()
	GenerateValidMoves(&scratch)
	if searchForMate(&scratch) {
		switch {
		case scratch.WhiteMate:
			return StatusWhiteMated, true
		case scratch.BlackMate:
			return StatusBlackMated, true
		default:
			return StatusStalemate, true
		}
	}
	if scratch.RepeatedMove >= 3 {
		return StatusRepetition, true
	}
	if scratch.HalfMoveClock >= 100 {
		return StatusFiftyMoves, true
	}
	return StatusOngoing, false
}
