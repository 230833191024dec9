package engine

import (
	"github.com/samber/lo"

	. "github.com/ChizhovVadim/chesscore/pkg/common"
)

const (
	// MaxDepth bounds the requested search depth.
	MaxDepth = 16
	// MateValue starts the mate band: a score at or beyond ±MateValue is a
	// forced mate, larger magnitudes being shorter mates.
	MateValue     = 32767
	valueDraw     = 0
	valueInfinity = 400000000
)

func IsMateScore(v int) bool {
	return v >= MateValue || v <= -MateValue
}

// sideToMoveScore turns a White-positive score into the mover's view.
func sideToMoveScore(score int, side Color) int {
	if side == Black {
		return -score
	}
	return score
}

func modifyDepth(depth, rootMoves, piecesRemaining int) int {
	if rootMoves <= 20 || piecesRemaining < 14 {
		if rootMoves <= 10 || piecesRemaining < 6 {
			depth++
		}
		depth++
	}
	return depth
}

func isBookEnding(book []BookMove, b *Board) bool {
	if len(book) == 0 {
		return false
	}
	var key = PositionKey(b)
	return lo.ContainsBy(book, func(m BookMove) bool {
		return m.EndingKey == key
	})
}
