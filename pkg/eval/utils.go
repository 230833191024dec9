package eval

import (
	. "github.com/ChizhovVadim/chesscore/pkg/common"
)

func relativeSq32(side Color, sq int) int {
	if side == Black {
		sq = FlipSquare(sq)
	}
	var f = File(sq)
	if f >= FileE {
		f = FileH - f
	}
	return f + 4*Rank(sq)
}

// centerDistance is 0 on the four central squares and 3 in the corners.
func centerDistance(sq int) int {
	var f = File(sq)
	if f >= FileE {
		f = FileH - f
	}
	var r = Rank(sq)
	if r >= Rank5 {
		r = Rank8 - r
	}
	return Max(FileD-f, Rank4-r)
}
