package engine

import (
	. "github.com/ChizhovVadim/chesscore/pkg/common"
)

// staticExchange is a one-square estimate built from the action values
// bearing on the target. It is not a full exchange simulation; quiescence
// expands a capture only when the estimate is negative.
func staticExchange(target *Piece) int {
	if target.IsEmpty() || target.AttackedValue == 0 {
		return 0
	}
	return target.ActionValue - target.AttackedValue + target.DefendedValue
}
