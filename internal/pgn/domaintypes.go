package pgn

import (
	"time"

	"github.com/ChizhovVadim/chesscore/pkg/common"
)

const (
	GameResultNone     = "*"
	GameResultWhiteWin = "1-0"
	GameResultBlackWin = "0-1"
	GameResultDraw     = "1/2-1/2"
)

type Tag struct {
	Key   string
	Value string
}

// Record is a played game ready to be written as PGN. Moves are in long
// algebraic notation from StartFen, or from the initial position when
// StartFen is empty.
type Record struct {
	Date     time.Time
	Round    int
	White    string
	Black    string
	StartFen string
	Moves    []string
	Result   string
	Tags     []Tag
}

// Item is one parsed move with the position it leads to.
type Item struct {
	San      string
	Comment  string
	Move     common.Move
	Position common.Board
}
