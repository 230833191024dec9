package engine

import (
	"strings"

	"github.com/samber/lo"

	. "github.com/ChizhovVadim/chesscore/pkg/common"
)

// MoveCandidate is one pseudo-move of the side to move together with its
// ordering score. Label holds the move text once the move has been played.
type MoveCandidate struct {
	From  int
	To    int
	Score int
	Label string
}

var emptyCandidate = MoveCandidate{From: SquareNone, To: SquareNone}

func (m MoveCandidate) IsEmpty() bool {
	return m.From == SquareNone
}

func (m MoveCandidate) sameMove(other MoveCandidate) bool {
	return m.From == other.From && m.To == other.To
}

func (m MoveCandidate) String() string {
	if m.Label != "" {
		return m.Label
	}
	if m.IsEmpty() {
		return "0000"
	}
	return SquareName(m.From) + SquareName(m.To)
}

type Evaluator interface {
	// Evaluate scores b from White's point of view.
	Evaluate(b *Board) int
}

type SearchParams struct {
	Board    Board
	Depth    int
	Book     []BookMove
	Progress func(SearchResult)
}

type SearchResult struct {
	BestMove  MoveCandidate
	Score     int
	Nodes     int64
	QNodes    int64
	PV        string
	MainLine  []MoveCandidate
	Depth     int
	RootMoves int
}

// pvLine is the best line found below a node, rebuilt on every alpha raise.
type pvLine struct {
	moves []MoveCandidate
}

func (pv *pvLine) clear() {
	pv.moves = pv.moves[:0]
}

func (pv *pvLine) assign(m MoveCandidate, child *pvLine) {
	var moves = make([]MoveCandidate, 0, 1+len(child.moves))
	moves = append(moves, m)
	pv.moves = append(moves, child.moves...)
}

func (pv *pvLine) String() string {
	return strings.Join(lo.Map(pv.moves, func(m MoveCandidate, _ int) string {
		return m.String()
	}), " ")
}
