package puzzle

import (
	"fmt"
	"strconv"
	"strings"

	"lukechampine.com/frand"

	"github.com/ChizhovVadim/chesscore/pkg/common"
	"github.com/ChizhovVadim/chesscore/pkg/engine"
)

type Kind int

const (
	RookKing Kind = iota
	PawnKing
	KnightBishopKing
)

func (k Kind) String() string {
	switch k {
	case RookKing:
		return "krk"
	case PawnKing:
		return "kpk"
	case KnightBishopKing:
		return "kbnk"
	}
	return "unknown"
}

func ParseKind(s string) (Kind, error) {
	for _, k := range []Kind{RookKing, PawnKing, KnightBishopKing} {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown puzzle kind %v", s)
}

type placement struct {
	sq    int
	piece byte
}

// New returns a random position of the given kind with White to move.
// Candidates are drawn until one is playable and neither side is in check.
func New(kind Kind) common.Board {
	for {
		var pieces = candidate(kind)
		var b, err = common.NewBoardFromFEN(placementFen(pieces))
		if err != nil {
			continue
		}
		if b.WhiteCheck || b.BlackCheck {
			continue
		}
		if _, over := engine.GameOver(&b); over {
			continue
		}
		return b
	}
}

func candidate(kind Kind) []placement {
	for {
		var whiteKing = frand.Intn(64)
		var blackKing = frand.Intn(64)
		var extra = frand.Intn(64)
		var pieces = []placement{{whiteKing, 'K'}, {blackKing, 'k'}}
		switch kind {
		case RookKing:
			pieces = append(pieces, placement{extra, 'R'})
		case PawnKing:
			// pawn off the back ranks and not past the defending king
			if common.Rank(extra) == common.Rank1 || common.Rank(extra) == common.Rank8 ||
				common.Rank(extra) > common.Rank(blackKing) {
				continue
			}
			pieces = append(pieces, placement{extra, 'P'})
		case KnightBishopKing:
			pieces = append(pieces, placement{extra, 'N'}, placement{frand.Intn(64), 'B'})
		}
		if distinct(pieces) {
			return pieces
		}
	}
}

func distinct(pieces []placement) bool {
	var seen uint64
	for _, p := range pieces {
		var mask = uint64(1) << uint(p.sq)
		if seen&mask != 0 {
			return false
		}
		seen |= mask
	}
	return true
}

func placementFen(pieces []placement) string {
	var grid [64]byte
	for _, p := range pieces {
		grid[p.sq] = p.piece
	}
	var sb strings.Builder
	for rank := common.Rank8; rank >= common.Rank1; rank-- {
		var empty = 0
		for file := common.FileA; file <= common.FileH; file++ {
			var ch = grid[common.MakeSquare(file, rank)]
			if ch == 0 {
				empty++
				continue
			}
			if empty != 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(ch)
		}
		if empty != 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank != common.Rank1 {
			sb.WriteByte('/')
		}
	}
	sb.WriteString(" w - - 0 1")
	return sb.String()
}
