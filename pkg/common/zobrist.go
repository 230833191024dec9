package common

import "math/rand"

var (
	sideKey        uint64
	enpassantKey   [8]uint64
	castlingKey    [16]uint64
	pieceSquareKey [2][King + 1][64]uint64
	castleMask     [64]int
)

// keyHistory is an immutable chain of position keys shared between a board
// and all boards derived from it. Nodes are never written after creation.
type keyHistory struct {
	key  uint64
	prev *keyHistory
}

func (b *Board) computeKey() uint64 {
	var result = uint64(0)
	if b.WhoseMove == White {
		result ^= sideKey
	}
	result ^= castlingKey[b.CastleRights]
	if b.EpSquare != SquareNone {
		result ^= enpassantKey[File(b.EpSquare)]
	}
	for sq := range b.Squares {
		var p = &b.Squares[sq]
		if !p.IsEmpty() {
			result ^= pieceSquareKey[p.Color][p.Type][sq]
		}
	}
	return result
}

// countRepetitions walks back over reversible plies only.
func (b *Board) countRepetitions() int {
	var count = 0
	var plies = 0
	for h := b.history; h != nil && plies <= b.HalfMoveClock; h = h.prev {
		if h.key == b.Key {
			count++
		}
		plies++
	}
	return count
}

func (b *Board) pushHistory() {
	b.history = &keyHistory{key: b.Key, prev: b.history}
	b.RepeatedMove = b.countRepetitions()
}

func init() {
	var r = rand.New(rand.NewSource(0))
	sideKey = r.Uint64()
	for i := range enpassantKey {
		enpassantKey[i] = r.Uint64()
	}
	for side := range pieceSquareKey {
		for piece := Pawn; piece <= King; piece++ {
			for sq := 0; sq < 64; sq++ {
				pieceSquareKey[side][piece][sq] = r.Uint64()
			}
		}
	}

	var castle [4]uint64
	for i := range castle {
		castle[i] = r.Uint64()
	}
	for i := range castlingKey {
		for j := 0; j < 4; j++ {
			if (i & (1 << uint(j))) != 0 {
				castlingKey[i] ^= castle[j]
			}
		}
	}

	for i := range castleMask {
		castleMask[i] = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
	}
	castleMask[SquareA1] &^= WhiteQueenSide
	castleMask[SquareE1] &^= WhiteQueenSide | WhiteKingSide
	castleMask[SquareH1] &^= WhiteKingSide
	castleMask[SquareA8] &^= BlackQueenSide
	castleMask[SquareE8] &^= BlackQueenSide | BlackKingSide
	castleMask[SquareH8] &^= BlackKingSide
}
