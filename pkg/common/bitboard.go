package common

import "math/bits"

const (
	FileAMask uint64 = 0x0101010101010101 << iota
	FileBMask
	FileCMask
	FileDMask
	FileEMask
	FileFMask
	FileGMask
	FileHMask
)

const (
	Rank1Mask uint64 = 0xFF << (8 * iota)
	Rank2Mask
	Rank3Mask
	Rank4Mask
	Rank5Mask
	Rank6Mask
	Rank7Mask
	Rank8Mask
)

var (
	whitePawnAttacks, blackPawnAttacks [64]uint64
	SquareMask                         [64]uint64
	KnightAttacks                      [64]uint64
	KingAttacks                        [64]uint64
	rays                               [dirCount][64]uint64
)

// ray directions; the first four grow towards h8, the rest towards a1
const (
	dirUp = iota
	dirRight
	dirUpRight
	dirUpLeft
	dirDown
	dirLeft
	dirDownRight
	dirDownLeft
	dirCount
)

func PopCount(b uint64) int {
	return bits.OnesCount64(b)
}

func FirstOne(b uint64) int {
	return bits.TrailingZeros64(b)
}

func LastOne(b uint64) int {
	return 63 - bits.LeadingZeros64(b)
}

func Up(b uint64) uint64 {
	return b << 8
}

func Down(b uint64) uint64 {
	return b >> 8
}

func Right(b uint64) uint64 {
	return (b & ^FileHMask) << 1
}

func Left(b uint64) uint64 {
	return (b & ^FileAMask) >> 1
}

func UpRight(b uint64) uint64 {
	return Up(Right(b))
}

func UpLeft(b uint64) uint64 {
	return Up(Left(b))
}

func DownRight(b uint64) uint64 {
	return Down(Right(b))
}

func DownLeft(b uint64) uint64 {
	return Down(Left(b))
}

func PawnAttacks(from int, white bool) uint64 {
	if white {
		return whitePawnAttacks[from]
	}
	return blackPawnAttacks[from]
}

func slideAttacks(from int, occ uint64, dirs ...int) uint64 {
	var result uint64
	for _, dir := range dirs {
		var ray = rays[dir][from]
		var blockers = ray & occ
		if blockers != 0 {
			var blocker int
			if dir < dirDown {
				blocker = FirstOne(blockers)
			} else {
				blocker = LastOne(blockers)
			}
			ray ^= rays[dir][blocker]
		}
		result |= ray
	}
	return result
}

func BishopAttacks(from int, occ uint64) uint64 {
	return slideAttacks(from, occ, dirUpRight, dirUpLeft, dirDownRight, dirDownLeft)
}

func RookAttacks(from int, occ uint64) uint64 {
	return slideAttacks(from, occ, dirUp, dirRight, dirDown, dirLeft)
}

func QueenAttacks(from int, occ uint64) uint64 {
	return BishopAttacks(from, occ) | RookAttacks(from, occ)
}

func init() {
	var shifts = [dirCount]func(uint64) uint64{
		dirUp:        Up,
		dirRight:     Right,
		dirUpRight:   UpRight,
		dirUpLeft:    UpLeft,
		dirDown:      Down,
		dirLeft:      Left,
		dirDownRight: DownRight,
		dirDownLeft:  DownLeft,
	}

	for sq := 0; sq < 64; sq++ {
		var b = uint64(1) << uint(sq)
		SquareMask[sq] = b

		whitePawnAttacks[sq] = Up(Left(b) | Right(b))
		blackPawnAttacks[sq] = Down(Left(b) | Right(b))

		KnightAttacks[sq] = Right(UpRight(b)) | Up(UpRight(b)) |
			Up(UpLeft(b)) | Left(UpLeft(b)) |
			Left(DownLeft(b)) | Down(DownLeft(b)) |
			Down(DownRight(b)) | Right(DownRight(b))

		KingAttacks[sq] = UpRight(b) | Up(b) | UpLeft(b) | Left(b) |
			DownLeft(b) | Down(b) | DownRight(b) | Right(b)

		for dir, shift := range shifts {
			for x := shift(b); x != 0; x = shift(x) {
				rays[dir][sq] |= x
			}
		}
	}
}
