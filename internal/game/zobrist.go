package game

import "math/rand"

// Zobrist hashing: one random 64-bit key per (point, stone color). The
// table is generated once for the largest supported board from a fixed
// seed, so hashes are stable across runs and board sizes share keys by
// coordinate.

const zobristStride = MaxBoardSize + 2

var zobristKeys [2][zobristStride * zobristStride]uint64

func init() {
	rng := rand.New(rand.NewSource(20090630))
	for pl := range zobristKeys {
		for i := range zobristKeys[pl] {
			zobristKeys[pl][i] = rng.Uint64()
		}
	}
}

// zobristStone returns the key of a stone at idx of a board with the
// given stride. Only BlackStone and WhiteStone have keys.
func zobristStone(stride int, idx int32, c Color) uint64 {
	col := int(idx) % stride
	row := int(idx) / stride
	return zobristKeys[c-BlackStone][row*zobristStride+col]
}
