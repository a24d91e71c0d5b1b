package board

// 32-bit Morton (Z-order) interleaving, using the standard "magic bits"
// spread. x and y are each limited to 16 bits, giving a 32-bit interleaved
// code — ample for any board this solver is meant to run on.
//
// The point of Morton addressing is that neighbor offsets become
// closed-form bit arithmetic on the interleaved code directly: no decode,
// add, re-encode round trip is needed to step one cell in x or y.

const (
	maskX uint32 = 0x55555555 // bits reserved for x (even bit positions)
	maskY uint32 = 0xAAAAAAAA // bits reserved for y (odd bit positions)
)

// spreadBits interleaves the low 16 bits of v with zero, producing the
// Morton pattern for a single axis.
func spreadBits(v uint32) uint32 {
	v &= 0x0000FFFF
	v = (v | (v << 8)) & 0x00FF00FF
	v = (v | (v << 4)) & 0x0F0F0F0F
	v = (v | (v << 2)) & 0x33333333
	v = (v | (v << 1)) & 0x55555555
	return v
}

// Encode interleaves (x, y) into a single Morton code.
func Encode(x, y uint32) uint32 {
	return spreadBits(x) | (spreadBits(y) << 1)
}

// xPlus1 increments the x component of a Morton code by one, leaving y
// untouched, without decoding. Standard "magic bits" increment-on-one-axis:
// OR in the complementary mask, add 1 into just the x bits, then mask back
// down to the x field and recombine with the unmodified y field.
func xPlus1(code uint32) uint32 {
	x := (code | maskY) + 1
	return (x & maskX) | (code & maskY)
}

// xMinus1 decrements the x component of a Morton code by one.
func xMinus1(code uint32) uint32 {
	x := (code & maskX) - 1
	return (x & maskX) | (code & maskY)
}

// yPlus1 increments the y component of a Morton code by one.
func yPlus1(code uint32) uint32 {
	y := (code | maskX) + 2
	return (y & maskY) | (code & maskX)
}

// yMinus1 decrements the y component of a Morton code by one.
func yMinus1(code uint32) uint32 {
	y := (code & maskY) - 2
	return (y & maskY) | (code & maskX)
}

// StepX returns the Morton code one cell to the east of code, for walking a
// row left-to-right without decoding/re-encoding (see pkg/solver's scan).
func StepX(code uint32) uint32 { return xPlus1(code) }

// StepY returns the Morton code one cell south of code, for advancing to the
// next row of a Morton-order scan.
func StepY(code uint32) uint32 { return yPlus1(code) }

// Neighbors8 fills dst (len 8) with the Morton codes of the 8-connected
// neighbors of code, in a fixed visitation order: W, E, NW, N, NE, SE, S, SW.
// The order is arbitrary but fixed — correctness of the returned word set
// does not depend on it.
func Neighbors8(code uint32, dst *[8]uint32) {
	left := xMinus1(code)
	right := xPlus1(code)

	dst[0] = left
	dst[1] = right
	dst[2] = yMinus1(left)  // NW
	dst[3] = yMinus1(code)  // N
	dst[4] = yMinus1(right) // NE
	dst[5] = yPlus1(right)  // SE
	dst[6] = yPlus1(code)   // S
	dst[7] = yPlus1(left)   // SW
}

// NextPow2 rounds v up to the next power of two (v itself, if already one).
// v == 0 rounds to 1.
func NextPow2(v uint32) uint32 {
	if v == 0 {
		return 1
	}
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	return v + 1
}
