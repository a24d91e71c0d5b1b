// Package alphabet centralizes the 26-letter tile alphabet used by every
// other package: letter<->index conversion, the Qu digraph rule, and the
// padding sentinel reserved for cells outside a power-of-two padded board.
package alphabet

// Size is the number of distinct letter indices, A through Z.
const Size = 26

// Padding marks a tile outside the logical board. It is chosen outside the
// 0..25 letter range and, deliberately, outside the 26-bit child mask used
// by pkg/trie, so a padding tile can never match a trie edge.
const Padding byte = 1 << 7

// QIndex is the letter index of 'Q', the only letter that stands for a
// two-character digraph ("Qu") on a tile.
const QIndex = 'Q' - 'A'

// Index converts an uppercase ASCII letter to its 0-25 index. The caller
// must have already validated that c is an uppercase letter; Index does not
// range-check.
func Index(c byte) byte {
	return c - 'A'
}

// Letter converts a 0-25 index back to its uppercase ASCII letter.
func Letter(idx byte) byte {
	return idx + 'A'
}

// IsLetter reports whether c is an uppercase ASCII letter A-Z.
func IsLetter(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

// IsASCIILetter reports whether c is an ASCII letter in either case, the
// form accepted while scanning raw dictionary or board input before it is
// upper-cased.
func IsASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// ToUpper upper-cases an ASCII letter; non-letters pass through unchanged.
func ToUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
