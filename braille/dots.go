// Package braille holds the dot pattern model and the lookup tables that turn
// a resolved chord into output.
package braille

import (
	"strconv"
	"strings"
)

// Pattern is a bitmask of braille dots. Bits 0..7 are dots 1..8, bit 8 is the
// space chord member.
type Pattern uint16

// Dot bits, one per chord position.
const (
	Dot1 Pattern = 1 << iota
	Dot2
	Dot3
	Dot4
	Dot5
	Dot6
	Dot7
	Dot8
	DotSpace
)

// Masks for the valid bit range of each input width.
const (
	SixDotMask   Pattern = 0x3F
	EightDotMask Pattern = 0xFF
	FullMask     Pattern = 0x1FF
)

// DotForNumber returns the bit for dot n (1..8), or DotSpace for 0.
func DotForNumber(n int) (Pattern, bool) {
	switch {
	case n == 0:
		return DotSpace, true
	case n >= 1 && n <= 8:
		return Pattern(1) << (n - 1), true
	default:
		return 0, false
	}
}

// IsSingleDot reports whether p has exactly one bit set.
func (p Pattern) IsSingleDot() bool {
	return p != 0 && p&(p-1) == 0
}

// Has reports whether all dots in q are present in p.
func (p Pattern) Has(q Pattern) bool {
	return p&q == q
}

// String renders the pattern as "dots-1245", with "+space" when the space
// member is set. The empty pattern is "dots-0".
func (p Pattern) String() string {
	var b strings.Builder
	b.WriteString("dots-")
	for n := 1; n <= 8; n++ {
		if p&(1<<(n-1)) != 0 {
			b.WriteString(strconv.Itoa(n))
		}
	}
	if p&EightDotMask == 0 {
		b.WriteByte('0')
	}
	if p&DotSpace != 0 {
		b.WriteString("+space")
	}
	return b.String()
}
