package braille

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharTable(t *testing.T) {
	table := NewCharTable()

	assert.Equal(t, '⠀', table.Lookup(0))
	assert.Equal(t, '⠁', table.Lookup(Dot1))
	assert.Equal(t, '⠉', table.Lookup(Dot1|Dot4))
	assert.Equal(t, '⣿', table.Lookup(EightDotMask))
	for p := Pattern(0); p <= EightDotMask; p++ {
		assert.Equal(t, rune(0x2800+int(p)), table.Lookup(p))
	}
}

func TestCharTableIgnoresSpaceBit(t *testing.T) {
	table := NewCharTable()
	assert.Equal(t, table.Lookup(Dot1|Dot2), table.Lookup(DotSpace|Dot1|Dot2))
}
