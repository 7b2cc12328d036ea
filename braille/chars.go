package braille

// UnicodeBase is the first code point of the Braille Patterns block.
const UnicodeBase = 0x2800

// CharTable maps an eight-dot pattern to its Unicode braille cell.
type CharTable struct {
	cells [256]rune
}

// NewCharTable builds the table for U+2800..U+28FF.
func NewCharTable() CharTable {
	var t CharTable
	for i := range t.cells {
		t.cells[i] = rune(UnicodeBase + i)
	}
	return t
}

// Lookup returns the cell for p. Bits above dot 8 are ignored.
func (t CharTable) Lookup(p Pattern) rune {
	return t.cells[p&EightDotMask]
}
