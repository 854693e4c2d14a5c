package inst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTableCompleteness mirrors the teacher pack's
// TestCatalogCompleteness: every descriptor must carry a valid length and
// a non-nil encoder.
func TestTableCompleteness(t *testing.T) {
	for mnemonic, d := range Table {
		assert.NotNil(t, d.Encode, "mnemonic %s has no encoder", mnemonic)
		assert.Contains(t, []int{2, 4}, d.Length, "mnemonic %s has invalid length %d", mnemonic, d.Length)
		assert.Equal(t, mnemonic, d.Mnemonic)
	}
}

func TestLookupUnknownMnemonic(t *testing.T) {
	_, ok := Lookup("FROBNICATE")
	assert.False(t, ok)
}

func TestSplitMnemonic(t *testing.T) {
	tests := []struct {
		line     string
		mnemonic string
		operands string
	}{
		{"LDI R16, 0x0A", "LDI", "R16, 0x0A"},
		{"NOP", "NOP", ""},
		{"ldi r16,10", "LDI", "r16,10"},
	}
	for _, tt := range tests {
		m, ops := SplitMnemonic(tt.line)
		assert.Equal(t, tt.mnemonic, m)
		assert.Equal(t, tt.operands, ops)
	}
}
