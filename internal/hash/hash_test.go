//go:build unit

package hash

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestModuloHashAlgorithm_HashFunc(t *testing.T) {
	t.Run("creates a valid hash value", func(t *testing.T) {
		// Prepare
		h := NewModuloHashAlgorithm(97)

		// Execute
		hashValues := []int64{h.HashFunc(0), h.HashFunc(1), h.HashFunc(96), h.HashFunc(97), h.HashFunc(200)}

		// Check
		assert.Equal(t, []int64{0, 1, 96, 0, 6}, hashValues, "key mod modulo")
	})
}

func TestModuloHashAlgorithm_SetModulo(t *testing.T) {
	t.Run("sets modulo", func(t *testing.T) {
		// Prepare
		h := NewModuloHashAlgorithm(97)
		assert.Equal(t, int64(97), h.GetModulo(), "correct modulo value")

		// Execute
		h.SetModulo(16)

		// Check
		assert.Equal(t, int64(16), h.GetModulo(), "correct modulo value")
		assert.Equal(t, int64(4), h.HashFunc(20), "hashes with new modulo")
	})
}

func TestAddressWidth(t *testing.T) {
	t.Run("returns ceil of log2 of modulo", func(t *testing.T) {
		// Prepare
		modulos := []int64{2, 3, 4, 5, 8, 9, 16, 17, 32, 97, 128, 129}
		widths := []int{1, 2, 2, 3, 3, 4, 4, 5, 5, 7, 7, 8}

		// Execute and Check
		for i, m := range modulos {
			assert.Equalf(t, widths[i], AddressWidth(m), "width for modulo %d", m)
		}
	})
}

func TestBinaryAddress(t *testing.T) {
	t.Run("returns leading bits most significant first", func(t *testing.T) {
		// Prepare
		width := AddressWidth(97)

		// Execute and Check
		assert.Equal(t, "0000100", FullAddress(4, width), "full address is zero padded")
		assert.Equal(t, "0", BinaryAddress(4, width, 1), "first bit")
		assert.Equal(t, "0000", BinaryAddress(4, width, 4), "first four bits")
		assert.Equal(t, "1100000", BinaryAddress(96, width, 7), "all bits")
		assert.Equal(t, "11", BinaryAddress(96, width, 2), "first two bits")
	})

	t.Run("pads on the right when length exceeds width", func(t *testing.T) {
		// Execute and Check
		assert.Equal(t, "1000", BinaryAddress(1, 1, 4), "right padded")
		assert.Equal(t, "0100", BinaryAddress(1, 2, 4), "right padded")
	})

	t.Run("shorter addresses are prefixes of longer ones", func(t *testing.T) {
		// Prepare
		width := AddressWidth(97)

		// Execute and Check
		for h := int64(0); h < 97; h++ {
			longest := BinaryAddress(h, width, 10)
			for d := 1; d <= 10; d++ {
				assert.Equalf(t, longest[:d], BinaryAddress(h, width, d), "prefix consistency for hash %d depth %d", h, d)
			}
		}
	})
}

func TestBitAt(t *testing.T) {
	t.Run("returns bits at positions", func(t *testing.T) {
		// Prepare
		width := AddressWidth(16)

		// Execute and Check
		assert.Equal(t, byte(1), BitAt(9, width, 0), "1001 pos 0")
		assert.Equal(t, byte(0), BitAt(9, width, 1), "1001 pos 1")
		assert.Equal(t, byte(0), BitAt(9, width, 2), "1001 pos 2")
		assert.Equal(t, byte(1), BitAt(9, width, 3), "1001 pos 3")
		assert.Equal(t, byte(0), BitAt(9, width, 5), "padding is zero")
	})
}
