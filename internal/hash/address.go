package hash

import (
	"math/bits"
	"strconv"
	"strings"
)

// AddressWidth - Returns the number of bits needed to render every hash value below modulo, that is
// ceil(log2(modulo)). Modulo is expected to be at least 2.
func AddressWidth(modulo int64) int {
	return bits.Len64(uint64(modulo - 1))
}

// FullAddress - Renders hash as a binary string zero padded on the left to width bits
func FullAddress(hash int64, width int) string {
	b := strconv.FormatInt(hash, 2)
	if len(b) >= width {
		return b
	}

	return strings.Repeat("0", width-len(b)) + b
}

// BinaryAddress - Returns the first length bits of the width bits wide rendering of hash, most significant bit first.
// If length is longer than width the address is padded with zeros on the right, which keeps every address a prefix
// of any longer address for the same hash.
//   - hash is a hash value between 0 and 2^width - 1
//   - width is the full address width as given by AddressWidth
//   - length is the number of leading bits wanted, typically a local or global depth
func BinaryAddress(hash int64, width, length int) string {
	full := FullAddress(hash, width)
	if length <= len(full) {
		return full[:length]
	}

	return full + strings.Repeat("0", length-len(full))
}

// BitAt - Returns the bit (0 or 1) at zero based position pos of the address of hash, counted from the most
// significant bit.
func BitAt(hash int64, width, pos int) byte {
	if BinaryAddress(hash, width, pos+1)[pos] == '1' {
		return 1
	}
	return 0
}
