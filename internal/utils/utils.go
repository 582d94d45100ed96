package utils

import (
	"strconv"
	"strings"
)

// IsPrefix - Returns true if prefix is a leading part of address (or equal to it)
func IsPrefix(prefix, address string) bool {
	return strings.HasPrefix(address, prefix)
}

// AddressToIndex - Converts a bit string address to its position in an ordered directory.
// It returns false if the address contains anything but '0' and '1' or is empty.
func AddressToIndex(address string) (index int, ok bool) {
	u, err := strconv.ParseUint(address, 2, 0)
	if err != nil {
		return
	}

	index = int(u)
	ok = true
	return
}

// Pow2 - Returns 2 to the power of exp
func Pow2(exp int) int {
	return 1 << exp
}
