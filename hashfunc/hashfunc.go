package hashfunc

// HashAlgorithm - Interface that permits an implementation using the ExtendibleHash to supply a custom hashing
// policy suited for its particular distribution of keys.
type HashAlgorithm interface {
	// SetModulo - Sets the modulo for the hash algorithm.
	// It is called every time the index is configured, hence if a custom hash algorithm is supplied that
	// already has a modulo, it will be overwritten by the hash modulo given in the configuration.
	//   - modulo is the number of distinct hash values the index will address
	SetModulo(modulo int64)

	// HashFunc - Given a non-negative key it generates a hash value between 0 and modulo - 1.
	// Any value returned outside that range will result in an error down stream.
	HashFunc(key int64) int64

	// GetModulo - Returns the modulo the implemented hash function is supporting.
	// The binary address width of every entry is derived from this value, so it must return the actual
	// modulo in use and not just the one given in the call to SetModulo if the implementation adjusts it.
	GetModulo() int64
}
