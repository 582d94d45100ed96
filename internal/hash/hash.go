package hash

// ModuloHashAlgorithm - The internally used hashing policy, implemented as hash = key mod modulo.
// Keys are expected to be non-negative, which is checked by the index before hashing.
type ModuloHashAlgorithm struct {
	modulo int64
}

// NewModuloHashAlgorithm - Returns a pointer to a new ModuloHashAlgorithm instance
func NewModuloHashAlgorithm(modulo int64) *ModuloHashAlgorithm {
	ha := &ModuloHashAlgorithm{}
	ha.SetModulo(modulo)
	return ha
}

// SetModulo - Sets the modulo for the hash algorithm
func (M *ModuloHashAlgorithm) SetModulo(modulo int64) {
	M.modulo = modulo
}

// HashFunc - Given key it generates a hash value between 0 and modulo - 1
func (M *ModuloHashAlgorithm) HashFunc(key int64) int64 {
	return key % M.modulo
}

// GetModulo - Returns the modulo the hash function is supporting
func (M *ModuloHashAlgorithm) GetModulo() int64 {
	return M.modulo
}
