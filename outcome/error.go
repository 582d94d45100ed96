package outcome

import "fmt"

// ConfigurationError - Custom error to inform that an index configuration is invalid
type ConfigurationError struct {
	msg string
}

// NewConfigurationError - Returns a ConfigurationError with a formatted message
func NewConfigurationError(format string, a ...any) ConfigurationError {
	return ConfigurationError{msg: fmt.Sprintf(format, a...)}
}

// Error - Used to notify that the configuration is invalid
func (C ConfigurationError) Error() string {
	if C.msg == "" {
		return "invalid configuration"
	}
	return C.msg
}

// Is - Matches any ConfigurationError regardless of message
func (C ConfigurationError) Is(target error) bool {
	_, ok := target.(ConfigurationError)
	return ok
}

// CapacityExceeded - Custom error to inform that a key could not be placed since its bucket is full and
// can not be split any further under the configured max global depth
type CapacityExceeded struct {
	msg string
}

// NewCapacityExceeded - Returns a CapacityExceeded with a formatted message
func NewCapacityExceeded(format string, a ...any) CapacityExceeded {
	return CapacityExceeded{msg: fmt.Sprintf(format, a...)}
}

// Error - Used to notify that the index can't take the key
func (C CapacityExceeded) Error() string {
	if C.msg == "" {
		return "capacity exceeded"
	}
	return C.msg
}

// Is - Matches any CapacityExceeded regardless of message
func (C CapacityExceeded) Is(target error) bool {
	_, ok := target.(CapacityExceeded)
	return ok
}

// InternalInconsistency - Custom error to inform that the directory and bucket invariants no longer hold.
// It is a defect and not a user facing condition, the index panics with it.
type InternalInconsistency struct {
	msg string
}

// NewInternalInconsistency - Returns an InternalInconsistency with a formatted message
func NewInternalInconsistency(format string, a ...any) InternalInconsistency {
	return InternalInconsistency{msg: fmt.Sprintf(format, a...)}
}

// Error - Used to notify that the index is corrupt
func (I InternalInconsistency) Error() string {
	if I.msg == "" {
		return "internal inconsistency"
	}
	return I.msg
}

// Is - Matches any InternalInconsistency regardless of message
func (I InternalInconsistency) Is(target error) bool {
	_, ok := target.(InternalInconsistency)
	return ok
}

// NoRecordFound - Custom error to inform that no record (key or bucket) was found
type NoRecordFound struct {
	msg string
}

// NewNoRecordFound - Returns a NoRecordFound with a formatted message
func NewNoRecordFound(format string, a ...any) NoRecordFound {
	return NoRecordFound{msg: fmt.Sprintf(format, a...)}
}

// Error - Used to notify that no record was found
func (N NoRecordFound) Error() string {
	if N.msg == "" {
		return "no record found"
	}
	return N.msg
}

// Is - Matches any NoRecordFound regardless of message
func (N NoRecordFound) Is(target error) bool {
	_, ok := target.(NoRecordFound)
	return ok
}

// InvalidKey - Custom error to inform that a key is outside the domain of the hash function
type InvalidKey struct {
	msg string
}

// NewInvalidKey - Returns an InvalidKey with a formatted message
func NewInvalidKey(format string, a ...any) InvalidKey {
	return InvalidKey{msg: fmt.Sprintf(format, a...)}
}

// Error - Used to notify that a key is invalid
func (I InvalidKey) Error() string {
	if I.msg == "" {
		return "invalid key"
	}
	return I.msg
}

// Is - Matches any InvalidKey regardless of message
func (I InvalidKey) Is(target error) bool {
	_, ok := target.(InvalidKey)
	return ok
}

// HashAlgorithmError - Custom error to inform that a hash algorithm returned a value outside its range
type HashAlgorithmError struct {
	msg string
}

// NewHashAlgorithmError - Returns a HashAlgorithmError with a formatted message
func NewHashAlgorithmError(format string, a ...any) HashAlgorithmError {
	return HashAlgorithmError{msg: fmt.Sprintf(format, a...)}
}

// Error - Used to notify that the hash algorithm misbehaved
func (H HashAlgorithmError) Error() string {
	if H.msg == "" {
		return "hash value out of range"
	}
	return H.msg
}

// Is - Matches any HashAlgorithmError regardless of message
func (H HashAlgorithmError) Is(target error) bool {
	_, ok := target.(HashAlgorithmError)
	return ok
}
