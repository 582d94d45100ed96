package outcome

// Outcome - Result of an insert
type Outcome int

// Inserted - The key was appended to a bucket, possibly after one or more splits
const Inserted Outcome = 1

// AlreadyPresent - The key was already stored, nothing changed
const AlreadyPresent Outcome = 2

// Rejected - The key could not be placed, it comes together with a CapacityExceeded error
const Rejected Outcome = 3

// String - Returns the name of the outcome
func (O Outcome) String() string {
	switch O {
	case Inserted:
		return "inserted"
	case AlreadyPresent:
		return "already present"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}
