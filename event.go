package extendiblehash

// EventKind - What kind of mutation an Event reports
type EventKind int

// EventReset - The index was reset or reconfigured to its starting state
const EventReset EventKind = 1

// EventSplit - A bucket was split, possibly after doubling the directory
const EventSplit EventKind = 2

// EventInserted - A key was appended to a bucket
const EventInserted EventKind = 3

// EventRejected - A key could not be placed
const EventRejected EventKind = 4

// String - Returns the name of the event kind
func (K EventKind) String() string {
	switch K {
	case EventReset:
		return "reset"
	case EventSplit:
		return "split"
	case EventInserted:
		return "inserted"
	case EventRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Event - Reported to an Observer after every completed mutation. Snapshot is always a complete and consistent
// state, a presentation layer can replay a sequence of events to stage the steps of an insert.
//   - Kind tells what happened
//   - Key is the key being inserted, zero for EventReset and for splits requested directly through Split
//   - BucketID is the bucket the key went to, the split bucket, or the full bucket for a rejection
//   - NewBucketID is the sibling created by a split
//   - DirectoryDoubled is true if a split doubled the directory
type Event struct {
	Kind             EventKind
	Key              int64
	BucketID         int
	NewBucketID      int
	DirectoryDoubled bool
	Snapshot         Snapshot
}

// Observer - Callback receiving events, it must not mutate the index it observes
type Observer func(event Event)

// notify - Sends event with a fresh snapshot to the observer if one is configured
func (E *ExtendibleHash) notify(event Event) {
	if E.conf.Observer == nil {
		return
	}

	event.Snapshot = toSnapshot(E.storage.Snapshot())
	E.conf.Observer(event)
}
