package probe

import "time"

// Source identifies which link of the fallback chain produced a stamp.
type Source int

const (
	SourceBirth Source = iota
	SourceModified
	SourceSentinel
)

func (s Source) String() string {
	switch s {
	case SourceBirth:
		return "birth"
	case SourceModified:
		return "modified"
	default:
		return "sentinel"
	}
}

// Sentinel is the timestamp used when no real one can be read. Files
// stamped with it sort before every file with a real timestamp.
var Sentinel = time.Unix(0, 0).UTC()

// Stamp is the ordering timestamp of one file.
type Stamp struct {
	Time    time.Time
	Source  Source
	Warning error // set when Time is Sentinel because reads failed
}
