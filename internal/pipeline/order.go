package pipeline

import (
	"slices"
	"strings"

	"github.com/backmassage/bulkrename/internal/planner"
	"github.com/backmassage/bulkrename/internal/probe"
)

// Stamper returns the ordering timestamp for a file.
type Stamper interface {
	Stamp(path string) probe.Stamp
}

// TimedFile is a selected file with its ordering timestamp.
type TimedFile struct {
	planner.FileEntry
	Stamp probe.Stamp
}

// Order stamps every file and sorts oldest first. Ties break on the
// case-insensitive name, then on the exact name, so the result is the same
// for any input order. Files are never dropped or merged.
func Order(files []planner.FileEntry, stamper Stamper) []TimedFile {
	timed := make([]TimedFile, len(files))
	for i, f := range files {
		timed[i] = TimedFile{FileEntry: f, Stamp: stamper.Stamp(f.Path)}
	}
	slices.SortStableFunc(timed, compareTimed)
	return timed
}

func compareTimed(a, b TimedFile) int {
	if c := a.Stamp.Time.Compare(b.Stamp.Time); c != 0 {
		return c
	}
	if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
		return c
	}
	return strings.Compare(a.Name, b.Name)
}

// Files drops the timestamps, keeping order.
func Files(timed []TimedFile) []planner.FileEntry {
	out := make([]planner.FileEntry, len(timed))
	for i, tf := range timed {
		out[i] = tf.FileEntry
	}
	return out
}
