package planner

import (
	"path/filepath"
	"slices"
)

// FileEntry is one regular file selected for renaming.
type FileEntry struct {
	Path string // full path
	Name string // base name
	Size int64
}

// Entry pairs a source file with its sequence number and destination base
// name.
type Entry struct {
	Source      FileEntry
	Seq         int
	Destination string
}

// DestPath is the full destination path, in the source's directory.
func (e Entry) DestPath() string {
	return filepath.Join(filepath.Dir(e.Source.Path), e.Destination)
}

// NoOp reports whether the entry already has its destination name.
func (e Entry) NoOp() bool { return e.Source.Name == e.Destination }

// RenamePlan is the ordered set of renames for one directory. Entries are
// fixed at generation; accessors return copies.
type RenamePlan struct {
	Dir      string
	Template string

	entries []Entry
}

// Entries returns a copy of the plan's entries in order.
func (p *RenamePlan) Entries() []Entry { return slices.Clone(p.entries) }

// Len returns the number of entries.
func (p *RenamePlan) Len() int { return len(p.entries) }

// Bytes returns the total size of the plan's source files.
func (p *RenamePlan) Bytes() int64 {
	var n int64
	for _, e := range p.entries {
		n += e.Source.Size
	}
	return n
}

// Changes returns the number of entries that are not no-ops.
func (p *RenamePlan) Changes() int {
	n := 0
	for _, e := range p.entries {
		if !e.NoOp() {
			n++
		}
	}
	return n
}
