package planner

import (
	"os"

	"github.com/spf13/afero"
)

// destinationSet tracks which source claimed each destination name within
// one plan.
type destinationSet struct {
	owners map[string]string // destination -> source name that claimed it
}

func newDestinationSet(size int) *destinationSet {
	return &destinationSet{owners: make(map[string]string, size)}
}

// claim records that source renames to dest. When dest is already claimed
// by a different source it returns that owner and false.
func (s *destinationSet) claim(source, dest string) (string, bool) {
	owner, exists := s.owners[dest]
	if exists && owner != source {
		return owner, false
	}
	s.owners[dest] = source
	return source, true
}

// Lstat stats path without following a final symlink when fsys supports
// it, so a dangling link still counts as an occupied name.
func Lstat(fsys afero.Fs, path string) (os.FileInfo, error) {
	if l, ok := fsys.(afero.Lstater); ok {
		fi, _, err := l.LstatIfPossible(path)
		return fi, err
	}
	return fsys.Stat(path)
}
