package planner

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/backmassage/bulkrename/internal/errs"
)

// Check verifies that plan can run without overwriting or losing a file.
// It fails on the first destination claimed twice, then stats every
// destination and reports all names occupied by files outside the plan.
// A destination occupied by its own source, or by any other source in the
// plan, is fine: staging moves every source out of the way first.
func Check(fsys afero.Fs, plan *RenamePlan) error {
	set := newDestinationSet(plan.Len())
	sources := make(map[string]struct{}, plan.Len())
	byFold := make(map[string][]string, plan.Len()) // lowercase name -> source paths
	for _, e := range plan.entries {
		if _, ok := set.claim(e.Source.Name, e.Destination); !ok {
			return &errs.ConflictError{Kind: errs.ConflictDuplicate, Names: []string{e.Destination}}
		}
		sources[e.Source.Name] = struct{}{}
		key := strings.ToLower(e.Source.Name)
		byFold[key] = append(byFold[key], e.Source.Path)
	}

	var collisions []string
	for _, e := range plan.entries {
		if e.NoOp() {
			continue
		}
		if _, ok := sources[e.Destination]; ok {
			continue
		}
		dest := e.DestPath()
		fi, err := Lstat(fsys, dest)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return &errs.IOFailure{Op: "stat", Path: dest, Err: err}
		}
		if aliasOfSource(fsys, fi, byFold[strings.ToLower(e.Destination)]) {
			continue
		}
		collisions = append(collisions, e.Destination)
	}
	if len(collisions) > 0 {
		return &errs.ConflictError{Kind: errs.ConflictExists, Names: collisions}
	}
	return nil
}

// aliasOfSource reports whether occupant is one of candidates reached
// through a different spelling, as on case-insensitive filesystems.
func aliasOfSource(fsys afero.Fs, occupant os.FileInfo, candidates []string) bool {
	for _, path := range candidates {
		fi, err := Lstat(fsys, filepath.Clean(path))
		if err == nil && os.SameFile(occupant, fi) {
			return true
		}
	}
	return false
}
