package pipeline

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/backmassage/bulkrename/internal/errs"
	"github.com/backmassage/bulkrename/internal/executor"
	"github.com/backmassage/bulkrename/internal/planner"
)

// Select lists the regular files directly inside dir whose lowercased name
// ends with one of accepted. Subdirectories, symlinks, and devices are
// skipped, as are staging files left by an interrupted rename. An empty
// suffix in accepted matches every file. Files come back in directory
// listing order; use [Order] to sort them.
func Select(fsys afero.Fs, dir string, accepted []string) ([]planner.FileEntry, error) {
	infos, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, &errs.IOFailure{Op: "list", Path: dir, Err: err}
	}

	var files []planner.FileEntry
	for _, fi := range infos {
		if !fi.Mode().IsRegular() || executor.IsTempName(fi.Name()) {
			continue
		}
		if !accepts(fi.Name(), accepted) {
			continue
		}
		files = append(files, planner.FileEntry{
			Path: filepath.Join(dir, fi.Name()),
			Name: fi.Name(),
			Size: fi.Size(),
		})
	}
	return files, nil
}

func accepts(name string, accepted []string) bool {
	lower := strings.ToLower(name)
	for _, suffix := range accepted {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}
