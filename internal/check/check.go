// Package check provides directory validation run before every rename and
// the diagnostics behind the check command.
package check

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"

	"github.com/backmassage/bulkrename/internal/errs"
	"github.com/backmassage/bulkrename/internal/executor"
)

// Logger is the minimal logging interface needed by RunCheck.
type Logger interface {
	Info(string, ...any)
	Success(string, ...any)
	Warn(string, ...any)
	Error(string, ...any)
}

// CheckDir verifies that dir names an existing directory.
func CheckDir(fsys afero.Fs, dir string) error {
	if strings.TrimSpace(dir) == "" {
		return &errs.ValidationError{Field: "directory", Reason: "no directory given"}
	}
	fi, err := fsys.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &errs.ValidationError{Field: "directory", Value: dir, Reason: "does not exist"}
	case err != nil:
		return &errs.ValidationError{Field: "directory", Value: dir, Reason: fmt.Sprintf("cannot be read: %v", err)}
	case !fi.IsDir():
		return &errs.ValidationError{Field: "directory", Value: dir, Reason: "not a directory"}
	}
	return nil
}

// FindOrphans returns the staging files in dir left behind by an
// interrupted rename, sorted by name.
func FindOrphans(fsys afero.Fs, dir string) ([]string, error) {
	infos, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, &errs.IOFailure{Op: "list", Path: dir, Err: err}
	}
	var orphans []string
	for _, fi := range infos {
		if fi.Mode().IsRegular() && executor.IsTempName(fi.Name()) {
			orphans = append(orphans, fi.Name())
		}
	}
	return orphans, nil
}

// RunCheck reports on dir: whether it is usable, how many regular files it
// holds, and any orphaned staging files. It is informational only and
// returns false when a problem was found.
func RunCheck(fsys afero.Fs, dir string, log Logger) bool {
	log.Info("=== Directory Check ===")

	if err := CheckDir(fsys, dir); err != nil {
		log.Error("%v", err)
		return false
	}
	log.Success("Directory: %s", dir)

	infos, err := afero.ReadDir(fsys, dir)
	if err != nil {
		log.Error("Cannot list directory: %v", err)
		return false
	}

	var files, skipped int
	var size int64
	var orphans []string
	for _, fi := range infos {
		if !fi.Mode().IsRegular() {
			skipped++
			continue
		}
		files++
		size += fi.Size()
		if executor.IsTempName(fi.Name()) {
			orphans = append(orphans, fi.Name())
		}
	}
	log.Info("Regular files: %d (%s)", files, humanize.IBytes(uint64(size)))
	if skipped > 0 {
		log.Info("Ignored entries (directories, links, devices): %d", skipped)
	}

	if len(orphans) == 0 {
		log.Success("No leftover temporary files")
		return true
	}
	log.Warn("%d leftover temporary files from an interrupted rename:", len(orphans))
	for _, name := range orphans {
		log.Warn("  %s", filepath.Join(dir, name))
	}
	log.Warn("Rename them to their intended names before running again")
	return false
}
