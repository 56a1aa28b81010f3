package executor

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/backmassage/bulkrename/internal/errs"
	"github.com/backmassage/bulkrename/internal/planner"
)

// Logger receives one debug line per move.
type Logger interface {
	Debug(format string, args ...any)
}

// Executor runs rename plans against one filesystem.
type Executor struct {
	fs       afero.Fs
	tempName func() string
	log      Logger
}

// New returns an Executor for fsys using [NewTempName] for staging names.
func New(fsys afero.Fs) *Executor {
	return &Executor{fs: fsys, tempName: NewTempName}
}

// WithLogger sets the logger for per-move debug output.
func (e *Executor) WithLogger(l Logger) *Executor {
	e.log = l
	return e
}

// WithTempNamer replaces the staging name generator.
func (e *Executor) WithTempNamer(fn func() string) *Executor {
	e.tempName = fn
	return e
}

type staged struct {
	temp string
	dest string
}

// Execute applies plan. With dryRun set nothing is touched and the plan
// length is returned. Otherwise entries that already carry their
// destination name are left alone and the rest go through stage and
// commit. It returns the number of plan entries now at their destination.
//
// plan must have passed [planner.Check]; Execute still refuses to replace
// any existing file.
func (e *Executor) Execute(plan *planner.RenamePlan, dryRun bool) (int, error) {
	entries := plan.Entries()
	if dryRun {
		for _, en := range entries {
			e.debug("dry run: %s -> %s", en.Source.Name, en.Destination)
		}
		return len(entries), nil
	}

	noops := 0
	pending := make([]staged, 0, len(entries))
	for _, en := range entries {
		if en.NoOp() {
			noops++
			e.debug("unchanged: %s", en.Source.Name)
			continue
		}
		tmp := filepath.Join(filepath.Dir(en.Source.Path), e.tempName())
		if err := e.move(en.Source.Path, tmp); err != nil {
			return noops, &errs.RenameError{
				Phase:     errs.PhaseStage,
				Failed:    errs.Move{From: en.Source.Path, To: tmp},
				Completed: len(pending),
				Stranded:  stranded(pending),
				Err:       err,
			}
		}
		e.debug("stage: %s -> %s", en.Source.Name, filepath.Base(tmp))
		pending = append(pending, staged{temp: tmp, dest: en.DestPath()})
	}

	for i, s := range pending {
		if err := e.move(s.temp, s.dest); err != nil {
			return noops + i, &errs.RenameError{
				Phase:     errs.PhaseCommit,
				Failed:    errs.Move{From: s.temp, To: s.dest},
				Completed: i,
				Stranded:  stranded(pending[i:]),
				Err:       err,
			}
		}
		e.debug("commit: %s -> %s", filepath.Base(s.temp), filepath.Base(s.dest))
	}
	return len(entries), nil
}

// move renames from to to unless to already exists.
func (e *Executor) move(from, to string) error {
	_, err := planner.Lstat(e.fs, to)
	switch {
	case err == nil:
		return errs.ErrTargetExists
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}
	return e.fs.Rename(from, to)
}

func (e *Executor) debug(format string, args ...any) {
	if e.log != nil {
		e.log.Debug(format, args...)
	}
}

func stranded(pending []staged) []errs.Move {
	if len(pending) == 0 {
		return nil
	}
	out := make([]errs.Move, len(pending))
	for i, s := range pending {
		out[i] = errs.Move{From: s.temp, To: s.dest}
	}
	return out
}
