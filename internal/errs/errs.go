// Package errs defines the error taxonomy shared by the rename engine.
//
// Every failure surfaced to a caller is one of the pointer types below, so
// callers and tests can branch on the kind with [errors.As]:
//
//	var conflict *errs.ConflictError
//	if errors.As(err, &conflict) {
//		// nothing was moved
//	}
package errs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTargetExists is wrapped by a [RenameError] when a move target appeared
// on disk after conflict detection. Targets are never overwritten.
var ErrTargetExists = errors.New("target already exists")

// ValidationError reports invalid input detected before the directory is
// scanned: a bad directory, a folder name that does not follow a template's
// convention, an unknown template, or a missing required parameter.
type ValidationError struct {
	Field  string // "directory", "template", "prefix", ...
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// IOFailure reports a directory listing or attribute read that failed.
type IOFailure struct {
	Op   string // "list", "stat"
	Path string
	Err  error
}

func (e *IOFailure) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOFailure) Unwrap() error { return e.Err }

// TemplateConfigError reports a template that cannot produce names for the
// batch: a fixed-width sequence overflow or a missing prefix.
type TemplateConfigError struct {
	Template string
	Reason   string
}

func (e *TemplateConfigError) Error() string {
	if e.Template == "" {
		return "template configuration: " + e.Reason
	}
	return fmt.Sprintf("template %s: %s", e.Template, e.Reason)
}

// ConflictKind distinguishes the two conflict checks.
type ConflictKind int

const (
	ConflictDuplicate ConflictKind = iota // Two plan entries share a destination.
	ConflictExists                        // An unrelated file occupies a destination.
)

func (k ConflictKind) String() string {
	switch k {
	case ConflictDuplicate:
		return "duplicate destination"
	case ConflictExists:
		return "destination already exists"
	default:
		return "conflict"
	}
}

// ConflictError reports a plan that would overwrite or lose a file. It is
// raised before any mutation.
type ConflictError struct {
	Kind  ConflictKind
	Names []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: %s: %s", e.Kind, strings.Join(e.Names, ", "))
}

// Phase identifies the half of the two-phase rename a move belongs to.
type Phase int

const (
	PhaseStage  Phase = 1 // source -> temporary name
	PhaseCommit Phase = 2 // temporary name -> destination
)

func (p Phase) String() string {
	switch p {
	case PhaseStage:
		return "phase 1 (stage)"
	case PhaseCommit:
		return "phase 2 (commit)"
	default:
		return fmt.Sprintf("phase %d", int(p))
	}
}

// Move is one filesystem rename.
type Move struct {
	From string
	To   string
}

// RenameError reports a move that failed during the two-phase rename. The
// directory may be left with files under temporary names; Stranded lists
// each of them with the destination it was headed for.
type RenameError struct {
	Phase     Phase
	Failed    Move
	Completed int // moves finished in Phase before the failure
	Stranded  []Move
	Err       error
}

func (e *RenameError) Error() string {
	msg := fmt.Sprintf("%s: rename %s -> %s after %d moves: %v",
		e.Phase, e.Failed.From, e.Failed.To, e.Completed, e.Err)
	if n := len(e.Stranded); n > 0 {
		msg += fmt.Sprintf(" (%d files left under temporary names)", n)
	}
	return msg
}

func (e *RenameError) Unwrap() error { return e.Err }

// Kind returns a short label for the error kind of err, or "error" when err
// is not part of this taxonomy.
func Kind(err error) string {
	var (
		validation *ValidationError
		ioFailure  *IOFailure
		template   *TemplateConfigError
		conflict   *ConflictError
		rename     *RenameError
	)
	switch {
	case errors.As(err, &validation):
		return "validation"
	case errors.As(err, &ioFailure):
		return "io"
	case errors.As(err, &template):
		return "template"
	case errors.As(err, &conflict):
		return "conflict"
	case errors.As(err, &rename):
		return "rename"
	default:
		return "error"
	}
}
