package pipeline

import (
	"context"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/backmassage/bulkrename/internal/check"
	"github.com/backmassage/bulkrename/internal/display"
	"github.com/backmassage/bulkrename/internal/executor"
	"github.com/backmassage/bulkrename/internal/naming"
	"github.com/backmassage/bulkrename/internal/planner"
	"github.com/backmassage/bulkrename/internal/probe"
)

// Logger is the logging surface the pipeline needs.
type Logger interface {
	Info(string, ...any)
	Success(string, ...any)
	Warn(string, ...any)
	Debug(string, ...any)
}

// Confirmer asks whether a checked plan may run.
type Confirmer interface {
	Confirm(plan *planner.RenamePlan) (bool, error)
}

// Reporter presents a checked plan before it runs.
type Reporter interface {
	Report(plan *planner.RenamePlan, dryRun bool) error
}

// Options select the template and mode of one run.
type Options struct {
	Template string
	Params   naming.Params
	DryRun   bool
}

// Renamer renames directories. The zero value is not usable; FS and
// Registry are required. Log, Confirmer, Reporter, and Stamper are
// optional.
type Renamer struct {
	FS       afero.Fs
	Registry *naming.Registry
	Log      Logger

	// Confirmer is consulted for templates that require confirmation. A
	// nil Confirmer means the caller has already approved the run.
	Confirmer Confirmer
	// Reporter defaults to logging one "old -> new" line per file.
	Reporter Reporter
	// Stamper defaults to probe.New(FS).
	Stamper Stamper
	// TempName overrides the staging name generator.
	TempName func() string
}

// RenameDirectory renames the matching files in dir to the sequential
// names of opts.Template, ordered oldest first. Nothing is renamed unless
// every name has been generated and checked for conflicts. ctx is checked
// between stages; once renaming starts it runs to completion or failure.
func (r *Renamer) RenameDirectory(ctx context.Context, dir string, opts Options) (RunStats, error) {
	stats := RunStats{DryRun: opts.DryRun}
	log := r.logger()

	// --- Validate inputs before touching the directory contents ---
	if err := check.CheckDir(r.FS, dir); err != nil {
		return stats, err
	}
	dir = filepath.Clean(dir)

	def, err := r.Registry.Lookup(opts.Template)
	if err != nil {
		return stats, err
	}
	spec, err := def.Resolve(dir, opts.Params)
	if err != nil {
		return stats, err
	}
	log.Debug("Template %s: start %d, accept %q", spec.Template, spec.SeqStart, spec.Accept)
	if err := ctx.Err(); err != nil {
		return stats, err
	}

	// --- Select and order ---
	files, err := Select(r.FS, dir, spec.Accept)
	if err != nil {
		return stats, err
	}
	stats.Selected = len(files)
	if orphans, err := check.FindOrphans(r.FS, dir); err == nil && len(orphans) > 0 {
		log.Warn("%d leftover temporary files in %s are not renamed; run 'check' for details", len(orphans), dir)
	}
	if len(files) == 0 {
		log.Warn("No files in %s match template %s", dir, spec.Template)
		return stats, nil
	}
	log.Info("Selected %d files in %s", len(files), dir)

	timed := Order(files, r.stamper())
	for _, tf := range timed {
		if tf.Stamp.Warning != nil {
			stats.Warnings++
			log.Warn("%v", tf.Stamp.Warning)
			continue
		}
		log.Debug("%s: %s time %s", tf.Name, tf.Stamp.Source, tf.Stamp.Time.Format("2006-01-02 15:04:05"))
	}
	if err := ctx.Err(); err != nil {
		return stats, err
	}

	// --- Plan and check ---
	plan, err := planner.Generate(dir, spec.Template, Files(timed), spec)
	if err != nil {
		return stats, err
	}
	stats.Bytes = plan.Bytes()
	if err := planner.Check(r.FS, plan); err != nil {
		return stats, err
	}
	if err := r.reporter().Report(plan, opts.DryRun); err != nil {
		return stats, err
	}

	// --- Confirm ---
	if spec.Confirm && !opts.DryRun && r.Confirmer != nil && plan.Changes() > 0 {
		ok, err := r.Confirmer.Confirm(plan)
		if err != nil {
			return stats, err
		}
		if !ok {
			stats.Aborted = true
			log.Warn("Aborted; nothing was renamed")
			return stats, nil
		}
	}
	if err := ctx.Err(); err != nil {
		return stats, err
	}

	// --- Execute ---
	ex := executor.New(r.FS).WithLogger(log)
	if r.TempName != nil {
		ex = ex.WithTempNamer(r.TempName)
	}
	n, err := ex.Execute(plan, opts.DryRun)
	stats.Renamed = n
	if err != nil {
		return stats, err
	}

	if opts.DryRun {
		log.Success("[DRY] Would rename %d files (%s)", n, display.FormatBytes(stats.Bytes))
	} else {
		log.Success("Renamed %d files (%s)", n, display.FormatBytes(stats.Bytes))
	}
	return stats, nil
}

// RenameDirectory renames dir on the OS filesystem with the built-in
// templates and no confirmation prompt. It returns the number of files
// renamed, or that would be renamed when dryRun is set.
func RenameDirectory(dir, template string, params naming.Params, dryRun bool) (int, error) {
	r := &Renamer{FS: afero.NewOsFs(), Registry: naming.DefaultRegistry()}
	stats, err := r.RenameDirectory(context.Background(), dir, Options{
		Template: template,
		Params:   params,
		DryRun:   dryRun,
	})
	return stats.Renamed, err
}

func (r *Renamer) logger() Logger {
	if r.Log == nil {
		return nopLogger{}
	}
	return r.Log
}

func (r *Renamer) stamper() Stamper {
	if r.Stamper == nil {
		return probe.New(r.FS)
	}
	return r.Stamper
}

func (r *Renamer) reporter() Reporter {
	if r.Reporter == nil {
		return logReporter{log: r.logger()}
	}
	return r.Reporter
}

// logReporter writes one line per plan entry through the logger.
type logReporter struct {
	log Logger
}

func (l logReporter) Report(plan *planner.RenamePlan, dryRun bool) error {
	prefix := ""
	if dryRun {
		prefix = "[DRY] "
	}
	for _, e := range plan.Entries() {
		if e.NoOp() {
			l.log.Debug("%s%s (unchanged)", prefix, e.Source.Name)
			continue
		}
		l.log.Info("%s%s -> %s", prefix, e.Source.Name, e.Destination)
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...any)    {}
func (nopLogger) Success(string, ...any) {}
func (nopLogger) Warn(string, ...any)    {}
func (nopLogger) Debug(string, ...any)   {}
