package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/backmassage/bulkrename/internal/check"
	"github.com/backmassage/bulkrename/internal/config"
	"github.com/backmassage/bulkrename/internal/display"
	"github.com/backmassage/bulkrename/internal/errs"
	"github.com/backmassage/bulkrename/internal/logging"
	"github.com/backmassage/bulkrename/internal/naming"
	"github.com/backmassage/bulkrename/internal/pipeline"
	"github.com/backmassage/bulkrename/internal/term"
)

var errCheckFailed = errors.New("directory check found problems")

// stdinIsTerminal reports whether a confirmation prompt can be answered.
var stdinIsTerminal = func() bool { return term.IsTerminal(os.Stdin) }

// env is the configured state a command runs with.
type env struct {
	cfg config.Config
	log *logging.Logger
	reg *naming.Registry
}

// setup loads and validates configuration, opens the logger, and builds the
// template registry. The caller must close env.log.
func (a *app) setup(cmd *cobra.Command, args []string, requireDir bool) (*env, error) {
	cfg, err := config.Load(a.v, cmd.Flags(), a.configFile)
	if err != nil {
		return nil, err
	}
	if len(args) > 0 {
		cfg.Dir = args[0]
	}
	if err := cfg.Validate(requireDir); err != nil {
		return nil, err
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		return nil, err
	}
	// Keep stdout clean for machine-readable output.
	switch cfg.Output {
	case config.OutputJSON, config.OutputYAML:
		log.WithOutput(a.stderr, a.stderr)
	default:
		log.WithOutput(a.stdout, a.stderr)
	}

	reg := naming.DefaultRegistry()
	if cfg.TemplatesFile != "" {
		n, err := reg.LoadFile(cfg.TemplatesFile)
		if err != nil {
			log.Close()
			return nil, err
		}
		log.Debug("Loaded %d templates from %s", n, cfg.TemplatesFile)
	}
	return &env{cfg: cfg, log: log, reg: reg}, nil
}

func (a *app) runRename(cmd *cobra.Command, args []string) error {
	e, err := a.setup(cmd, args, true)
	if err != nil {
		return err
	}
	defer e.log.Close()
	cfg, log := e.cfg, e.log

	if cfg.Output == config.OutputTable {
		display.PrintBanner(a.stdout)
	}
	log.Info("=== bulkrename v%s ===", version)
	log.Info("Directory: %s", cfg.Dir)
	log.Info("Template:  %s", cfg.Template)
	if cfg.DryRun {
		log.Warn("DRY RUN: no files will be renamed")
	}

	// Cancellation is honored between stages only; a started rename
	// always runs to completion or failure.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := &pipeline.Renamer{
		FS:       afero.NewOsFs(),
		Registry: e.reg,
		Log:      log,
		Reporter: display.PlanReporter{W: a.stdout, Format: cfg.Output},
	}
	if !cfg.AssumeYes {
		r.Confirmer = confirmer()
	}

	stats, err := r.RenameDirectory(ctx, cfg.Dir, pipeline.Options{
		Template: cfg.Template,
		Params: naming.Params{
			Prefix: cfg.Prefix,
			Start:  cfg.Start,
			Width:  cfg.Width,
		},
		DryRun: cfg.DryRun,
	})
	if err != nil {
		logFailure(log, err)
		return err
	}
	if stats.Warnings > 0 {
		log.Warn("%d files had no readable timestamp and were ordered first", stats.Warnings)
	}
	return nil
}

// confirmer returns the interactive prompt, or one that refuses when stdin
// is not a terminal.
func confirmer() pipeline.Confirmer {
	if stdinIsTerminal() {
		return display.Prompt{}
	}
	return display.Prompt{Ask: func(string) (bool, error) {
		return false, errors.New("stdin is not a terminal; pass --yes to rename without confirmation")
	}}
}

// logFailure adds recovery details for errors that leave work behind.
func logFailure(log *logging.Logger, err error) {
	var re *errs.RenameError
	if errors.As(err, &re) && len(re.Stranded) > 0 {
		log.Error("%d files are left under temporary names; rename them by hand:", len(re.Stranded))
		for _, m := range re.Stranded {
			log.Error("  %s -> %s", m.From, m.To)
		}
	}
	var ce *errs.ConflictError
	if errors.As(err, &ce) {
		log.Error("Nothing was renamed. Move the conflicting files away and run again.")
	}
}

func (a *app) templatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the available naming templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.setup(cmd, args, false)
			if err != nil {
				return err
			}
			defer e.log.Close()
			return display.RenderTemplates(a.stdout, e.reg.Definitions(), e.cfg.Output)
		},
	}
}

func (a *app) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <dir>",
		Short: "Check a directory and report leftovers from interrupted renames",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.setup(cmd, args, true)
			if err != nil {
				return err
			}
			defer e.log.Close()
			if !check.RunCheck(afero.NewOsFs(), e.cfg.Dir, e.log) {
				return errCheckFailed
			}
			return nil
		},
	}
}
