// Command bulkrename renames every matching file in a directory to a
// sequential naming template, oldest file first.
//
// It loads configuration (defaults, config file, environment, flags),
// previews the plan, asks for confirmation where the template requires it,
// and then renames with a two-phase batch rename.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/backmassage/bulkrename/internal/config"
	"github.com/backmassage/bulkrename/internal/errs"
)

// version and commit are set at build time via -ldflags.
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line in args and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCommand(stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "bulkrename: %s error: %v\n", errs.Kind(err), err)
		return 1
	}
	return 0
}

// app carries state shared by the commands of one invocation.
type app struct {
	stdout     io.Writer
	stderr     io.Writer
	v          *viper.Viper
	configFile string
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, v: viper.New()}

	root := &cobra.Command{
		Use:   "bulkrename [dir]",
		Short: "Rename the files of a directory to a sequential naming template",
		Long: `bulkrename renames every matching file in one directory to a sequential
name, ordered by creation time (falling back to modification time).

Templates:
  generic        <prefix><seq><original extension>, every file (needs --prefix)
  olympus_c180   P<folder><seq>.JPG inside NNNOLYMP folders

Nothing is renamed unless every new name is unique and free. Use --dry-run
to preview.`,
		Example: `  bulkrename ~/scans -t generic -n IMG_ --dry-run
  bulkrename /media/card/DCIM/101OLYMP -t olympus_c180`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.runRename,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.configFile, "config", "",
		"Config file (default .bulkrename.{yaml,toml,json} in the working or home directory)")
	config.BindCommonFlags(root.PersistentFlags())
	config.BindRenameFlags(root.Flags())

	root.AddCommand(a.templatesCommand(), a.checkCommand(), versionCommand(stdout))
	return root
}

func versionCommand(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(stdout, "bulkrename %s (commit: %s)\n", version, commit)
		},
	}
}
