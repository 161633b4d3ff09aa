package rfind

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// searchFlags holds the raw command-line values before config files are merged.
type searchFlags struct {
	path       string
	name       string
	types      []string
	ignoreCase bool
	perm       string
	suid       bool
	sgid       bool
	execOthers bool
	rootOwned  bool
	verbose    bool
	noColor    bool
	print0     bool
	json       bool
}

// rootCmd is the base Cobra command for the rfind CLI.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	f := &searchFlags{}
	cmd := &cobra.Command{
		Use:   "rfind [path]",
		Short: "Find files and directories by name, type and permissions",
		Long: "rfind walks a directory tree depth-first and prints every entry matching all of the\n" +
			"given criteria: a base-name glob, entry type, permission bits and special mode flags.",
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.path, "path", "p", ".", "directory to start searching from")
	fl.StringVarP(&f.name, "name", "n", "", "glob matched against the base name (*, ?, [...], {a,b})")
	fl.StringSliceVarP(&f.types, "type", "t", nil, "entry types to report: file, dir (repeatable; default both)")
	fl.BoolVarP(&f.ignoreCase, "ignore-case", "i", false, "case-insensitive name matching")
	fl.StringVar(&f.perm, "perm", "", "permission filter: exact octal (644) or any-bit mask (/4000)")
	fl.BoolVar(&f.suid, "suid", false, "only entries with the setuid bit")
	fl.BoolVar(&f.sgid, "sgid", false, "only entries with the setgid bit")
	fl.BoolVar(&f.execOthers, "exec-others", false, "only entries executable by others")
	fl.BoolVar(&f.rootOwned, "root-owned", false, "only entries owned by uid 0")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "report unreadable paths and a summary on stderr")
	fl.BoolVar(&f.noColor, "no-color", false, "disable colorized diagnostics")
	fl.BoolVarP(&f.print0, "print0", "0", false, "terminate each path with NUL instead of newline")
	fl.BoolVar(&f.json, "json", false, "emit matches as a JSON array")

	cmd.AddCommand(newCompletionCmd(cmd), newConfigCmd())
	return cmd
}

// exitCode maps a command error to the process status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	return 2
}

// Execute runs the rfind CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitCode(err))
	}
}
