package rfind

import (
	"fmt"
	"time"

	"github.com/rfind/rfind/internal/config"
	"github.com/rfind/rfind/internal/engine"
	"github.com/rfind/rfind/internal/logger"
	"github.com/rfind/rfind/internal/match"
	"github.com/rfind/rfind/internal/report"
	"github.com/rfind/rfind/internal/types"
	"github.com/rfind/rfind/pkg/core"
	"github.com/spf13/cobra"
)

func runSearch(cmd *cobra.Command, args []string, f *searchFlags) error {
	root := f.path
	if len(args) == 1 {
		root = args[0]
	}

	// Load configs: CLI > local > global
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal("."); err == nil {
		lcfg = c
	}

	opts, err := buildOptions(f, lcfg, gcfg)
	if err != nil {
		return err
	}
	verbose := pickBool(f.verbose, lcfg.Verbose, gcfg.Verbose)
	noColor := pickBool(f.noColor, lcfg.NoColor, gcfg.NoColor)
	print0 := pickBool(f.print0, lcfg.Print0, gcfg.Print0)

	stderr := cmd.ErrOrStderr()
	diag := logger.New(stderr, logger.ColorFor(stderr, noColor))
	cfg := engine.Config{
		Root:    root,
		Options: opts,
		Verbose: verbose,
		OnError: diag.Report,
	}

	start := time.Now()
	var stats engine.Stats
	if f.json {
		var paths []string
		stats, err = engine.Walk(cmd.Context(), cfg, engine.OSFS(), func(e types.Entry) {
			paths = append(paths, e.Path)
		})
		if err != nil {
			return err
		}
		if err := core.MarshalPaths(cmd.OutOrStdout(), paths); err != nil {
			return fmt.Errorf("write results: %w", err)
		}
	} else {
		pw := report.NewPathWriter(cmd.OutOrStdout(), report.PrintOptions{Print0: print0})
		stats, err = engine.Walk(cmd.Context(), cfg, engine.OSFS(), func(e types.Entry) {
			pw.Write(e.Path)
		})
		if ferr := pw.Flush(); ferr != nil && err == nil {
			err = fmt.Errorf("write results: %w", ferr)
		}
		if err != nil {
			return err
		}
	}

	if verbose {
		report.PrintSummary(stderr, stats, report.PrintOptions{Duration: time.Since(start)})
	}
	return nil
}

// buildOptions validates flag values and merges config-file defaults into
// the predicate options. Malformed --perm or --type values are rejected here
// so the walk never starts with them.
func buildOptions(f *searchFlags, local, global config.FileConfig) (match.Options, error) {
	perm, err := match.ParsePermSpec(f.perm)
	if err != nil {
		return match.Options{}, err
	}
	kinds, err := parseKinds(pickStrings(f.types, local.TypeNames(), global.TypeNames()))
	if err != nil {
		return match.Options{}, err
	}
	return match.Options{
		Pattern:       f.name,
		CaseSensitive: !pickBool(f.ignoreCase, local.IgnoreCase, global.IgnoreCase),
		Types:         kinds,
		Perm:          perm,
		Flags: match.Flags{
			SUID:       f.suid,
			SGID:       f.sgid,
			ExecOthers: f.execOthers,
			RootOwned:  f.rootOwned,
		},
	}, nil
}

func parseKinds(names []string) (types.KindSet, error) {
	if len(names) == 0 {
		return types.AllKinds(), nil
	}
	set := types.KindSet{}
	for _, n := range names {
		k, err := types.ParseKind(n)
		if err != nil {
			return nil, err
		}
		set.Add(k)
	}
	return set, nil
}
