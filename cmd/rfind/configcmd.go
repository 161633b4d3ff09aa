package rfind

import (
	"fmt"
	"os"

	"github.com/rfind/rfind/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}

	var (
		output     string
		types      []string
		ignoreCase bool
		verbose    bool
		noColor    bool
		print0     bool
		force      bool
	)
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .rfind.yml with the selected defaults",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := parseKinds(types); err != nil {
				return err
			}
			if _, err := os.Stat(output); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", output)
			}
			fc := config.FileConfig{
				IgnoreCase: &ignoreCase,
				Types:      &types,
				Verbose:    &verbose,
				NoColor:    &noColor,
				Print0:     &print0,
			}
			b, err := fc.Marshal()
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, b, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", output)
			return nil
		},
	}
	initCmd.Flags().StringVar(&output, "output", ".rfind.yml", "output file path")
	initCmd.Flags().StringSliceVar(&types, "type", []string{"file", "dir"}, "default entry types")
	initCmd.Flags().BoolVar(&ignoreCase, "ignore-case", false, "case-insensitive matching by default")
	initCmd.Flags().BoolVar(&verbose, "verbose", false, "verbose diagnostics by default")
	initCmd.Flags().BoolVar(&noColor, "no-color", false, "disable color output by default")
	initCmd.Flags().BoolVar(&print0, "print0", false, "NUL-terminated output by default")
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	cfgCmd.AddCommand(initCmd)
	return cfgCmd
}
