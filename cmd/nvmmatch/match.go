package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ivoronin/nvmmatch/internal/config"
	"github.com/ivoronin/nvmmatch/internal/output"
	"github.com/ivoronin/nvmmatch/internal/resolver"
)

var (
	matchJSON  bool
	matchLabel bool
)

var matchCmd = &cobra.Command{
	Use:   "match [specifier]",
	Short: "Resolve a specifier to the best installed version",
	Long: `Resolve an exact version, semver range, alias or "system" against the
versions installed by nvm and print the shell command activating it.

Without a specifier, the nearest .nvmrc or .node-version file is used.`,
	Args: cobra.MaximumNArgs(1),
	Example: `  eval "$(nvmmatch match 0.10)"
  nvmmatch match -j lts/boron
  nvmmatch match --label '>=0.10 <0.10.29'`,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().BoolVarP(&matchJSON, "json", "j", false, "Output in JSON format")
	matchCmd.Flags().BoolVar(&matchLabel, "label", false, "Print the matched version instead of the activation command")
}

func runMatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	spec, err := specifierFromArgs(args)
	if err != nil {
		return err
	}
	logger.Debug("matching", "specifier", spec)

	client, err := newClient(ctx)
	if err != nil {
		return err
	}

	result, err := resolver.New(client).Match(ctx, spec)
	if err != nil {
		return err
	}
	logger.Debug("matched", "specifier", spec, "version", result.Version)

	if matchLabel {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), result.Version)
		return err
	}

	format := output.FormatText
	if matchJSON {
		format = output.FormatJSON
	}
	return output.Write(cmd.OutOrStdout(), &output.MatchOutput{Result: result}, format)
}

// specifierFromArgs returns the command-line specifier, or the one stored in
// the nearest version file when none was given.
func specifierFromArgs(args []string) (string, error) {
	if len(args) == 1 {
		if args[0] == "" {
			return "", errors.New("empty specifier")
		}
		return args[0], nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	spec, _, err := config.FindSpecifier(cwd)
	if err != nil {
		return "", fmt.Errorf("no specifier given: %w", err)
	}
	return spec, nil
}
