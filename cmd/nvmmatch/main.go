package main

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Version is set via ldflags at build time.
var Version = "dev"

var (
	configPath string
	shellPath  string
	nvmDir     string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "nvmmatch",
	Short: "Match node version specifiers against versions installed by nvm",
	Long: `Resolve an exact version, semver range, alias or "system" against the
versions installed by nvm and print the command that activates the best match.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := charmlog.InfoLevel
		if verbose {
			level = charmlog.DebugLevel
		}
		cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/nvmmatch/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&shellPath, "shell", "", "Shell used to run nvm (default $SHELL)")
	rootCmd.PersistentFlags().StringVar(&nvmDir, "nvm-dir", "", "Directory containing nvm.sh (default $NVM_DIR)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")

	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	os.Exit(run())
}

// run executes the root command and returns the process exit code.
func run() int {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCode(err)
	}
	return ExitSuccess
}
