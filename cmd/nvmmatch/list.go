package main

import (
	"github.com/spf13/cobra"

	"github.com/ivoronin/nvmmatch/internal/output"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed versions and aliases",
	Long:  `Display the versions installed by nvm and the aliases it knows about.`,
	Args:  cobra.NoArgs,
	Example: `  nvmmatch list
  nvmmatch list -j`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVarP(&listJSON, "json", "j", false, "Output in JSON format")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	client, err := newClient(ctx)
	if err != nil {
		return err
	}

	raw, err := client.List(ctx)
	if err != nil {
		return err
	}

	list := output.NewInstalledList(raw)
	loggerFromContext(ctx).Debug("listed", "versions", len(list.Versions), "aliases", len(list.Aliases))

	format := output.FormatText
	if listJSON {
		format = output.FormatJSON
	}
	return output.Write(cmd.OutOrStdout(), list, format)
}
