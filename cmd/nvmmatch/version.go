package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var versionJSON bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Long:  `Display the nvmmatch version.`,
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().BoolVarP(&versionJSON, "json", "j", false, "Output in JSON format")
}

func runVersion(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	if !versionJSON {
		_, err := fmt.Fprintf(w, "nvmmatch %s\n", Version)
		return err
	}

	out, err := json.Marshal(struct {
		Version string `json:"version"`
	}{Version: Version})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
