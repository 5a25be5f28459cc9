package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wethinkt/go-vstoolbox/internal/version"
)

var versionFormat string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.GetInfo("vstoolbox")
		format, err := resolveFormat(versionFormat)
		if err != nil {
			return err
		}
		if format != formatTable {
			return writeStructured(cmd.OutOrStdout(), format, info)
		}
		fmt.Fprintln(cmd.OutOrStdout(), version.String("vstoolbox"))
		return nil
	},
}

func init() {
	addFormatFlags(versionCmd, &versionFormat)
}
