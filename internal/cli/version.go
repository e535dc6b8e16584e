package cli

import (
	"fmt"

	"github.com/MKhiriev/go-slide-form/models"
	"github.com/spf13/cobra"
)

func newVersionCommand(build models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString(build))
		},
	}
}
