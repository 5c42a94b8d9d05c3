package cmd

import (
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the Jenkins server version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		client, ok := newClient(cmd)
		if !ok {
			return
		}

		version, err := client.Version(cmd.Context())
		if err != nil {
			cmd.Printf("Error getting Jenkins version: %v\n", err)
			return
		}

		cmd.Printf("Jenkins version: %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
