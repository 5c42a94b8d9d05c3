package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [job_name]",
	Short: "Show detailed information about a job",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		jobName := args[0]

		client, ok := newClient(cmd)
		if !ok {
			return
		}

		info, err := client.Job(cmd.Context(), jobName)
		if err != nil {
			cmd.Printf("Error getting job info: %v\n", err)
			return
		}

		out, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			cmd.Printf("Error formatting job info: %v\n", err)
			return
		}
		cmd.Println(string(out))
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
