package cmd

import (
	"github.com/spf13/cobra"
)

var consoleBuild int

var consoleCmd = &cobra.Command{
	Use:   "console [job_name]",
	Short: "Print the console output of a build",
	Long: `Print the captured console output of a single build.

Without --build the most recent build is used.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		jobName := args[0]

		client, ok := newClient(cmd)
		if !ok {
			return
		}

		text, err := client.Console(cmd.Context(), jobName, consoleBuild)
		if err != nil {
			cmd.Printf("Error fetching console output: %v\n", err)
			return
		}

		cmd.Print(text)
		if len(text) > 0 && text[len(text)-1] != '\n' {
			cmd.Println()
		}
	},
}

func init() {
	rootCmd.AddCommand(consoleCmd)
	consoleCmd.Flags().IntVarP(&consoleBuild, "build", "b", 0, "Build number (defaults to the latest build)")
}
