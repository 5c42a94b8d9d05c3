package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var runParams []string

var runCmd = &cobra.Command{
	Use:   "run [job_name]",
	Short: "Trigger a build of a job",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		jobName := args[0]

		params, err := parseParamFlags(runParams)
		if err != nil {
			cmd.Printf("Invalid parameter: %v\n", err)
			return
		}

		client, ok := newClient(cmd)
		if !ok {
			return
		}

		receipt, err := client.Build(cmd.Context(), jobName, params)
		if err != nil {
			cmd.Printf("Error running job: %v\n", err)
			return
		}

		if receipt.Number > 0 {
			cmd.Printf("Job '%s' started successfully. Build number: %d\n", jobName, receipt.Number)
		} else {
			cmd.Printf("Job '%s' started successfully.\n", jobName)
		}
	},
}

// parseParamFlags turns repeated "-p key=value" flags into a parameter map.
func parseParamFlags(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	params := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("%q is not of the form key=value", pair)
		}
		params[key] = value
	}
	return params, nil
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringArrayVarP(&runParams, "param", "p", nil, "Job parameter as key=value (repeatable)")
}
