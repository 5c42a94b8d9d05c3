package cmd

import (
	"github.com/spf13/cobra"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List all jobs on the Jenkins server",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		client, ok := newClient(cmd)
		if !ok {
			return
		}

		jobs, err := client.Jobs(cmd.Context())
		if err != nil {
			cmd.Printf("Error listing jobs: %v\n", err)
			return
		}

		if len(jobs) == 0 {
			cmd.Println("No jobs found")
			return
		}

		for _, job := range jobs {
			if job.Color != "" {
				cmd.Printf("%s\t[%s]\t%s\n", job.Name, job.Color, job.URL)
			} else {
				cmd.Printf("%s\t%s\n", job.Name, job.URL)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(jobsCmd)
}
