package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"jenkinsmcp/internal/jenkins"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "jenkinsctl",
	Short: "Jenkinsctl is a command line tool for interacting with a Jenkins server",
	Long: `jenkinsctl is the command-line counterpart of the Jenkins MCP server:
the same five operations the MCP tools expose, for humans.

Common workflows:

  Show the server version:
    jenkinsctl version

  List all jobs:
    jenkinsctl jobs

  Inspect a job:
    jenkinsctl info my-pipeline

  Trigger a build:
    jenkinsctl run my-pipeline -p BRANCH=main -p DEPLOY=true

  Read console output:
    jenkinsctl console my-pipeline --build 42

Configuration:
  Set the Jenkins endpoint and credentials via flags, environment
  variables, or a config file:
    JENKINS_URL         Jenkins base URL
    JENKINS_USER        Username for basic auth
    JENKINS_TOKEN       API token for authentication`,
}

func Execute() error {
	return rootCmd.Execute()
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".jenkinsctl"
		viper.AddConfigPath(home)
		viper.SetConfigName(".jenkinsctl")
		viper.SetConfigType("yaml")
	}

	// Read environment variables that match "JENKINS_VARNAME"
	viper.SetEnvPrefix("JENKINS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.jenkinsctl.yaml)")

	rootCmd.PersistentFlags().String("url", "http://localhost:8080", "Jenkins server URL")
	viper.BindPFlag("url", rootCmd.PersistentFlags().Lookup("url"))

	rootCmd.PersistentFlags().StringP("user", "u", "", "Username for basic auth")
	viper.BindPFlag("user", rootCmd.PersistentFlags().Lookup("user"))

	rootCmd.PersistentFlags().StringP("token", "t", "", "API token for authentication")
	viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))

	rootCmd.PersistentFlags().Bool("verify-ssl", false, "Verify the Jenkins TLS certificate")
	viper.BindPFlag("verify-ssl", rootCmd.PersistentFlags().Lookup("verify-ssl"))
}

// newClient builds a Jenkins client from the resolved CLI configuration.
// It returns false (after printing a hint) when credentials are missing.
func newClient(cmd *cobra.Command) (*jenkins.Client, bool) {
	token := viper.GetString("token")
	if token == "" {
		cmd.Println("API token not found. Please set it using the --token flag or the JENKINS_TOKEN environment variable")
		return nil, false
	}

	return jenkins.NewClient(jenkins.Config{
		BaseURL:   viper.GetString("url"),
		Username:  viper.GetString("user"),
		APIToken:  token,
		VerifySSL: viper.GetBool("verify-ssl"),
	}, nil), true
}
