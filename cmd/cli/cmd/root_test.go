package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

// resetViper clears viper config between tests for isolation
func resetViper() {
	viper.Reset()
	viper.SetEnvPrefix("JENKINS")
	viper.AutomaticEnv()
}

func TestMissingToken_PrintsHint(t *testing.T) {
	resetViper()

	viper.Set("url", "http://localhost:8080")
	viper.Set("token", "")

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stdout)
	rootCmd.SetArgs([]string{"version"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(stdout.String(), "API token not found") {
		t.Errorf("expected token hint, got: %s", stdout.String())
	}
}
