package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func consoleTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/job/test-job/api/json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name": "test-job", "lastBuild": {"number": 3, "url": "http://fake/job/test-job/3/"}, "nextBuildNumber": 4}`))
	})
	mux.HandleFunc("/job/test-job/3/consoleText", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Started by user admin\nFinished: SUCCESS\n"))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestConsoleCommand_ExplicitBuild(t *testing.T) {
	resetViper()

	server := consoleTestServer(t)
	viper.Set("url", server.URL)
	viper.Set("token", "test-token")

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stdout)
	rootCmd.SetArgs([]string{"console", "test-job", "--build", "3"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(stdout.String(), "Finished: SUCCESS") {
		t.Errorf("expected console text, got: %s", stdout.String())
	}
}

func TestConsoleCommand_DefaultsToLatestBuild(t *testing.T) {
	resetViper()
	consoleBuild = 0

	server := consoleTestServer(t)
	viper.Set("url", server.URL)
	viper.Set("token", "test-token")

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stdout)
	rootCmd.SetArgs([]string{"console", "test-job"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(stdout.String(), "Finished: SUCCESS") {
		t.Errorf("expected latest build console text, got: %s", stdout.String())
	}
}

func TestConsoleCommand_BuildNotFound(t *testing.T) {
	resetViper()

	server := consoleTestServer(t)
	viper.Set("url", server.URL)
	viper.Set("token", "test-token")

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stdout)
	rootCmd.SetArgs([]string{"console", "test-job", "--build", "99"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(stdout.String(), "build not found") {
		t.Errorf("expected build-not-found error, got: %s", stdout.String())
	}
}
