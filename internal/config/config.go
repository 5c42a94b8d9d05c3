// Package config handles environment variable loading for the Jenkins
// connection and the optional observability endpoints.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values for the application. It is
// loaded once at startup and never mutated afterwards.
type Config struct {
	// Jenkins connection
	JenkinsURL      string
	JenkinsUsername string
	JenkinsAPIToken string

	// Verify the Jenkins TLS certificate. Off by default; internal
	// servers commonly run self-signed certificates.
	VerifySSL bool

	// Per-request timeout for Jenkins calls
	RequestTimeout time.Duration

	// Listen address for the Prometheus /metrics endpoint.
	// Empty disables the listener.
	MetricsAddr string

	// OTLP collector endpoint for traces. Empty disables tracing.
	OTELEndpoint string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	jenkinsURL := os.Getenv("JENKINS_URL")
	if jenkinsURL == "" {
		return nil, fmt.Errorf("jenkins_url is required (env: JENKINS_URL)")
	}

	username := os.Getenv("JENKINS_USERNAME")
	if username == "" {
		return nil, fmt.Errorf("jenkins_username is required (env: JENKINS_USERNAME)")
	}

	apiToken := os.Getenv("JENKINS_PASSWORD")
	if apiToken == "" {
		return nil, fmt.Errorf("jenkins_password is required (env: JENKINS_PASSWORD)")
	}

	verifySSL := false
	if v := os.Getenv("JENKINS_VERIFY_SSL"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid JENKINS_VERIFY_SSL: %w", err)
		}
		verifySSL = b
	}

	timeout := 30 * time.Second // Default
	if v := os.Getenv("JENKINS_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid JENKINS_TIMEOUT: %w", err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("invalid JENKINS_TIMEOUT: must be positive")
		}
		timeout = d
	}

	return &Config{
		JenkinsURL:      jenkinsURL,
		JenkinsUsername: username,
		JenkinsAPIToken: apiToken,
		VerifySSL:       verifySSL,
		RequestTimeout:  timeout,
		MetricsAddr:     os.Getenv("METRICS_ADDR"),
		OTELEndpoint:    os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}, nil
}
