// Package main is the entry point for the Jenkins MCP server. It loads
// the environment configuration, builds the Jenkins client, and serves
// the tool surface over stdio. All logging goes to stderr because
// stdout carries the MCP protocol stream.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"jenkinsmcp/internal/config"
	"jenkinsmcp/internal/jenkins"
	"jenkinsmcp/internal/logger"
	"jenkinsmcp/internal/observability"
	"jenkinsmcp/internal/server"
	"jenkinsmcp/internal/tools"
)

const serviceName = "jenkins-mcp"

func main() {
	log := logger.New(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Tracing
	if cfg.OTELEndpoint != "" {
		shutdownTracer, err := observability.InitTracer(ctx, serviceName, cfg.OTELEndpoint)
		if err != nil {
			log.Error("failed to init tracing", "err", err)
			os.Exit(1)
		}
		defer func() {
			if err := shutdownTracer(context.Background()); err != nil {
				log.Warn("failed to shutdown tracer", "err", err)
			}
		}()
	}

	// Metrics
	if cfg.MetricsAddr != "" {
		metricsHandler, shutdownMetrics, err := observability.InitMetrics(serviceName)
		if err != nil {
			log.Error("failed to init metrics", "err", err)
			os.Exit(1)
		}
		defer func() {
			if err := shutdownMetrics(context.Background()); err != nil {
				log.Warn("failed to shutdown metrics", "err", err)
			}
		}()

		mux := http.NewServeMux()
		mux.Handle("/metrics", metricsHandler)
		metricsSrv := &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics listener failed", "err", err)
			}
		}()
		defer metricsSrv.Close()

		log.Info("metrics listener started", "addr", cfg.MetricsAddr)
	}

	client := jenkins.NewClient(jenkins.Config{
		BaseURL:   cfg.JenkinsURL,
		Username:  cfg.JenkinsUsername,
		APIToken:  cfg.JenkinsAPIToken,
		VerifySSL: cfg.VerifySSL,
		Timeout:   cfg.RequestTimeout,
	}, log)

	s := server.New(tools.New(client, log))

	log.Info("starting jenkins mcp server", "jenkins_url", cfg.JenkinsURL, "version", server.Version)
	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server exited", "err", err)
		os.Exit(1)
	}
}
