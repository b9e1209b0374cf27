// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Command execcoredemo drives the execution core from the command
// line: it loads a ClientConfig the way a production service would,
// builds a Client, and runs a single request (GET unless --method
// names another method) through Execute, printing the outcome.
//
// It exists to exercise the core end to end outside of its test
// suite, not as a general-purpose HTTP client.
package main

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"github.com/nimbussdk/httpcore"
	"github.com/nimbussdk/httpcore/config"
	"github.com/nimbussdk/httpcore/internal/obslog"
	"github.com/nimbussdk/httpcore/request"
)

var (
	configPath      string
	envPrefix       string
	method          string
	userAgentMarker string
	logLevel        string
)

func main() {
	root := &cobra.Command{
		Use:   "execcoredemo",
		Short: "Drive the httpcore execution loop against a live URL",
		Long: `execcoredemo loads a ClientConfig (defaults, optional YAML file,
environment overrides), builds an httpcore.Client from it, and runs a
single request through Execute, printing the resulting status and
body or the terminal error.`,
	}

	get := &cobra.Command{
		Use:   "get <url>",
		Short: "Execute a GET request through the core",
		Args:  cobra.ExactArgs(1),
		RunE:  runGet,
	}
	get.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML ClientConfig file (optional)")
	get.Flags().StringVar(&envPrefix, "env-prefix", "EXECCOREDEMO_", "Environment variable prefix for config overrides")
	get.Flags().StringVarP(&method, "method", "m", "GET", "HTTP method to use")
	get.Flags().StringVar(&userAgentMarker, "ua-marker", "", "Extra User-Agent token to append")
	get.Flags().StringVar(&logLevel, "log-level", "info", "Log level for the core's structured logger")
	root.AddCommand(get)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "execcoredemo:", err)
		os.Exit(1)
	}
}

func runGet(cmd *cobra.Command, args []string) error {
	rawURL := args[0]

	cfg, err := config.Load(configPath, envPrefix)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	endpoint, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}

	client, err := httpcore.New(*cfg)
	if err != nil {
		return fmt.Errorf("build client: %w", err)
	}
	client.Logger = obslog.New(logLevel)
	defer client.Close()

	original := &request.OriginalRequest{UserAgentMarker: userAgentMarker}
	req := request.New(method, endpoint, "execcoredemo", original)

	ec := &httpcore.ExecutionContext{Context: context.Background()}

	resp, err := httpcore.Execute[[]byte](client, req, rawBodyHandler{}, rawErrorHandler{}, ec)
	if err != nil {
		fmt.Fprintln(os.Stderr, "request failed:", err)
		os.Exit(1)
	}

	fmt.Printf("status: %d\n", resp.HTTP.StatusCode)
	fmt.Println(string(resp.Result))
	return nil
}
