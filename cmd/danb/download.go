// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/pdiddy/danb/internal/fetch"
	"github.com/pdiddy/danb/pkg/types"
)

func init() {
	f := rootCmd.Flags()
	f.StringP("output", "o", "", "output file path (default: <identifier>.<format>)")
	f.String("output-dir", "", "directory for the default output file name")
	f.Duration("timeout", 0, "HTTP request timeout (default: none)")
	f.String("user-agent", defaultUserAgent, "User-Agent header sent with the request")
	f.Int("max-retries", 0, "retry HTTP 429 responses this many times with backoff")
	f.Bool("allow-http-errors", false, "save the response body even for non-2xx statuses")
	f.Bool("metadata", false, "write a YAML record next to the downloaded file")
}

func runDownload(cmd *cobra.Command, args []string) error {
	// Arguments are valid from here on; later errors are not usage errors.
	cmd.SilenceUsage = true

	format, err := types.ParseFormat(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadFetchConfig()
	if err != nil {
		return err
	}
	output, _ := cmd.Flags().GetString("output")

	client := &http.Client{
		Timeout: cfg.Timeout,
	}

	target := fetch.Target{
		Identifier: args[1],
		Format:     format,
		Path:       output,
	}
	_, err = fetch.Fetch(cmd.Context(), client, target, cfg, cmd.OutOrStdout())
	return err
}
