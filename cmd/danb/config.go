// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/pdiddy/danb/internal/resolve"
	"github.com/pdiddy/danb/pkg/types"
)

const defaultUserAgent = "danb/0.1"

var validate = validator.New()

// flagKeys maps config keys to the root command flags that override them.
var flagKeys = map[string]string{
	"output_dir":        "output-dir",
	"timeout":           "timeout",
	"user_agent":        "user-agent",
	"max_retries":       "max-retries",
	"allow_http_errors": "allow-http-errors",
	"metadata":          "metadata",
}

func bindFlags() {
	for key, name := range flagKeys {
		if err := viper.BindPFlag(key, rootCmd.Flags().Lookup(name)); err != nil {
			fmt.Fprintf(os.Stderr, "warning: binding flag --%s: %v\n", name, err)
		}
	}
}

func setConfigDefaults() {
	viper.SetDefault("timeout", 0)
	viper.SetDefault("user_agent", defaultUserAgent)
	viper.SetDefault("max_retries", 0)
	viper.SetDefault("output_dir", "")
	viper.SetDefault("allow_http_errors", false)
	viper.SetDefault("metadata", false)

	ep := resolve.DefaultEndpoints
	viper.SetDefault("endpoints.uniprot", ep.UniProt)
	viper.SetDefault("endpoints.rcsb_fasta", ep.RCSBFasta)
	viper.SetDefault("endpoints.alphafold", ep.AlphaFold)
	viper.SetDefault("endpoints.rcsb_files", ep.RCSBFiles)
	viper.SetDefault("endpoints.alphafold_version", ep.AlphaFoldVersion)
}

// loadFetchConfig assembles the download settings from defaults, config
// file, DANB_* environment variables and flags, in increasing precedence.
func loadFetchConfig() (types.FetchConfig, error) {
	var cfg types.FetchConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
