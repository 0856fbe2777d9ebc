// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds HTTP settings for the download request.
type HTTPConfig struct {
	// Timeout is the HTTP client timeout. Zero means no timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout" validate:"gte=0"`

	// UserAgent is the User-Agent header sent with the request (e.g. "danb/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent" validate:"required"`

	// MaxRetries is how many times an HTTP 429 response is retried with
	// backoff. Zero disables retrying.
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries" validate:"gte=0,lte=10"`
}

// Endpoints holds the base URLs the four download URLs are built from.
type Endpoints struct {
	// UniProt is the UniProt entry base; "<id>.fasta" is appended.
	UniProt string `json:"uniprot" yaml:"uniprot" mapstructure:"uniprot" validate:"required,url"`

	// RCSBFasta is the RCSB FASTA entry base; the lowercased PDB ID is appended.
	RCSBFasta string `json:"rcsb_fasta" yaml:"rcsb_fasta" mapstructure:"rcsb_fasta" validate:"required,url"`

	// AlphaFold is the AlphaFold DB files base; "AF-<id>-F1-model_vN.<format>" is appended.
	AlphaFold string `json:"alphafold" yaml:"alphafold" mapstructure:"alphafold" validate:"required,url"`

	// RCSBFiles is the RCSB download base; "<lower id>.<format>" is appended.
	RCSBFiles string `json:"rcsb_files" yaml:"rcsb_files" mapstructure:"rcsb_files" validate:"required,url"`

	// AlphaFoldVersion is the model version in AlphaFold file names.
	AlphaFoldVersion int `json:"alphafold_version" yaml:"alphafold_version" mapstructure:"alphafold_version" validate:"gte=1"`
}

// FetchConfig holds settings for a single download.
type FetchConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	Endpoints Endpoints `json:"endpoints" yaml:"endpoints" mapstructure:"endpoints"`

	// OutputDir is where "<identifier>.<format>" is written when no explicit
	// output path is given.
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// AllowHTTPErrors saves non-2xx response bodies and reports success.
	AllowHTTPErrors bool `json:"allow_http_errors" yaml:"allow_http_errors" mapstructure:"allow_http_errors"`

	// Metadata writes a Record next to the downloaded file.
	Metadata bool `json:"metadata" yaml:"metadata" mapstructure:"metadata"`
}
