// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Record describes one completed download. It is written as a YAML sidecar
// when metadata output is enabled.
type Record struct {
	// Identifier is the identifier exactly as supplied.
	Identifier string `json:"identifier" yaml:"identifier"`

	Format Format `json:"format" yaml:"format"`

	// Classification is the guessed database ("uniprot" or "pdb").
	Classification IDType `json:"classification" yaml:"classification"`

	// SourceURL is the URL that was requested.
	SourceURL string `json:"source_url" yaml:"source_url"`

	// Path is the local file the body was written to.
	Path string `json:"path" yaml:"path"`

	// StatusCode is the final HTTP status after redirects.
	StatusCode int `json:"status_code" yaml:"status_code"`

	// ContentType is the MIME type detected from the saved bytes.
	ContentType string `json:"content_type,omitempty" yaml:"content_type,omitempty"`

	// Size is the number of body bytes written.
	Size int64 `json:"size" yaml:"size"`

	// DownloadedAt is when the transfer finished.
	DownloadedAt time.Time `json:"downloaded_at" yaml:"downloaded_at"`
}
