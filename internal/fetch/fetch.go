// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch downloads a sequence or structure file for one identifier.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gabriel-vasile/mimetype"
	log "github.com/sirupsen/logrus"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/danb/internal/httputil"
	"github.com/pdiddy/danb/internal/resolve"
	"github.com/pdiddy/danb/pkg/types"
)

// recordExt is appended to the output path for the metadata sidecar.
const recordExt = ".yaml"

// Target names what to download and where to put it.
type Target struct {
	// Identifier is used as supplied for the output name and as the URL key.
	Identifier string
	Format     types.Format

	// Path overrides the default "<identifier>.<format>" under OutputDir.
	Path string
}

// OutputPath returns the file the target is written to.
func OutputPath(t Target, outputDir string) string {
	if t.Path != "" {
		return t.Path
	}
	name := t.Identifier + "." + string(t.Format)
	if outputDir == "" {
		return name
	}
	return filepath.Join(outputDir, name)
}

// Result describes a finished transfer.
type Result struct {
	StatusCode  int
	Size        int64
	ContentType string
}

// StatusError reports a non-2xx response that was not saved.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
}

// IsStatusError reports whether err wraps a *StatusError.
func IsStatusError(err error) bool {
	var se *StatusError
	return errors.As(err, &se)
}

// Fetch classifies the identifier, builds its URL, and downloads it to the
// target path. It writes a Record sidecar when cfg.Metadata is set.
func Fetch(ctx context.Context, client *http.Client, t Target, cfg types.FetchConfig, w io.Writer) (*types.Record, error) {
	idType := resolve.Classify(t.Identifier)
	url := resolve.BuildURL(cfg.Endpoints, t.Format, t.Identifier)
	if url == "" {
		return nil, fmt.Errorf("%w for format %q", resolve.ErrNoURL, t.Format)
	}

	log.WithFields(log.Fields{
		"identifier": t.Identifier,
		"format":     t.Format,
		"type":       idType,
		"url":        url,
	}).Debug("resolved download URL")

	if t.Path == "" && cfg.OutputDir != "" {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", cfg.OutputDir, err)
		}
	}
	path := OutputPath(t, cfg.OutputDir)

	res, err := Download(ctx, client, url, path, cfg, w)
	if err != nil {
		return nil, err
	}

	rec := &types.Record{
		Identifier:     t.Identifier,
		Format:         t.Format,
		Classification: idType,
		SourceURL:      url,
		Path:           path,
		StatusCode:     res.StatusCode,
		ContentType:    res.ContentType,
		Size:           res.Size,
		DownloadedAt:   time.Now().UTC(),
	}

	if cfg.Metadata {
		if err := writeRecord(rec, path+recordExt); err != nil {
			return rec, fmt.Errorf("writing metadata for %s: %w", path, err)
		}
	}
	return rec, nil
}

// Download opens destPath for writing, then GETs url and streams the body
// into it unchanged. The file is opened before the request, so an
// unwritable path never reaches the network. Bytes already written are
// left on disk when the transfer fails.
//
// A non-2xx status is a *StatusError unless cfg.AllowHTTPErrors is set, in
// which case the body is saved and the transfer reported as successful.
// On success "Downloaded: <path>" is printed to w.
func Download(ctx context.Context, client *http.Client, url, destPath string, cfg types.FetchConfig, w io.Writer) (*Result, error) {
	out, err := os.Create(destPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %s: %w", destPath, err)
	}
	defer out.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, cfg.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if !cfg.AllowHTTPErrors {
			return nil, fmt.Errorf("download failed: %w", &StatusError{StatusCode: resp.StatusCode, URL: url})
		}
		log.WithFields(log.Fields{
			"status": resp.StatusCode,
			"url":    url,
		}).Warn("saving response body despite HTTP error status")
	}

	n, err := io.Copy(out, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("download failed: %w", err)
	}
	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("closing %s: %w", destPath, err)
	}

	res := &Result{StatusCode: resp.StatusCode, Size: n}
	if n > 0 {
		res.ContentType = sniff(destPath)
	}

	fmt.Fprintf(w, "Downloaded: %s\n", destPath)
	return res, nil
}

// sniff detects the MIME type of the saved file. HTML usually means an
// error page was saved instead of the requested data.
func sniff(path string) string {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		log.WithError(err).WithField("path", path).Debug("content type detection failed")
		return ""
	}
	if mt.Is("text/html") {
		log.WithFields(log.Fields{
			"path": path,
			"mime": mt.String(),
		}).Warn("downloaded file looks like an HTML page, not sequence or structure data")
	}
	return mt.String()
}

// writeRecord writes a Record to a YAML file.
func writeRecord(rec *types.Record, path string) error {
	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling record: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
