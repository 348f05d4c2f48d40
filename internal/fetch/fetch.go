// Copyright (C) 2023-2026 Jure Cerar. Licensed under the GNU GPL v3.

// Package fetch resolves structure identifiers against the database hosts
// and writes the first successful result to disk.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/jurecerar/getpdb/internal/hosts"
	"github.com/jurecerar/getpdb/pkg/types"
)

// Candidate pairs a host with the file type it would serve for a code.
type Candidate struct {
	Host hosts.Host
	Type string
}

// ExhaustedError reports that every candidate database was tried (or
// skipped pre-flight) without producing the file.
type ExhaustedError struct {
	Code     string
	Attempts []types.Attempt
}

func (e *ExhaustedError) Error() string {
	if len(e.Attempts) == 0 {
		return fmt.Sprintf("no database accepts identifier %q", e.Code)
	}
	names := make([]string, len(e.Attempts))
	for i, a := range e.Attempts {
		names[i] = a.Host
	}
	return fmt.Sprintf("no database could serve %q (tried %s)", e.Code, strings.Join(names, ", "))
}

// Candidates returns the hosts that accept code, in resolution order,
// each paired with the file type it would serve. Hosts that do not serve
// the requested type are skipped without a request and recorded as
// pre-flight attempts.
func Candidates(all []hosts.Host, code, requestedType string) ([]Candidate, []types.Attempt) {
	var candidates []Candidate
	var skipped []types.Attempt
	for _, h := range all {
		if !h.Accepts(code) {
			continue
		}
		ft := requestedType
		if ft == "" {
			ft = h.DefaultType()
		} else if !hosts.Supports(h, ft) {
			skipped = append(skipped, types.Attempt{
				Host:   h.Name(),
				Reason: fmt.Sprintf("does not support type %q", requestedType),
			})
			continue
		}
		candidates = append(candidates, Candidate{Host: h, Type: strings.ToLower(ft)})
	}
	return candidates, skipped
}

// One resolves a single identifier: candidates are tried strictly in
// order, one request in flight at a time, and the first success is
// written to cfg.OutputDir. Failed candidates (missing entries and
// transport errors alike) are recorded and resolution moves on; only a
// local write failure or exhaustion of the candidate list fails the
// identifier. The verbose trace goes to w.
func One(ctx context.Context, client *http.Client, all []hosts.Host, code string, cfg types.FetchConfig, w io.Writer) (*types.Result, error) {
	candidates, attempts := Candidates(all, code, cfg.OutputType)

	if cfg.Verbose {
		for _, a := range attempts {
			fmt.Fprintf(w, "  %s: skipped (%s)\n", a.Host, a.Reason)
		}
	}

	for _, c := range candidates {
		if cfg.Verbose {
			fmt.Fprintf(w, "  %s: fetching %s.%s\n", c.Host.Name(), code, c.Type)
		}

		data, err := c.Host.Fetch(ctx, client, code, c.Type, cfg.HTTPConfig)
		if err != nil {
			attempts = append(attempts, types.Attempt{Host: c.Host.Name(), Reason: err.Error()})
			if cfg.Verbose {
				fmt.Fprintf(w, "  %s: %v\n", c.Host.Name(), err)
			}
			continue
		}

		path, err := write(cfg.OutputDir, code, c.Type, data)
		if err != nil {
			return nil, err
		}
		if cfg.Verbose {
			fmt.Fprintf(w, "  %s: wrote %s (%s)\n", c.Host.Name(), path, humanize.Bytes(uint64(len(data))))
		}

		return &types.Result{
			Code:     code,
			Host:     c.Host.Name(),
			Type:     c.Type,
			Path:     path,
			Size:     int64(len(data)),
			Attempts: attempts,
		}, nil
	}

	return nil, &ExhaustedError{Code: code, Attempts: attempts}
}

// BatchResult holds the outcome of a multi-identifier run.
type BatchResult struct {
	Fetched int
	Failed  int
	Results []*types.Result
}

// Total returns the number of identifiers processed.
func (r BatchResult) Total() int { return r.Fetched + r.Failed }

// HasFailures reports whether any identifier failed.
func (r BatchResult) HasFailures() bool { return r.Failed > 0 }

// Batch resolves identifiers one after another. A failed identifier never
// aborts the rest of the run; per-item status goes to out and diagnostics
// to errw.
func Batch(ctx context.Context, client *http.Client, all []hosts.Host, codes []string, cfg types.FetchConfig, out, errw io.Writer) BatchResult {
	var result BatchResult
	for _, code := range codes {
		res, err := One(ctx, client, all, code, cfg, errw)
		if err != nil {
			fmt.Fprintf(errw, "failed:  %s (%v)\n", code, err)
			result.Failed++
			continue
		}
		fmt.Fprintf(out, "fetched: %s from %s\n", res.Path, res.Host)
		result.Fetched++
		result.Results = append(result.Results, res)
	}
	fmt.Fprintf(out, "\nSummary: %d fetched, %d failed (total: %d)\n",
		result.Fetched, result.Failed, result.Total())
	return result
}

// write persists data to <dir>/<code>.<fileType>, creating dir if needed.
// The payload lands in a temp file first and is renamed over the target,
// so an existing file is either fully replaced or left untouched.
func write(dir, code, fileType string, data []byte) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, code+"."+strings.ToLower(fileType))

	tmpFile, err := os.CreateTemp(dir, ".getpdb-*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, writeErr := tmpFile.Write(data)
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("writing %s: %w", path, writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("renaming temp file: %w", err)
	}
	return path, nil
}
