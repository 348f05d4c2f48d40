// Copyright (C) 2023-2026 Jure Cerar. Licensed under the GNU GPL v3.

// Package hosts implements one adapter per supported structure database.
// Each adapter knows which identifier shapes it accepts, which file types
// it can serve, and how to turn a code into a download request.
package hosts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jurecerar/getpdb/pkg/types"
)

// ErrNotFound reports that a database has no entry for the requested
// identifier. The dispatcher treats it as "not found here" and moves on
// to the next candidate.
var ErrNotFound = errors.New("not found")

// Host is a single remote database. One Fetch call performs exactly one
// logical lookup; there are no retries inside an adapter.
type Host interface {
	Name() string

	// Accepts reports whether code has the identifier shape this
	// database is keyed by.
	Accepts(code string) bool

	// SupportedTypes lists the file types this database can serve.
	SupportedTypes() []string

	// DefaultType is the type served when the user requested none.
	DefaultType() string

	// Fetch downloads code in the given file type and returns the raw
	// file contents. A missing entry is reported via ErrNotFound.
	Fetch(ctx context.Context, client *http.Client, code, fileType string, cfg types.HTTPConfig) ([]byte, error)
}

// All returns the hosts in resolution order: the experimental structure
// archive first, then its ligand store, the compound store, and the
// predicted-structure archive last.
func All() []Host {
	return []Host{RCSB{}, Ligand{}, PubChem{}, AlphaFold{}}
}

// Supports reports whether h can serve fileType.
func Supports(h Host, fileType string) bool {
	for _, t := range h.SupportedTypes() {
		if strings.EqualFold(t, fileType) {
			return true
		}
	}
	return false
}

// get issues one GET with the configured User-Agent and returns the body.
// Non-200 statuses and empty bodies map to ErrNotFound so the dispatcher
// advances to the next candidate instead of aborting.
func get(ctx context.Context, client *http.Client, url string, cfg types.HTTPConfig) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("HTTP %d from %s: %w", resp.StatusCode, url, ErrNotFound)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", url, err)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("empty body from %s: %w", url, ErrNotFound)
	}
	return body, nil
}
