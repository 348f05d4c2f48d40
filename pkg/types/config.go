// Copyright (C) 2023-2026 Jure Cerar. Licensed under the GNU GPL v3.

// Package types holds the configuration and result types shared between
// the CLI and the fetch packages.
package types

import "time"

// HTTPConfig holds shared HTTP settings for outbound requests.
type HTTPConfig struct {
	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with every request
	// (e.g. "getpdb/0.2").
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// InsecureSkipVerify disables TLS certificate verification.
	// Needed behind some institutional proxies.
	InsecureSkipVerify bool `json:"insecure_skip_verify" yaml:"insecure_skip_verify"`
}

// FetchConfig holds the settings for one fetch run.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// OutputDir is the directory that receives fetched files (default ".").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// OutputType is the requested file type. Empty means each database
	// serves its own default format.
	OutputType string `json:"output_type,omitempty" yaml:"output_type,omitempty"`

	// Verbose enables the per-database attempt trace.
	Verbose bool `json:"verbose" yaml:"verbose"`
}
