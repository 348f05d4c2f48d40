// Copyright (C) 2023-2026 Jure Cerar. Licensed under the GNU GPL v3.

package types

// Attempt records one candidate database that was tried (or skipped
// pre-flight) while resolving an identifier.
type Attempt struct {
	// Host is the database name, e.g. "rcsb" or "alphafold".
	Host string `json:"host" yaml:"host"`

	// Reason explains why this candidate did not produce the file.
	Reason string `json:"reason" yaml:"reason"`
}

// Result describes one successfully resolved identifier.
type Result struct {
	// Code is the identifier as supplied by the user.
	Code string `json:"code" yaml:"code"`

	// Host is the database that served the file.
	Host string `json:"host" yaml:"host"`

	// Type is the file type that was written (requested or the host default).
	Type string `json:"type" yaml:"type"`

	// Path is the location of the written file.
	Path string `json:"path" yaml:"path"`

	// Size is the number of bytes written.
	Size int64 `json:"size" yaml:"size"`

	// Attempts lists the candidates tried before this one succeeded.
	Attempts []Attempt `json:"attempts,omitempty" yaml:"attempts,omitempty"`
}
