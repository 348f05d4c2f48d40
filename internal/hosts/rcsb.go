// Copyright (C) 2023-2026 Jure Cerar. Licensed under the GNU GPL v3.

package hosts

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/jurecerar/getpdb/pkg/types"
)

// rcsbBase is the RCSB file download service. Declared as a var so tests
// can substitute an httptest server.
// See https://www.rcsb.org/docs/programmatic-access/file-download-services
var rcsbBase = "https://files.rcsb.org/download/"

// entryCodePattern matches PDB entry codes: four characters, leading digit,
// e.g. "1lyz", "4HHB".
var entryCodePattern = regexp.MustCompile(`^[0-9][A-Za-z0-9]{3}$`)

// RCSB serves experimentally determined entries from the PDB archive.
// The download service delivers everything gzipped.
type RCSB struct{}

func (RCSB) Name() string { return "rcsb" }

func (RCSB) Accepts(code string) bool { return entryCodePattern.MatchString(code) }

func (RCSB) SupportedTypes() []string { return []string{"pdb", "cif", "bcif", "xml"} }

func (RCSB) DefaultType() string { return "pdb" }

func (RCSB) Fetch(ctx context.Context, client *http.Client, code, fileType string, cfg types.HTTPConfig) ([]byte, error) {
	url := fmt.Sprintf("%s%s.%s.gz", rcsbBase, strings.ToUpper(code), strings.ToLower(fileType))

	body, err := get(ctx, client, url, cfg)
	if err != nil {
		return nil, err
	}

	zr, err := gzip.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", url, err)
	}
	defer zr.Close()

	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", url, err)
	}
	return data, nil
}
