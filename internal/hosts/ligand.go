// Copyright (C) 2023-2026 Jure Cerar. Licensed under the GNU GPL v3.

package hosts

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/jurecerar/getpdb/pkg/types"
)

// ligandBase is the RCSB ligand download service. Var for tests.
var ligandBase = "https://files.rcsb.org/ligands/download/"

// ligandCodePattern matches chemical component identifiers: one to three
// alphanumeric characters, e.g. "HEM", "ATP", "K".
var ligandCodePattern = regexp.MustCompile(`^[A-Za-z0-9]{1,3}$`)

// Ligand serves chemical component definitions from the PDB ligand store.
// SDF and MOL2 files come in two flavors; the "ideal" (relaxed) coordinates
// are served rather than the "model" (crystal) ones.
type Ligand struct{}

func (Ligand) Name() string { return "rcsb-ligand" }

func (Ligand) Accepts(code string) bool { return ligandCodePattern.MatchString(code) }

func (Ligand) SupportedTypes() []string { return []string{"cif", "sdf", "mol2"} }

func (Ligand) DefaultType() string { return "sdf" }

func (Ligand) Fetch(ctx context.Context, client *http.Client, code, fileType string, cfg types.HTTPConfig) ([]byte, error) {
	ft := strings.ToLower(fileType)
	var url string
	if ft == "sdf" || ft == "mol2" {
		url = fmt.Sprintf("%s%s_ideal.%s", ligandBase, strings.ToUpper(code), ft)
	} else {
		url = fmt.Sprintf("%s%s.%s", ligandBase, strings.ToUpper(code), ft)
	}
	return get(ctx, client, url, cfg)
}
