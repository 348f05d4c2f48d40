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

// pubchemBase is the PubChem PUG REST compound endpoint. Var for tests.
// See https://pubchem.ncbi.nlm.nih.gov/docs/pug-rest
var pubchemBase = "https://pubchem.ncbi.nlm.nih.gov/rest/pug/compound/CID/"

// cidPattern matches PubChem compound identifiers: all digits.
var cidPattern = regexp.MustCompile(`^[0-9]+$`)

// PubChem serves compound records from the PubChem database, requesting
// the 3D conformer record.
type PubChem struct{}

func (PubChem) Name() string { return "pubchem" }

func (PubChem) Accepts(code string) bool { return cidPattern.MatchString(code) }

func (PubChem) SupportedTypes() []string { return []string{"sdf", "json", "xml", "asnt"} }

func (PubChem) DefaultType() string { return "sdf" }

func (PubChem) Fetch(ctx context.Context, client *http.Client, code, fileType string, cfg types.HTTPConfig) ([]byte, error) {
	url := fmt.Sprintf("%s%s/record/%s?record_type=3d", pubchemBase, code, strings.ToUpper(fileType))
	return get(ctx, client, url, cfg)
}
