// Copyright (C) 2023-2026 Jure Cerar. Licensed under the GNU GPL v3.

package hosts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/jurecerar/getpdb/pkg/types"
)

// alphafoldBase is the AlphaFold prediction metadata endpoint. Var for tests.
// See https://alphafold.ebi.ac.uk/api-docs
var alphafoldBase = "https://alphafold.ebi.ac.uk/api/prediction/"

// accessionPattern matches UniProt accessions, e.g. "P00698", "A0A023GPI8".
var accessionPattern = regexp.MustCompile(`^(?:[OPQ][0-9][A-Z0-9]{3}[0-9]|[A-NR-Z][0-9](?:[A-Z][A-Z0-9]{2}[0-9]){1,2})$`)

// afPrediction captures the model file URLs from a prediction record.
type afPrediction struct {
	CifURL  string `json:"cifUrl"`
	BcifURL string `json:"bcifUrl"`
	PdbURL  string `json:"pdbUrl"`
}

// AlphaFold serves computationally predicted protein structures keyed by
// UniProt accession. Resolution is a two-step lookup: the prediction API
// returns metadata with per-format model URLs, then the model itself is
// downloaded. Both steps together count as this host's single lookup.
type AlphaFold struct{}

func (AlphaFold) Name() string { return "alphafold" }

func (AlphaFold) Accepts(code string) bool {
	return accessionPattern.MatchString(strings.ToUpper(code))
}

func (AlphaFold) SupportedTypes() []string { return []string{"cif", "bcif", "pdb"} }

func (AlphaFold) DefaultType() string { return "cif" }

func (AlphaFold) Fetch(ctx context.Context, client *http.Client, code, fileType string, cfg types.HTTPConfig) ([]byte, error) {
	metaURL := alphafoldBase + strings.ToUpper(code)

	meta, err := get(ctx, client, metaURL, cfg)
	if err != nil {
		return nil, err
	}

	var predictions []afPrediction
	if err := json.Unmarshal(meta, &predictions); err != nil {
		return nil, fmt.Errorf("parsing prediction metadata: %w", err)
	}
	if len(predictions) == 0 {
		return nil, fmt.Errorf("no prediction for %s: %w", code, ErrNotFound)
	}

	var modelURL string
	switch strings.ToLower(fileType) {
	case "cif":
		modelURL = predictions[0].CifURL
	case "bcif":
		modelURL = predictions[0].BcifURL
	case "pdb":
		modelURL = predictions[0].PdbURL
	}
	if modelURL == "" {
		return nil, fmt.Errorf("prediction for %s has no %s model: %w", code, fileType, ErrNotFound)
	}

	return get(ctx, client, modelURL, cfg)
}
