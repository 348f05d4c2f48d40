// Copyright (C) 2023-2026 Jure Cerar. Licensed under the GNU GPL v3.

package hosts

import "testing"

func TestRCSBAccepts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"classic entry code", "1lyz", true},
		{"uppercase entry code", "4HHB", true},
		{"mixed case", "2Lyz", true},
		{"all digits", "1234", true},
		{"leading letter", "abcd", false},
		{"too short", "1ly", false},
		{"too long", "1lyzx", false},
		{"accession shaped", "P00698", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (RCSB{}).Accepts(tt.input); got != tt.want {
				t.Errorf("RCSB.Accepts(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLigandAccepts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"three letter code", "HEM", true},
		{"lowercase", "atp", true},
		{"single char", "K", true},
		{"numeric short", "962", true},
		{"four chars", "HEME", false},
		{"with dash", "H-M", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (Ligand{}).Accepts(tt.input); got != tt.want {
				t.Errorf("Ligand.Accepts(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPubChemAccepts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"small cid", "962", true},
		{"large cid", "123456789", true},
		{"entry code", "1lyz", false},
		{"negative", "-12", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (PubChem{}).Accepts(tt.input); got != tt.want {
				t.Errorf("PubChem.Accepts(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAlphaFoldAccepts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"swissprot accession", "P00698", true},
		{"lowercase accession", "p00698", true},
		{"trembl accession", "A0A023GPI8", true},
		{"O class", "O43175", true},
		{"entry code", "1lyz", false},
		{"numeric", "962", false},
		{"too short", "P0069", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (AlphaFold{}).Accepts(tt.input); got != tt.want {
				t.Errorf("AlphaFold.Accepts(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSupports(t *testing.T) {
	tests := []struct {
		name     string
		host     Host
		fileType string
		want     bool
	}{
		{"rcsb pdb", RCSB{}, "pdb", true},
		{"rcsb uppercase type", RCSB{}, "CIF", true},
		{"rcsb sdf", RCSB{}, "sdf", false},
		{"ligand mol2", Ligand{}, "mol2", true},
		{"pubchem asnt", PubChem{}, "asnt", true},
		{"pubchem pdb", PubChem{}, "pdb", false},
		{"alphafold bcif", AlphaFold{}, "bcif", true},
		{"alphafold sdf", AlphaFold{}, "sdf", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Supports(tt.host, tt.fileType); got != tt.want {
				t.Errorf("Supports(%s, %q) = %v, want %v", tt.host.Name(), tt.fileType, got, tt.want)
			}
		})
	}
}

func TestResolutionOrder(t *testing.T) {
	want := []string{"rcsb", "rcsb-ligand", "pubchem", "alphafold"}
	all := All()
	if len(all) != len(want) {
		t.Fatalf("All() returned %d hosts, want %d", len(all), len(want))
	}
	for i, h := range all {
		if h.Name() != want[i] {
			t.Errorf("All()[%d] = %q, want %q", i, h.Name(), want[i])
		}
	}
}

func TestDefaultTypes(t *testing.T) {
	tests := []struct {
		host Host
		want string
	}{
		{RCSB{}, "pdb"},
		{Ligand{}, "sdf"},
		{PubChem{}, "sdf"},
		{AlphaFold{}, "cif"},
	}
	for _, tt := range tests {
		t.Run(tt.host.Name(), func(t *testing.T) {
			if got := tt.host.DefaultType(); got != tt.want {
				t.Errorf("%s.DefaultType() = %q, want %q", tt.host.Name(), got, tt.want)
			}
			if !Supports(tt.host, tt.want) {
				t.Errorf("%s does not support its own default type %q", tt.host.Name(), tt.want)
			}
		})
	}
}
