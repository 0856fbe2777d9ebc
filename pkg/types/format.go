// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// ErrUnsupportedFormat is returned when a format token is not one of Formats.
var ErrUnsupportedFormat = errors.New("format must be 'pdb', 'cif', or 'fasta'")

// Format is the file format to download.
type Format string

const (
	FormatFASTA Format = "fasta"
	FormatPDB   Format = "pdb"
	FormatCIF   Format = "cif"
)

// Formats lists every recognized format.
var Formats = []Format{FormatPDB, FormatCIF, FormatFASTA}

// ParseFormat case-folds s and returns the matching Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	if !f.Valid() {
		return "", fmt.Errorf("%w: got %q", ErrUnsupportedFormat, s)
	}
	return f, nil
}

// Valid reports whether f is one of Formats. It does not case-fold.
func (f Format) Valid() bool {
	return lo.Contains(Formats, f)
}

// Structure reports whether f is a 3D coordinate format.
func (f Format) Structure() bool {
	return f == FormatPDB || f == FormatCIF
}

func (f Format) String() string {
	return string(f)
}

// IDType is the guessed database of an identifier.
type IDType int

const (
	// TypePDB marks an identifier that looks like a PDB entry ID.
	TypePDB IDType = iota
	// TypeUniProt marks an identifier that looks like a UniProt accession.
	TypeUniProt
)

func (t IDType) String() string {
	switch t {
	case TypeUniProt:
		return "uniprot"
	default:
		return "pdb"
	}
}

// MarshalText lets IDType appear by name in YAML records.
func (t IDType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
