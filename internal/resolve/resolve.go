// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolve guesses which database an identifier belongs to and builds
// the download URL for it.
package resolve

import (
	"errors"
	"strconv"
	"strings"

	"github.com/pdiddy/danb/pkg/types"
)

// ErrNoURL is returned when no URL can be built for a format.
var ErrNoURL = errors.New("could not generate URL")

// minUniProtLen is the shortest identifier treated as a UniProt accession.
const minUniProtLen = 6

// DefaultEndpoints are the public UniProt, RCSB and AlphaFold DB bases.
// Declared as a var so tests can substitute httptest servers.
var DefaultEndpoints = types.Endpoints{
	UniProt:          "https://www.uniprot.org/uniprot/",
	RCSBFasta:        "https://www.rcsb.org/fasta/entry/",
	AlphaFold:        "https://alphafold.ebi.ac.uk/files/",
	RCSBFiles:        "https://files.rcsb.org/download/",
	AlphaFoldVersion: 4,
}

// Classify guesses the identifier type. Identifiers of at least six bytes
// that start with an ASCII letter look like UniProt accessions (P12345,
// A0A023GPI8); everything else is treated as a PDB entry ID (4HHB).
// The guess is never confirmed against either service.
func Classify(identifier string) types.IDType {
	if len(identifier) >= minUniProtLen && isASCIILetter(identifier[0]) {
		return types.TypeUniProt
	}
	return types.TypePDB
}

func isASCIILetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// URL returns the download URL for identifier in format using
// DefaultEndpoints, or "" if format is not recognized. format is compared
// as given; callers case-fold it first.
func URL(format, identifier string) string {
	return BuildURL(DefaultEndpoints, types.Format(format), identifier)
}

// BuildURL builds the download URL against ep. UniProt-like identifiers keep
// their case; PDB IDs are lowercased. It returns "" for an unrecognized format.
func BuildURL(ep types.Endpoints, format types.Format, identifier string) string {
	idType := Classify(identifier)
	lid := strings.ToLower(identifier)

	switch {
	case format == types.FormatFASTA:
		if idType == types.TypeUniProt {
			return ep.UniProt + identifier + ".fasta"
		}
		return ep.RCSBFasta + lid
	case format.Structure():
		if idType == types.TypeUniProt {
			return ep.AlphaFold + "AF-" + identifier + "-F1-model_v" + strconv.Itoa(ep.AlphaFoldVersion) + "." + string(format)
		}
		return ep.RCSBFiles + lid + "." + string(format)
	default:
		return ""
	}
}
