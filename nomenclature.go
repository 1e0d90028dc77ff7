package cclicense

import "fmt"

// Nomenclature is the era descriptor Creative Commons uses to qualify a
// license version in its canonical name: pre-3.0 licenses are "Generic",
// 3.0 is "Unported", 4.0 is "International", and CC0 is "Universal".
type Nomenclature int

const (
	// NomenclatureGeneric covers license versions 1.0, 2.0, and 2.5.
	NomenclatureGeneric Nomenclature = iota

	// NomenclatureUnported covers license version 3.0.
	NomenclatureUnported

	// NomenclatureInternational covers license version 4.0.
	NomenclatureInternational

	// NomenclatureUniversal covers CC0, regardless of the license suite
	// it shipped with.
	NomenclatureUniversal
)

// String returns the display label, e.g. "International".
func (n Nomenclature) String() string {
	switch n {
	case NomenclatureGeneric:
		return "Generic"
	case NomenclatureUnported:
		return "Unported"
	case NomenclatureInternational:
		return "International"
	case NomenclatureUniversal:
		return "Universal"
	default:
		return fmt.Sprintf("Nomenclature(%d)", int(n))
	}
}

// nomenclatureFor derives the era descriptor for a rights/version pair.
// Total over the closed sets: CC0 is always Universal (its version is
// pinned to 1.0 at construction), everything else follows the version.
func nomenclatureFor(rights Rights, version Version) Nomenclature {
	if rights == RightsPublicDomainZero {
		return NomenclatureUniversal
	}
	switch version {
	case Version3_0:
		return NomenclatureUnported
	case Version4_0:
		return NomenclatureInternational
	default:
		// 1.0, 2.0, 2.5
		return NomenclatureGeneric
	}
}
