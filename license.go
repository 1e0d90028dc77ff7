package cclicense

import "fmt"

// License is a validated Creative Commons license: a rights variant plus
// a published version. Values are immutable and comparable with ==; two
// licenses are equal when their rights and version are equal.
//
// Every License obtained from New, Parse, or MustParse satisfies the
// cross-field invariant that CC0 only exists at version 1.0. The zero
// value is CC BY 1.0, since both component zero values are themselves
// valid.
//
// License values are safe for concurrent use; they are never mutated
// after construction.
type License struct {
	rights  Rights
	version Version
}

// New constructs a License from a rights and version pair. It is the
// single construction point: it rejects out-of-range enum values and
// enforces the CC0 invariant, so no invalid License value can exist.
func New(rights Rights, version Version) (License, error) {
	if !rights.valid() {
		return License{}, fmt.Errorf("%w: Rights(%d)", ErrInvalidRights, int(rights))
	}
	if !version.valid() {
		return License{}, fmt.Errorf("%w: Version(%d)", ErrInvalidVersion, int(version))
	}
	if rights == RightsPublicDomainZero && version != Version1_0 {
		return License{}, ErrInvalidPublicDomainVersion
	}
	return License{rights: rights, version: version}, nil
}

// AllLicenses returns every constructible License in a stable order:
// the six CC BY variants across all five versions, then CC0 1.0.
func AllLicenses() []License {
	all := make([]License, 0, 31)
	for _, r := range AllRights() {
		for _, v := range AllVersions() {
			l, err := New(r, v)
			if err != nil {
				continue // CC0 beyond 1.0
			}
			all = append(all, l)
		}
	}
	return all
}

// Rights returns the rights variant.
func (l License) Rights() Rights {
	return l.rights
}

// Version returns the license version.
func (l License) Version() Version {
	return l.version
}

// RightsAbbreviation returns the short rights display string, e.g. "CC BY".
func (l License) RightsAbbreviation() string {
	return l.rights.String()
}

// RightsFullText returns the long rights phrase, e.g. "Attribution".
func (l License) RightsFullText() string {
	return l.rights.FullText()
}

// VersionText returns the decimal version string, e.g. "4.0".
func (l License) VersionText() string {
	return l.version.String()
}

// Nomenclature returns the era descriptor for this license, e.g.
// NomenclatureInternational for any 4.0 license.
func (l License) Nomenclature() Nomenclature {
	return nomenclatureFor(l.rights, l.version)
}

// ShortForm returns the abbreviated name, e.g. "CC BY-NC 4.0".
func (l License) ShortForm() string {
	return l.rights.String() + " " + l.version.String()
}

// String returns the canonical license sentence, e.g.
//
//	Creative Commons Attribution-NonCommercial-ShareAlike 4.0 International license (CC BY-NC-SA 4.0).
func (l License) String() string {
	return fmt.Sprintf("Creative Commons %s %s %s license (%s).",
		l.RightsFullText(), l.VersionText(), l.Nomenclature(), l.ShortForm())
}

// URL returns the canonical license URL with https scheme, bare host,
// and trailing slash. Parse(l.URL()) always yields l back.
func (l License) URL() string {
	if l.rights == RightsPublicDomainZero {
		return "https://creativecommons.org/publicdomain/zero/1.0/"
	}
	return "https://creativecommons.org/licenses/" + l.rights.Token() + "/" + l.version.String() + "/"
}

// MarshalText implements encoding.TextMarshaler, emitting the canonical
// URL. Together with UnmarshalText this lets License fields round-trip
// through JSON and YAML documents without custom codecs.
func (l License) MarshalText() ([]byte, error) {
	return []byte(l.URL()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler by parsing a license
// URL. Failures are the same four sentinel errors Parse returns.
func (l *License) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
