// Package cclicense parses Creative Commons license URLs into validated,
// immutable License values and renders them back into their canonical
// human-readable forms.
//
// # Overview
//
// A Creative Commons license URL has the shape
//
//	https://creativecommons.org/licenses/<rights>/<version>/
//	https://creativecommons.org/publicdomain/zero/1.0/
//
// Parse recognizes that shape, decodes the rights and version tokens
// against their closed sets, validates the pair as a unit, and returns a
// License exposing display accessors:
//
//	license, err := cclicense.Parse("https://creativecommons.org/licenses/by-nc-sa/4.0/")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(license.ShortForm()) // CC BY-NC-SA 4.0
//	fmt.Println(license)             // Creative Commons Attribution-NonCommercial-ShareAlike 4.0 International license (CC BY-NC-SA 4.0).
//
// # Validation
//
// Matching is strict: exact host, case-sensitive tokens, full-string
// anchoring. Failures are reported through four sentinel errors
// (ErrInvalidURL, ErrInvalidRights, ErrInvalidVersion,
// ErrInvalidPublicDomainVersion); match them with errors.Is. All four
// are deterministic input-validation failures; nothing is transient and
// nothing is logged.
//
// # Thread Safety
//
// Every function in this package is pure and every License value is
// immutable, so all of it is safe for concurrent use without
// synchronization.
package cclicense

import "fmt"

// Parse parses a Creative Commons license URL into a License.
//
// It fails fast with the first applicable error: ErrInvalidURL if the
// input does not match the canonical shape, ErrInvalidRights or
// ErrInvalidVersion if a path token is not in its closed set, and
// ErrInvalidPublicDomainVersion if a CC0 URL names a version other
// than 1.0.
func Parse(url string) (License, error) {
	rightsToken, versionToken, err := matchURL(url)
	if err != nil {
		return License{}, err
	}
	rights, err := ParseRights(rightsToken)
	if err != nil {
		return License{}, err
	}
	version, err := ParseVersion(versionToken)
	if err != nil {
		return License{}, err
	}
	return New(rights, version)
}

// MustParse is like Parse but panics on error. Use only for constants
// and tests.
func MustParse(url string) License {
	l, err := Parse(url)
	if err != nil {
		panic(fmt.Sprintf("cclicense: MustParse(%q): %v", url, err))
	}
	return l
}
