package cclicense

import "fmt"

// Version identifies a published Creative Commons license version.
// Creative Commons released exactly five: 1.0 (2002), 2.0 (2004),
// 2.5 (2005), 3.0 (2007), and 4.0 (2013). The set is closed; there is no
// general decimal parsing.
type Version int

const (
	// Version1_0 is the 1.0 license suite, also the only CC0 version.
	Version1_0 Version = iota

	// Version2_0 is the 2.0 license suite.
	Version2_0

	// Version2_5 is the 2.5 license suite.
	Version2_5

	// Version3_0 is the 3.0 "Unported" license suite.
	Version3_0

	// Version4_0 is the 4.0 "International" license suite.
	Version4_0
)

// versionTokens maps URL path tokens to version values. Matching is
// exact: "1" and "4.00" do not decode.
var versionTokens = map[string]Version{
	"1.0": Version1_0,
	"2.0": Version2_0,
	"2.5": Version2_5,
	"3.0": Version3_0,
	"4.0": Version4_0,
}

// ParseVersion decodes a URL version token ("1.0" .. "4.0") into a
// Version value. Unknown tokens fail with ErrInvalidVersion, including
// numerically equivalent spellings like "1" or "3.00".
func ParseVersion(token string) (Version, error) {
	v, ok := versionTokens[token]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidVersion, token)
	}
	return v, nil
}

// AllVersions returns every version value in ascending order.
func AllVersions() []Version {
	return []Version{Version1_0, Version2_0, Version2_5, Version3_0, Version4_0}
}

func (v Version) valid() bool {
	return v >= Version1_0 && v <= Version4_0
}

// String returns the decimal version string, e.g. "4.0".
func (v Version) String() string {
	switch v {
	case Version1_0:
		return "1.0"
	case Version2_0:
		return "2.0"
	case Version2_5:
		return "2.5"
	case Version3_0:
		return "3.0"
	case Version4_0:
		return "4.0"
	default:
		return fmt.Sprintf("Version(%d)", int(v))
	}
}
