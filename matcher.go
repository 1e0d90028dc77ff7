package cclicense

import "regexp"

// licenseURLPattern matches the canonical Creative Commons license URL
// shape and captures the raw rights and version tokens:
//
//	http(s)://[www.]creativecommons.org/(licenses|publicdomain)/<rights>/<version>[/]
//
// The pattern is anchored to the full input, so query strings, fragments,
// and extra path segments all fail the match rather than being ignored.
var licenseURLPattern = regexp.MustCompile(`^https?://(?:www\.)?creativecommons\.org/(?:licenses|publicdomain)/([^/]+)/([^/]+)/?$`)

// matchURL extracts the raw rights and version tokens from a license URL.
// Tokens are returned verbatim; decoding them against the closed sets is
// a separate step. Inputs that do not match the canonical shape fail with
// ErrInvalidURL.
func matchURL(url string) (rightsToken, versionToken string, err error) {
	m := licenseURLPattern.FindStringSubmatch(url)
	if m == nil {
		return "", "", ErrInvalidURL
	}
	return m[1], m[2], nil
}
