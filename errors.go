package cclicense

import "errors"

// Sentinel errors returned by license URL parsing.
// Each parsing stage fails with exactly one of these; use errors.Is to
// distinguish them.
var (
	// ErrInvalidURL indicates the input does not match the canonical
	// Creative Commons license URL shape.
	ErrInvalidURL = errors.New("invalid license URL")

	// ErrInvalidRights indicates the rights path segment is not one of
	// the recognized license tokens.
	ErrInvalidRights = errors.New("invalid rights token")

	// ErrInvalidVersion indicates the version path segment is not one of
	// the recognized license versions.
	ErrInvalidVersion = errors.New("invalid version token")

	// ErrInvalidPublicDomainVersion indicates a CC0 URL with a version
	// other than 1.0. The CC0 public domain dedication was only ever
	// published at version 1.0.
	ErrInvalidPublicDomainVersion = errors.New("CC0 licenses exist only at version 1.0")
)
