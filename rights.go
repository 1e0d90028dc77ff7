package cclicense

import "fmt"

// Rights identifies which permissions and restrictions a Creative Commons
// license grants. It is a closed set: the six CC BY license variants plus
// the CC0 public domain dedication.
type Rights int

const (
	// RightsAttribution is CC BY: reuse with credit.
	RightsAttribution Rights = iota

	// RightsAttributionShareAlike is CC BY-SA: derivatives must carry the
	// same license.
	RightsAttributionShareAlike

	// RightsAttributionNoDerivatives is CC BY-ND: no derivative works.
	RightsAttributionNoDerivatives

	// RightsAttributionNonCommercial is CC BY-NC: non-commercial use only.
	RightsAttributionNonCommercial

	// RightsAttributionNonCommercialShareAlike is CC BY-NC-SA.
	RightsAttributionNonCommercialShareAlike

	// RightsAttributionNonCommercialNoDerivatives is CC BY-NC-ND, the most
	// restrictive CC license.
	RightsAttributionNonCommercialNoDerivatives

	// RightsPublicDomainZero is CC0: a public domain dedication rather
	// than a license proper.
	RightsPublicDomainZero
)

// rightsTokens maps URL path tokens to rights values. Matching is exact
// and case-sensitive: "by" decodes, "BY" does not.
var rightsTokens = map[string]Rights{
	"by":       RightsAttribution,
	"by-sa":    RightsAttributionShareAlike,
	"by-nd":    RightsAttributionNoDerivatives,
	"by-nc":    RightsAttributionNonCommercial,
	"by-nc-sa": RightsAttributionNonCommercialShareAlike,
	"by-nc-nd": RightsAttributionNonCommercialNoDerivatives,
	"zero":     RightsPublicDomainZero,
}

// ParseRights decodes a URL rights token ("by", "by-nc-sa", "zero", ...)
// into a Rights value. No normalization is applied; tokens must match
// byte-for-byte. Unknown tokens fail with ErrInvalidRights.
func ParseRights(token string) (Rights, error) {
	r, ok := rightsTokens[token]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRights, token)
	}
	return r, nil
}

// AllRights returns every rights value in declaration order.
func AllRights() []Rights {
	return []Rights{
		RightsAttribution,
		RightsAttributionShareAlike,
		RightsAttributionNoDerivatives,
		RightsAttributionNonCommercial,
		RightsAttributionNonCommercialShareAlike,
		RightsAttributionNonCommercialNoDerivatives,
		RightsPublicDomainZero,
	}
}

func (r Rights) valid() bool {
	return r >= RightsAttribution && r <= RightsPublicDomainZero
}

// String returns the display abbreviation, e.g. "CC BY-NC-SA".
func (r Rights) String() string {
	switch r {
	case RightsAttribution:
		return "CC BY"
	case RightsAttributionShareAlike:
		return "CC BY-SA"
	case RightsAttributionNoDerivatives:
		return "CC BY-ND"
	case RightsAttributionNonCommercial:
		return "CC BY-NC"
	case RightsAttributionNonCommercialShareAlike:
		return "CC BY-NC-SA"
	case RightsAttributionNonCommercialNoDerivatives:
		return "CC BY-NC-ND"
	case RightsPublicDomainZero:
		return "CC0"
	default:
		return fmt.Sprintf("Rights(%d)", int(r))
	}
}

// FullText returns the long descriptive phrase used in the canonical
// license name, e.g. "Attribution-NonCommercial-ShareAlike".
func (r Rights) FullText() string {
	switch r {
	case RightsAttribution:
		return "Attribution"
	case RightsAttributionShareAlike:
		return "Attribution-ShareAlike"
	case RightsAttributionNoDerivatives:
		return "Attribution-NoDerivatives"
	case RightsAttributionNonCommercial:
		return "Attribution-NonCommercial"
	case RightsAttributionNonCommercialShareAlike:
		return "Attribution-NonCommercial-ShareAlike"
	case RightsAttributionNonCommercialNoDerivatives:
		return "Attribution-NonCommercial-NoDerivatives"
	case RightsPublicDomainZero:
		return "CC0"
	default:
		return fmt.Sprintf("Rights(%d)", int(r))
	}
}

// Token returns the URL path token, the inverse of ParseRights.
func (r Rights) Token() string {
	switch r {
	case RightsAttribution:
		return "by"
	case RightsAttributionShareAlike:
		return "by-sa"
	case RightsAttributionNoDerivatives:
		return "by-nd"
	case RightsAttributionNonCommercial:
		return "by-nc"
	case RightsAttributionNonCommercialShareAlike:
		return "by-nc-sa"
	case RightsAttributionNonCommercialNoDerivatives:
		return "by-nc-nd"
	case RightsPublicDomainZero:
		return "zero"
	default:
		return ""
	}
}

// AllowsCommercialUse reports whether works may be used commercially.
// False only for the NonCommercial variants.
func (r Rights) AllowsCommercialUse() bool {
	switch r {
	case RightsAttributionNonCommercial,
		RightsAttributionNonCommercialShareAlike,
		RightsAttributionNonCommercialNoDerivatives:
		return false
	default:
		return true
	}
}

// AllowsDerivatives reports whether adapted works may be distributed.
// False only for the NoDerivatives variants.
func (r Rights) AllowsDerivatives() bool {
	switch r {
	case RightsAttributionNoDerivatives, RightsAttributionNonCommercialNoDerivatives:
		return false
	default:
		return true
	}
}

// RequiresShareAlike reports whether derivatives must be distributed
// under the same license.
func (r Rights) RequiresShareAlike() bool {
	return r == RightsAttributionShareAlike || r == RightsAttributionNonCommercialShareAlike
}

// RequiresAttribution reports whether reuse must credit the author.
// True for everything except CC0.
func (r Rights) RequiresAttribution() bool {
	return r != RightsPublicDomainZero
}

// IsPublicDomain reports whether this is the CC0 dedication.
func (r Rights) IsPublicDomain() bool {
	return r == RightsPublicDomainZero
}
