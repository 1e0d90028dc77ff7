package cclicense

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    License
		wantErr error
	}{
		{
			name: "by-nc-sa 4.0",
			url:  "https://creativecommons.org/licenses/by-nc-sa/4.0/",
			want: License{rights: RightsAttributionNonCommercialShareAlike, version: Version4_0},
		},
		{
			name: "by 4.0",
			url:  "https://creativecommons.org/licenses/by/4.0/",
			want: License{rights: RightsAttribution, version: Version4_0},
		},
		{
			name: "by-nc 1.0",
			url:  "https://creativecommons.org/licenses/by-nc/1.0/",
			want: License{rights: RightsAttributionNonCommercial, version: Version1_0},
		},
		{
			name: "http scheme",
			url:  "http://creativecommons.org/licenses/by-nc-sa/4.0/",
			want: License{rights: RightsAttributionNonCommercialShareAlike, version: Version4_0},
		},
		{
			name: "no trailing slash",
			url:  "http://creativecommons.org/licenses/by-nc-nd/3.0",
			want: License{rights: RightsAttributionNonCommercialNoDerivatives, version: Version3_0},
		},
		{
			name: "CC0",
			url:  "https://creativecommons.org/publicdomain/zero/1.0/",
			want: License{rights: RightsPublicDomainZero, version: Version1_0},
		},
		{
			name:    "missing scheme",
			url:     "creativecommons.org/licenses/by/1.0/",
			wantErr: ErrInvalidURL,
		},
		{
			name:    "missing version segment",
			url:     "https://creativecommons.org/licenses/by/",
			wantErr: ErrInvalidURL,
		},
		{
			name:    "unknown rights token",
			url:     "https://creativecommons.org/licenses/attribution/4.0/",
			wantErr: ErrInvalidRights,
		},
		{
			name:    "unknown version token",
			url:     "https://creativecommons.org/licenses/by/5.0/",
			wantErr: ErrInvalidVersion,
		},
		{
			name:    "CC0 at 2.0",
			url:     "https://creativecommons.org/publicdomain/zero/2.0/",
			wantErr: ErrInvalidPublicDomainVersion,
		},
		{
			name:    "rights checked before version",
			url:     "https://creativecommons.org/licenses/attribution/5.0/",
			wantErr: ErrInvalidRights,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.url)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDeterministic(t *testing.T) {
	// Same input, same result, every time.
	const url = "https://creativecommons.org/licenses/by-sa/3.0/"
	first := MustParse(url)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, MustParse(url))
	}
}

func TestParseCanonicalScenario(t *testing.T) {
	l, err := Parse("https://creativecommons.org/licenses/by-nc-sa/4.0/")
	require.NoError(t, err)
	assert.Equal(t, "Creative Commons Attribution-NonCommercial-ShareAlike 4.0 International license (CC BY-NC-SA 4.0).", l.String())

	l, err = Parse("http://creativecommons.org/licenses/by-nc-nd/3.0")
	require.NoError(t, err)
	assert.Contains(t, l.String(), "Unported")

	l, err = Parse("https://creativecommons.org/publicdomain/zero/1.0/")
	require.NoError(t, err)
	assert.Equal(t, "Creative Commons CC0 1.0 Universal license (CC0 1.0).", l.String())
}

func TestMustParse(t *testing.T) {
	assert.NotPanics(t, func() {
		MustParse("https://creativecommons.org/licenses/by/4.0/")
	})
	assert.Panics(t, func() {
		MustParse("https://example.com/")
	})
}
