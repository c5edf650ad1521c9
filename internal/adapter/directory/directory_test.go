package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKnownRegions(t *testing.T) {
	d := New()

	endpoint, ok := d.Lookup("Bayern")
	require.True(t, ok)
	assert.Equal(t, "Bayern", endpoint.Region)
	assert.NotEmpty(t, endpoint.Name)
	assert.Contains(t, endpoint.URL, "https://")

	endpoint, ok = d.Lookup("Baden-Württemberg")
	require.True(t, ok)
	assert.Contains(t, endpoint.URL, "polizei-bw.de")
}

func TestLookupUnknownRegion(t *testing.T) {
	d := New()

	endpoint, ok := d.Lookup("Atlantis")
	assert.False(t, ok)
	assert.Nil(t, endpoint)

	// Exact match only, no case folding.
	_, ok = d.Lookup("bayern")
	assert.False(t, ok)
}

func TestAllListsEveryFederalState(t *testing.T) {
	d := New()

	all := d.All()
	require.Len(t, all, 16)
	for _, e := range all {
		assert.NotEmpty(t, e.Region)
		assert.NotEmpty(t, e.URL, "region %s has no URL", e.Region)
	}
}
