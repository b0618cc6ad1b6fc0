package geography

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	t.Run("has governorates with cities", func(t *testing.T) {
		cat := Catalog()
		require.NotEmpty(t, cat)
		for _, g := range cat {
			assert.NotEmpty(t, g.Name)
			assert.NotEmpty(t, g.Cities, "governorate %s has no cities", g.Name)
		}
	})

	t.Run("governorate names are unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, g := range Catalog() {
			assert.False(t, seen[g.Name], "duplicate governorate %s", g.Name)
			seen[g.Name] = true
		}
	})

	t.Run("city names are unique across the catalog", func(t *testing.T) {
		seen := make(map[string]string)
		for _, g := range Catalog() {
			for _, c := range g.Cities {
				prev, dup := seen[c]
				assert.False(t, dup, "city %s appears in both %s and %s", c, prev, g.Name)
				seen[c] = g.Name
			}
		}
	})
}

func TestFindByName(t *testing.T) {
	g, ok := FindByName("Giza")
	require.True(t, ok)
	assert.Equal(t, "Giza", g.Name)
	assert.Contains(t, g.Cities, "Haram")

	_, ok = FindByName("Atlantis")
	assert.False(t, ok)
}

func TestFindByCity(t *testing.T) {
	g, ok := FindByCity("Haram")
	require.True(t, ok)
	assert.Equal(t, "Giza", g.Name)

	_, ok = FindByCity("Gotham")
	assert.False(t, ok)
}

func TestFilterCities(t *testing.T) {
	g, ok := FindByName("Alexandria")
	require.True(t, ok)

	t.Run("empty query returns all", func(t *testing.T) {
		assert.Equal(t, g.Cities, FilterCities(g, ""))
	})

	t.Run("match is case-insensitive substring", func(t *testing.T) {
		matched := FilterCities(g, "sidi")
		assert.Contains(t, matched, "Sidi Bishr")
		assert.Contains(t, matched, "Sidi Gaber")
		assert.NotContains(t, matched, "Smouha")
	})

	t.Run("no match returns empty", func(t *testing.T) {
		assert.Empty(t, FilterCities(g, "zzz"))
	})
}

func TestCityCount(t *testing.T) {
	total := 0
	for _, g := range Catalog() {
		total += len(g.Cities)
	}
	assert.Equal(t, total, CityCount())
	assert.Greater(t, CityCount(), 250)
}
