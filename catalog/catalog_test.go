package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoecard/models"
)

const listing = `
shoes:
  - slug: tail-out
    name: Tail-Out
    image_src: /img/tail-out.jpg
    price: 16500
    release_date: 2026-10-01T00:00:00Z
    num_of_colors: 3
  - slug: cosmo-vamp
    name: Cosmo Vamp
    image_src: /img/cosmo-vamp.jpg
    price: 11000
    sale_price: 0
    release_date: 2026-10-10T00:00:00Z
    num_of_colors: 1
  - slug: legend-academy
    name: Legend Academy
    image_src: /img/legend-academy.jpg
    price: 7000
    release_date: 2025-06-20T00:00:00Z
    num_of_colors: 1
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(listing))
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())

	tail, err := c.BySlug("tail-out")
	require.NoError(t, err)
	assert.Equal(t, "Tail-Out", tail.Name)
	assert.Equal(t, 16500, tail.Price)
	assert.Nil(t, tail.SalePrice)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), tail.ReleaseDate.UTC())

	cosmo, err := c.BySlug("cosmo-vamp")
	require.NoError(t, err)
	require.NotNil(t, cosmo.SalePrice)
	assert.Equal(t, 0, *cosmo.SalePrice)
	assert.Equal(t, 0, cosmo.EffectivePrice())
}

func TestBySlugNotFound(t *testing.T) {
	c, err := Parse([]byte(listing))
	require.NoError(t, err)

	_, err = c.BySlug("nope")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestSorted(t *testing.T) {
	c, err := Parse([]byte(listing))
	require.NoError(t, err)

	newest, err := c.Sorted(SortNewest)
	require.NoError(t, err)
	assert.Equal(t, []string{"cosmo-vamp", "tail-out", "legend-academy"}, slugs(newest))

	cheapest, err := c.Sorted(SortPrice)
	require.NoError(t, err)
	assert.Equal(t, []string{"cosmo-vamp", "legend-academy", "tail-out"}, slugs(cheapest))

	listed, err := c.Sorted("")
	require.NoError(t, err)
	assert.Equal(t, []string{"tail-out", "cosmo-vamp", "legend-academy"}, slugs(listed))

	_, err = c.Sorted("popularity")
	assert.Error(t, err)
}

func TestAllReturnsCopy(t *testing.T) {
	c, err := Parse([]byte(listing))
	require.NoError(t, err)

	all := c.All()
	all[0].Name = "changed"
	first, _ := c.BySlug("tail-out")
	assert.Equal(t, "Tail-Out", first.Name)
}

func TestParseRejectsBadListings(t *testing.T) {
	_, err := Parse([]byte("shoes:\n  - name: no slug\n"))
	assert.ErrorContains(t, err, "empty slug")

	_, err = Parse([]byte("shoes:\n  - slug: a\n  - slug: a\n"))
	assert.ErrorContains(t, err, "duplicate slug")

	_, err = Parse([]byte("shoes:\n  - slug: a\n    num_of_colors: -1\n"))
	assert.ErrorContains(t, err, "negative")

	_, err = Parse([]byte("shoes: [\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shoes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(listing), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadShippedCatalog(t *testing.T) {
	c, err := Load("../data/shoes.yaml")
	require.NoError(t, err)
	assert.Greater(t, c.Len(), 0)
}

func slugs(shoes []models.Shoe) []string {
	out := make([]string, 0, len(shoes))
	for _, s := range shoes {
		out = append(out, s.Slug)
	}
	return out
}
