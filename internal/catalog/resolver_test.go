package catalog

import (
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appErrors "github.com/threadly-market/marketplace-backend/internal/errors"
)

func newTestResolver(f *fixture) *Resolver {
	return NewResolver(f.tree(), NewDefaultVirtualRegistry())
}

func TestResolve_EmptyPath(t *testing.T) {
	r := newTestResolver(newFixture())

	_, err := r.Resolve(nil)
	require.Error(t, err)

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusMovedPermanently, appErr.StatusCode)
	assert.Equal(t, "/search", appErr.Location)
}

func TestResolve_TooManyLevels(t *testing.T) {
	r := newTestResolver(newFixture())

	_, err := r.Resolve([]string{"men", "clothing", "t-shirts", "vintage"})
	require.Error(t, err)

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
}

func TestResolve_VirtualAlias(t *testing.T) {
	f := newFixture()
	r := newTestResolver(f)

	res, err := r.Resolve([]string{"clothing"})
	require.NoError(t, err)

	assert.True(t, res.IsValid)
	assert.True(t, res.IsVirtual)
	assert.Equal(t, 1, res.Level)
	assert.Equal(t, "/category/clothing", res.CanonicalPath)
	assert.ElementsMatch(t, res.CategoryIDs, []uuid.UUID{f.menClothing.ID, f.womenClothing.ID})
}

func TestResolve_VirtualNarrowedBySubcategory(t *testing.T) {
	f := newFixture()
	r := newTestResolver(f)

	res, err := r.Resolve([]string{"clothing", "t-shirts"})
	require.NoError(t, err)

	assert.True(t, res.IsValid)
	assert.True(t, res.IsVirtual)
	assert.Equal(t, 2, res.Level)
	assert.Equal(t, "/category/clothing/t-shirts", res.CanonicalPath)
	assert.ElementsMatch(t, res.CategoryIDs, []uuid.UUID{f.menTShirts.ID, f.womenTShirts.ID})
}

func TestResolve_VirtualUnknownSubcategory(t *testing.T) {
	r := newTestResolver(newFixture())

	res, err := r.Resolve([]string{"shoes", "heels"})
	require.NoError(t, err)
	assert.False(t, res.IsValid)
}

func TestResolve_FullConcreteChain(t *testing.T) {
	f := newFixture()
	r := newTestResolver(f)

	res, err := r.Resolve([]string{"men", "clothing", "t-shirts"})
	require.NoError(t, err)

	require.True(t, res.IsValid)
	assert.False(t, res.IsVirtual)
	assert.Equal(t, 3, res.Level)
	require.NotNil(t, res.L1)
	require.NotNil(t, res.L2)
	require.NotNil(t, res.L3)
	assert.Equal(t, f.men.ID, res.L1.ID)
	assert.Equal(t, f.menClothing.ID, res.L2.ID)
	assert.Equal(t, f.menTShirts.ID, res.L3.ID)
	assert.Equal(t, []uuid.UUID{f.menTShirts.ID}, res.CategoryIDs)
	assert.Equal(t, "/category/men/clothing/t-shirts", res.CanonicalPath)
}

func TestResolve_StoredSlugNormalizedInCanonicalPath(t *testing.T) {
	f := newFixture()
	r := newTestResolver(f)

	// Full stored slugs resolve, but the canonical path uses clean segments.
	res, err := r.Resolve([]string{"women", "women-clothing", "women-clothing-dresses"})
	require.NoError(t, err)

	require.True(t, res.IsValid)
	assert.Equal(t, []uuid.UUID{f.womenDresses.ID}, res.CategoryIDs)
	assert.Equal(t, "/category/women/clothing/dresses", res.CanonicalPath)
}

func TestResolve_UnknownSegments(t *testing.T) {
	r := newTestResolver(newFixture())

	for _, segments := range [][]string{
		{"electronics"},
		{"men", "electronics"},
		{"men", "clothing", "hats"},
	} {
		res, err := r.Resolve(segments)
		require.NoError(t, err)
		assert.False(t, res.IsValid, "segments %v should not resolve", segments)
		assert.Empty(t, res.CategoryIDs)
	}
}

func TestResolve_CanonicalPathIdempotent(t *testing.T) {
	f := newFixture()
	r := newTestResolver(f)

	for _, segments := range [][]string{
		{"clothing"},
		{"clothing", "sneakers"},
		{"men"},
		{"women", "clothing"},
		{"women", "women-clothing", "dresses"},
	} {
		first, err := r.Resolve(segments)
		require.NoError(t, err)

		if !first.IsValid {
			continue
		}

		canonicalSegments := strings.Split(strings.TrimPrefix(first.CanonicalPath, "/category/"), "/")

		second, err := r.Resolve(canonicalSegments)
		require.NoError(t, err)
		assert.Equal(t, first.CanonicalPath, second.CanonicalPath, "segments %v", segments)
	}
}
