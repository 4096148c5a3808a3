package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalize_LegacyParams(t *testing.T) {
	t.Run("category and subcategory become path segments", func(t *testing.T) {
		redirect, target := Canonicalize("/search", "category=men&subcategory=clothing", nil)

		assert.True(t, redirect)
		assert.Equal(t, "/category/men/clothing", target)
	})

	t.Run("level aliases are accepted", func(t *testing.T) {
		redirect, target := Canonicalize("/search", "level1=women&level2=shoes&level3=sneakers", nil)

		assert.True(t, redirect)
		assert.Equal(t, "/category/women/shoes/sneakers", target)
	})

	t.Run("other params survive in order", func(t *testing.T) {
		redirect, target := Canonicalize("/search", "min_price=10&category=men&sort=price_asc&subcategory=clothing&page=2", nil)

		assert.True(t, redirect)
		assert.Equal(t, "/category/men/clothing?min_price=10&sort=price_asc&page=2", target)
	})

	t.Run("encoded values are decoded into segments", func(t *testing.T) {
		redirect, target := Canonicalize("/search", "category=men&specific=t%2Dshirts&subcategory=clothing", nil)

		assert.True(t, redirect)
		assert.Equal(t, "/category/men/clothing/t-shirts", target)
	})
}

func TestCanonicalize_StalePath(t *testing.T) {
	f := newFixture()
	r := newTestResolver(f)

	res, err := r.Resolve([]string{"women", "women-clothing", "women-clothing-dresses"})
	require.NoError(t, err)
	require.True(t, res.IsValid)

	t.Run("redirects to canonical path keeping query", func(t *testing.T) {
		redirect, target := Canonicalize("/category/women/women-clothing/women-clothing-dresses", "page=3&sort=price_asc", res)

		assert.True(t, redirect)
		assert.Equal(t, "/category/women/clothing/dresses?page=3&sort=price_asc", target)
	})

	t.Run("canonical path is a fixed point", func(t *testing.T) {
		redirect, _ := Canonicalize("/category/women/clothing/dresses", "page=3", res)

		assert.False(t, redirect)
	})

	t.Run("trailing slash is not a redirect", func(t *testing.T) {
		redirect, _ := Canonicalize("/category/women/clothing/dresses/", "", res)

		assert.False(t, redirect)
	})
}

func TestCanonicalize_NoRedirectCases(t *testing.T) {
	redirect, _ := Canonicalize("/category/men", "sort=newest", nil)
	assert.False(t, redirect)

	invalid := &Resolution{IsValid: false, CanonicalPath: "/category/men"}
	redirect, _ = Canonicalize("/category/nope", "", invalid)
	assert.False(t, redirect)
}

func TestSplitCombinedSlug(t *testing.T) {
	f := newFixture()
	tree := f.tree()

	assert.Equal(t, []string{"women", "clothing"}, SplitCombinedSlug(tree, "women-clothing"))
	assert.Equal(t, []string{"women", "clothing", "dresses"}, SplitCombinedSlug(tree, "women-clothing-dresses"))
	assert.Nil(t, SplitCombinedSlug(tree, "men"))
	assert.Nil(t, SplitCombinedSlug(tree, "something-else"))
}
