package catalog

import "github.com/threadly-market/marketplace-backend/internal/models"

// VirtualCategory aliases same-named level-2 nodes across the demographic
// roots into a single browsing view ("clothing" shows men's, women's, kids'
// and unisex clothing at once).
type VirtualCategory struct {
	Slug        string
	Name        string
	TargetSlugs []string
}

// DefaultVirtualCategories is the static alias registry. Target slugs are
// the stored (prefixed) level-2 slugs; targets missing from a given category
// snapshot are skipped at resolve time.
var DefaultVirtualCategories = []VirtualCategory{
	{
		Slug:        "clothing",
		Name:        "Clothing",
		TargetSlugs: []string{"men-clothing", "women-clothing", "kids-clothing", "unisex-clothing"},
	},
	{
		Slug:        "shoes",
		Name:        "Shoes",
		TargetSlugs: []string{"men-shoes", "women-shoes", "kids-shoes", "unisex-shoes"},
	},
	{
		Slug:        "bags",
		Name:        "Bags",
		TargetSlugs: []string{"men-bags", "women-bags", "kids-bags", "unisex-bags"},
	},
	{
		Slug:        "accessories",
		Name:        "Accessories",
		TargetSlugs: []string{"men-accessories", "women-accessories", "kids-accessories", "unisex-accessories"},
	},
}

// VirtualRegistry looks up virtual aliases by path segment.
type VirtualRegistry struct {
	bySlug map[string]VirtualCategory
}

func NewVirtualRegistry(aliases []VirtualCategory) *VirtualRegistry {
	r := &VirtualRegistry{bySlug: make(map[string]VirtualCategory, len(aliases))}

	for _, a := range aliases {
		r.bySlug[a.Slug] = a
	}

	return r
}

func NewDefaultVirtualRegistry() *VirtualRegistry {
	return NewVirtualRegistry(DefaultVirtualCategories)
}

func (r *VirtualRegistry) Lookup(slug string) (VirtualCategory, bool) {
	a, ok := r.bySlug[slug]

	return a, ok
}

// Targets resolves an alias's target slugs against a snapshot, keeping the
// registry order and dropping targets the snapshot does not contain.
func (r *VirtualRegistry) Targets(alias VirtualCategory, tree *Tree) []*models.CategoryNode {
	var targets []*models.CategoryNode

	for _, slug := range alias.TargetSlugs {
		if node := tree.NodeByFullSlug(slug); node != nil && node.Level == 2 {
			targets = append(targets, node)
		}
	}

	return targets
}
