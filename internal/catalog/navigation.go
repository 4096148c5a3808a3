package catalog

import (
	"sort"
	"strings"

	"github.com/threadly-market/marketplace-backend/internal/models"
)

// Breadcrumbs builds the trail for a resolution: Home first, then one entry
// per resolved segment, each linking to the canonical path prefix up to that
// depth.
func Breadcrumbs(tree *Tree, res *Resolution) []models.BreadcrumbItem {
	items := []models.BreadcrumbItem{{Name: "Home", Href: "/", Level: 0}}

	if res == nil || !res.IsValid {
		return items
	}

	var names []string

	if res.IsVirtual {
		name := res.VirtualSlug
		if len(res.VirtualTargets) > 0 {
			name = res.VirtualTargets[0].Name
		}

		names = append(names, name)

		if res.Level >= 2 {
			if node := tree.ByID(res.CategoryIDs[0]); node != nil {
				names = append(names, node.Name)
			}
		}
	} else {
		for _, node := range []*models.CategoryNode{res.L1, res.L2, res.L3} {
			if node == nil {
				break
			}

			names = append(names, node.Name)
		}
	}

	segments := strings.Split(strings.TrimPrefix(res.CanonicalPath, "/category/"), "/")

	for i, name := range names {
		if i >= len(segments) {
			break
		}

		items = append(items, models.BreadcrumbItem{
			Name:  name,
			Href:  "/category/" + strings.Join(segments[:i+1], "/"),
			Level: i + 1,
		})
	}

	return items
}

// BreadcrumbListLD is the schema.org BreadcrumbList payload emitted alongside
// the visible trail.
type BreadcrumbListLD struct {
	Context  string             `json:"@context"`
	Type     string             `json:"@type"`
	Elements []BreadcrumbItemLD `json:"itemListElement"`
}

type BreadcrumbItemLD struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

func BreadcrumbsLD(items []models.BreadcrumbItem, baseURL string) BreadcrumbListLD {
	ld := BreadcrumbListLD{
		Context:  "https://schema.org",
		Type:     "BreadcrumbList",
		Elements: make([]BreadcrumbItemLD, 0, len(items)),
	}

	for i, item := range items {
		ld.Elements = append(ld.Elements, BreadcrumbItemLD{
			Type:     "ListItem",
			Position: i + 1,
			Name:     item.Name,
			Item:     strings.TrimSuffix(baseURL, "/") + item.Href,
		})
	}

	return ld
}

// Pills turns child aggregates into navigation chips: zero-count entries are
// dropped, the rest sort by count descending with a name-ascending tiebreak,
// capped to limit. Aggregates
// arrive already merged by name (Counter.ChildAggregates), so no further
// dedup happens here.
func Pills(tree *Tree, aggregates []models.CategoryWithCount, limit int) []models.CategoryPill {
	var pills []models.CategoryPill

	for i := range aggregates {
		if aggregates[i].ProductCount <= 0 {
			continue
		}

		pills = append(pills, models.CategoryPill{
			ID:           aggregates[i].ID,
			Name:         aggregates[i].Name,
			Slug:         tree.CleanSlug(&aggregates[i].CategoryNode),
			ProductCount: aggregates[i].ProductCount,
		})
	}

	sort.SliceStable(pills, func(i, j int) bool {
		if pills[i].ProductCount != pills[j].ProductCount {
			return pills[i].ProductCount > pills[j].ProductCount
		}

		return pills[i].Name < pills[j].Name
	})

	if limit > 0 && len(pills) > limit {
		pills = pills[:limit]
	}

	return pills
}
