package catalog

import (
	"github.com/google/uuid"
	"github.com/threadly-market/marketplace-backend/internal/models"
)

// Counter derives hierarchical product counts from one grouped per-category
// count map (direct counts only, as returned by the repository). All
// aggregation lives here so every page reports counts from the same source.
type Counter struct {
	tree   *Tree
	direct map[uuid.UUID]int
}

func NewCounter(tree *Tree, direct map[uuid.UUID]int) *Counter {
	if direct == nil {
		direct = map[uuid.UUID]int{}
	}

	return &Counter{tree: tree, direct: direct}
}

// Count returns the hierarchical count for a node: its own products plus
// every descendant's.
func (c *Counter) Count(id uuid.UUID) int {
	total := c.direct[id]

	for _, child := range c.tree.ChildrenOf(id) {
		total += c.Count(child.ID)
	}

	return total
}

// CountVirtual sums the hierarchical counts of a virtual alias's targets.
func (c *Counter) CountVirtual(targets []*models.CategoryNode) int {
	total := 0

	for _, t := range targets {
		total += c.Count(t.ID)
	}

	return total
}

// RootsWithCounts returns the level-1 nodes annotated with hierarchical
// counts, in display order.
func (c *Counter) RootsWithCounts() []models.CategoryWithCount {
	roots := c.tree.Roots()
	out := make([]models.CategoryWithCount, 0, len(roots))

	for _, node := range roots {
		out = append(out, models.CategoryWithCount{
			CategoryNode: *node,
			ProductCount: c.Count(node.ID),
		})
	}

	return out
}

// ChildAggregates lists the children of the given parents with hierarchical
// counts, merging same-named children across parents: counts are summed and
// the first-seen child's slug keeps representing the merged entry. With a
// single parent this degenerates to a plain child listing.
func (c *Counter) ChildAggregates(parents []*models.CategoryNode) []models.CategoryWithCount {
	var out []models.CategoryWithCount

	index := map[string]int{}

	for _, parent := range parents {
		if parent == nil {
			continue
		}

		for _, child := range c.tree.ChildrenOf(parent.ID) {
			count := c.Count(child.ID)

			if i, seen := index[child.Name]; seen {
				out[i].ProductCount += count

				continue
			}

			index[child.Name] = len(out)
			out = append(out, models.CategoryWithCount{
				CategoryNode: *child,
				ProductCount: count,
			})
		}
	}

	return out
}
