package catalog

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/threadly-market/marketplace-backend/internal/models"
)

// Tree is a request-scoped index over one snapshot of the active category
// rows. It is built once per request and never mutated afterwards, so it is
// safe to read from concurrent fan-out branches.
type Tree struct {
	nodes    []models.CategoryNode
	byID     map[uuid.UUID]*models.CategoryNode
	children map[uuid.UUID][]*models.CategoryNode
	roots    []*models.CategoryNode
}

// NewTree indexes a flat category snapshot. Inactive rows are dropped here so
// no later stage has to re-check the flag.
func NewTree(rows []models.CategoryNode) *Tree {
	t := &Tree{
		byID:     make(map[uuid.UUID]*models.CategoryNode, len(rows)),
		children: make(map[uuid.UUID][]*models.CategoryNode),
	}

	for _, row := range rows {
		if !row.IsActive {
			continue
		}

		t.nodes = append(t.nodes, row)
	}

	for i := range t.nodes {
		node := &t.nodes[i]
		t.byID[node.ID] = node

		if node.ParentID == nil {
			t.roots = append(t.roots, node)
		} else {
			t.children[*node.ParentID] = append(t.children[*node.ParentID], node)
		}
	}

	sortSiblings(t.roots)

	for _, siblings := range t.children {
		sortSiblings(siblings)
	}

	return t
}

func sortSiblings(nodes []*models.CategoryNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].SortOrder != nodes[j].SortOrder {
			return nodes[i].SortOrder < nodes[j].SortOrder
		}

		return nodes[i].Name < nodes[j].Name
	})
}

func (t *Tree) ByID(id uuid.UUID) *models.CategoryNode {
	return t.byID[id]
}

// Roots returns the level-1 nodes in display order.
func (t *Tree) Roots() []*models.CategoryNode {
	return t.roots
}

// ChildrenOf returns the direct children of id in display order.
func (t *Tree) ChildrenOf(id uuid.UUID) []*models.CategoryNode {
	return t.children[id]
}

// RootBySlug resolves a level-1 segment against stored slugs.
func (t *Tree) RootBySlug(slug string) *models.CategoryNode {
	for _, node := range t.roots {
		if node.Slug == slug {
			return node
		}
	}

	return nil
}

// ChildBySegment resolves a path segment against the children of parent.
// Stored slugs at levels 2 and 3 are prefixed with their ancestry
// ("women-clothing", "women-clothing-dresses"), while canonical URLs use the
// bare segment, so both the full slug and the parent-stripped form match.
// A slugified name match is the last resort for rows whose slug drifted from
// the display name.
func (t *Tree) ChildBySegment(parent *models.CategoryNode, segment string) *models.CategoryNode {
	if parent == nil || segment == "" {
		return nil
	}

	for _, child := range t.children[parent.ID] {
		if child.Slug == segment || t.CleanSlug(child) == segment {
			return child
		}
	}

	for _, child := range t.children[parent.ID] {
		if Slugify(child.Name) == segment {
			return child
		}
	}

	return nil
}

// NodeByFullSlug finds a node at any level whose stored slug matches exactly.
// Used to recover from legacy combined-slug URLs like "women-clothing".
func (t *Tree) NodeByFullSlug(slug string) *models.CategoryNode {
	for i := range t.nodes {
		if t.nodes[i].Slug == slug {
			return &t.nodes[i]
		}
	}

	return nil
}

// CleanSlug strips the parent slug prefix from a node's stored slug, yielding
// the segment used in canonical paths ("women-clothing" under "women" →
// "clothing"). Nodes without the prefix are returned as-is.
func (t *Tree) CleanSlug(node *models.CategoryNode) string {
	if node == nil {
		return ""
	}

	if node.ParentID == nil {
		return node.Slug
	}

	parent := t.byID[*node.ParentID]
	if parent == nil {
		return node.Slug
	}

	prefix := parent.Slug + "-"
	if strings.HasPrefix(node.Slug, prefix) && len(node.Slug) > len(prefix) {
		return node.Slug[len(prefix):]
	}

	return node.Slug
}

// PathSlugs returns the clean slug chain from the level-1 ancestor down to
// node, in order.
func (t *Tree) PathSlugs(node *models.CategoryNode) []string {
	var chain []*models.CategoryNode

	for cur := node; cur != nil; {
		chain = append(chain, cur)

		if cur.ParentID == nil {
			break
		}

		cur = t.byID[*cur.ParentID]
	}

	slugs := make([]string, 0, len(chain))
	for i := len(chain) - 1; i >= 0; i-- {
		slugs = append(slugs, t.CleanSlug(chain[i]))
	}

	return slugs
}

// DescendantIDs returns id plus every descendant's ID. Category filters in
// product queries are flat, so browsing an ancestor expands here.
func (t *Tree) DescendantIDs(id uuid.UUID) []uuid.UUID {
	node := t.byID[id]
	if node == nil {
		return nil
	}

	ids := []uuid.UUID{id}

	for _, child := range t.children[id] {
		ids = append(ids, t.DescendantIDs(child.ID)...)
	}

	return ids
}

// Slugify normalizes a display name to its URL segment form.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, "&", "and")
	s = strings.ReplaceAll(s, "'", "")

	var b strings.Builder

	lastDash := false

	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)

			lastDash = false
		default:
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')

				lastDash = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
