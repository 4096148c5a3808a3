package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/threadly-market/marketplace-backend/internal/errors"
	"github.com/threadly-market/marketplace-backend/internal/models"
)

// Resolution is the outcome of mapping URL path segments onto the category
// tree.
type Resolution struct {
	Level          int
	L1             *models.CategoryNode
	L2             *models.CategoryNode
	L3             *models.CategoryNode
	IsVirtual      bool
	VirtualSlug    string
	VirtualTargets []*models.CategoryNode
	CategoryIDs    []uuid.UUID
	CanonicalPath  string
	IsValid        bool
}

// DeepestNode returns the most specific resolved concrete node, or nil for
// virtual resolutions.
func (r *Resolution) DeepestNode() *models.CategoryNode {
	switch {
	case r.L3 != nil:
		return r.L3
	case r.L2 != nil:
		return r.L2
	default:
		return r.L1
	}
}

// Resolver maps 0-3 path segments to a Resolution against one tree snapshot.
type Resolver struct {
	tree    *Tree
	virtual *VirtualRegistry
}

func NewResolver(tree *Tree, virtual *VirtualRegistry) *Resolver {
	return &Resolver{tree: tree, virtual: virtual}
}

// Resolve maps path segments to a category resolution.
//
// An empty path is a redirect to the default listing, more than three
// segments is a client error. Segments that fail to match an active node
// yield IsValid=false rather than an error so callers can render a 404 page
// with the navigation shell intact.
func (r *Resolver) Resolve(segments []string) (*Resolution, error) {
	if len(segments) == 0 {
		return nil, errors.RedirectError("/search")
	}

	if len(segments) > 3 {
		return nil, errors.ValidationError("too many category levels")
	}

	if alias, ok := r.virtual.Lookup(segments[0]); ok {
		return r.resolveVirtual(alias, segments), nil
	}

	return r.resolveConcrete(segments), nil
}

func (r *Resolver) resolveVirtual(alias VirtualCategory, segments []string) *Resolution {
	targets := r.virtual.Targets(alias, r.tree)

	res := &Resolution{
		Level:          1,
		IsVirtual:      true,
		VirtualSlug:    alias.Slug,
		VirtualTargets: targets,
		CanonicalPath:  "/category/" + alias.Slug,
		IsValid:        len(targets) > 0,
	}

	for _, t := range targets {
		res.CategoryIDs = append(res.CategoryIDs, t.ID)
	}

	if len(segments) == 1 || !res.IsValid {
		return res
	}

	// A virtual alias covers level-2 nodes, so only one further segment can
	// narrow it. Children sharing a name across targets merge into one view.
	if len(segments) > 2 {
		res.IsValid = false

		return res
	}

	matched := r.matchAcrossTargets(targets, segments[1])
	if len(matched) == 0 {
		res.IsValid = false

		return res
	}

	res.Level = 2
	res.CategoryIDs = res.CategoryIDs[:0]

	for _, m := range matched {
		res.CategoryIDs = append(res.CategoryIDs, m.ID)
	}

	res.CanonicalPath += "/" + r.tree.CleanSlug(matched[0])

	return res
}

// matchAcrossTargets finds the same-named child under each target node.
func (r *Resolver) matchAcrossTargets(targets []*models.CategoryNode, segment string) []*models.CategoryNode {
	var matched []*models.CategoryNode

	var matchedName string

	for _, target := range targets {
		child := r.tree.ChildBySegment(target, segment)
		if child == nil {
			continue
		}

		if matchedName == "" {
			matchedName = child.Name
		}

		if strings.EqualFold(child.Name, matchedName) {
			matched = append(matched, child)
		}
	}

	return matched
}

func (r *Resolver) resolveConcrete(segments []string) *Resolution {
	res := &Resolution{Level: len(segments)}

	res.L1 = r.tree.RootBySlug(segments[0])
	if res.L1 == nil {
		return res
	}

	deepest := res.L1

	if len(segments) > 1 {
		res.L2 = r.tree.ChildBySegment(res.L1, segments[1])
		if res.L2 == nil {
			return res
		}

		deepest = res.L2
	}

	if len(segments) > 2 {
		res.L3 = r.tree.ChildBySegment(res.L2, segments[2])
		if res.L3 == nil {
			return res
		}

		deepest = res.L3
	}

	res.IsValid = true
	res.CategoryIDs = []uuid.UUID{deepest.ID}
	res.CanonicalPath = "/category/" + strings.Join(r.tree.PathSlugs(deepest), "/")

	return res
}
