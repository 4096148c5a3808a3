package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/threadly-market/marketplace-backend/internal/models"
)

// fixture holds a small but representative category snapshot: three
// demographics, clothing and shoes under two of them, and a few level-3
// leaves including same-named ones across demographics.
type fixture struct {
	men, women, kids                   models.CategoryNode
	menClothing, womenClothing         models.CategoryNode
	menShoes, womenShoes               models.CategoryNode
	menTShirts, menJeans               models.CategoryNode
	womenTShirts, womenDresses         models.CategoryNode
	menSneakers, womenSneakers         models.CategoryNode
	inactive                           models.CategoryNode
	all                                []models.CategoryNode
}

func node(name, slug string, parent *models.CategoryNode, level, sortOrder int) models.CategoryNode {
	n := models.CategoryNode{
		ID:        uuid.New(),
		Name:      name,
		Slug:      slug,
		Level:     level,
		SortOrder: sortOrder,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if parent != nil {
		id := parent.ID
		n.ParentID = &id
	}

	return n
}

func newFixture() *fixture {
	f := &fixture{}

	f.men = node("Men", "men", nil, 1, 1)
	f.women = node("Women", "women", nil, 1, 2)
	f.kids = node("Kids", "kids", nil, 1, 3)

	f.menClothing = node("Clothing", "men-clothing", &f.men, 2, 1)
	f.menShoes = node("Shoes", "men-shoes", &f.men, 2, 2)
	f.womenClothing = node("Clothing", "women-clothing", &f.women, 2, 1)
	f.womenShoes = node("Shoes", "women-shoes", &f.women, 2, 2)

	f.menTShirts = node("T-Shirts", "men-clothing-t-shirts", &f.menClothing, 3, 1)
	f.menJeans = node("Jeans", "men-clothing-jeans", &f.menClothing, 3, 2)
	f.womenTShirts = node("T-Shirts", "women-clothing-t-shirts", &f.womenClothing, 3, 1)
	f.womenDresses = node("Dresses", "women-clothing-dresses", &f.womenClothing, 3, 2)
	f.menSneakers = node("Sneakers", "men-shoes-sneakers", &f.menShoes, 3, 1)
	f.womenSneakers = node("Sneakers", "women-shoes-sneakers", &f.womenShoes, 3, 1)

	f.inactive = node("Vintage", "men-clothing-vintage", &f.menClothing, 3, 9)
	f.inactive.IsActive = false

	f.all = []models.CategoryNode{
		f.men, f.women, f.kids,
		f.menClothing, f.menShoes, f.womenClothing, f.womenShoes,
		f.menTShirts, f.menJeans, f.womenTShirts, f.womenDresses,
		f.menSneakers, f.womenSneakers,
		f.inactive,
	}

	return f
}

func (f *fixture) tree() *Tree {
	return NewTree(f.all)
}
