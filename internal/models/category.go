package models

import (
	"time"

	"github.com/google/uuid"
)

// CategoryNode is one row of the 3-level category taxonomy.
// Level-1 nodes (demographics: men, women, kids, unisex) have no parent,
// a level-N node's parent is always level N-1.
type CategoryNode struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Slug      string     `json:"slug"`
	ParentID  *uuid.UUID `json:"parent_id,omitempty"`
	Level     int        `json:"level"`
	SortOrder int        `json:"sort_order"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CategoryWithCount is a tree node annotated with its hierarchical product
// count, as returned to navigation consumers.
type CategoryWithCount struct {
	CategoryNode
	ProductCount int `json:"product_count"`
}

type BreadcrumbItem struct {
	Name  string `json:"name"`
	Href  string `json:"href"`
	Level int    `json:"level"`
}

// CategoryPill is a navigation chip: a child or sibling category with its
// product count, used for in-page filtering shortcuts.
type CategoryPill struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	ProductCount int       `json:"product_count"`
}
