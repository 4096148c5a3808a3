package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/threadly-market/marketplace-backend/internal/models"
	"github.com/threadly-market/marketplace-backend/internal/utils"
)

type CategoryRepository interface {
	ListActive(ctx context.Context) ([]models.CategoryNode, error)
}

type categoryRepository struct {
	DB *sql.DB
}

func NewCategoryRepo(db *sql.DB) CategoryRepository {
	return &categoryRepository{DB: db}
}

func (r *categoryRepository) ListActive(ctx context.Context) ([]models.CategoryNode, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, slug, parent_id, level, sort_order, is_active, created_at, updated_at
		FROM categories
		WHERE is_active = TRUE
		ORDER BY level, sort_order, name
	`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}

	defer rows.Close()

	var nodes []models.CategoryNode

	for rows.Next() {
		var node models.CategoryNode

		var parentID uuid.NullUUID

		err := rows.Scan(&node.ID, &node.Name, &node.Slug, &parentID, &node.Level, &node.SortOrder, &node.IsActive, &node.CreatedAt, &node.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning category row: %w", err)
		}

		if parentID.Valid {
			id := parentID.UUID
			node.ParentID = &id
		}

		nodes = append(nodes, node)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category rows: %w", err)
	}

	return nodes, nil
}
