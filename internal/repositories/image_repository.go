package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/threadly-market/marketplace-backend/internal/models"
	"github.com/threadly-market/marketplace-backend/internal/utils"
)

type ImageRepository interface {
	ListByProductIDs(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID][]models.ProductImage, error)
}

type imageRepository struct {
	DB *sql.DB
}

func NewImageRepo(db *sql.DB) ImageRepository {
	return &imageRepository{DB: db}
}

// ListByProductIDs returns each product's images sorted by display order.
func (r *imageRepository) ListByProductIDs(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID][]models.ProductImage, error) {
	images := make(map[uuid.UUID][]models.ProductImage, len(productIDs))

	if len(productIDs) == 0 {
		return images, nil
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, product_id, image_url, COALESCE(alt_text, ''), display_order
		FROM product_images
		WHERE product_id = ANY($1)
		ORDER BY product_id, display_order
	`

	rows, err := r.DB.QueryContext(dbCtx, query, pq.Array(productIDs))
	if err != nil {
		return nil, fmt.Errorf("querying product images: %w", err)
	}

	defer rows.Close()

	for rows.Next() {
		var img models.ProductImage

		if err := rows.Scan(&img.ID, &img.ProductID, &img.ImageURL, &img.AltText, &img.DisplayOrder); err != nil {
			return nil, fmt.Errorf("scanning image row: %w", err)
		}

		images[img.ProductID] = append(images[img.ProductID], img)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating image rows: %w", err)
	}

	return images, nil
}
