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

type ProfileRepository interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.SellerProfile, error)
}

type profileRepository struct {
	DB *sql.DB
}

func NewProfileRepo(db *sql.DB) ProfileRepository {
	return &profileRepository{DB: db}
}

func (r *profileRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.SellerProfile, error) {
	profiles := make(map[uuid.UUID]models.SellerProfile, len(ids))

	if len(ids) == 0 {
		return profiles, nil
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, username, COALESCE(avatar_url, ''), COALESCE(rating, 0), COALESCE(subscription_tier, 'free'), is_verified
		FROM profiles
		WHERE id = ANY($1)
	`

	rows, err := r.DB.QueryContext(dbCtx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("querying profiles: %w", err)
	}

	defer rows.Close()

	for rows.Next() {
		var p models.SellerProfile

		if err := rows.Scan(&p.ID, &p.Username, &p.AvatarURL, &p.Rating, &p.SubscriptionTier, &p.IsVerified); err != nil {
			return nil, fmt.Errorf("scanning profile row: %w", err)
		}

		profiles[p.ID] = p
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating profile rows: %w", err)
	}

	return profiles, nil
}
