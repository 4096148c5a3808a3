package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/threadly-market/marketplace-backend/internal/models"
	"github.com/threadly-market/marketplace-backend/internal/utils"
)

type ProductRepository interface {
	Search(ctx context.Context, spec *models.ProductFilterSpec) ([]models.Product, int, error)
	CountByCategory(ctx context.Context, countryCode string) (map[uuid.UUID]int, error)
	TopSellers(ctx context.Context, countryCode string, categoryIDs []uuid.UUID, limit int) ([]models.TopSeller, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

const productColumns = `id, seller_id, category_id, title, description, price, brand, size, condition,
	location, country_code, is_active, is_sold, view_count, favorite_count, created_at, updated_at`

// Search runs one bounded query per the filter spec plus one exact COUNT over
// the same predicates. The count deliberately ignores the cursor so Total
// stays stable while a client scrolls.
func (r *productRepository) Search(ctx context.Context, spec *models.ProductFilterSpec) ([]models.Product, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	where, args := buildWhere(spec)

	var total int

	countQuery := `SELECT COUNT(*) FROM products WHERE ` + where
	if err := r.DB.QueryRowContext(dbCtx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting products: %w", err)
	}

	where, args, err := appendCursor(spec, where, args)
	if err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE ` + where +
		` ORDER BY ` + orderBy(spec.Sort) +
		fmt.Sprintf(` LIMIT $%d`, len(args)+1)
	args = append(args, spec.Limit)

	if spec.Cursor == "" && spec.Offset > 0 {
		query += fmt.Sprintf(` OFFSET $%d`, len(args)+1)
		args = append(args, spec.Offset)
	}

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying products: %w", err)
	}

	defer rows.Close()

	var products []models.Product

	for rows.Next() {
		var p models.Product

		err := rows.Scan(&p.ID, &p.SellerID, &p.CategoryID, &p.Title, &p.Description, &p.Price, &p.Brand, &p.Size, &p.Condition,
			&p.Location, &p.CountryCode, &p.IsActive, &p.IsSold, &p.ViewCount, &p.FavoriteCount, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning product row: %w", err)
		}

		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, total, nil
}

// buildWhere translates the filter spec into a predicate list. Sets are OR'd
// within a field and AND'd across fields; price bounds are inclusive.
func buildWhere(spec *models.ProductFilterSpec) (string, []any) {
	clauses := []string{"is_active = TRUE", "is_sold = FALSE"}

	var args []any

	next := func() int { return len(args) + 1 }

	if spec.CountryCode != "" {
		clauses = append(clauses, fmt.Sprintf("country_code = $%d", next()))
		args = append(args, spec.CountryCode)
	}

	if len(spec.CategoryIDs) > 0 {
		clauses = append(clauses, fmt.Sprintf("category_id = ANY($%d)", next()))
		args = append(args, pq.Array(spec.CategoryIDs))
	}

	if q := strings.TrimSpace(spec.TextQuery); q != "" {
		n := next()
		clauses = append(clauses, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d OR brand ILIKE $%d)", n, n, n))
		args = append(args, "%"+q+"%")
	}

	if len(spec.Brands) > 0 {
		var brandClauses []string

		for _, brand := range spec.Brands {
			brandClauses = append(brandClauses, fmt.Sprintf("brand ILIKE $%d", next()))
			args = append(args, "%"+brand+"%")
		}

		clauses = append(clauses, "("+strings.Join(brandClauses, " OR ")+")")
	}

	if spec.PriceMin != nil {
		clauses = append(clauses, fmt.Sprintf("price >= $%d", next()))
		args = append(args, *spec.PriceMin)
	}

	if spec.PriceMax != nil {
		clauses = append(clauses, fmt.Sprintf("price <= $%d", next()))
		args = append(args, *spec.PriceMax)
	}

	if len(spec.Conditions) > 0 {
		clauses = append(clauses, fmt.Sprintf("condition = ANY($%d)", next()))
		args = append(args, pq.Array(spec.Conditions))
	}

	if len(spec.Sizes) > 0 {
		clauses = append(clauses, fmt.Sprintf("size = ANY($%d)", next()))
		args = append(args, pq.Array(spec.Sizes))
	}

	return strings.Join(clauses, " AND "), args
}

func appendCursor(spec *models.ProductFilterSpec, where string, args []any) (string, []any, error) {
	if spec.Cursor == "" {
		return where, args, nil
	}

	createdAt, id, err := DecodeCursor(spec.Cursor)
	if err != nil {
		return "", nil, err
	}

	where += fmt.Sprintf(" AND (created_at, id) < ($%d, $%d)", len(args)+1, len(args)+2)
	args = append(args, createdAt, id)

	return where, args, nil
}

// orderBy maps a sort spec onto a deterministic ORDER BY clause. Every sort
// carries a created_at/id tiebreak so pagination never sees ties.
// "relevance" cannot be ranked by this store and is documented to behave as
// newest-first.
func orderBy(sort models.SortSpec) string {
	dir := "DESC"
	if sort.Direction == models.SortAsc {
		dir = "ASC"
	}

	switch sort.By {
	case models.SortByPrice:
		return fmt.Sprintf("price %s, created_at DESC, id DESC", dir)
	case models.SortByPopularity:
		return "favorite_count DESC, created_at DESC, id DESC"
	case models.SortByCreatedAt:
		return fmt.Sprintf("created_at %s, id %s", dir, dir)
	case models.SortByRelevance:
		return "created_at DESC, id DESC"
	default:
		return "created_at DESC, id DESC"
	}
}

func (r *productRepository) CountByCategory(ctx context.Context, countryCode string) (map[uuid.UUID]int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT category_id, COUNT(*) FROM products WHERE is_active = TRUE AND is_sold = FALSE`

	var args []any

	if countryCode != "" {
		query += ` AND country_code = $1`

		args = append(args, countryCode)
	}

	query += ` GROUP BY category_id`

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("counting products by category: %w", err)
	}

	defer rows.Close()

	counts := make(map[uuid.UUID]int)

	for rows.Next() {
		var categoryID uuid.UUID

		var count int

		if err := rows.Scan(&categoryID, &count); err != nil {
			return nil, fmt.Errorf("scanning count row: %w", err)
		}

		counts[categoryID] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating count rows: %w", err)
	}

	return counts, nil
}

func (r *productRepository) TopSellers(ctx context.Context, countryCode string, categoryIDs []uuid.UUID, limit int) ([]models.TopSeller, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	clauses := []string{"p.is_active = TRUE", "p.is_sold = FALSE"}

	var args []any

	if countryCode != "" {
		clauses = append(clauses, fmt.Sprintf("p.country_code = $%d", len(args)+1))
		args = append(args, countryCode)
	}

	if len(categoryIDs) > 0 {
		clauses = append(clauses, fmt.Sprintf("p.category_id = ANY($%d)", len(args)+1))
		args = append(args, pq.Array(categoryIDs))
	}

	query := `
		SELECT p.seller_id, pr.username, COALESCE(pr.avatar_url, ''), COUNT(*) AS product_count
		FROM products p
		JOIN profiles pr ON pr.id = p.seller_id
		WHERE ` + strings.Join(clauses, " AND ") + `
		GROUP BY p.seller_id, pr.username, pr.avatar_url
		ORDER BY product_count DESC
		LIMIT $` + fmt.Sprint(len(args)+1)
	args = append(args, limit)

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying top sellers: %w", err)
	}

	defer rows.Close()

	var sellers []models.TopSeller

	for rows.Next() {
		var s models.TopSeller

		if err := rows.Scan(&s.SellerID, &s.Username, &s.AvatarURL, &s.ProductCount); err != nil {
			return nil, fmt.Errorf("scanning top seller row: %w", err)
		}

		sellers = append(sellers, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating top seller rows: %w", err)
	}

	return sellers, nil
}
