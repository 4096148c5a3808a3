package service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/threadly-market/marketplace-backend/internal/catalog"
	"github.com/threadly-market/marketplace-backend/internal/models"
	service "github.com/threadly-market/marketplace-backend/internal/services"
)

type testCatalog struct {
	men, menClothing, menTShirts models.CategoryNode
	women, womenClothing         models.CategoryNode
	womenDresses                 models.CategoryNode
	nodes                        []models.CategoryNode
}

func newTestCatalog() *testCatalog {
	c := &testCatalog{}

	mk := func(name, slug string, parent *models.CategoryNode, level, sortOrder int) models.CategoryNode {
		n := models.CategoryNode{
			ID:        uuid.New(),
			Name:      name,
			Slug:      slug,
			Level:     level,
			SortOrder: sortOrder,
			IsActive:  true,
		}

		if parent != nil {
			id := parent.ID
			n.ParentID = &id
		}

		return n
	}

	c.men = mk("Men", "men", nil, 1, 1)
	c.women = mk("Women", "women", nil, 1, 2)
	c.menClothing = mk("Clothing", "men-clothing", &c.men, 2, 1)
	c.womenClothing = mk("Clothing", "women-clothing", &c.women, 2, 1)
	c.menTShirts = mk("T-Shirts", "men-clothing-t-shirts", &c.menClothing, 3, 1)
	c.womenDresses = mk("Dresses", "women-clothing-dresses", &c.womenClothing, 3, 1)

	c.nodes = []models.CategoryNode{c.men, c.women, c.menClothing, c.womenClothing, c.menTShirts, c.womenDresses}

	return c
}

func TestDeriveBadges(t *testing.T) {
	assert.Equal(t, models.SellerBadges{}, service.DeriveBadges(models.SellerProfile{SubscriptionTier: "free"}))
	assert.Equal(t, models.SellerBadges{IsPro: true}, service.DeriveBadges(models.SellerProfile{SubscriptionTier: "pro"}))
	assert.Equal(t, models.SellerBadges{IsPro: true, IsBrand: true}, service.DeriveBadges(models.SellerProfile{SubscriptionTier: "brand"}))
	assert.Equal(t, models.SellerBadges{IsVerified: true}, service.DeriveBadges(models.SellerProfile{SubscriptionTier: "free", IsVerified: true}))
}

func TestAssembleProducts(t *testing.T) {
	c := newTestCatalog()
	tree := catalog.NewTree(c.nodes)

	sellerID := uuid.New()
	product := models.Product{
		ID:            uuid.New(),
		SellerID:      sellerID,
		CategoryID:    c.menTShirts.ID,
		Title:         "Band tee",
		Price:         15,
		FavoriteCount: 3,
		CreatedAt:     time.Now(),
	}

	t.Run("full category chain and joined data", func(t *testing.T) {
		profiles := map[uuid.UUID]models.SellerProfile{
			sellerID: {ID: sellerID, Username: "rockfan", SubscriptionTier: "pro", IsVerified: true},
		}
		images := map[uuid.UUID][]models.ProductImage{
			product.ID: {
				{ImageURL: "https://cdn.example/front.jpg", DisplayOrder: 0},
				{ImageURL: "https://cdn.example/back.jpg", DisplayOrder: 1},
			},
		}

		assembled := service.AssembleProducts(tree, []models.Product{product}, profiles, images)

		require.Len(t, assembled, 1)
		item := assembled[0]
		assert.Equal(t, "Men", item.MainCategoryName)
		assert.Equal(t, "Clothing", item.SubcategoryName)
		assert.Equal(t, "T-Shirts", item.SpecificCategoryName)
		assert.Equal(t, "https://cdn.example/front.jpg", item.FirstImage)
		assert.Len(t, item.Images, 2)
		assert.Equal(t, "rockfan", item.Seller.Username)
		assert.True(t, item.Seller.Badges.IsPro)
		assert.True(t, item.Seller.Badges.IsVerified)
	})

	t.Run("level-2 product fills a partial chain", func(t *testing.T) {
		p := product
		p.CategoryID = c.womenClothing.ID

		assembled := service.AssembleProducts(tree, []models.Product{p}, nil, nil)

		require.Len(t, assembled, 1)
		assert.Equal(t, "Women", assembled[0].MainCategoryName)
		assert.Equal(t, "Clothing", assembled[0].SubcategoryName)
		assert.Empty(t, assembled[0].SpecificCategoryName)
	})

	t.Run("missing seller and images never drop the row", func(t *testing.T) {
		assembled := service.AssembleProducts(tree, []models.Product{product}, nil, nil)

		require.Len(t, assembled, 1)
		assert.Equal(t, "Unknown seller", assembled[0].Seller.Username)
		assert.Equal(t, product.SellerID, assembled[0].Seller.ID)
		assert.Empty(t, assembled[0].Images)
		assert.Empty(t, assembled[0].FirstImage)
	})

	t.Run("unknown category degrades to an empty chain", func(t *testing.T) {
		p := product
		p.CategoryID = uuid.New()

		assembled := service.AssembleProducts(tree, []models.Product{p}, nil, nil)

		require.Len(t, assembled, 1)
		assert.Empty(t, assembled[0].MainCategoryName)
		assert.Empty(t, assembled[0].SubcategoryName)
	})
}
