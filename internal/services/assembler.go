package service

import (
	"github.com/google/uuid"
	"github.com/threadly-market/marketplace-backend/internal/catalog"
	"github.com/threadly-market/marketplace-backend/internal/models"
)

// DeriveBadges is a pure function of the seller record.
func DeriveBadges(profile models.SellerProfile) models.SellerBadges {
	return models.SellerBadges{
		IsPro:      profile.SubscriptionTier == "pro" || profile.SubscriptionTier == "brand",
		IsBrand:    profile.SubscriptionTier == "brand",
		IsVerified: profile.IsVerified,
	}
}

// placeholderSeller stands in when the seller row is missing. A listing never
// drops off the page because of a data integrity gap on the profile side.
func placeholderSeller(id uuid.UUID) models.SellerView {
	return models.SellerView{
		ID:       id,
		Username: "Unknown seller",
	}
}

func sellerViewFor(id uuid.UUID, profiles map[uuid.UUID]models.SellerProfile) models.SellerView {
	profile, ok := profiles[id]
	if !ok {
		return placeholderSeller(id)
	}

	return models.SellerView{
		ID:        profile.ID,
		Username:  profile.Username,
		AvatarURL: profile.AvatarURL,
		Rating:    profile.Rating,
		Badges:    DeriveBadges(profile),
	}
}

// categoryChain resolves the name chain for a product's category. Missing
// parents degrade to a partially populated chain.
type categoryChain struct {
	Main     string
	Sub      string
	Specific string
}

func chainFor(node *models.CategoryNode, tree *catalog.Tree) categoryChain {
	var chain categoryChain

	for cur := node; cur != nil; {
		switch cur.Level {
		case 3:
			chain.Specific = cur.Name
		case 2:
			chain.Sub = cur.Name
		case 1:
			chain.Main = cur.Name
		}

		if cur.ParentID == nil {
			break
		}

		cur = tree.ByID(*cur.ParentID)
	}

	return chain
}

// AssembleProducts joins raw product rows with their seller, image and
// category chain data into the one denormalized shape every page consumes.
// Rows are never dropped for missing collaborator data.
func AssembleProducts(tree *catalog.Tree, products []models.Product, profiles map[uuid.UUID]models.SellerProfile, images map[uuid.UUID][]models.ProductImage) []models.AssembledProduct {
	assembled := make([]models.AssembledProduct, 0, len(products))

	for _, p := range products {
		chain := chainFor(tree.ByID(p.CategoryID), tree)

		urls := make([]string, 0, len(images[p.ID]))
		for _, img := range images[p.ID] {
			urls = append(urls, img.ImageURL)
		}

		item := models.AssembledProduct{
			ID:                   p.ID,
			Title:                p.Title,
			Description:          p.Description,
			Price:                p.Price,
			Brand:                p.Brand,
			Size:                 p.Size,
			Condition:            p.Condition,
			Location:             p.Location,
			CountryCode:          p.CountryCode,
			MainCategoryName:     chain.Main,
			SubcategoryName:      chain.Sub,
			SpecificCategoryName: chain.Specific,
			Images:               urls,
			Seller:               sellerViewFor(p.SellerID, profiles),
			FavoriteCount:        p.FavoriteCount,
			CreatedAt:            p.CreatedAt,
		}

		if len(urls) > 0 {
			item.FirstImage = urls[0]
		}

		assembled = append(assembled, item)
	}

	return assembled
}
