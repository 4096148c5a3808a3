package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is the raw listing row as stored. Browse and search only ever see
// rows with IsActive && !IsSold; the repository enforces that predicate.
type Product struct {
	ID            uuid.UUID `json:"id"`
	SellerID      uuid.UUID `json:"seller_id"`
	CategoryID    uuid.UUID `json:"category_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	Brand         string    `json:"brand"`
	Size          string    `json:"size"`
	Condition     string    `json:"condition"`
	Location      string    `json:"location"`
	CountryCode   string    `json:"country_code"`
	IsActive      bool      `json:"is_active"`
	IsSold        bool      `json:"is_sold"`
	ViewCount     int       `json:"view_count"`
	FavoriteCount int       `json:"favorite_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ProductImage struct {
	ID           uuid.UUID `json:"id"`
	ProductID    uuid.UUID `json:"product_id"`
	ImageURL     string    `json:"image_url"`
	AltText      string    `json:"alt_text,omitempty"`
	DisplayOrder int       `json:"display_order"`
}

type SellerProfile struct {
	ID               uuid.UUID `json:"id"`
	Username         string    `json:"username"`
	AvatarURL        string    `json:"avatar_url"`
	Rating           float64   `json:"rating"`
	SubscriptionTier string    `json:"subscription_tier"`
	IsVerified       bool      `json:"is_verified"`
}

// SellerBadges is derived purely from the seller record, no I/O.
type SellerBadges struct {
	IsPro      bool `json:"is_pro"`
	IsBrand    bool `json:"is_brand"`
	IsVerified bool `json:"is_verified"`
}

type SellerView struct {
	ID        uuid.UUID    `json:"id"`
	Username  string       `json:"username"`
	AvatarURL string       `json:"avatar_url"`
	Rating    float64      `json:"rating"`
	Badges    SellerBadges `json:"badges"`
}

// TopSeller is one entry of the non-critical "sellers in this category"
// fan-out branch.
type TopSeller struct {
	SellerID     uuid.UUID `json:"seller_id"`
	Username     string    `json:"username"`
	AvatarURL    string    `json:"avatar_url"`
	ProductCount int       `json:"product_count"`
}

// AssembledProduct is the single denormalized, UI-ready product shape.
// All normalization happens once at the repository/service boundary; nothing
// downstream re-derives fields from raw rows.
type AssembledProduct struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Brand       string    `json:"brand"`
	Size        string    `json:"size"`
	Condition   string    `json:"condition"`
	Location    string    `json:"location"`
	CountryCode string    `json:"country_code"`

	// Category name chain, populated progressively by the product's depth.
	// A level-3 product fills all three; missing parents degrade to a
	// partially populated chain.
	MainCategoryName     string `json:"main_category_name,omitempty"`
	SubcategoryName      string `json:"subcategory_name,omitempty"`
	SpecificCategoryName string `json:"specific_category_name,omitempty"`

	Images     []string   `json:"images"`
	FirstImage string     `json:"first_image,omitempty"`
	Seller     SellerView `json:"seller"`

	FavoriteCount int       `json:"favorite_count"`
	CreatedAt     time.Time `json:"created_at"`
}
