package models

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the decoded session token payload. Storefront pages are public,
// so a request may carry no claims at all.
type Claims struct {
	UserID      uuid.UUID `json:"user_id"`
	CountryCode string    `json:"country_code,omitempty"`
	jwt.RegisteredClaims
}
