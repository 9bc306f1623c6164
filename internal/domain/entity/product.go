package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog item with bilingual (Uzbek / Russian) texts.
type Product struct {
	ID            primitive.ObjectID `json:"_id"`
	TitleUz       string             `json:"title_uz"`
	TitleRu       string             `json:"title_ru"`
	DescriptionUz string             `json:"description_uz"`
	DescriptionRu string             `json:"description_ru"`
	Category      Category           `json:"category"`
	Price         decimal.Decimal    `json:"price"`
	StockQuantity int                `json:"stockQuantity"`
	Sizes         []string           `json:"sizes"`
	Colors        []string           `json:"colors"`
	Images        []string           `json:"images"` // stored file references, absolute URLs or API paths
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// CoverImage returns the first image reference, or "" when there is none.
func (p *Product) CoverImage() string {
	if len(p.Images) == 0 {
		return ""
	}

	return p.Images[0]
}

// InStock reports whether any units are left.
func (p *Product) InStock() bool {
	return p.StockQuantity > 0
}
