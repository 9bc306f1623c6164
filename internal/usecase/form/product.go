package form

import (
	"strconv"
	"strings"

	"adminpanel/internal/domain/entity"
	"adminpanel/internal/domain/service"
	"adminpanel/internal/util"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Upload is one file picked for a product, not yet inspected.
type Upload struct {
	Name string
	Data []byte
}

// Product creates or edits a catalog item. Sizes and colors are free text
// split on comma-class delimiters.
type Product struct {
	TitleUz       string `form:"title_uz" json:"title_uz" validate:"required"`
	TitleRu       string `form:"title_ru" json:"title_ru" validate:"required"`
	DescriptionUz string `form:"description_uz" json:"description_uz" validate:"required"`
	DescriptionRu string `form:"description_ru" json:"description_ru" validate:"required"`
	Category      string `form:"category" json:"category" validate:"required,oneof=bathrobe towel set accessories"`
	Price         string `form:"price" json:"price" validate:"required,decimal_gte0"`
	StockQuantity string `form:"stockQuantity" json:"stockQuantity" validate:"omitempty,int_gte0"`
	Sizes         string `form:"sizes" json:"sizes"`
	Colors        string `form:"colors" json:"colors"`

	Images []Upload `form:"-" json:"-" validate:"-"`
}

// ProductFrom prefills the edit form from a stored product.
func ProductFrom(p *entity.Product) Product {
	return Product{
		TitleUz:       p.TitleUz,
		TitleRu:       p.TitleRu,
		DescriptionUz: p.DescriptionUz,
		DescriptionRu: p.DescriptionRu,
		Category:      p.Category.String(),
		Price:         p.Price.String(),
		StockQuantity: strconv.Itoa(p.StockQuantity),
		Sizes:         strings.Join(p.Sizes, ", "),
		Colors:        strings.Join(p.Colors, ", "),
	}
}

func (f *Product) Normalize() {
	trim(&f.TitleUz, &f.TitleRu, &f.DescriptionUz, &f.DescriptionRu,
		&f.Category, &f.Price, &f.StockQuantity)
}

// ToRequest builds the multipart request from a validated form and its
// inspected images.
func (f *Product) ToRequest(images []service.Attachment) (service.ProductRequest, error) {
	price, err := decimal.NewFromString(f.Price)
	if err != nil {
		return service.ProductRequest{}, errors.Wrap(err, "price")
	}

	var stock *int
	if f.StockQuantity != "" {
		n, err := strconv.Atoi(f.StockQuantity)
		if err != nil {
			return service.ProductRequest{}, errors.Wrap(err, "stockQuantity")
		}
		stock = &n
	}

	return service.ProductRequest{
		TitleUz:       f.TitleUz,
		TitleRu:       f.TitleRu,
		DescriptionUz: f.DescriptionUz,
		DescriptionRu: f.DescriptionRu,
		Category:      entity.Category(f.Category),
		Price:         price,
		StockQuantity: stock,
		Sizes:         util.SplitDelimited(f.Sizes),
		Colors:        util.SplitDelimited(f.Colors),
		Images:        images,
	}, nil
}

// Inventory sets the stock of one product.
type Inventory struct {
	StockQuantity string `form:"stockQuantity" json:"stockQuantity" validate:"required,int_gte0"`
}

func (f *Inventory) Normalize() {
	trim(&f.StockQuantity)
}

// Quantity returns the validated stock quantity.
func (f *Inventory) Quantity() (int, error) {
	n, err := strconv.Atoi(f.StockQuantity)

	return n, errors.Wrap(err, "stockQuantity")
}
