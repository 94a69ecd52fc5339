package models

import "time"

// Used when the server sends neither reorder_point nor reorder_level.
const DefaultReorderPoint = 5

type Size string

const (
	SizeNone Size = "NONE"
	SizeXXS  Size = "XXS"
	SizeXS   Size = "XS"
	SizeS    Size = "S"
	SizeM    Size = "M"
	SizeL    Size = "L"
	SizeXL   Size = "XL"
	SizeXXL  Size = "XXL"
	SizeXXXL Size = "XXXL"
)

var Sizes = []Size{SizeNone, SizeXXS, SizeXS, SizeS, SizeM, SizeL, SizeXL, SizeXXL, SizeXXXL}

func (s Size) Valid() bool {
	for _, known := range Sizes {
		if s == known {
			return true
		}
	}

	return false
}

type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type ProductSize struct {
	Size  Size    `json:"size" validate:"required,oneof=NONE XXS XS S M L XL XXL XXXL"`
	Stock int     `json:"stock" validate:"gte=0"`
	Price float64 `json:"price" validate:"gte=0"`
}

type Product struct {
	ID            int64         `json:"id"`
	CategoryID    int64         `json:"category_id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Price         float64       `json:"price"`
	OriginalPrice float64       `json:"original_price"`
	Stock         int           `json:"stock"`
	ReorderPoint  *int          `json:"reorder_point,omitempty"`
	ReorderLevel  *int          `json:"reorder_level,omitempty"`
	ImageURL      string        `json:"image_url,omitempty"`
	Sizes         []ProductSize `json:"sizes,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	Category      *Category     `json:"category,omitempty"`
}

// Threshold resolves the reorder threshold the way the server's endpoints disagree on it.
func (p *Product) Threshold() int {
	return resolveThreshold(p.ReorderPoint, p.ReorderLevel)
}

type CreateProductRequest struct {
	CategoryID    int64         `json:"category_id" validate:"required"`
	Name          string        `json:"name" validate:"required,min=2,max=200"`
	Description   string        `json:"description,omitempty"`
	Price         float64       `json:"price" validate:"gt=0"`
	OriginalPrice float64       `json:"original_price" validate:"gte=0"`
	Stock         int           `json:"stock" validate:"gte=0"`
	ReorderPoint  *int          `json:"reorder_point,omitempty" validate:"omitempty,gte=0"`
	ImageURL      string        `json:"image_url,omitempty" validate:"omitempty,url"`
	Sizes         []ProductSize `json:"sizes" validate:"dive"`
}

type ImageUploadResponse struct {
	URL string `json:"url"`
}

func resolveThreshold(point, level *int) int {
	if point != nil {
		return *point
	}

	if level != nil {
		return *level
	}

	return DefaultReorderPoint
}
