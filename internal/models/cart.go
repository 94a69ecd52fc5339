package models

type CartItem struct {
	ProductID int64   `json:"product_id" validate:"required,gt=0"`
	Name      string  `json:"name,omitempty"`
	Size      Size    `json:"size,omitempty"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
}

type Cart struct {
	Items []CartItem `json:"items"`
}

func (c *Cart) Total() float64 {
	var total float64

	for _, item := range c.Items {
		total += item.UnitPrice * float64(item.Quantity)
	}

	return total
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)
