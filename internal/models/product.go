package models

import "github.com/lib/pq"

// Product is owned by exactly one seller. Tag is generated from the product
// name and the seller's running count and is unique only within that seller.
type Product struct {
	BaseModel
	SellerID string `gorm:"not null;index;uniqueIndex:idx_products_seller_tag" json:"-"`
	Tag      string `gorm:"not null;uniqueIndex:idx_products_seller_tag" json:"product_tag"`

	Name             string `gorm:"not null" json:"name"`
	Category         string `json:"category,omitempty"`
	ShortDescription string `json:"short_description,omitempty"`
	LongDescription  string `json:"long_description,omitempty"`

	CostPrice    string `json:"cost_price,omitempty"`
	SellingPrice string `json:"selling_price,omitempty"`

	Color     string `json:"color,omitempty"`
	Condition string `json:"condition,omitempty"`
	Make      string `json:"make,omitempty"`
	Model     string `json:"model,omitempty"`
	Year      string `json:"year,omitempty"`
	Mileage   string `json:"mileage,omitempty"`
	Quantity  string `json:"quantity,omitempty"`

	Discount      bool   `gorm:"default:false" json:"discount"`
	DiscountType  string `json:"discount_type,omitempty"`
	DiscountValue string `json:"discount_value,omitempty"`

	Images pq.StringArray `gorm:"type:text[]" json:"images,omitempty"`
}
