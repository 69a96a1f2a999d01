package dto

type AddProductRequest struct {
	Name             string `json:"name"`
	Category         string `json:"category"`
	ShortDescription string `json:"short_description"`
	LongDescription  string `json:"long_description"`

	CostPrice    string `json:"cost_price"`
	SellingPrice string `json:"selling_price"`

	Color     string `json:"color"`
	Condition string `json:"condition"`
	Make      string `json:"make"`
	Model     string `json:"model"`
	Year      string `json:"year"`
	Mileage   string `json:"mileage"`
	Quantity  string `json:"quantity"`

	Discount      bool   `json:"discount"`
	DiscountType  string `json:"discount_type"`
	DiscountValue string `json:"discount_value"`

	Images []string `json:"images"`
}

// EditProductRequest addresses the product by tag. Update fields are
// pointers so absent fields are left untouched.
type EditProductRequest struct {
	Tag string `json:"product_tag"`

	Name             *string `json:"name,omitempty"`
	Category         *string `json:"category,omitempty"`
	ShortDescription *string `json:"short_description,omitempty"`
	LongDescription  *string `json:"long_description,omitempty"`

	CostPrice    *string `json:"cost_price,omitempty"`
	SellingPrice *string `json:"selling_price,omitempty"`

	Color     *string `json:"color,omitempty"`
	Condition *string `json:"condition,omitempty"`
	Make      *string `json:"make,omitempty"`
	Model     *string `json:"model,omitempty"`
	Year      *string `json:"year,omitempty"`
	Mileage   *string `json:"mileage,omitempty"`
	Quantity  *string `json:"quantity,omitempty"`

	Discount      *bool   `json:"discount,omitempty"`
	DiscountType  *string `json:"discount_type,omitempty"`
	DiscountValue *string `json:"discount_value,omitempty"`

	Images *[]string `json:"images,omitempty"`
}

type DeleteProductRequest struct {
	Tag string `json:"product_tag"`
}

type UploadedPhoto struct {
	ID           string `json:"id"`
	URL          string `json:"url"`
	OriginalName string `json:"original_name"`
	Size         int64  `json:"size"`
}

type DeletePhotoRequest struct {
	ID string `json:"id"`
}
