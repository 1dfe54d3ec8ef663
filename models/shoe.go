package models

import "time"

// Shoe is one catalog listing as the storefront receives it.
// Prices are in cents. SalePrice is nil when the shoe is not discounted.
type Shoe struct {
	Slug        string    `json:"slug" yaml:"slug"`
	Name        string    `json:"name" yaml:"name"`
	ImageSrc    string    `json:"image_src" yaml:"image_src"`
	Price       int       `json:"price" yaml:"price"`
	SalePrice   *int      `json:"sale_price,omitempty" yaml:"sale_price"`
	ReleaseDate time.Time `json:"release_date" yaml:"release_date"`
	NumOfColors int       `json:"num_of_colors" yaml:"num_of_colors"`
}

// EffectivePrice is what the customer pays right now.
func (s Shoe) EffectivePrice() int {
	if s.SalePrice != nil {
		return *s.SalePrice
	}
	return s.Price
}
