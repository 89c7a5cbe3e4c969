package model

import "fmt"

// CatalogItem is a clothing piece shown in the gallery.
type CatalogItem struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Price    float64  `json:"price"`
	Image    string   `json:"image"`
}

// RecordID returns the item's identifier.
func (c CatalogItem) RecordID() int64 { return c.ID }

// WithID returns a copy of the item carrying id.
func (c CatalogItem) WithID(id int64) CatalogItem {
	c.ID = id
	return c
}

// Category is the fixed set of gallery categories.
type Category string

// Catalog categories.
const (
	CategoryTops      Category = "tops"
	CategoryBottoms   Category = "bottoms"
	CategoryDresses   Category = "dresses"
	CategoryOuterwear Category = "outerwear"
	CategoryFootwear  Category = "footwear"
	CategoryPants     Category = "pants"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryTops,
	CategoryBottoms,
	CategoryDresses,
	CategoryOuterwear,
	CategoryFootwear,
	CategoryPants,
}

// DisplayName returns the label shown in filters and forms.
func (c Category) DisplayName() string {
	switch c {
	case CategoryTops:
		return "Tops"
	case CategoryBottoms:
		return "Bottoms"
	case CategoryDresses:
		return "Dresses"
	case CategoryOuterwear:
		return "Outerwear"
	case CategoryFootwear:
		return "Footwear"
	case CategoryPants:
		return "Pants"
	default:
		return string(c)
	}
}

// ParseCategory returns the category named by s.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}
