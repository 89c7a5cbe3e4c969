package editor

import (
	"math"
	"strconv"
	"strings"

	"github.com/vogue360/studio/internal/model"
)

// CatalogDraft is the gallery item form as typed by the admin.
type CatalogDraft struct {
	Name     string
	Category string
	Price    string
	Image    string
}

// CatalogForm builds catalog items from drafts.
func CatalogForm() Form[model.CatalogItem, CatalogDraft] {
	return Form[model.CatalogItem, CatalogDraft]{
		FromRecord: func(i model.CatalogItem) CatalogDraft {
			return CatalogDraft{
				Name:     i.Name,
				Category: string(i.Category),
				Price:    strconv.FormatFloat(i.Price, 'f', -1, 64),
				Image:    i.Image,
			}
		},
		Build:   BuildCatalogItem,
		Created: "Item added successfully",
		Updated: "Item updated successfully",
	}
}

// BuildCatalogItem validates d into a catalog item.
func BuildCatalogItem(d CatalogDraft, base model.CatalogItem) (model.CatalogItem, error) {
	name := strings.TrimSpace(d.Name)
	image := strings.TrimSpace(d.Image)
	if name == "" || d.Category == "" || strings.TrimSpace(d.Price) == "" || image == "" {
		return model.CatalogItem{}, invalid("Please fill in all fields")
	}

	category, err := model.ParseCategory(d.Category)
	if err != nil {
		return model.CatalogItem{}, invalid("Please choose a valid category")
	}

	price, err := ParsePrice(d.Price)
	if err != nil {
		return model.CatalogItem{}, err
	}

	base.Name = name
	base.Category = category
	base.Price = price
	base.Image = image
	return base, nil
}

// ParsePrice parses a positive finite price.
func ParsePrice(s string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return 0, invalid("Price must be a positive number")
	}
	return price, nil
}
