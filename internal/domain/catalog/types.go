package catalog

import "fmt"

// FilterType classifies the active ingredient family of a sunscreen.
type FilterType string

const (
	FilterMineral  FilterType = "Mineral"
	FilterPhysical FilterType = "Physical"
	FilterChemical FilterType = "Chemical"
	FilterMixture  FilterType = "Mixture"
)

// Tint describes the finish a product leaves on skin.
type Tint string

const (
	TintYes         Tint = "Yes"
	TintNo          Tint = "No"
	TintTransparent Tint = "Transparent"
)

// Product is one sunscreen recommendation row.
type Product struct {
	Name        string     `json:"name"`
	FilterType  FilterType `json:"filterType"`
	SPF         int        `json:"spf"`
	Vehicle     string     `json:"vehicle"`
	Tint        Tint       `json:"tint"`
	Price       float64    `json:"price"`
	Size        float64    `json:"size"`
	UnitPrice   float64    `json:"unitPrice"`
	Description string     `json:"description"`
	Link        string     `json:"link,omitempty"`
	Image       string     `json:"image,omitempty"`

	// Ingestion-only fields: a Roman-numeral range such as "IV–VI" and the
	// comma-separated facial skin types the source row applies to. Empty on
	// products that were authored directly against a composite key.
	FitzpatrickScale string   `json:"fitzpatrickScale,omitempty"`
	SkinTypes        []string `json:"skinTypes,omitempty"`
}

// Table maps composite "{fitzpatrick}-{skinType}" keys to product lists.
type Table map[string][]Product

// Key builds the composite lookup key.
func Key(fitzpatrick int, skinType string) string {
	return fmt.Sprintf("%d-%s", fitzpatrick, skinType)
}

// Preferences carries the optional user-selected constraints. Each set is
// empty when the user expressed no preference for that category.
type Preferences struct {
	FilterTypes []string `json:"filterTypes,omitempty"`
	Tints       []string `json:"tints,omitempty"`
	Vehicles    []string `json:"vehicles,omitempty"`
}

func deriveUnitPrice(price, size float64) float64 {
	if size == 0 {
		return 0
	}
	return price / size
}
