package catalog

// PreferenceAny is the sentinel option meaning "no preference". Its presence
// anywhere in a category set disables that category's filter entirely.
const PreferenceAny = "Anything is fine"

// fallbackKey is consulted when an exact composite key has no curated
// products. The table is sparse by construction; the matcher must never
// present an empty result for a valid classification when a default exists.
const fallbackKey = "3-normal"

// FilterSynonyms maps a user-facing filter-type preference to the product
// filter types it accepts. Data sources disagree on whether "Physical" and
// "Mineral" are synonyms, so the mapping is configuration, not code.
type FilterSynonyms map[string][]FilterType

// DefaultFilterSynonyms treats Physical and Mineral as interchangeable.
func DefaultFilterSynonyms() FilterSynonyms {
	return FilterSynonyms{
		"Physical": {FilterMineral, FilterPhysical},
		"Mineral":  {FilterMineral, FilterPhysical},
		"Chemical": {FilterChemical},
		"Mixture":  {FilterMixture},
	}
}

// tintChoices and vehicleChoices are fixed enumerated mappings from the
// questionnaire's preference options to product field values.
var tintChoices = map[string][]Tint{
	"Skin-colored": {TintYes, TintTransparent},
	"Transparent":  {TintTransparent},
	"No tint":      {TintNo},
}

var vehicleChoices = map[string][]string{
	"Cream/lotion": {"Cream", "Lotion"},
	"Spray":        {"Spray"},
	"Powder":       {"Powder"},
}

// Match returns the product list for the given classification. A missing key
// falls back to the "3-normal" entry; if that is also absent the result is
// empty, never nil-deref or error.
func Match(fitzpatrick int, skinType string, table Table) []Product {
	if products, ok := table[Key(fitzpatrick, skinType)]; ok {
		return products
	}
	return table[fallbackKey]
}

// FilterByPreferences returns the order-preserving subsequence of products
// that satisfy every non-empty, non-sentinel category constraint. Categories
// combine with AND; values within one category combine with OR. The input
// slice is never mutated.
func FilterByPreferences(products []Product, prefs Preferences, synonyms FilterSynonyms) []Product {
	if synonyms == nil {
		synonyms = DefaultFilterSynonyms()
	}

	out := make([]Product, 0, len(products))
	for _, product := range products {
		if !matchesFilterType(product, prefs.FilterTypes, synonyms) {
			continue
		}
		if !matchesTint(product, prefs.Tints) {
			continue
		}
		if !matchesVehicle(product, prefs.Vehicles) {
			continue
		}
		out = append(out, product)
	}
	return out
}

func matchesFilterType(product Product, selected []string, synonyms FilterSynonyms) bool {
	if categoryDisabled(selected) {
		return true
	}
	for _, choice := range selected {
		for _, accepted := range synonyms[choice] {
			if product.FilterType == accepted {
				return true
			}
		}
	}
	return false
}

func matchesTint(product Product, selected []string) bool {
	if categoryDisabled(selected) {
		return true
	}
	for _, choice := range selected {
		for _, accepted := range tintChoices[choice] {
			if product.Tint == accepted {
				return true
			}
		}
	}
	return false
}

func matchesVehicle(product Product, selected []string) bool {
	if categoryDisabled(selected) {
		return true
	}
	for _, choice := range selected {
		for _, accepted := range vehicleChoices[choice] {
			if product.Vehicle == accepted {
				return true
			}
		}
	}
	return false
}

// categoryDisabled reports whether a category imposes no constraint: either
// nothing is selected, or the sentinel coexists with other selections.
func categoryDisabled(selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, choice := range selected {
		if choice == PreferenceAny {
			return true
		}
	}
	return false
}
