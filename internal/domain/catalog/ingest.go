package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Raw sheet rows arrive in a fixed column order:
// [name, fitzpatrickScale, skinType, filterType, spf, vehicle, tint, price,
// size, unitPrice?, image?, link?]. The first nine columns are required.
const minRowColumns = 9

var romanNumerals = map[string]int{
	"I":   1,
	"II":  2,
	"III": 3,
	"IV":  4,
	"V":   5,
	"VI":  6,
}

// ParseFitzpatrickScale expands a Roman-numeral value or range ("II",
// "IV–VI", "I-III") into discrete Fitzpatrick types. Unparseable input
// yields an empty set.
func ParseFitzpatrickScale(scale string) []int {
	clean := strings.ReplaceAll(strings.TrimSpace(scale), " ", "")
	if clean == "" {
		return nil
	}

	// Source sheets use both the en dash and the ASCII hyphen.
	parts := strings.FieldsFunc(clean, func(r rune) bool {
		return r == '–' || r == '-'
	})

	switch len(parts) {
	case 1:
		if value, ok := romanNumerals[strings.ToUpper(parts[0])]; ok {
			return []int{value}
		}
	case 2:
		start, okStart := romanNumerals[strings.ToUpper(parts[0])]
		end, okEnd := romanNumerals[strings.ToUpper(parts[1])]
		if okStart && okEnd && start <= end {
			out := make([]int, 0, end-start+1)
			for i := start; i <= end; i++ {
				out = append(out, i)
			}
			return out
		}
	}
	return nil
}

// ParseSkinTypes splits a comma-separated skin-type cell into lowercase tags.
func ParseSkinTypes(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.ToLower(strings.TrimSpace(part)); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// ProductFromRow normalizes one raw sheet row. Rows shorter than the
// required column count or with a blank name are rejected.
func ProductFromRow(row []string) (Product, error) {
	if len(row) < minRowColumns {
		return Product{}, fmt.Errorf("row has %d columns, need at least %d", len(row), minRowColumns)
	}

	name := strings.TrimSpace(row[0])
	if name == "" {
		return Product{}, errors.New("row has empty product name")
	}

	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	spf, err := strconv.Atoi(cell(4))
	if err != nil || spf <= 0 {
		spf = 30
	}
	price := parseCurrency(cell(7))
	size := parseDecimal(cell(8))

	unitPrice := parseCurrency(cell(9))
	if unitPrice == 0 {
		unitPrice = deriveUnitPrice(price, size)
	}

	return Product{
		Name:             name,
		FilterType:       normalizeFilterType(cell(3)),
		SPF:              spf,
		Vehicle:          cell(5),
		Tint:             normalizeTint(cell(6)),
		Price:            price,
		Size:             size,
		UnitPrice:        unitPrice,
		Description:      fmt.Sprintf("%s sunscreen, SPF %d", cell(3), spf),
		Image:            cell(10),
		Link:             cell(11),
		FitzpatrickScale: cell(1),
		SkinTypes:        ParseSkinTypes(cell(2)),
	}, nil
}

// BuildTable inserts each product under every composite key its expanded
// Fitzpatrick range and skin-type set produce. Products are copied by value,
// so one source row can appear under many keys.
func BuildTable(products []Product) Table {
	table := make(Table)
	for _, product := range products {
		types := ParseFitzpatrickScale(product.FitzpatrickScale)
		if len(types) == 0 || len(product.SkinTypes) == 0 {
			continue
		}
		for _, fitzType := range types {
			for _, skinType := range product.SkinTypes {
				key := Key(fitzType, skinType)
				table[key] = append(table[key], product)
			}
		}
	}
	return table
}

func normalizeFilterType(raw string) FilterType {
	switch strings.TrimSpace(raw) {
	case "Physical":
		return FilterPhysical
	case "Mineral":
		return FilterMineral
	case "Mixture":
		return FilterMixture
	default:
		return FilterChemical
	}
}

func normalizeTint(raw string) Tint {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "transparent":
		return TintTransparent
	case "yes":
		return TintYes
	default:
		return TintNo
	}
}

func parseCurrency(raw string) float64 {
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(raw)
	return parseDecimal(cleaned)
}

func parseDecimal(raw string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || value < 0 {
		return 0
	}
	return value
}
