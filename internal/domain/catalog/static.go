package catalog

// StaticTable returns the bundled product table used whenever no remote
// source is configured or the remote source fails. Keys cover every
// Fitzpatrick type crossed with every facial skin type.
func StaticTable() Table {
	table := Table{
		"1-normal": {
			staticProduct("EltaMD UV Clear Broad-Spectrum SPF 46", FilterMineral, 46, "Lotion", TintNo, 39.00, 1.7,
				"Oil-free formula with niacinamide, perfect for sensitive and acne-prone skin."),
		},
		"1-oily": {
			staticProduct("La Roche-Posay Anthelios Clear Skin SPF 60", FilterChemical, 60, "Gel", TintNo, 19.99, 1.7,
				"Oil-free, mattifying formula that won't clog pores."),
		},
		"1-dry": {
			staticProduct("CeraVe Hydrating Mineral Sunscreen SPF 50", FilterMineral, 50, "Lotion", TintNo, 14.99, 2.5,
				"Hydrating formula with ceramides and hyaluronic acid."),
		},
		"1-combination": {
			staticProduct("Neutrogena Ultra Sheer Dry-Touch SPF 55", FilterChemical, 55, "Lotion", TintNo, 10.99, 3.0,
				"Lightweight, non-greasy formula suitable for combination skin."),
		},
		"1-sensitive": {
			staticProduct("Vanicream Facial Moisturizer SPF 30", FilterMineral, 30, "Cream", TintNo, 14.69, 3.0,
				"Fragrance-free, gentle formula for sensitive skin."),
		},
		"2-normal": {
			staticProduct("Supergoop! Unseen Sunscreen SPF 40", FilterChemical, 40, "Gel", TintNo, 36.00, 1.7,
				"Invisible, weightless formula that works as a makeup primer."),
		},
		"2-oily": {
			staticProduct("Paula's Choice Extra Care Non-Greasy SPF 50", FilterChemical, 50, "Lotion", TintNo, 33.00, 4.2,
				"Matte finish, oil-free formula for oily skin."),
		},
		"2-dry": {
			staticProduct("First Aid Beauty Ultra Repair Tinted Moisturizer SPF 30", FilterMineral, 30, "Cream", TintYes, 32.00, 1.7,
				"Hydrating tinted moisturizer with SPF protection."),
		},
		"2-combination": {
			staticProduct("Biore UV Aqua Rich Watery Essence SPF 50", FilterChemical, 50, "Essence", TintNo, 14.00, 1.7,
				"Ultra-lightweight, watery texture that absorbs quickly."),
		},
		"2-sensitive": {
			staticProduct("Blue Lizard Sensitive Mineral Sunscreen SPF 50", FilterMineral, 50, "Lotion", TintNo, 15.99, 5.0,
				"Reef-safe, fragrance-free mineral sunscreen."),
		},
		"3-normal": {
			staticProduct("Coppertone Pure & Simple SPF 50", FilterMineral, 50, "Lotion", TintNo, 11.99, 6.0,
				"Gentle, zinc-based formula for everyday use."),
		},
		"3-oily": {
			staticProduct("Cetaphil Pro Oil Absorbing Moisturizer SPF 30", FilterChemical, 30, "Lotion", TintNo, 16.99, 4.0,
				"Oil-control technology with SPF protection."),
		},
		"3-dry": {
			staticProduct("Aveeno Positively Radiant Daily Moisturizer SPF 30", FilterChemical, 30, "Lotion", TintNo, 17.99, 2.5,
				"Moisturizing formula with soy for brighter skin."),
		},
		"3-combination": {
			staticProduct("Hawaiian Tropic Sheer Touch Lotion SPF 50", FilterChemical, 50, "Lotion", TintNo, 9.99, 8.0,
				"Lightweight, non-greasy formula with island botanicals."),
		},
		"3-sensitive": {
			staticProduct("Eucerin Daily Hydration SPF 30", FilterChemical, 30, "Lotion", TintNo, 9.99, 8.0,
				"Gentle, fragrance-free daily moisturizer with SPF."),
		},
		"4-normal": {
			staticProduct("Banana Boat Sport Ultra SPF 50", FilterChemical, 50, "Lotion", TintNo, 8.99, 8.0,
				"Water-resistant, active formula for outdoor activities."),
		},
		"4-oily": {
			staticProduct("Neutrogena Clear Face SPF 55", FilterChemical, 55, "Lotion", TintNo, 10.99, 3.0,
				"Oil-free, won't cause breakouts."),
		},
		"4-dry": {
			staticProduct("Olay Complete Daily Moisturizer SPF 30", FilterChemical, 30, "Cream", TintNo, 12.99, 2.5,
				"Hydrating daily moisturizer with vitamins."),
		},
		"4-combination": {
			staticProduct("Sun Bum Original SPF 50", FilterChemical, 50, "Lotion", TintNo, 14.99, 3.0,
				"Reef-friendly, vitamin E enriched formula."),
		},
		"4-sensitive": {
			staticProduct("Cetaphil Sheer Mineral SPF 50", FilterMineral, 50, "Lotion", TintNo, 14.99, 3.0,
				"100% mineral active ingredients, gentle on skin."),
		},
		"5-normal": {
			staticProduct("Black Girl Sunscreen SPF 30", FilterChemical, 30, "Lotion", TintNo, 15.99, 3.0,
				"No white cast, designed for melanin-rich skin."),
		},
		"5-oily": {
			staticProduct("Unsun Mineral Tinted Face Sunscreen SPF 30", FilterMineral, 30, "Lotion", TintYes, 29.00, 1.7,
				"Tinted mineral formula, no white cast."),
		},
		"5-dry": {
			staticProduct("Bolden SPF 30 Moisturizer", FilterChemical, 30, "Cream", TintNo, 22.00, 2.0,
				"Hydrating formula formulated for melanin-rich skin."),
		},
		"5-combination": {
			staticProduct("EiR NYC Surf Mud Pro SPF 50", FilterMineral, 50, "Cream", TintYes, 24.00, 2.4,
				"Water-resistant, reef-safe mineral formula."),
		},
		"5-sensitive": {
			staticProduct("Mele No Shade Sunscreen Oil SPF 30", FilterChemical, 30, "Oil", TintNo, 19.99, 1.7,
				"Lightweight oil formula with niacinamide."),
		},
		"6-normal": {
			staticProduct("Black Girl Sunscreen Kids SPF 50", FilterChemical, 50, "Lotion", TintNo, 15.99, 3.0,
				"High SPF protection without white cast."),
		},
		"6-oily": {
			staticProduct("Fenty Skin Hydra Vizor SPF 30", FilterChemical, 30, "Serum", TintNo, 36.00, 1.69,
				"Invisible, refillable moisturizer with SPF."),
		},
		"6-dry": {
			staticProduct("Topicals Like Butter SPF 50", FilterChemical, 50, "Cream", TintNo, 36.00, 1.7,
				"Rich, hydrating formula for very dry skin."),
		},
		"6-combination": {
			staticProduct("Relevant Mineral Sunscreen SPF 30", FilterMineral, 30, "Lotion", TintYes, 20.00, 2.0,
				"Tinted mineral formula designed for melanin-rich skin."),
		},
		"6-sensitive": {
			staticProduct("Supergoop! Mineral Sheerscreen SPF 30", FilterMineral, 30, "Lotion", TintYes, 38.00, 1.7,
				"100% mineral, sheer tint for all skin tones."),
		},
	}
	return table
}

func staticProduct(name string, filter FilterType, spf int, vehicle string, tint Tint, price, size float64, description string) Product {
	return Product{
		Name:        name,
		FilterType:  filter,
		SPF:         spf,
		Vehicle:     vehicle,
		Tint:        tint,
		Price:       price,
		Size:        size,
		UnitPrice:   deriveUnitPrice(price, size),
		Description: description,
	}
}
