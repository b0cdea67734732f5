package quiz

// FitzpatrickInfo carries the display name and blurb for a Fitzpatrick type.
type FitzpatrickInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

var fitzpatrickInfo = map[int]FitzpatrickInfo{
	1: {"Type I", "Very fair skin, always burns, never tans. Extremely sensitive to sun exposure."},
	2: {"Type II", "Fair skin, usually burns, tans minimally. Very sensitive to sun exposure."},
	3: {"Type III", "Medium skin, sometimes burns, tans gradually. Moderately sensitive to sun."},
	4: {"Type IV", "Olive skin, rarely burns, tans easily. Less sensitive to sun exposure."},
	5: {"Type V", "Brown skin, very rarely burns, tans very easily. Minimally sensitive to sun."},
	6: {"Type VI", "Dark brown to black skin, never burns, deeply pigmented. Least sensitive to sun."},
}

var skinTypeInfo = map[SkinType]string{
	SkinNormal:      "Your skin is well-balanced, neither too oily nor too dry. Look for lightweight, non-comedogenic formulas.",
	SkinOily:        "Your skin produces excess sebum. Look for oil-free, mattifying sunscreens that won't clog pores.",
	SkinDry:         "Your skin lacks moisture and may feel tight. Look for hydrating sunscreens with moisturizing ingredients.",
	SkinCombination: "Your skin is oily in some areas and dry in others. Look for balanced formulas that won't over-dry or make you greasy.",
	SkinSensitive:   "Your skin is prone to irritation. Look for mineral-based, fragrance-free sunscreens with gentle ingredients.",
}

// InfoFor returns the display info for a Fitzpatrick type.
func InfoFor(fitzType int) FitzpatrickInfo {
	return fitzpatrickInfo[fitzType]
}

// SkinTypeDescription returns the advisory blurb for a skin type.
func SkinTypeDescription(skin SkinType) string {
	return skinTypeInfo[skin]
}
