// Package resources serves the curated sun-safety reading list.
package resources

// Article points at an external educational resource.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Source      string `json:"source"`
}

// Articles returns the reading list in display order.
func Articles() []Article {
	return []Article{
		{
			Title:       "The Complete Guide to Sunscreen",
			Description: "Learn about different types of sunscreen, SPF ratings, and how to choose the right one for you.",
			URL:         "https://www.aad.org/public/everyday-care/sun-protection/sunscreen-patients/how-to-select-sunscreen",
			Source:      "American Academy of Dermatology",
		},
		{
			Title:       "Understanding the Fitzpatrick Skin Type Scale",
			Description: "A comprehensive guide to the Fitzpatrick scale and how it relates to sun protection.",
			URL:         "https://www.skincancer.org/blog/ask-the-expert-does-a-higher-spf-sunscreen-always-protect-your-skin-better/",
			Source:      "Skin Cancer Foundation",
		},
		{
			Title:       "How to Apply Sunscreen Correctly",
			Description: "Step-by-step instructions on proper sunscreen application for maximum protection.",
			URL:         "https://www.cancer.org/cancer/risk-prevention/sun-and-uv/sun-protection.html",
			Source:      "American Cancer Society",
		},
		{
			Title:       "Mineral vs. Chemical Sunscreen: What's the Difference?",
			Description: "Compare physical and chemical sunscreens to find out which is best for your skin.",
			URL:         "https://www.fda.gov/drugs/understanding-over-counter-medicines/sunscreen-how-help-protect-your-skin-sun",
			Source:      "FDA",
		},
		{
			Title:       "Sunscreen Myths Debunked",
			Description: "Common misconceptions about sunscreen and sun protection explained by dermatologists.",
			URL:         "https://www.mayoclinic.org/healthy-lifestyle/adult-health/in-depth/best-sunscreen/art-20045110",
			Source:      "Mayo Clinic",
		},
		{
			Title:       "Sunscreen for Different Skin Types",
			Description: "Find the best sunscreen formulation for oily, dry, sensitive, and combination skin.",
			URL:         "https://www.ncbi.nlm.nih.gov/pmc/articles/PMC3543289/",
			Source:      "National Institutes of Health",
		},
		{
			Title:       "Water-Resistant vs. Waterproof Sunscreen",
			Description: "Understanding sunscreen labels and what they mean for your activities.",
			URL:         "https://www.ewg.org/sunscreen/",
			Source:      "Environmental Working Group",
		},
		{
			Title:       "Year-Round Sun Protection Tips",
			Description: "Why you need sunscreen even in winter and on cloudy days.",
			URL:         "https://www.cdc.gov/cancer/skin/basic_info/sun-safety.htm",
			Source:      "CDC",
		},
	}
}
