package quiz

import "github.com/spfmatch/spfmatch/internal/domain/catalog"

// Question ids with special roles. Scoring questions are recognized by
// their Scores array; the skin-type categorizer by this id.
const (
	skinTypeQuestionID   = "skinType"
	filterTypeQuestionID = "filterType"
	tintQuestionID       = "tint"
	vehicleQuestionID    = "vehicle"
)

// Questionnaire returns the fixed question list in display order: ten
// scoring questions, the skin-type categorizer, then the three multi-choice
// preference questions.
func Questionnaire() []Question {
	return []Question{
		{
			ID:     "eyeColor",
			Prompt: "What color are your eyes?",
			Options: []string{
				"Light blue, gray or green",
				"Blue, gray, or green",
				"Blue",
				"Dark Brown",
				"Brownish Black",
			},
			Scores: []int{0, 1, 2, 3, 4},
		},
		{
			ID:     "hairColor",
			Prompt: "What is the natural color of your hair?",
			Options: []string{
				"Sandy red",
				"Blonde",
				"Chestnut/ Dark Blonde",
				"Dark brown",
				"Black",
			},
			Scores: []int{0, 1, 2, 3, 4},
		},
		{
			ID:     "skinColor",
			Prompt: "What color is your skin in places where it is not exposed to the sun?",
			Options: []string{
				"Reddish",
				"Very Pale",
				"Pale with a beige tint",
				"Light brown",
				"Dark brown",
			},
			Scores: []int{0, 1, 2, 3, 4},
		},
		{
			ID:     "freckles",
			Prompt: "Do you have freckles on unexposed areas?",
			Options: []string{
				"Many",
				"Several",
				"Few",
				"Incidental",
				"None",
			},
			Scores: []int{0, 1, 2, 3, 4},
		},
		{
			ID:     "sunReaction",
			Prompt: "What happens when you stay too long in the sun?",
			Options: []string{
				"Painful redness, blistering, peeling",
				"Blistering followed by peeling",
				"Burns sometimes followed by peeling",
				"Rare burns",
				"Never had burns",
			},
			Scores: []int{0, 1, 2, 3, 4},
		},
		{
			ID:     "tanningDegree",
			Prompt: "To what degree do you turn brown?",
			Options: []string{
				"Hardly or not at all",
				"Light color tan",
				"Reasonable tan",
				"Tan very easily",
				"Turn dark brown quickly",
			},
			Scores: []int{0, 1, 2, 3, 4},
		},
		{
			ID:     "tanningHours",
			Prompt: "Do you turn brown after several hours of sun exposure?",
			Options: []string{
				"Never",
				"Seldom",
				"Sometimes",
				"Often",
				"Always",
			},
			Scores: []int{0, 1, 2, 3, 4},
		},
		{
			ID:     "faceReaction",
			Prompt: "How does your face react to the sun?",
			Options: []string{
				"Very sensitive",
				"Sensitive",
				"Normal",
				"Very resistant",
				"Never had a problem",
			},
			Scores: []int{0, 1, 2, 3, 4},
		},
		{
			ID:     "lastExposure",
			Prompt: "When did you last expose your body to the sun?",
			Options: []string{
				"More than 3 months ago",
				"2-3 months ago",
				"1-2 months ago",
				"Less than a month ago",
				"Less than 2 weeks ago",
			},
			Scores: []int{0, 1, 2, 3, 4},
		},
		{
			ID:     "faceExposure",
			Prompt: "Do you expose your face, or the area to be treated, to the sun?",
			Options: []string{
				"Never",
				"Hardly ever",
				"Sometimes",
				"Often",
				"Always",
			},
			Scores: []int{0, 1, 2, 3, 4},
		},
		{
			ID:     skinTypeQuestionID,
			Prompt: "Which of the following best describes your facial skin?",
			Options: []string{
				"Hydrated and comfortable",
				"Shiny and greasy",
				"Flaky, rough, and tight, sometimes itchy or irritated",
				"Oily in some areas and dry in other areas",
				"Often stings or turns red in response to irritants",
			},
			Types: []string{
				string(SkinNormal),
				string(SkinOily),
				string(SkinDry),
				string(SkinCombination),
				string(SkinSensitive),
			},
		},
		{
			ID:     filterTypeQuestionID,
			Prompt: "Which sunscreen filter type would you like?",
			Options: []string{
				"Physical",
				"Chemical",
				"Mixture",
				catalog.PreferenceAny,
			},
			Multiple: true,
		},
		{
			ID:     tintQuestionID,
			Prompt: "Which sunscreen tint would you like?",
			Options: []string{
				"Skin-colored",
				"Transparent",
				"No tint",
				catalog.PreferenceAny,
			},
			Multiple: true,
		},
		{
			ID:     vehicleQuestionID,
			Prompt: "Which form of sunscreen would you like?",
			Options: []string{
				"Cream/lotion",
				"Spray",
				"Powder",
				catalog.PreferenceAny,
			},
			Multiple: true,
		},
	}
}
