package quiz

// fitzpatrickThresholds are the inclusive upper score bounds for types 1-5;
// anything above the last bound is type 6.
var fitzpatrickThresholds = []struct {
	maxScore int
	fitzType int
}{
	{7, 1},
	{16, 2},
	{25, 3},
	{30, 4},
	{34, 5},
}

// Classify sums the scores of every answered scoring question and maps the
// total through the threshold bands. Absent, multi-valued, or unmatched
// answers contribute zero; the result is always in [1,6].
func Classify(answers AnswerSet, questions []Question) int {
	total := 0
	for _, question := range questions {
		if question.Scores == nil {
			continue
		}
		selected, ok := answers[question.ID].Single()
		if !ok {
			continue
		}
		if idx := optionIndex(question.Options, selected); idx >= 0 && idx < len(question.Scores) {
			total += question.Scores[idx]
		}
	}

	for _, band := range fitzpatrickThresholds {
		if total <= band.maxScore {
			return band.fitzType
		}
	}
	return 6
}

// ExtractSkinType returns the facial skin type selected on the categorizing
// question, defaulting to normal when the answer is absent or unmatched.
func ExtractSkinType(answers AnswerSet, questions []Question) SkinType {
	for _, question := range questions {
		if question.ID != skinTypeQuestionID || question.Types == nil {
			continue
		}
		selected, ok := answers[question.ID].Single()
		if !ok {
			break
		}
		if idx := optionIndex(question.Options, selected); idx >= 0 && idx < len(question.Types) {
			return SkinType(question.Types[idx])
		}
		break
	}
	return SkinNormal
}

// optionIndex finds the exact-match position of an option, -1 when absent.
func optionIndex(options []string, selected string) int {
	for i, option := range options {
		if option == selected {
			return i
		}
	}
	return -1
}
