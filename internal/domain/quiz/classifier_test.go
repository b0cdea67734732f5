package quiz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// uniformAnswers selects the option at the same index on every scoring
// question, yielding a total of 10*index points.
func uniformAnswers(index int) AnswerSet {
	answers := AnswerSet{}
	for _, question := range Questionnaire() {
		if question.Scores != nil {
			answers[question.ID] = SingleAnswer(question.Options[index])
		}
	}
	answers[skinTypeQuestionID] = SingleAnswer("Hydrated and comfortable")
	return answers
}

// answersForTotal builds an answer set whose scoring total is exactly the
// requested value, using options worth 4 points then a remainder option.
func answersForTotal(t *testing.T, total int) AnswerSet {
	t.Helper()
	require.LessOrEqual(t, total, 40)

	answers := AnswerSet{}
	remaining := total
	for _, question := range Questionnaire() {
		if question.Scores == nil {
			continue
		}
		points := remaining
		if points > 4 {
			points = 4
		}
		answers[question.ID] = SingleAnswer(question.Options[points])
		remaining -= points
	}
	require.Zero(t, remaining)
	return answers
}

func TestClassifyThresholdBoundaries(t *testing.T) {
	questions := Questionnaire()

	cases := []struct {
		total    int
		expected int
	}{
		{0, 1},
		{7, 1},
		{8, 2},
		{16, 2},
		{17, 3},
		{25, 3},
		{26, 4},
		{30, 4},
		{31, 5},
		{34, 5},
		{35, 6},
		{40, 6},
	}
	for _, tc := range cases {
		answers := answersForTotal(t, tc.total)
		require.Equal(t, tc.expected, Classify(answers, questions), "total %d", tc.total)
	}
}

func TestClassifyMonotonicInTotalScore(t *testing.T) {
	questions := Questionnaire()
	previous := 0
	for total := 0; total <= 40; total++ {
		result := Classify(answersForTotal(t, total), questions)
		require.GreaterOrEqual(t, result, previous, "total %d", total)
		require.GreaterOrEqual(t, result, 1)
		require.LessOrEqual(t, result, 6)
		previous = result
	}
}

func TestClassifyUniformSelections(t *testing.T) {
	questions := Questionnaire()

	require.Equal(t, 1, Classify(uniformAnswers(0), questions)) // total 0
	require.Equal(t, 2, Classify(uniformAnswers(1), questions)) // total 10
	require.Equal(t, 3, Classify(uniformAnswers(2), questions)) // total 20
	require.Equal(t, 4, Classify(uniformAnswers(3), questions)) // total 30
	require.Equal(t, 6, Classify(uniformAnswers(4), questions)) // total 40
}

func TestClassifyEmptyAnswersIsTypeOne(t *testing.T) {
	require.Equal(t, 1, Classify(AnswerSet{}, Questionnaire()))
}

func TestClassifyIgnoresUnknownOptionsAndMultiAnswers(t *testing.T) {
	questions := Questionnaire()
	answers := uniformAnswers(4)

	// An option string that is not in the question contributes nothing.
	answers["eyeColor"] = SingleAnswer("Hazel")
	// A multi-valued answer on a scoring question contributes nothing.
	answers["hairColor"] = MultiAnswer("Black")

	// 8 remaining questions at 4 points each.
	require.Equal(t, 5, Classify(answers, questions))
}

func TestClassifyIdempotent(t *testing.T) {
	questions := Questionnaire()
	answers := uniformAnswers(3)

	first := Classify(answers, questions)
	second := Classify(answers, questions)
	require.Equal(t, first, second)
}

func TestClassifyDarkSkinScenario(t *testing.T) {
	answers := AnswerSet{
		"eyeColor":      SingleAnswer("Dark Brown"),
		"hairColor":     SingleAnswer("Black"),
		"skinColor":     SingleAnswer("Dark brown"),
		"freckles":      SingleAnswer("None"),
		"sunReaction":   SingleAnswer("Never had burns"),
		"tanningDegree": SingleAnswer("Turn dark brown quickly"),
		"tanningHours":  SingleAnswer("Always"),
		"faceReaction":  SingleAnswer("Never had a problem"),
		"lastExposure":  SingleAnswer("Less than 2 weeks ago"),
		"faceExposure":  SingleAnswer("Always"),
		"skinType":      SingleAnswer("Hydrated and comfortable"),
	}

	questions := Questionnaire()
	require.Equal(t, 6, Classify(answers, questions))
	require.Equal(t, SkinNormal, ExtractSkinType(answers, questions))
}

func TestExtractSkinTypeAllOptions(t *testing.T) {
	questions := Questionnaire()

	cases := map[string]SkinType{
		"Hydrated and comfortable":                              SkinNormal,
		"Shiny and greasy":                                      SkinOily,
		"Flaky, rough, and tight, sometimes itchy or irritated": SkinDry,
		"Oily in some areas and dry in other areas":             SkinCombination,
		"Often stings or turns red in response to irritants":    SkinSensitive,
	}
	for option, expected := range cases {
		answers := AnswerSet{skinTypeQuestionID: SingleAnswer(option)}
		require.Equal(t, expected, ExtractSkinType(answers, questions), "option %q", option)
	}
}

func TestExtractSkinTypeDefaultsToNormal(t *testing.T) {
	questions := Questionnaire()

	require.Equal(t, SkinNormal, ExtractSkinType(AnswerSet{}, questions))
	require.Equal(t, SkinNormal, ExtractSkinType(AnswerSet{
		skinTypeQuestionID: SingleAnswer("not a real option"),
	}, questions))
	require.Equal(t, SkinNormal, ExtractSkinType(AnswerSet{
		skinTypeQuestionID: MultiAnswer("Shiny and greasy"),
	}, questions))
}
