package quiz

import "encoding/json"

// SkinType is one of the five facial skin categories.
type SkinType string

const (
	SkinNormal      SkinType = "normal"
	SkinOily        SkinType = "oily"
	SkinDry         SkinType = "dry"
	SkinCombination SkinType = "combination"
	SkinSensitive   SkinType = "sensitive"
)

// Question is one questionnaire entry. Options keep their authored order;
// Scores or Types, when present, correspond to Options index by index. A
// question is exactly one of: scoring (Scores set), categorizing (Types
// set), or preference (neither).
type Question struct {
	ID       string   `json:"id"`
	Prompt   string   `json:"question"`
	Options  []string `json:"options"`
	Scores   []int    `json:"scores,omitempty"`
	Types    []string `json:"types,omitempty"`
	Multiple bool     `json:"multiple,omitempty"`
}

// Answer holds either a single selected option or a multi-choice selection.
// The wire format accepts a JSON string or an array of strings.
type Answer struct {
	single string
	values []string
	multi  bool
}

// SingleAnswer builds a single-choice answer.
func SingleAnswer(option string) Answer {
	return Answer{single: option}
}

// MultiAnswer builds a multi-choice answer.
func MultiAnswer(options ...string) Answer {
	return Answer{values: options, multi: true}
}

// Single returns the selected option of a single-choice answer. Multi-choice
// answers report false so they never contribute to scoring.
func (a Answer) Single() (string, bool) {
	if a.multi {
		return "", false
	}
	return a.single, a.single != ""
}

// Values returns all selected options.
func (a Answer) Values() []string {
	if a.multi {
		return a.values
	}
	if a.single == "" {
		return nil
	}
	return []string{a.single}
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if a.multi {
		return json.Marshal(a.values)
	}
	return json.Marshal(a.single)
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*a = Answer{single: single}
		return nil
	}
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	*a = Answer{values: values, multi: true}
	return nil
}

// AnswerSet maps question ids to the user's responses.
type AnswerSet map[string]Answer
