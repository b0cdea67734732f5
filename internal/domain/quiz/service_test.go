package quiz

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spfmatch/spfmatch/internal/domain/catalog"
	apperrors "github.com/spfmatch/spfmatch/pkg/errors"
)

type stubRecommender struct {
	products    []catalog.Product
	lastFitz    int
	lastSkin    string
	lastPrefs   catalog.Preferences
	invocations int
}

func (s *stubRecommender) Recommend(ctx context.Context, fitzpatrick int, skinType string, prefs catalog.Preferences) []catalog.Product {
	s.invocations++
	s.lastFitz = fitzpatrick
	s.lastSkin = skinType
	s.lastPrefs = prefs
	return s.products
}

func newQuizService(rec *stubRecommender) Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(rec, logger)
}

func TestServiceEvaluate(t *testing.T) {
	rec := &stubRecommender{products: []catalog.Product{{Name: "Black Girl Sunscreen Kids SPF 50"}}}
	svc := newQuizService(rec)

	resp, err := svc.Evaluate(context.Background(), Request{Answers: AnswerSet{
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
		"filterType":    MultiAnswer("Chemical"),
		"tint":          MultiAnswer(catalog.PreferenceAny),
	}})
	require.NoError(t, err)

	require.Equal(t, 6, resp.FitzpatrickType)
	require.Equal(t, "Type VI", resp.Fitzpatrick.Name)
	require.Equal(t, SkinNormal, resp.SkinType)
	require.NotEmpty(t, resp.SkinTypeDescription)
	require.Equal(t, "6-normal", resp.RecommendationKey)
	require.Len(t, resp.Recommendations, 1)

	require.Equal(t, 6, rec.lastFitz)
	require.Equal(t, "normal", rec.lastSkin)
	require.Equal(t, []string{"Chemical"}, rec.lastPrefs.FilterTypes)
	require.Equal(t, []string{catalog.PreferenceAny}, rec.lastPrefs.Tints)
	require.Empty(t, rec.lastPrefs.Vehicles)
}

func TestServiceEvaluateEmptyAnswerSet(t *testing.T) {
	rec := &stubRecommender{}
	svc := newQuizService(rec)

	// An empty (but present) answer set resolves through defaults.
	resp, err := svc.Evaluate(context.Background(), Request{Answers: AnswerSet{}})
	require.NoError(t, err)
	require.Equal(t, 1, resp.FitzpatrickType)
	require.Equal(t, SkinNormal, resp.SkinType)
	require.Equal(t, "1-normal", resp.RecommendationKey)
	require.Equal(t, 1, rec.invocations)
}

func TestServiceEvaluateMissingAnswers(t *testing.T) {
	svc := newQuizService(&stubRecommender{})

	_, err := svc.Evaluate(context.Background(), Request{})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestServiceQuestionsOrder(t *testing.T) {
	svc := newQuizService(&stubRecommender{})

	questions := svc.Questions(context.Background())
	require.Len(t, questions, 14)
	require.Equal(t, "eyeColor", questions[0].ID)
	require.Equal(t, "skinType", questions[10].ID)
	require.True(t, questions[11].Multiple)

	for _, question := range questions {
		if question.Scores != nil {
			require.Len(t, question.Scores, len(question.Options), "question %s", question.ID)
		}
		if question.Types != nil {
			require.Len(t, question.Types, len(question.Options), "question %s", question.ID)
		}
	}
}

func TestAnswerJSONRoundTrip(t *testing.T) {
	var set AnswerSet
	payload := `{"eyeColor":"Blue","filterType":["Physical","Chemical"]}`
	require.NoError(t, json.Unmarshal([]byte(payload), &set))

	single, ok := set["eyeColor"].Single()
	require.True(t, ok)
	require.Equal(t, "Blue", single)

	_, ok = set["filterType"].Single()
	require.False(t, ok)
	require.Equal(t, []string{"Physical", "Chemical"}, set["filterType"].Values())
}
