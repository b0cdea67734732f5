package quiz

import (
	"context"
	"log/slog"

	"github.com/spfmatch/spfmatch/internal/domain/catalog"
	apperrors "github.com/spfmatch/spfmatch/pkg/errors"
)

// Request captures the payload accepted by the quiz evaluation endpoint.
type Request struct {
	Answers AnswerSet `json:"answers"`
}

// Response is serialized back to API consumers.
type Response struct {
	FitzpatrickType     int                 `json:"fitzpatrickType"`
	Fitzpatrick         FitzpatrickInfo     `json:"fitzpatrick"`
	SkinType            SkinType            `json:"skinType"`
	SkinTypeDescription string              `json:"skinTypeDescription"`
	RecommendationKey   string              `json:"recommendationKey"`
	Recommendations     []catalog.Product   `json:"recommendations"`
	AppliedPreferences  catalog.Preferences `json:"appliedPreferences"`
}

// Recommender narrows the catalog dependency to what evaluation needs.
type Recommender interface {
	Recommend(ctx context.Context, fitzpatrick int, skinType string, prefs catalog.Preferences) []catalog.Product
}

// Service exposes questionnaire evaluation.
type Service interface {
	Questions(ctx context.Context) []Question
	Evaluate(ctx context.Context, req Request) (Response, error)
}

type service struct {
	questions []Question
	catalog   Recommender
	logger    *slog.Logger
}

// NewService wires up the quiz domain.
func NewService(recommender Recommender, logger *slog.Logger) Service {
	return &service{
		questions: Questionnaire(),
		catalog:   recommender,
		logger:    logger.With("component", "quiz.service"),
	}
}

func (s *service) Questions(ctx context.Context) []Question {
	return s.questions
}

// Evaluate classifies the answer set and looks up matching products.
// Missing or garbage answers never fail; they resolve to defaults.
func (s *service) Evaluate(ctx context.Context, req Request) (Response, error) {
	if req.Answers == nil {
		return Response{}, apperrors.Wrap("invalid_input", "answers are required", nil)
	}

	fitzType := Classify(req.Answers, s.questions)
	skinType := ExtractSkinType(req.Answers, s.questions)
	prefs := preferencesFrom(req.Answers)

	recommendations := s.catalog.Recommend(ctx, fitzType, string(skinType), prefs)
	s.logger.Info("quiz evaluated",
		"fitzpatrickType", fitzType,
		"skinType", skinType,
		"recommendations", len(recommendations))

	return Response{
		FitzpatrickType:     fitzType,
		Fitzpatrick:         InfoFor(fitzType),
		SkinType:            skinType,
		SkinTypeDescription: SkinTypeDescription(skinType),
		RecommendationKey:   catalog.Key(fitzType, string(skinType)),
		Recommendations:     recommendations,
		AppliedPreferences:  prefs,
	}, nil
}

func preferencesFrom(answers AnswerSet) catalog.Preferences {
	return catalog.Preferences{
		FilterTypes: answers[filterTypeQuestionID].Values(),
		Tints:       answers[tintQuestionID].Values(),
		Vehicles:    answers[vehicleQuestionID].Values(),
	}
}
