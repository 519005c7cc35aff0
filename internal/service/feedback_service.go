package service

import (
	"fmt"

	"quizmaster_backend/internal/model"
	"quizmaster_backend/internal/repository"
	"quizmaster_backend/internal/util"
	"quizmaster_backend/pkg/monitoring"
)

type FeedbackService struct {
	Repo  *repository.FeedbackRepository
	Clock util.Clock
}

func NewFeedbackService(repo *repository.FeedbackRepository) *FeedbackService {
	return &FeedbackService{Repo: repo}
}

// FeedbackRequest 允许部分字段缺失，缺失字段取零值
type FeedbackRequest struct {
	UserID   string  `json:"userId"`
	QuizID   string  `json:"quizId"`
	Comments string  `json:"comments"`
	Rating   float64 `json:"rating"`
}

func (s *FeedbackService) SubmitFeedback(req FeedbackRequest) (*model.Feedback, error) {
	feedback := &model.Feedback{
		UserID:   req.UserID,
		QuizID:   req.QuizID,
		Comments: req.Comments,
		Rating:   req.Rating,
		Date:     s.Clock.Today(),
	}
	if err := s.Repo.Create(feedback); err != nil {
		return nil, fmt.Errorf("submit feedback: %w", err)
	}

	monitoring.FeedbackSubmitted.Inc()
	return feedback, nil
}

func (s *FeedbackService) ListFeedback() ([]model.Feedback, error) {
	return s.Repo.ListByDateDesc()
}
