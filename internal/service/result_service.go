package service

import (
	"fmt"
	"strconv"

	"quizmaster_backend/internal/model"
	"quizmaster_backend/internal/repository"
	"quizmaster_backend/internal/util"
	"quizmaster_backend/pkg/monitoring"
)

type ResultService struct {
	Repo  *repository.ResultRepository
	Clock util.Clock
}

func NewResultService(repo *repository.ResultRepository) *ResultService {
	return &ResultService{Repo: repo}
}

// SaveResultRequest 所有字段必填，不做默认值填充
type SaveResultRequest struct {
	UserID     *string `json:"userId"`
	QuizTitle  *string `json:"quizTitle"`
	Score      *int    `json:"score"`
	Passed     *bool   `json:"passed"`
	TimeTaken  *int    `json:"timeTaken"`
	Correct    *int    `json:"correct"`
	Total      *int    `json:"total"`
	Difficulty *string `json:"difficulty"`
}

func (r *SaveResultRequest) Validate() error {
	if r.UserID == nil || r.QuizTitle == nil || r.Score == nil || r.Passed == nil ||
		r.TimeTaken == nil || r.Correct == nil || r.Total == nil || r.Difficulty == nil {
		return util.ErrMissingFields
	}
	return nil
}

// SaveResult appends an attempt. userId and quizTitle are stored as given and
// never checked against the user or quiz stores.
func (s *ResultService) SaveResult(req SaveResultRequest) (*model.ResultHistory, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	result := &model.ResultHistory{
		UserID:     *req.UserID,
		QuizTitle:  *req.QuizTitle,
		Date:       s.Clock.Today(),
		Score:      *req.Score,
		Passed:     *req.Passed,
		TimeTaken:  *req.TimeTaken,
		Correct:    *req.Correct,
		Total:      *req.Total,
		Difficulty: *req.Difficulty,
	}
	if err := s.Repo.Create(result); err != nil {
		return nil, fmt.Errorf("save result: %w", err)
	}

	monitoring.ResultsSaved.WithLabelValues(strconv.FormatBool(result.Passed)).Inc()
	return result, nil
}

func (s *ResultService) GetResultsForUser(userID string) ([]model.ResultHistory, error) {
	return s.Repo.ListByUser(userID)
}
