package service

import (
	"errors"
	"fmt"
	"strings"

	"quizmaster_backend/internal/model"
	"quizmaster_backend/internal/repository"
	"quizmaster_backend/internal/util"
	"quizmaster_backend/pkg/logger"
	"quizmaster_backend/pkg/monitoring"

	"go.uber.org/zap"
)

type QuizService struct {
	Repo  *repository.QuizRepository
	Clock util.Clock
}

func NewQuizService(repo *repository.QuizRepository) *QuizService {
	return &QuizService{Repo: repo}
}

// 指针字段用于区分“缺失”和“零值”
type QuestionRequest struct {
	Text          *string   `json:"text"`
	Options       *[]string `json:"options"`
	CorrectAnswer *int      `json:"correctAnswer"`
	Explanation   string    `json:"explanation"`
}

type CreateQuizRequest struct {
	Title        *string            `json:"title"`
	Description  *string            `json:"description"`
	Category     *string            `json:"category"`
	Difficulty   *string            `json:"difficulty"`
	Duration     *int               `json:"duration"`
	PassingScore *int               `json:"passingScore"`
	Questions    *[]QuestionRequest `json:"questions"`
}

// Validate checks the submission in order: quiz fields, then each question in
// turn (presence, option count, answer index). The first failure wins.
func (r *CreateQuizRequest) Validate() error {
	if r.Title == nil || strings.TrimSpace(*r.Title) == "" || r.Description == nil || r.Questions == nil {
		return util.ErrMissingFields
	}
	if len(*r.Questions) == 0 {
		return util.ErrEmptyQuestionList
	}
	for _, q := range *r.Questions {
		if q.Text == nil || q.Options == nil || q.CorrectAnswer == nil {
			return util.ErrMissingQuestionFields
		}
		if len(*q.Options) < 2 {
			return util.ErrTooFewOptions
		}
		if *q.CorrectAnswer < 0 || *q.CorrectAnswer >= len(*q.Options) {
			return util.ErrAnswerIndexOutOfBounds
		}
	}
	return nil
}

func stringOr(p *string, def string) string {
	if p == nil || *p == "" {
		return def
	}
	return *p
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

func (s *QuizService) CreateQuiz(req CreateQuizRequest) (*model.Quiz, error) {
	if err := req.Validate(); err != nil {
		monitoring.QuizzesRejected.WithLabelValues(rejectReason(err)).Inc()
		return nil, err
	}

	quiz := &model.Quiz{
		Title:        *req.Title,
		Description:  *req.Description,
		Category:     stringOr(req.Category, model.DefaultCategory),
		Difficulty:   stringOr(req.Difficulty, model.DefaultDifficulty),
		Duration:     intOr(req.Duration, model.DefaultDuration),
		PassingScore: intOr(req.PassingScore, model.DefaultPassingScore),
		Rating:       0,
		Participants: 0,
		CreatedDate:  s.Clock.Today(),
		Status:       model.QuizStatusActive,
		Questions:    make([]model.Question, 0, len(*req.Questions)),
	}
	for _, q := range *req.Questions {
		quiz.Questions = append(quiz.Questions, model.Question{
			Text:          *q.Text,
			Options:       append([]string(nil), (*q.Options)...),
			CorrectAnswer: *q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}

	if err := s.Repo.Create(quiz); err != nil {
		return nil, fmt.Errorf("create quiz: %w", err)
	}

	monitoring.QuizzesCreated.Inc()
	logger.Log.Info("Quiz created",
		zap.String("quizId", quiz.ID),
		zap.String("title", quiz.Title),
		zap.Int("questions", len(quiz.Questions)),
	)
	return quiz, nil
}

func (s *QuizService) ListQuizzes() ([]model.Quiz, error) {
	return s.Repo.List()
}

func (s *QuizService) DeleteQuiz(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return err
		}
		return fmt.Errorf("delete quiz %s: %w", id, err)
	}

	monitoring.QuizzesDeleted.Inc()
	logger.Log.Info("Quiz deleted", zap.String("quizId", id))
	return nil
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, util.ErrMissingFields):
		return "missing_fields"
	case errors.Is(err, util.ErrEmptyQuestionList):
		return "empty_question_list"
	case errors.Is(err, util.ErrMissingQuestionFields):
		return "missing_question_fields"
	case errors.Is(err, util.ErrTooFewOptions):
		return "too_few_options"
	case errors.Is(err, util.ErrAnswerIndexOutOfBounds):
		return "answer_index_out_of_bounds"
	}
	return "other"
}
