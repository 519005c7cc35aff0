package repository

import (
	"quizmaster_backend/internal/model"

	"gorm.io/gorm"
)

type FeedbackRepository struct {
	DB *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{DB: db}
}

func (r *FeedbackRepository) Create(feedback *model.Feedback) error {
	return r.DB.Create(feedback).Error
}

// ListByDateDesc 最新日期在前，同一天按插入顺序
func (r *FeedbackRepository) ListByDateDesc() ([]model.Feedback, error) {
	feedbacks := []model.Feedback{}
	err := r.DB.Order("date desc").Order("seq asc").Find(&feedbacks).Error
	return feedbacks, err
}
