package repository

import (
	"quizmaster_backend/internal/model"

	"gorm.io/gorm"
)

// ResultRepository is append-only: there is no update or delete.
type ResultRepository struct {
	DB *gorm.DB
}

func NewResultRepository(db *gorm.DB) *ResultRepository {
	return &ResultRepository{DB: db}
}

func (r *ResultRepository) Create(result *model.ResultHistory) error {
	return r.DB.Create(result).Error
}

// ListByUser 按保存顺序返回，未知用户返回空切片
func (r *ResultRepository) ListByUser(userID string) ([]model.ResultHistory, error) {
	results := []model.ResultHistory{}
	err := r.DB.Where("user_id = ?", userID).Order("seq asc").Find(&results).Error
	return results, err
}
