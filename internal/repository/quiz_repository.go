package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"quizmaster_backend/internal/model"
	"quizmaster_backend/internal/util"
	"quizmaster_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const quizListCacheKey = "quizmaster:quizzes:all"

// QuizRepository stores quizzes together with their questions. Writes hold the
// write lock for the whole transaction and reads hold the read lock, so a
// reader never sees a quiz with a partial question set.
type QuizRepository struct {
	DB       *gorm.DB
	Redis    *redis.Client
	CacheTTL time.Duration
	mu       sync.RWMutex
	ctx      context.Context
}

func NewQuizRepository(db *gorm.DB, rdb *redis.Client, cacheTTL time.Duration) *QuizRepository {
	return &QuizRepository{
		DB:       db,
		Redis:    rdb,
		CacheTTL: cacheTTL,
		ctx:      context.Background(),
	}
}

func withQuestions(db *gorm.DB) *gorm.DB {
	return db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("seq asc")
	})
}

// Create 在一个事务中写入测验及其全部题目
func (r *QuizRepository) Create(quiz *model.Quiz) error {
	if len(quiz.Questions) == 0 {
		return util.ErrEmptyQuestionList
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Questions").Create(quiz).Error; err != nil {
			return err
		}
		for i := range quiz.Questions {
			quiz.Questions[i].QuizID = quiz.ID
		}
		return tx.Create(&quiz.Questions).Error
	})
	if err != nil {
		return err
	}

	r.invalidate()
	return nil
}

// List returns every quiz in insertion order with its questions resolved.
func (r *QuizRepository) List() ([]model.Quiz, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if quizzes, ok := r.cached(); ok {
		return quizzes, nil
	}

	quizzes := []model.Quiz{}
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		return withQuestions(tx).Order("seq asc").Find(&quizzes).Error
	})
	if err != nil {
		return nil, err
	}

	r.store(quizzes)
	return quizzes, nil
}

func (r *QuizRepository) FindByID(id string) (*model.Quiz, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var quiz model.Quiz
	err := withQuestions(r.DB).Where("id = ?", id).First(&quiz).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizRepository) ListQuestions(quizID string) ([]model.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	questions := []model.Question{}
	err := r.DB.Where("quiz_id = ?", quizID).Order("seq asc").Find(&questions).Error
	return questions, err
}

// Delete 先删题目再删测验，同一事务
func (r *QuizRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var quiz model.Quiz
		if err := tx.Where("id = ?", id).First(&quiz).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrNotFound
			}
			return err
		}
		if err := tx.Where("quiz_id = ?", quiz.ID).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&quiz).Error
	})
	if err != nil {
		return err
	}

	r.invalidate()
	return nil
}

func (r *QuizRepository) cached() ([]model.Quiz, bool) {
	if r.Redis == nil {
		return nil, false
	}
	data, err := r.Redis.Get(r.ctx, quizListCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Log.Warn("quiz cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var quizzes []model.Quiz
	if err := json.Unmarshal(data, &quizzes); err != nil {
		logger.Log.Warn("quiz cache entry corrupt", zap.Error(err))
		return nil, false
	}
	return quizzes, true
}

func (r *QuizRepository) store(quizzes []model.Quiz) {
	if r.Redis == nil {
		return
	}
	data, err := json.Marshal(quizzes)
	if err != nil {
		return
	}
	if err := r.Redis.Set(r.ctx, quizListCacheKey, data, r.CacheTTL).Err(); err != nil {
		logger.Log.Warn("quiz cache write failed", zap.Error(err))
	}
}

func (r *QuizRepository) invalidate() {
	if r.Redis == nil {
		return
	}
	if err := r.Redis.Del(r.ctx, quizListCacheKey).Err(); err != nil {
		logger.Log.Warn("quiz cache invalidate failed", zap.Error(err))
	}
}
