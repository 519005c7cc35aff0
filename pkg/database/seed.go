package database

import (
	"quizmaster_backend/internal/model"
	"quizmaster_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedDemo 在对应表为空时写入演示数据，重复调用不会产生重复记录
func SeedDemo(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.User{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			users := []model.User{
				{BaseModel: model.BaseModel{ID: "u1"}, Username: "johndoe", FullName: "John Doe", Role: model.RoleUser, Password: "pass123"},
				{BaseModel: model.BaseModel{ID: "a1"}, Username: "admin", FullName: "Admin User", Role: model.RoleAdmin, Password: "adminpass"},
			}
			if err := tx.Create(&users).Error; err != nil {
				return err
			}
			logger.Log.Info("Seeded demo users", zap.Int("count", len(users)))
		}

		if err := tx.Model(&model.Quiz{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			quizzes := []model.Quiz{
				{
					BaseModel:    model.BaseModel{ID: "js-fund"},
					Title:        "JavaScript Fundamentals",
					Description:  "Test your basic knowledge of JS, variables, and loops.",
					Category:     "Programming",
					Difficulty:   "Easy",
					Duration:     15,
					PassingScore: 70,
					Rating:       4.5,
					Participants: 1200,
					CreatedDate:  "2025-05-10",
					Status:       model.QuizStatusActive,
					Questions: []model.Question{{
						BaseModel:     model.BaseModel{ID: "q1"},
						Text:          "What is 'this' in JavaScript?",
						Options:       []string{"The current object", "A variable name", "A function call", "The global scope"},
						CorrectAnswer: 0,
						Explanation:   "'this' refers to the object it belongs to.",
					}},
				},
				{
					BaseModel:    model.BaseModel{ID: "react-hooks"},
					Title:        "React Hooks Mastery",
					Description:  "Advanced concepts on useState, useEffect, and custom hooks.",
					Category:     "Programming",
					Difficulty:   "Hard",
					Duration:     25,
					PassingScore: 80,
					Rating:       4.8,
					Participants: 800,
					CreatedDate:  "2025-06-01",
					Status:       model.QuizStatusActive,
					Questions: []model.Question{{
						BaseModel:     model.BaseModel{ID: "q2"},
						Text:          "Which hook manages side effects?",
						Options:       []string{"useState", "useContext", "useEffect", "useReducer"},
						CorrectAnswer: 2,
						Explanation:   "useEffect is used for side effects.",
					}},
				},
			}
			for i := range quizzes {
				if err := tx.Create(&quizzes[i]).Error; err != nil {
					return err
				}
			}
			logger.Log.Info("Seeded demo quizzes", zap.Int("count", len(quizzes)))
		}

		if err := tx.Model(&model.ResultHistory{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			results := []model.ResultHistory{
				{BaseModel: model.BaseModel{ID: "res1"}, UserID: "u1", QuizTitle: "JavaScript Fundamentals", Date: "2025-10-14", Score: 85, Passed: true, TimeTaken: 420, Correct: 17, Total: 20, Difficulty: "Medium"},
				{BaseModel: model.BaseModel{ID: "res2"}, UserID: "u1", QuizTitle: "React Hooks Mastery", Date: "2025-10-13", Score: 92, Passed: true, TimeTaken: 540, Correct: 23, Total: 25, Difficulty: "Hard"},
			}
			if err := tx.Create(&results).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
