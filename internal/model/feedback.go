package model

// swagger:model Feedback
type Feedback struct {
	BaseModel
	UserID   string  `gorm:"size:36;index" json:"userId"`
	QuizID   string  `gorm:"size:36;index" json:"quizId"`
	Comments string  `gorm:"type:text" json:"comments"`
	Rating   float64 `json:"rating"`
	Date     string  `gorm:"size:10;index" json:"date"`
}

func (Feedback) TableName() string {
	return "feedbacks"
}
