package model

import "gorm.io/datatypes"

const (
	DefaultCategory     = "General"
	DefaultDifficulty   = "Medium"
	DefaultDuration     = 15
	DefaultPassingScore = 70

	QuizStatusActive = "active"
)

// Quiz owns its questions; deleting a quiz deletes them.
// swagger:model Quiz
type Quiz struct {
	BaseModel
	Title        string     `gorm:"size:255;not null" json:"title"`
	Description  string     `gorm:"type:text" json:"description"`
	Category     string     `gorm:"size:100" json:"category"`
	Difficulty   string     `gorm:"size:50" json:"difficulty"`
	Duration     int        `json:"duration"`     // Minutes
	PassingScore int        `json:"passingScore"` // Percentage
	Rating       float64    `gorm:"default:0" json:"rating"`
	Participants int        `gorm:"default:0" json:"participants"`
	CreatedDate  string     `gorm:"size:10" json:"createdDate"`
	Status       string     `gorm:"size:20" json:"status"`
	Questions    []Question `gorm:"foreignKey:QuizID;references:ID;constraint:OnDelete:CASCADE" json:"questions"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// swagger:model Question
type Question struct {
	BaseModel
	QuizID        string                      `gorm:"size:36;index;not null" json:"quizId"`
	Text          string                      `gorm:"type:text;not null" json:"text"`
	Options       datatypes.JSONSlice[string] `json:"options"`
	CorrectAnswer int                         `json:"correctAnswer"` // 0-based index into Options
	Explanation   string                      `gorm:"type:text" json:"explanation"`
}

func (Question) TableName() string {
	return "questions"
}
