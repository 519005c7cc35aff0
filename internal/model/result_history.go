package model

// ResultHistory is an append-only record of one quiz attempt. UserID and
// QuizTitle are plain snapshots, not references.
// swagger:model ResultHistory
type ResultHistory struct {
	BaseModel
	UserID     string `gorm:"size:36;index" json:"userId"`
	QuizTitle  string `gorm:"size:255" json:"quizTitle"`
	Date       string `gorm:"size:10" json:"date"`
	Score      int    `json:"score"`
	Passed     bool   `json:"passed"`
	TimeTaken  int    `json:"timeTaken"` // Seconds
	Correct    int    `json:"correct"`
	Total      int    `json:"total"`
	Difficulty string `gorm:"size:50" json:"difficulty"`
}

func (ResultHistory) TableName() string {
	return "result_histories"
}
