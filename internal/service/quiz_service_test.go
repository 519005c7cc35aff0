package service

import (
	"testing"

	"quizmaster_backend/internal/model"
	"quizmaster_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func question(text string, options []string, answer int) QuestionRequest {
	return QuestionRequest{Text: strPtr(text), Options: &options, CorrectAnswer: intPtr(answer)}
}

func quizRequest(questions ...QuestionRequest) CreateQuizRequest {
	return CreateQuizRequest{
		Title:       strPtr("T"),
		Description: strPtr("D"),
		Questions:   &questions,
	}
}

func TestCreateQuizAppliesDefaults(t *testing.T) {
	s := newQuizService(t)

	quiz, err := s.CreateQuiz(quizRequest(question("Q1", []string{"a", "b"}, 1)))
	require.NoError(t, err)

	assert.NotEmpty(t, quiz.ID)
	assert.Equal(t, "General", quiz.Category)
	assert.Equal(t, "Medium", quiz.Difficulty)
	assert.Equal(t, 15, quiz.Duration)
	assert.Equal(t, 70, quiz.PassingScore)
	assert.Equal(t, "2025-10-14", quiz.CreatedDate)
	assert.Equal(t, model.QuizStatusActive, quiz.Status)
	assert.Zero(t, quiz.Rating)
	assert.Zero(t, quiz.Participants)
	require.Len(t, quiz.Questions, 1)
	assert.Equal(t, quiz.ID, quiz.Questions[0].QuizID)
}

func TestCreateQuizKeepsProvidedMetadata(t *testing.T) {
	s := newQuizService(t)

	req := quizRequest(question("Q1", []string{"a", "b"}, 0))
	req.Category = strPtr("Programming")
	req.Difficulty = strPtr("Hard")
	req.Duration = intPtr(25)
	req.PassingScore = intPtr(80)

	quiz, err := s.CreateQuiz(req)
	require.NoError(t, err)
	assert.Equal(t, "Programming", quiz.Category)
	assert.Equal(t, "Hard", quiz.Difficulty)
	assert.Equal(t, 25, quiz.Duration)
	assert.Equal(t, 80, quiz.PassingScore)
}

func TestCreateQuizValidation(t *testing.T) {
	noOptions := QuestionRequest{Text: strPtr("Q"), CorrectAnswer: intPtr(0)}

	cases := []struct {
		name string
		req  CreateQuizRequest
		want error
	}{
		{"missing title", CreateQuizRequest{Description: strPtr("D"), Questions: &[]QuestionRequest{}}, util.ErrMissingFields},
		{"blank title", CreateQuizRequest{Title: strPtr(" "), Description: strPtr("D"), Questions: &[]QuestionRequest{}}, util.ErrMissingFields},
		{"missing description", CreateQuizRequest{Title: strPtr("T"), Questions: &[]QuestionRequest{}}, util.ErrMissingFields},
		{"missing questions", CreateQuizRequest{Title: strPtr("T"), Description: strPtr("D")}, util.ErrMissingFields},
		{"empty questions", quizRequest(), util.ErrEmptyQuestionList},
		{"question without options", quizRequest(noOptions), util.ErrMissingQuestionFields},
		{"one option", quizRequest(question("Q", []string{"a"}, 0)), util.ErrTooFewOptions},
		{"answer == len(options)", quizRequest(question("Q", []string{"a", "b"}, 2)), util.ErrAnswerIndexOutOfBounds},
		{"negative answer", quizRequest(question("Q", []string{"a", "b"}, -1)), util.ErrAnswerIndexOutOfBounds},
		{"second question bad", quizRequest(question("Q1", []string{"a", "b"}, 0), question("Q2", []string{"a", "b", "c"}, 3)), util.ErrAnswerIndexOutOfBounds},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := newQuizService(t)

			_, err := s.CreateQuiz(c.req)
			assert.ErrorIs(t, err, c.want)

			quizzes, err := s.ListQuizzes()
			require.NoError(t, err)
			assert.Empty(t, quizzes)
		})
	}
}

func TestCreateQuizLastIndexIsValid(t *testing.T) {
	s := newQuizService(t)

	_, err := s.CreateQuiz(quizRequest(question("Q", []string{"a", "b", "c"}, 2)))
	assert.NoError(t, err)
}

func TestListQuizzesReturnsSubmittedQuestions(t *testing.T) {
	s := newQuizService(t)

	created, err := s.CreateQuiz(quizRequest(
		question("Q1", []string{"a", "b"}, 0),
		question("Q2", []string{"c", "d", "e"}, 2),
	))
	require.NoError(t, err)

	quizzes, err := s.ListQuizzes()
	require.NoError(t, err)
	require.Len(t, quizzes, 1)

	got := quizzes[0]
	assert.Equal(t, created.ID, got.ID)
	require.Len(t, got.Questions, 2)
	assert.Equal(t, "Q1", got.Questions[0].Text)
	assert.Equal(t, "Q2", got.Questions[1].Text)
	assert.Equal(t, []string{"c", "d", "e"}, []string(got.Questions[1].Options))
	assert.Equal(t, 2, got.Questions[1].CorrectAnswer)
	assert.NotEqual(t, got.Questions[0].ID, got.Questions[1].ID)
}

func TestDeleteQuiz(t *testing.T) {
	s := newQuizService(t)

	assert.ErrorIs(t, s.DeleteQuiz("missing"), util.ErrNotFound)

	quiz, err := s.CreateQuiz(quizRequest(question("Q1", []string{"a", "b"}, 0)))
	require.NoError(t, err)

	require.NoError(t, s.DeleteQuiz(quiz.ID))

	quizzes, err := s.ListQuizzes()
	require.NoError(t, err)
	assert.Empty(t, quizzes)

	questions, err := s.Repo.ListQuestions(quiz.ID)
	require.NoError(t, err)
	assert.Empty(t, questions)
}
