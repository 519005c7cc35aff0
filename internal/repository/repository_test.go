package repository

import (
	"sync"
	"testing"
	"time"

	"quizmaster_backend/internal/model"
	"quizmaster_backend/internal/testutil"
	"quizmaster_backend/internal/util"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuiz(title string, questions int) *model.Quiz {
	quiz := &model.Quiz{Title: title, Description: "D", Status: model.QuizStatusActive}
	for i := 0; i < questions; i++ {
		quiz.Questions = append(quiz.Questions, model.Question{
			Text:    title + " question",
			Options: []string{"a", "b", "c"},
		})
	}
	return quiz
}

func TestUserRepositoryRejectsDuplicateUsername(t *testing.T) {
	repo := NewUserRepository(testutil.NewDB(t))

	first := &model.User{Username: "alice", FullName: "Alice", Role: model.RoleUser}
	require.NoError(t, repo.Create(first))
	assert.NotEmpty(t, first.ID)

	err := repo.Create(&model.User{Username: "alice", FullName: "Impostor", Role: model.RoleUser})
	assert.ErrorIs(t, err, util.ErrDuplicateUsername)

	stored, err := repo.FindByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, first.ID, stored.ID)
	assert.Equal(t, "Alice", stored.FullName)
}

func TestQuizRepositoryCreateAndList(t *testing.T) {
	repo := NewQuizRepository(testutil.NewDB(t), nil, 0)

	a := sampleQuiz("A", 2)
	b := sampleQuiz("B", 1)
	require.NoError(t, repo.Create(a))
	require.NoError(t, repo.Create(b))

	quizzes, err := repo.List()
	require.NoError(t, err)
	require.Len(t, quizzes, 2)
	assert.Equal(t, "A", quizzes[0].Title)
	assert.Equal(t, "B", quizzes[1].Title)
	require.Len(t, quizzes[0].Questions, 2)
	assert.Equal(t, a.ID, quizzes[0].Questions[0].QuizID)
	assert.NotEqual(t, quizzes[0].Questions[0].ID, quizzes[0].Questions[1].ID)
	assert.Equal(t, []string{"a", "b", "c"}, []string(quizzes[1].Questions[0].Options))
}

func TestQuizRepositoryCreateRequiresQuestions(t *testing.T) {
	repo := NewQuizRepository(testutil.NewDB(t), nil, 0)

	err := repo.Create(sampleQuiz("empty", 0))
	assert.ErrorIs(t, err, util.ErrEmptyQuestionList)

	quizzes, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, quizzes)
}

func TestQuizRepositoryDeleteCascades(t *testing.T) {
	repo := NewQuizRepository(testutil.NewDB(t), nil, 0)

	keep := sampleQuiz("keep", 1)
	drop := sampleQuiz("drop", 3)
	require.NoError(t, repo.Create(keep))
	require.NoError(t, repo.Create(drop))

	require.NoError(t, repo.Delete(drop.ID))

	_, err := repo.FindByID(drop.ID)
	assert.ErrorIs(t, err, util.ErrNotFound)

	orphans, err := repo.ListQuestions(drop.ID)
	require.NoError(t, err)
	assert.Empty(t, orphans)

	remaining, err := repo.ListQuestions(keep.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)

	assert.ErrorIs(t, repo.Delete(drop.ID), util.ErrNotFound)
	assert.ErrorIs(t, repo.Delete("no-such-quiz"), util.ErrNotFound)
}

func TestQuizRepositoryReadersNeverSeePartialQuiz(t *testing.T) {
	repo := NewQuizRepository(testutil.NewDB(t), nil, 0)

	const writers = 5
	const perQuiz = 4

	var wg sync.WaitGroup
	stop := make(chan struct{})
	errs := make(chan string, 100)

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			quizzes, err := repo.List()
			if err != nil {
				errs <- err.Error()
				return
			}
			for _, q := range quizzes {
				if len(q.Questions) != perQuiz {
					errs <- q.Title
					return
				}
			}
		}
	}()

	var writersWG sync.WaitGroup
	for i := 0; i < writers; i++ {
		writersWG.Add(1)
		go func() {
			defer writersWG.Done()
			quiz := sampleQuiz("concurrent", perQuiz)
			if err := repo.Create(quiz); err != nil {
				errs <- err.Error()
				return
			}
			if err := repo.Delete(quiz.ID); err != nil {
				errs <- err.Error()
			}
		}()
	}
	writersWG.Wait()
	close(stop)
	wg.Wait()
	close(errs)

	for e := range errs {
		t.Errorf("unexpected: %s", e)
	}
}

func TestResultRepositoryListByUser(t *testing.T) {
	repo := NewResultRepository(testutil.NewDB(t))

	require.NoError(t, repo.Create(&model.ResultHistory{UserID: "u1", QuizTitle: "first", Date: "2025-10-14"}))
	require.NoError(t, repo.Create(&model.ResultHistory{UserID: "u2", QuizTitle: "other", Date: "2025-10-14"}))
	require.NoError(t, repo.Create(&model.ResultHistory{UserID: "u1", QuizTitle: "second", Date: "2025-10-13"}))

	results, err := repo.ListByUser("u1")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "first", results[0].QuizTitle)
	assert.Equal(t, "second", results[1].QuizTitle)

	none, err := repo.ListByUser("ghost")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestFeedbackRepositoryOrdersByDateThenInsertion(t *testing.T) {
	repo := NewFeedbackRepository(testutil.NewDB(t))

	require.NoError(t, repo.Create(&model.Feedback{Comments: "day1-a", Date: "2025-10-01"}))
	require.NoError(t, repo.Create(&model.Feedback{Comments: "day2-a", Date: "2025-10-02"}))
	require.NoError(t, repo.Create(&model.Feedback{Comments: "day1-b", Date: "2025-10-01"}))
	require.NoError(t, repo.Create(&model.Feedback{Comments: "day2-b", Date: "2025-10-02"}))

	list, err := repo.ListByDateDesc()
	require.NoError(t, err)

	var comments []string
	for _, f := range list {
		comments = append(comments, f.Comments)
	}
	assert.Equal(t, []string{"day2-a", "day2-b", "day1-a", "day1-b"}, comments)
}

func TestQuizRepositoryCacheInvalidatedOnWrite(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	repo := NewQuizRepository(testutil.NewDB(t), rdb, time.Minute)

	first := sampleQuiz("first", 1)
	require.NoError(t, repo.Create(first))

	quizzes, err := repo.List()
	require.NoError(t, err)
	require.Len(t, quizzes, 1)
	assert.True(t, mr.Exists(quizListCacheKey))

	// 缓存命中时返回缓存内容
	cached, err := repo.List()
	require.NoError(t, err)
	assert.Equal(t, quizzes[0].ID, cached[0].ID)
	assert.Equal(t, quizzes[0].Questions[0].ID, cached[0].Questions[0].ID)

	require.NoError(t, repo.Create(sampleQuiz("second", 2)))
	assert.False(t, mr.Exists(quizListCacheKey))

	quizzes, err = repo.List()
	require.NoError(t, err)
	assert.Len(t, quizzes, 2)

	require.NoError(t, repo.Delete(first.ID))
	assert.False(t, mr.Exists(quizListCacheKey))

	quizzes, err = repo.List()
	require.NoError(t, err)
	require.Len(t, quizzes, 1)
	assert.Equal(t, "second", quizzes[0].Title)
}
