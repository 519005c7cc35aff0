package service

import (
	"testing"
	"time"

	"quizmaster_backend/internal/config"
	"quizmaster_backend/internal/repository"
	"quizmaster_backend/internal/testutil"
	"quizmaster_backend/internal/util"
)

func fixedClock(year int, month time.Month, day int) util.Clock {
	return func() time.Time { return time.Date(year, month, day, 12, 0, 0, 0, time.UTC) }
}

func newAuthService(t *testing.T, demoPasswords bool) *AuthService {
	cfg := &config.Config{Auth: config.AuthConfig{DemoPasswords: demoPasswords}}
	return NewAuthService(repository.NewUserRepository(testutil.NewDB(t)), cfg)
}

func newQuizService(t *testing.T) *QuizService {
	s := NewQuizService(repository.NewQuizRepository(testutil.NewDB(t), nil, 0))
	s.Clock = fixedClock(2025, time.October, 14)
	return s
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }
