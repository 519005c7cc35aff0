package service

import (
	"errors"
	"fmt"
	"strings"

	"quizmaster_backend/internal/config"
	"quizmaster_backend/internal/model"
	"quizmaster_backend/internal/repository"
	"quizmaster_backend/internal/util"
	"quizmaster_backend/pkg/logger"
	"quizmaster_backend/pkg/monitoring"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AuthService resolves registration and login. The session token it hands out
// is a random placeholder: nothing in the service ever checks it.
type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

type RegisterRequest struct {
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
}

type LoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

func (s *AuthService) demoPasswords() bool {
	return s.Cfg != nil && s.Cfg.Auth.DemoPasswords
}

func newSessionToken() string {
	return uuid.New().String()
}

func (s *AuthService) Register(req RegisterRequest) (*model.User, string, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, "", util.ErrMissingFields
	}
	if s.demoPasswords() && req.Password == "" {
		return nil, "", util.ErrMissingFields
	}

	user := &model.User{
		Username: username,
		FullName: req.FullName,
		Role:     model.RoleUser,
	}
	// demo 模式下明文保存，仅用于演示
	if s.demoPasswords() {
		user.Password = req.Password
	}

	if err := s.UserRepo.Create(user); err != nil {
		if errors.Is(err, util.ErrDuplicateUsername) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	monitoring.UsersRegistered.Inc()
	logger.Log.Info("User registered", zap.String("userId", user.ID), zap.String("username", user.Username))

	return user, newSessionToken(), nil
}

// Login 用户名与注册时一样去掉首尾空白后精确匹配
func (s *AuthService) Login(req LoginRequest) (*model.User, string, error) {
	username := strings.TrimSpace(req.UsernameOrEmail)
	if username == "" || (s.demoPasswords() && req.Password == "") {
		return nil, "", util.ErrMissingFields
	}

	user, err := s.UserRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			monitoring.Logins.WithLabelValues("rejected").Inc()
			return nil, "", util.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if s.demoPasswords() && user.Password != req.Password {
		monitoring.Logins.WithLabelValues("rejected").Inc()
		return nil, "", util.ErrInvalidCredentials
	}

	monitoring.Logins.WithLabelValues("ok").Inc()
	return user, newSessionToken(), nil
}
