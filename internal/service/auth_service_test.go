package service

import (
	"testing"

	"quizmaster_backend/internal/model"
	"quizmaster_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCreatesUserWithToken(t *testing.T) {
	s := newAuthService(t, false)

	user, token, err := s.Register(RegisterRequest{Username: "johndoe", FullName: "John Doe"})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "johndoe", user.Username)
	assert.Equal(t, "John Doe", user.FullName)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.NotEmpty(t, token)
}

func TestRegisterDuplicateUsernameKeepsFirstUser(t *testing.T) {
	s := newAuthService(t, false)

	first, _, err := s.Register(RegisterRequest{Username: "johndoe", FullName: "John Doe"})
	require.NoError(t, err)

	_, _, err = s.Register(RegisterRequest{Username: "johndoe", FullName: "Someone Else"})
	assert.ErrorIs(t, err, util.ErrDuplicateUsername)

	stored, err := s.UserRepo.FindByUsername("johndoe")
	require.NoError(t, err)
	assert.Equal(t, first.ID, stored.ID)
	assert.Equal(t, "John Doe", stored.FullName)
}

func TestRegisterRequiresUsername(t *testing.T) {
	s := newAuthService(t, false)

	_, _, err := s.Register(RegisterRequest{Username: "   "})
	assert.ErrorIs(t, err, util.ErrMissingFields)
}

func TestTokensAreFreshPerCall(t *testing.T) {
	s := newAuthService(t, false)

	_, regToken, err := s.Register(RegisterRequest{Username: "alice"})
	require.NoError(t, err)
	_, login1, err := s.Login(LoginRequest{UsernameOrEmail: "alice"})
	require.NoError(t, err)
	_, login2, err := s.Login(LoginRequest{UsernameOrEmail: "alice"})
	require.NoError(t, err)

	assert.NotEqual(t, regToken, login1)
	assert.NotEqual(t, login1, login2)
}

func TestLoginWithoutDemoPasswords(t *testing.T) {
	s := newAuthService(t, false)
	registered, _, err := s.Register(RegisterRequest{Username: "alice", Password: "ignored"})
	require.NoError(t, err)

	user, _, err := s.Login(LoginRequest{UsernameOrEmail: "alice", Password: "anything"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.Empty(t, user.Password)

	_, _, err = s.Login(LoginRequest{UsernameOrEmail: "bob"})
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	_, _, err = s.Login(LoginRequest{})
	assert.ErrorIs(t, err, util.ErrMissingFields)
}

func TestLoginTrimsUsername(t *testing.T) {
	s := newAuthService(t, false)

	registered, _, err := s.Register(RegisterRequest{Username: " bob "})
	require.NoError(t, err)
	assert.Equal(t, "bob", registered.Username)

	user, _, err := s.Login(LoginRequest{UsernameOrEmail: " bob "})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, _, err = s.Login(LoginRequest{UsernameOrEmail: "   "})
	assert.ErrorIs(t, err, util.ErrMissingFields)

	_, _, err = s.Login(LoginRequest{UsernameOrEmail: "Bob"})
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestLoginWithDemoPasswords(t *testing.T) {
	s := newAuthService(t, true)

	_, _, err := s.Register(RegisterRequest{Username: "alice"})
	assert.ErrorIs(t, err, util.ErrMissingFields)

	_, _, err = s.Register(RegisterRequest{Username: "alice", Password: "pass123"})
	require.NoError(t, err)

	_, _, err = s.Login(LoginRequest{UsernameOrEmail: "alice", Password: "pass123"})
	assert.NoError(t, err)

	_, _, err = s.Login(LoginRequest{UsernameOrEmail: "alice", Password: "PASS123"})
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	_, _, err = s.Login(LoginRequest{UsernameOrEmail: "alice"})
	assert.ErrorIs(t, err, util.ErrMissingFields)
}
