package util

import "errors"

// 客户端输入错误，Error() 文本直接作为响应 message 返回
var (
	ErrMissingFields          = errors.New("missing required fields")
	ErrDuplicateUsername      = errors.New("username already taken")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrEmptyQuestionList      = errors.New("quiz must have at least one question")
	ErrMissingQuestionFields  = errors.New("each question must have text, options and correct answer")
	ErrTooFewOptions          = errors.New("each question must have at least two options")
	ErrAnswerIndexOutOfBounds = errors.New("correct answer index is out of bounds")
	ErrNotFound               = errors.New("not found")
)
