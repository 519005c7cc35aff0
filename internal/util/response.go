package util

import (
	"errors"
	"net/http"

	"quizmaster_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const InvalidBodyMessage = "Invalid request body"

// MessageResponse 统一的消息响应结构
type MessageResponse struct {
	Message string `json:"message"`
}

func Message(c *gin.Context, code int, message string) {
	c.JSON(code, MessageResponse{Message: message})
}

// Success 直接输出 data（列表接口返回裸数组）
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func Error(c *gin.Context, code int, message string) {
	Message(c, code, message)
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// InvalidBody 请求体无法解析时返回固定文案，解码细节只写日志
func InvalidBody(c *gin.Context, err error) {
	logger.Log.Warn("Invalid request body",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	BadRequest(c, InvalidBodyMessage)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	InternalServerError(c)
}

// StatusFor 将业务错误映射为 HTTP 状态码，未知错误返回 0
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrDuplicateUsername),
		errors.Is(err, ErrEmptyQuestionList),
		errors.Is(err, ErrMissingQuestionFields),
		errors.Is(err, ErrTooFewOptions),
		errors.Is(err, ErrAnswerIndexOutOfBounds):
		return http.StatusBadRequest
	}
	return 0
}

// HandleError 输出业务错误对应的 4xx，其余记录日志后返回 500
func HandleError(c *gin.Context, err error) {
	if code := StatusFor(err); code != 0 {
		Error(c, code, err.Error())
		return
	}
	LogInternalError(c, err)
}
