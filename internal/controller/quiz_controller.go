package controller

import (
	"errors"
	"net/http"

	"quizmaster_backend/internal/model"
	"quizmaster_backend/internal/service"
	"quizmaster_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// swagger:model QuizCreatedResponse
type QuizCreatedResponse struct {
	Message string      `json:"message"`
	Quiz    *model.Quiz `json:"quiz"`
}

// ListQuizzes godoc
// @Summary 获取测验列表
// @Description 按创建顺序返回全部测验及其题目
// @Tags 测验
// @Produce  json
// @Success 200 {array} model.Quiz
// @Failure 500 {object} util.MessageResponse "服务器内部错误"
// @Router /quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	quizzes, err := c.QuizService.ListQuizzes()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

// CreateQuiz godoc
// @Summary 创建测验
// @Description 校验后创建测验，未提供的分类、难度、时长、及格线使用默认值
// @Tags 测验
// @Accept  json
// @Produce  json
// @Param   body body service.CreateQuizRequest true "测验内容"
// @Success 201 {object} QuizCreatedResponse "创建成功"
// @Failure 400 {object} util.MessageResponse "校验失败"
// @Router /quizzes [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	var req service.CreateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.InvalidBody(ctx, err)
		return
	}

	quiz, err := c.QuizService.CreateQuiz(req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Created(ctx, QuizCreatedResponse{Message: "Quiz created successfully", Quiz: quiz})
}

// DeleteQuiz godoc
// @Summary 删除测验
// @Description 删除测验及其全部题目
// @Tags 测验
// @Produce  json
// @Param   id path string true "测验ID"
// @Success 200 {object} util.MessageResponse "删除成功"
// @Failure 404 {object} util.MessageResponse "测验不存在"
// @Router /quizzes/{id} [delete]
func (c *QuizController) DeleteQuiz(ctx *gin.Context) {
	if err := c.QuizService.DeleteQuiz(ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrNotFound) {
			util.NotFound(ctx, "Quiz not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Message(ctx, http.StatusOK, "Quiz deleted")
}
