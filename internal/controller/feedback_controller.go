package controller

import (
	"net/http"

	"quizmaster_backend/internal/service"
	"quizmaster_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type FeedbackController struct {
	FeedbackService *service.FeedbackService
}

func NewFeedbackController(feedbackService *service.FeedbackService) *FeedbackController {
	return &FeedbackController{FeedbackService: feedbackService}
}

// SubmitFeedback godoc
// @Summary 提交反馈
// @Tags 反馈
// @Accept  json
// @Produce  json
// @Param   body body service.FeedbackRequest true "反馈"
// @Success 201 {object} util.MessageResponse "提交成功"
// @Router /feedback [post]
func (c *FeedbackController) SubmitFeedback(ctx *gin.Context) {
	var req service.FeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.InvalidBody(ctx, err)
		return
	}

	if _, err := c.FeedbackService.SubmitFeedback(req); err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Message(ctx, http.StatusCreated, "Feedback submitted successfully")
}

// ListFeedback godoc
// @Summary 获取反馈列表
// @Description 按日期倒序返回，同一天内按提交顺序
// @Tags 反馈
// @Produce  json
// @Success 200 {array} model.Feedback
// @Router /feedback [get]
func (c *FeedbackController) ListFeedback(ctx *gin.Context) {
	list, err := c.FeedbackService.ListFeedback()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, list)
}
