package controller

import (
	"net/http"

	"quizmaster_backend/internal/service"
	"quizmaster_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ResultController struct {
	ResultService *service.ResultService
}

func NewResultController(resultService *service.ResultService) *ResultController {
	return &ResultController{ResultService: resultService}
}

// SaveResult godoc
// @Summary 保存测验成绩
// @Description 追加一条成绩记录，日期由服务端生成
// @Tags 成绩
// @Accept  json
// @Produce  json
// @Param   body body service.SaveResultRequest true "成绩"
// @Success 201 {object} util.MessageResponse "保存成功"
// @Failure 400 {object} util.MessageResponse "缺少字段"
// @Router /results [post]
func (c *ResultController) SaveResult(ctx *gin.Context) {
	var req service.SaveResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.InvalidBody(ctx, err)
		return
	}

	if _, err := c.ResultService.SaveResult(req); err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Message(ctx, http.StatusCreated, "Result saved successfully")
}

// GetResultsForUser godoc
// @Summary 获取用户成绩
// @Tags 成绩
// @Produce  json
// @Param   userId path string true "用户ID"
// @Success 200 {array} model.ResultHistory
// @Router /results/{userId} [get]
func (c *ResultController) GetResultsForUser(ctx *gin.Context) {
	results, err := c.ResultService.GetResultsForUser(ctx.Param("userId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, results)
}
