package controller

import (
	"net/http"

	"quizmaster_backend/internal/model"
	"quizmaster_backend/internal/service"
	"quizmaster_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// AuthResponse 登录/注册成功响应
// swagger:model AuthResponse
type AuthResponse struct {
	Message string      `json:"message"`
	User    *model.User `json:"user"`
	Token   string      `json:"token"`
}

// Login godoc
// @Summary 用户登录
// @Description 按用户名精确匹配登录，返回用户信息和会话令牌（令牌不会被校验）
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body service.LoginRequest true "登录信息"
// @Success 200 {object} AuthResponse "登录成功"
// @Failure 400 {object} util.MessageResponse "缺少字段"
// @Failure 401 {object} util.MessageResponse "用户名或密码错误"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req service.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.InvalidBody(ctx, err)
		return
	}

	user, token, err := c.AuthService.Login(req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, AuthResponse{Message: "Login successful", User: user, Token: token})
}

// Register godoc
// @Summary 注册新用户
// @Description 创建角色为 user 的新用户，用户名必须唯一
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body service.RegisterRequest true "注册信息"
// @Success 201 {object} AuthResponse "注册成功"
// @Failure 400 {object} util.MessageResponse "用户名已存在或缺少字段"
// @Router /register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req service.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.InvalidBody(ctx, err)
		return
	}

	user, token, err := c.AuthService.Register(req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Created(ctx, AuthResponse{Message: "Registration successful", User: user, Token: token})
}
