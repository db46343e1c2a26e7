package controller

import (
	"net/http"
	"stepwise_backend/internal/config"
	"stepwise_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Cfg       *config.Config
	IsRelease bool // 是否为生产环境
}

func NewAuthController(cfg *config.Config) *AuthController {
	return &AuthController{
		Cfg:       cfg,
		IsRelease: cfg.Server.Mode == "release",
	}
}

// @Summary 当前用户
// @Description 未登录时 data 为 null
// @Tags 认证
// @Produce json
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	// 未登录时为 (*model.User)(nil)，序列化为 data:null
	util.Success(ctx, util.GetUserFromContext(ctx))
}

// @Summary 退出登录
// @Description 清除会话 cookie
// @Tags 认证
// @Produce json
// @Success 200 {object} util.Response{data=object} "{success}"
// @Router /api/auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.Cfg.Auth.CookieName, "", -1, "/", "", c.IsRelease, true)
	util.Success(ctx, gin.H{"success": true})
}
