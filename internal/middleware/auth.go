package middleware

import (
	"context"
	"stepwise_backend/internal/model"
	"stepwise_backend/internal/util"
	"stepwise_backend/pkg/logger"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionResolver 根据会话令牌加载用户
type SessionResolver interface {
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

// tokenFromRequest 依次读取 Authorization 头与会话 Cookie
func tokenFromRequest(c *gin.Context, cookieName string) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		if token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer ")); token != "" {
			return token
		}
	}
	if cookie, err := c.Cookie(cookieName); err == nil {
		return cookie
	}
	return ""
}

func resolveUser(c *gin.Context, resolver SessionResolver, cookieName string) *model.User {
	token := tokenFromRequest(c, cookieName)
	if token == "" {
		return nil
	}

	user, err := resolver.Authenticate(c.Request.Context(), token)
	if err != nil {
		logger.Log.Debug("Session rejected", zap.Error(err))
		return nil
	}
	return user
}

// TryAuthMiddleware 可选认证，游客请求照常放行
func TryAuthMiddleware(resolver SessionResolver, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user := resolveUser(c, resolver, cookieName); user != nil {
			c.Set(util.ContextUserKey, user)
		}
		c.Next()
	}
}

func AuthMiddleware(resolver SessionResolver, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		if user == nil {
			user = resolveUser(c, resolver, cookieName)
		}
		if user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(util.ContextUserKey, user)
		c.Next()
	}
}

func RoleMiddleware(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		if user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		hasRole := user.IsAdmin()
		for _, role := range roles {
			if user.Role == role {
				hasRole = true
				break
			}
		}

		if !hasRole {
			util.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
