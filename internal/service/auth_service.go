package service

import (
	"context"
	"errors"
	"stepwise_backend/internal/config"
	"stepwise_backend/internal/model"
	"stepwise_backend/internal/util"
	"strings"
)

type AuthService struct {
	Users UserStore
	Cfg   *config.Config
}

func NewAuthService(users UserStore, cfg *config.Config) *AuthService {
	return &AuthService{
		Users: users,
		Cfg:   cfg,
	}
}

// Login 登录方回调后调用：写入或更新用户并签发会话令牌
func (s *AuthService) Login(ctx context.Context, identity model.Identity) (*model.User, string, error) {
	identity.OpenID = strings.TrimSpace(identity.OpenID)
	if identity.OpenID == "" {
		return nil, "", errors.New("openId is required")
	}

	user, err := s.Users.Upsert(ctx, identity, s.Cfg.Auth.OwnerOpenID)
	if err != nil {
		return nil, "", err
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Authenticate 校验令牌并加载用户，用户不存在返回 ErrUserNotFound
func (s *AuthService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	claims, err := util.ParseJWT(token, s.Cfg.JWT.Secret)
	if err != nil {
		return nil, err
	}
	return s.Users.FindByOpenID(ctx, claims.OpenID)
}
