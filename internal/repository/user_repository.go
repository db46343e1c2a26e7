package repository

import (
	"context"
	"errors"
	"stepwise_backend/internal/model"
	"stepwise_backend/internal/util"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// Upsert 按 open_id 插入或更新，每次登录刷新 last_signed_in，
// 姓名、邮箱、登录方式仅在提供时覆盖，owner 账号提升为管理员
func (r *UserRepository) Upsert(ctx context.Context, identity model.Identity, ownerOpenID string) (*model.User, error) {
	now := time.Now()

	user := &model.User{
		OpenID:       identity.OpenID,
		Name:         identity.Name,
		Email:        identity.Email,
		LoginMethod:  identity.LoginMethod,
		Role:         model.RoleUser,
		LastSignedIn: now,
	}

	updates := map[string]interface{}{
		"last_signed_in": now,
		"updated_at":     now,
	}
	if identity.Name != "" {
		updates["name"] = identity.Name
	}
	if identity.Email != "" {
		updates["email"] = identity.Email
	}
	if identity.LoginMethod != "" {
		updates["login_method"] = identity.LoginMethod
	}
	if ownerOpenID != "" && identity.OpenID == ownerOpenID {
		user.Role = model.RoleAdmin
		updates["role"] = model.RoleAdmin
	}

	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "open_id"}},
		DoUpdates: clause.Assignments(updates),
	}).Create(user).Error
	if err != nil {
		return nil, err
	}

	return r.FindByOpenID(ctx, identity.OpenID)
}

func (r *UserRepository) FindByOpenID(ctx context.Context, openID string) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).Where("open_id = ?", openID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
