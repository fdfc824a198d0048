package service

import (
	"testing"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/repository"
	"foodgram-go/pkg/utils"

	"github.com/stretchr/testify/assert"
)

func TestAuthServiceRegister(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), 24)

	validReq := func() *dto.RegisterRequest {
		return &dto.RegisterRequest{
			Email:     "cook@example.com",
			Username:  "cook",
			FirstName: "王",
			LastName:  "师傅",
			Password:  "secret-password",
		}
	}

	t.Run("注册成功", func(t *testing.T) {
		info, err := svc.Register(validReq())

		assert.NoError(t, err)
		assert.Equal(t, "cook@example.com", info.Email)
		assert.Equal(t, "cook", info.Username)
		assert.False(t, info.IsSubscribed)
		assert.Nil(t, info.Avatar)
	})

	t.Run("密码以哈希存储", func(t *testing.T) {
		user, err := repository.NewUserRepository(db).GetByEmail("cook@example.com")
		assert.NoError(t, err)
		assert.NotEqual(t, "secret-password", user.Password)
		assert.True(t, utils.VerifyPassword("secret-password", user.Password))
	})

	t.Run("邮箱重复", func(t *testing.T) {
		req := validReq()
		req.Username = "another"

		_, err := svc.Register(req)
		assert.ErrorIs(t, err, ErrEmailExists)
	})

	t.Run("用户名重复", func(t *testing.T) {
		req := validReq()
		req.Email = "another@example.com"

		_, err := svc.Register(req)
		assert.ErrorIs(t, err, ErrUsernameExists)
	})

	t.Run("用户名 me 为保留字", func(t *testing.T) {
		req := validReq()
		req.Email = "me@example.com"
		req.Username = "me"

		_, err := svc.Register(req)
		assert.ErrorIs(t, err, ErrUsernameReserved)
	})
}

func TestAuthServiceGetCurrentUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), 24)
	user := seedUser(t, db, "cook@example.com", "cook")

	t.Run("获取成功", func(t *testing.T) {
		info, err := svc.GetCurrentUser(user.ID)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, info.ID)
		assert.Equal(t, "cook", info.Username)
	})

	t.Run("用户不存在", func(t *testing.T) {
		_, err := svc.GetCurrentUser(9999)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
