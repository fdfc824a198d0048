package service

import (
	"context"
	"testing"

	"foodgram-go/internal/repository"

	"github.com/stretchr/testify/assert"
)

func TestUserServiceAvatar(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "cook@example.com", "cook")

	store := &fakeImageStore{}
	svc := NewUserService(
		repository.NewUserRepository(db),
		repository.NewSubscriptionRepository(db),
		store,
	)

	t.Run("设置头像", func(t *testing.T) {
		avatarURL, err := svc.SetAvatar(context.Background(), user.ID, pngImageData())

		assert.NoError(t, err)
		assert.Contains(t, avatarURL, "http://images.test/user-avatars/")
		assert.Len(t, store.saved, 1)

		info, err := svc.GetUserByID(user.ID, nil)
		assert.NoError(t, err)
		assert.NotNil(t, info.Avatar)
		assert.Equal(t, avatarURL, *info.Avatar)
	})

	t.Run("头像数据无效", func(t *testing.T) {
		_, err := svc.SetAvatar(context.Background(), user.ID, "definitely-not-base64-image")

		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Equal(t, "头像数据格式不正确", vErr.Message)
	})

	t.Run("清除头像", func(t *testing.T) {
		assert.NoError(t, svc.DeleteAvatar(user.ID))

		info, err := svc.GetUserByID(user.ID, nil)
		assert.NoError(t, err)
		assert.Nil(t, info.Avatar)
	})

	t.Run("用户不存在", func(t *testing.T) {
		err := svc.DeleteAvatar(9999)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUserServiceSubscriptionFlags(t *testing.T) {
	db := newTestDB(t)
	reader := seedUser(t, db, "reader@example.com", "reader")
	author := seedUser(t, db, "author@example.com", "author")
	bystander := seedUser(t, db, "bystander@example.com", "bystander")

	subscriptionRepo := repository.NewSubscriptionRepository(db)
	svc := NewUserService(repository.NewUserRepository(db), subscriptionRepo, &fakeImageStore{})

	_, err := subscriptionRepo.Create(reader.ID, author.ID)
	assert.NoError(t, err)

	t.Run("已订阅作者的 is_subscribed 为真", func(t *testing.T) {
		info, err := svc.GetUserByID(author.ID, &reader.ID)
		assert.NoError(t, err)
		assert.True(t, info.IsSubscribed)
	})

	t.Run("匿名请求恒为假", func(t *testing.T) {
		info, err := svc.GetUserByID(author.ID, nil)
		assert.NoError(t, err)
		assert.False(t, info.IsSubscribed)
	})

	t.Run("未订阅的用户为假", func(t *testing.T) {
		info, err := svc.GetUserByID(bystander.ID, &reader.ID)
		assert.NoError(t, err)
		assert.False(t, info.IsSubscribed)
	})

	t.Run("列表批量标记订阅状态", func(t *testing.T) {
		data, err := svc.ListUsers(1, 20, &reader.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), data.Total)

		flags := make(map[string]bool, len(data.Users))
		for _, u := range data.Users {
			flags[u.Username] = u.IsSubscribed
		}
		assert.True(t, flags["author"])
		assert.False(t, flags["reader"])
		assert.False(t, flags["bystander"])
	})
}
