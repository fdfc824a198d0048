package service

import (
	"context"
	"testing"

	"foodgram-go/internal/repository"

	"github.com/stretchr/testify/assert"
)

func TestSubscriptionServiceSubscribe(t *testing.T) {
	db := newTestDB(t)
	reader := seedUser(t, db, "reader@example.com", "reader")
	author := seedUser(t, db, "author@example.com", "author")
	tag := seedTag(t, db, "晚餐", "dinner")
	ingredient := seedIngredient(t, db, "五花肉", "克")

	recipeSvc := newTestRecipeService(db, &fakeImageStore{}, nil)
	svc := NewSubscriptionService(
		repository.NewSubscriptionRepository(db),
		repository.NewUserRepository(db),
		newTestRecipeRepo(db),
	)

	for i := 0; i < 3; i++ {
		req := validCreateRequest(tag.ID, ingredient.ID)
		_, err := recipeSvc.Create(context.Background(), author.ID, req)
		assert.NoError(t, err)
	}

	t.Run("订阅成功返回作者及其食谱", func(t *testing.T) {
		info, err := svc.Subscribe(reader.ID, author.ID, 0)

		assert.NoError(t, err)
		assert.Equal(t, author.ID, info.ID)
		assert.True(t, info.IsSubscribed)
		assert.Equal(t, int64(3), info.RecipesCount)
		assert.Len(t, info.Recipes, 3)
	})

	t.Run("重复订阅被拒绝", func(t *testing.T) {
		_, err := svc.Subscribe(reader.ID, author.ID, 0)
		assert.ErrorIs(t, err, ErrAlreadySubscribed)
	})

	t.Run("不能订阅自己", func(t *testing.T) {
		_, err := svc.Subscribe(reader.ID, reader.ID, 0)
		assert.ErrorIs(t, err, ErrSelfSubscribe)
	})

	t.Run("作者不存在", func(t *testing.T) {
		_, err := svc.Subscribe(reader.ID, 9999, 0)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("recipes_limit 截断食谱列表", func(t *testing.T) {
		data, err := svc.List(reader.ID, 1, 20, 2)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), data.Total)
		assert.Len(t, data.Authors, 1)
		assert.Len(t, data.Authors[0].Recipes, 2)
		assert.Equal(t, int64(3), data.Authors[0].RecipesCount)
	})
}

func TestSubscriptionServiceUnsubscribe(t *testing.T) {
	db := newTestDB(t)
	reader := seedUser(t, db, "reader@example.com", "reader")
	author := seedUser(t, db, "author@example.com", "author")

	svc := NewSubscriptionService(
		repository.NewSubscriptionRepository(db),
		repository.NewUserRepository(db),
		newTestRecipeRepo(db),
	)

	t.Run("未订阅时取消被拒绝", func(t *testing.T) {
		err := svc.Unsubscribe(reader.ID, author.ID)
		assert.ErrorIs(t, err, ErrNotSubscribed)
	})

	t.Run("订阅后取消成功", func(t *testing.T) {
		_, err := svc.Subscribe(reader.ID, author.ID, 0)
		assert.NoError(t, err)

		assert.NoError(t, svc.Unsubscribe(reader.ID, author.ID))

		data, err := svc.List(reader.ID, 1, 20, 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), data.Total)
	})

	t.Run("作者不存在", func(t *testing.T) {
		err := svc.Unsubscribe(reader.ID, 9999)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
