package service

import (
	"context"
	"testing"
	"time"

	"foodgram-go/internal/model"
	"foodgram-go/internal/repository"
	"foodgram-go/pkg/utils"

	"github.com/stretchr/testify/assert"
)

func TestShortLinkServiceGetOrCreate(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewShortLinkRepository(db)
	svc := NewShortLinkService(repo, nil, 8, time.Hour)

	t.Run("生成指向食谱页面的短链接", func(t *testing.T) {
		link, err := svc.GetOrCreateForRecipe(context.Background(), 42)

		assert.NoError(t, err)
		assert.Equal(t, "/recipes/42/", link.OriginalURL)
		assert.Len(t, link.Token, 8)
	})

	t.Run("同一食谱重复请求返回同一令牌", func(t *testing.T) {
		first, err := svc.GetOrCreateForRecipe(context.Background(), 7)
		assert.NoError(t, err)

		second, err := svc.GetOrCreateForRecipe(context.Background(), 7)
		assert.NoError(t, err)
		assert.Equal(t, first.Token, second.Token)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("不同食谱令牌不同", func(t *testing.T) {
		a, err := svc.GetOrCreateForRecipe(context.Background(), 100)
		assert.NoError(t, err)
		b, err := svc.GetOrCreateForRecipe(context.Background(), 101)
		assert.NoError(t, err)
		assert.NotEqual(t, a.Token, b.Token)
	})

	t.Run("令牌碰撞时重试", func(t *testing.T) {
		calls := 0
		svc.tokenGen = func(int) string {
			calls++
			if calls == 1 {
				return "COLLIDED"
			}
			return "FRESHTOK"
		}
		defer func() { svc.tokenGen = utils.GenerateShortToken }()

		err := db.Create(&model.ShortLink{OriginalURL: "/recipes/998/", Token: "COLLIDED"}).Error
		assert.NoError(t, err)

		link, err := svc.GetOrCreateForRecipe(context.Background(), 999)
		assert.NoError(t, err)
		assert.Equal(t, "FRESHTOK", link.Token)
		assert.Equal(t, 2, calls)
	})
}

func TestShortLinkServiceResolve(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewShortLinkRepository(db)
	svc := NewShortLinkService(repo, nil, 8, time.Hour)

	link, err := svc.GetOrCreateForRecipe(context.Background(), 5)
	assert.NoError(t, err)

	t.Run("解析为原始路径", func(t *testing.T) {
		target, err := svc.Resolve(context.Background(), link.Token)
		assert.NoError(t, err)
		assert.Equal(t, "/recipes/5/", target)
	})

	t.Run("未知令牌", func(t *testing.T) {
		_, err := svc.Resolve(context.Background(), "nosuchtk")
		assert.ErrorIs(t, err, ErrShortLinkNotFound)
	})
}
