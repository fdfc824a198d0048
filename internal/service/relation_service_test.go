package service

import (
	"context"
	"testing"

	"foodgram-go/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestRelationServiceFavorite(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "author@example.com", "author")
	reader := seedUser(t, db, "reader@example.com", "reader")
	tag := seedTag(t, db, "晚餐", "dinner")
	ingredient := seedIngredient(t, db, "五花肉", "克")

	recipeSvc := newTestRecipeService(db, &fakeImageStore{}, nil)
	svc := NewRelationService(newTestRelationRepo(db), newTestRecipeRepo(db))

	info, err := recipeSvc.Create(context.Background(), author.ID, validCreateRequest(tag.ID, ingredient.ID))
	assert.NoError(t, err)

	t.Run("收藏成功返回简要信息", func(t *testing.T) {
		brief, err := svc.Add(reader.ID, info.ID, model.RelationFavorite)

		assert.NoError(t, err)
		assert.Equal(t, info.ID, brief.ID)
		assert.Equal(t, info.Name, brief.Name)
		assert.Equal(t, info.CookingTime, brief.CookingTime)
	})

	t.Run("重复收藏被拒绝", func(t *testing.T) {
		_, err := svc.Add(reader.ID, info.ID, model.RelationFavorite)
		assert.ErrorIs(t, err, ErrAlreadyFavorited)
	})

	t.Run("收藏不影响购物车", func(t *testing.T) {
		err := svc.Remove(reader.ID, info.ID, model.RelationShoppingCart)
		assert.ErrorIs(t, err, ErrNotInCart)
	})

	t.Run("取消收藏", func(t *testing.T) {
		err := svc.Remove(reader.ID, info.ID, model.RelationFavorite)
		assert.NoError(t, err)

		err = svc.Remove(reader.ID, info.ID, model.RelationFavorite)
		assert.ErrorIs(t, err, ErrNotFavorited)
	})

	t.Run("食谱不存在", func(t *testing.T) {
		_, err := svc.Add(reader.ID, 9999, model.RelationFavorite)
		assert.ErrorIs(t, err, ErrRecipeNotFound)

		err = svc.Remove(reader.ID, 9999, model.RelationFavorite)
		assert.ErrorIs(t, err, ErrRecipeNotFound)
	})
}

func TestRelationServiceShoppingCart(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "author@example.com", "author")
	reader := seedUser(t, db, "reader@example.com", "reader")
	tag := seedTag(t, db, "晚餐", "dinner")
	ingredient := seedIngredient(t, db, "五花肉", "克")

	recipeSvc := newTestRecipeService(db, &fakeImageStore{}, nil)
	svc := NewRelationService(newTestRelationRepo(db), newTestRecipeRepo(db))

	info, err := recipeSvc.Create(context.Background(), author.ID, validCreateRequest(tag.ID, ingredient.ID))
	assert.NoError(t, err)

	t.Run("加入购物车", func(t *testing.T) {
		brief, err := svc.Add(reader.ID, info.ID, model.RelationShoppingCart)
		assert.NoError(t, err)
		assert.Equal(t, info.ID, brief.ID)
	})

	t.Run("重复加入被拒绝", func(t *testing.T) {
		_, err := svc.Add(reader.ID, info.ID, model.RelationShoppingCart)
		assert.ErrorIs(t, err, ErrAlreadyInCart)
	})

	t.Run("移出后可再次加入", func(t *testing.T) {
		assert.NoError(t, svc.Remove(reader.ID, info.ID, model.RelationShoppingCart))

		_, err := svc.Add(reader.ID, info.ID, model.RelationShoppingCart)
		assert.NoError(t, err)
	})

	t.Run("不同用户互不影响", func(t *testing.T) {
		err := svc.Remove(author.ID, info.ID, model.RelationShoppingCart)
		assert.ErrorIs(t, err, ErrNotInCart)
	})
}
