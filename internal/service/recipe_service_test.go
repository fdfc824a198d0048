package service

import (
	"context"
	"testing"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/infra/kafka"
	"foodgram-go/internal/model"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func validCreateRequest(tagID, ingredientID int64) *dto.RecipeCreateRequest {
	return &dto.RecipeCreateRequest{
		Name:        "红烧肉",
		Text:        "先焯水，再慢炖一小时",
		Image:       pngImageData(),
		CookingTime: intPtr(60),
		Ingredients: []dto.RecipeIngredientRequest{
			{ID: ingredientID, Amount: dto.Amount("500")},
		},
		Tags: []int64{tagID},
	}
}

func TestRecipeServiceCreate(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "author@example.com", "author")
	tag := seedTag(t, db, "晚餐", "dinner")
	ingredient := seedIngredient(t, db, "五花肉", "克")

	var events []*kafka.RecipeEvent
	svc := newTestRecipeService(db, &fakeImageStore{}, func(_ context.Context, e *kafka.RecipeEvent) error {
		events = append(events, e)
		return nil
	})

	t.Run("创建成功", func(t *testing.T) {
		info, err := svc.Create(context.Background(), author.ID, validCreateRequest(tag.ID, ingredient.ID))

		assert.NoError(t, err)
		assert.Equal(t, "红烧肉", info.Name)
		assert.Equal(t, 60, info.CookingTime)
		assert.Equal(t, author.ID, info.Author.ID)
		assert.Len(t, info.Tags, 1)
		assert.Equal(t, "dinner", info.Tags[0].Slug)
		assert.Len(t, info.Ingredients, 1)
		assert.Equal(t, int64(500), info.Ingredients[0].Amount)
		assert.Equal(t, "克", info.Ingredients[0].MeasurementUnit)
		assert.Contains(t, info.Image, "http://images.test/recipe-images/")

		// 发布了 upsert 事件
		assert.Len(t, events, 1)
		assert.Equal(t, kafka.RecipeActionUpsert, events[0].Action)
		assert.Equal(t, info.ID, events[0].RecipeID)

		var lineCount int64
		db.Model(&model.RecipeIngredient{}).Where("recipe_id = ?", info.ID).Count(&lineCount)
		assert.Equal(t, int64(1), lineCount)
	})

	t.Run("用量传字符串", func(t *testing.T) {
		req := validCreateRequest(tag.ID, ingredient.ID)
		req.Ingredients[0].Amount = dto.Amount("15")

		info, err := svc.Create(context.Background(), author.ID, req)
		assert.NoError(t, err)
		assert.Equal(t, int64(15), info.Ingredients[0].Amount)
	})

	t.Run("烹饪时间缺失", func(t *testing.T) {
		req := validCreateRequest(tag.ID, ingredient.ID)
		req.CookingTime = nil

		_, err := svc.Create(context.Background(), author.ID, req)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Equal(t, "烹饪时间必须大于0", vErr.Message)
	})

	t.Run("烹饪时间为零", func(t *testing.T) {
		req := validCreateRequest(tag.ID, ingredient.ID)
		req.CookingTime = intPtr(0)

		_, err := svc.Create(context.Background(), author.ID, req)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Equal(t, "烹饪时间必须大于0", vErr.Message)
	})

	t.Run("烹饪时间为一分钟是下限", func(t *testing.T) {
		req := validCreateRequest(tag.ID, ingredient.ID)
		req.CookingTime = intPtr(1)

		info, err := svc.Create(context.Background(), author.ID, req)
		assert.NoError(t, err)
		assert.Equal(t, 1, info.CookingTime)
	})

	t.Run("食材列表为空", func(t *testing.T) {
		req := validCreateRequest(tag.ID, ingredient.ID)
		req.Ingredients = nil

		_, err := svc.Create(context.Background(), author.ID, req)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Equal(t, "至少需要添加一种食材", vErr.Message)
	})

	t.Run("烹饪时间错误优先于食材错误", func(t *testing.T) {
		req := validCreateRequest(tag.ID, ingredient.ID)
		req.CookingTime = intPtr(0)
		req.Ingredients = nil

		_, err := svc.Create(context.Background(), author.ID, req)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Equal(t, "烹饪时间必须大于0", vErr.Message)
	})

	t.Run("食材错误优先于标签错误", func(t *testing.T) {
		req := validCreateRequest(tag.ID, ingredient.ID)
		req.Ingredients = nil
		req.Tags = nil

		_, err := svc.Create(context.Background(), author.ID, req)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Equal(t, "至少需要添加一种食材", vErr.Message)
	})

	t.Run("用量不是整数", func(t *testing.T) {
		req := validCreateRequest(tag.ID, ingredient.ID)
		req.Ingredients[0].Amount = dto.Amount("1.5")

		_, err := svc.Create(context.Background(), author.ID, req)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Message, "食材用量必须是整数")
	})

	t.Run("食材重复添加", func(t *testing.T) {
		req := validCreateRequest(tag.ID, ingredient.ID)
		req.Ingredients = append(req.Ingredients, dto.RecipeIngredientRequest{ID: ingredient.ID, Amount: dto.Amount("10")})

		_, err := svc.Create(context.Background(), author.ID, req)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Message, "重复添加")
	})

	t.Run("食材不存在", func(t *testing.T) {
		req := validCreateRequest(tag.ID, ingredient.ID)
		req.Ingredients[0].ID = 9999

		_, err := svc.Create(context.Background(), author.ID, req)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Message, "不存在")
	})

	t.Run("用量为零", func(t *testing.T) {
		req := validCreateRequest(tag.ID, ingredient.ID)
		req.Ingredients[0].Amount = dto.Amount("0")

		_, err := svc.Create(context.Background(), author.ID, req)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Message, "食材用量必须大于0")
	})

	t.Run("标签列表为空", func(t *testing.T) {
		req := validCreateRequest(tag.ID, ingredient.ID)
		req.Tags = nil

		_, err := svc.Create(context.Background(), author.ID, req)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Equal(t, "至少需要添加一个标签", vErr.Message)
	})

	t.Run("标签重复", func(t *testing.T) {
		req := validCreateRequest(tag.ID, ingredient.ID)
		req.Tags = []int64{tag.ID, tag.ID}

		_, err := svc.Create(context.Background(), author.ID, req)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Equal(t, "标签不能重复", vErr.Message)
	})

	t.Run("标签不存在", func(t *testing.T) {
		req := validCreateRequest(tag.ID, ingredient.ID)
		req.Tags = []int64{9999}

		_, err := svc.Create(context.Background(), author.ID, req)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Message, "标签 id=9999 不存在")
	})

	t.Run("图片数据无效", func(t *testing.T) {
		req := validCreateRequest(tag.ID, ingredient.ID)
		req.Image = "not-an-image"

		_, err := svc.Create(context.Background(), author.ID, req)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Equal(t, "图片数据格式不正确", vErr.Message)
	})
}

func TestRecipeServiceUpdate(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "author@example.com", "author")
	other := seedUser(t, db, "other@example.com", "other")
	tag := seedTag(t, db, "晚餐", "dinner")
	tag2 := seedTag(t, db, "早餐", "breakfast")
	ingredient := seedIngredient(t, db, "五花肉", "克")
	ingredient2 := seedIngredient(t, db, "盐", "克")

	svc := newTestRecipeService(db, &fakeImageStore{}, nil)

	info, err := svc.Create(context.Background(), author.ID, validCreateRequest(tag.ID, ingredient.ID))
	assert.NoError(t, err)

	t.Run("部分更新保留未提供的字段", func(t *testing.T) {
		newName := "东坡肉"
		updated, err := svc.Update(context.Background(), info.ID, author.ID, &dto.RecipeUpdateRequest{Name: &newName})

		assert.NoError(t, err)
		assert.Equal(t, "东坡肉", updated.Name)
		assert.Len(t, updated.Ingredients, 1)
		assert.Len(t, updated.Tags, 1)
		assert.Equal(t, 60, updated.CookingTime)
	})

	t.Run("食材集合整体替换", func(t *testing.T) {
		newLines := []dto.RecipeIngredientRequest{
			{ID: ingredient2.ID, Amount: dto.Amount("5")},
		}
		updated, err := svc.Update(context.Background(), info.ID, author.ID, &dto.RecipeUpdateRequest{Ingredients: &newLines})

		assert.NoError(t, err)
		assert.Len(t, updated.Ingredients, 1)
		assert.Equal(t, ingredient2.ID, updated.Ingredients[0].ID)
		assert.Equal(t, int64(5), updated.Ingredients[0].Amount)

		var lineCount int64
		db.Model(&model.RecipeIngredient{}).Where("recipe_id = ?", info.ID).Count(&lineCount)
		assert.Equal(t, int64(1), lineCount)
	})

	t.Run("标签集合整体替换", func(t *testing.T) {
		newTags := []int64{tag2.ID}
		updated, err := svc.Update(context.Background(), info.ID, author.ID, &dto.RecipeUpdateRequest{Tags: &newTags})

		assert.NoError(t, err)
		assert.Len(t, updated.Tags, 1)
		assert.Equal(t, "breakfast", updated.Tags[0].Slug)
	})

	t.Run("替换为空食材集合被拒绝", func(t *testing.T) {
		empty := []dto.RecipeIngredientRequest{}
		_, err := svc.Update(context.Background(), info.ID, author.ID, &dto.RecipeUpdateRequest{Ingredients: &empty})

		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Equal(t, "至少需要添加一种食材", vErr.Message)
	})

	t.Run("非作者无权更新", func(t *testing.T) {
		newName := "改名"
		_, err := svc.Update(context.Background(), info.ID, other.ID, &dto.RecipeUpdateRequest{Name: &newName})
		assert.ErrorIs(t, err, ErrRecipeNoPermission)
	})

	t.Run("食谱不存在", func(t *testing.T) {
		newName := "改名"
		_, err := svc.Update(context.Background(), 9999, author.ID, &dto.RecipeUpdateRequest{Name: &newName})
		assert.ErrorIs(t, err, ErrRecipeNotFound)
	})
}

func TestRecipeServiceDelete(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "author@example.com", "author")
	other := seedUser(t, db, "other@example.com", "other")
	tag := seedTag(t, db, "晚餐", "dinner")
	ingredient := seedIngredient(t, db, "五花肉", "克")

	var events []*kafka.RecipeEvent
	svc := newTestRecipeService(db, &fakeImageStore{}, func(_ context.Context, e *kafka.RecipeEvent) error {
		events = append(events, e)
		return nil
	})
	relationSvc := NewRelationService(
		newTestRelationRepo(db),
		newTestRecipeRepo(db),
	)

	newRecipe := func(t *testing.T) int64 {
		info, err := svc.Create(context.Background(), author.ID, validCreateRequest(tag.ID, ingredient.ID))
		assert.NoError(t, err)
		return info.ID
	}

	t.Run("作者删除成功", func(t *testing.T) {
		recipeID := newRecipe(t)
		events = nil

		err := svc.Delete(context.Background(), recipeID, author.ID)
		assert.NoError(t, err)

		_, err = svc.GetDetail(recipeID, nil)
		assert.ErrorIs(t, err, ErrRecipeNotFound)

		var lineCount int64
		db.Model(&model.RecipeIngredient{}).Where("recipe_id = ?", recipeID).Count(&lineCount)
		assert.Equal(t, int64(0), lineCount)

		assert.Len(t, events, 1)
		assert.Equal(t, kafka.RecipeActionDelete, events[0].Action)
	})

	t.Run("被他人收藏时禁止删除", func(t *testing.T) {
		recipeID := newRecipe(t)
		_, err := relationSvc.Add(other.ID, recipeID, model.RelationFavorite)
		assert.NoError(t, err)

		err = svc.Delete(context.Background(), recipeID, author.ID)
		assert.ErrorIs(t, err, ErrRecipeFavorited)
	})

	t.Run("被作者自己收藏时同样禁止删除", func(t *testing.T) {
		recipeID := newRecipe(t)
		_, err := relationSvc.Add(author.ID, recipeID, model.RelationFavorite)
		assert.NoError(t, err)

		err = svc.Delete(context.Background(), recipeID, author.ID)
		assert.ErrorIs(t, err, ErrRecipeFavorited)

		// 收藏记录不应被连带清除
		var favCount int64
		db.Model(&model.Favorite{}).Where("recipe_id = ?", recipeID).Count(&favCount)
		assert.Equal(t, int64(1), favCount)
	})

	t.Run("在他人购物车中时禁止删除", func(t *testing.T) {
		recipeID := newRecipe(t)
		_, err := relationSvc.Add(other.ID, recipeID, model.RelationShoppingCart)
		assert.NoError(t, err)

		err = svc.Delete(context.Background(), recipeID, author.ID)
		assert.ErrorIs(t, err, ErrRecipeInCarts)
	})

	t.Run("在作者自己购物车中时同样禁止删除", func(t *testing.T) {
		recipeID := newRecipe(t)
		_, err := relationSvc.Add(author.ID, recipeID, model.RelationShoppingCart)
		assert.NoError(t, err)

		err = svc.Delete(context.Background(), recipeID, author.ID)
		assert.ErrorIs(t, err, ErrRecipeInCarts)
	})

	t.Run("取消收藏后可以删除", func(t *testing.T) {
		recipeID := newRecipe(t)
		_, err := relationSvc.Add(author.ID, recipeID, model.RelationFavorite)
		assert.NoError(t, err)
		err = relationSvc.Remove(author.ID, recipeID, model.RelationFavorite)
		assert.NoError(t, err)

		err = svc.Delete(context.Background(), recipeID, author.ID)
		assert.NoError(t, err)
	})

	t.Run("非作者无权删除", func(t *testing.T) {
		recipeID := newRecipe(t)
		err := svc.Delete(context.Background(), recipeID, other.ID)
		assert.ErrorIs(t, err, ErrRecipeNoPermission)
	})

	t.Run("食谱不存在", func(t *testing.T) {
		err := svc.Delete(context.Background(), 9999, author.ID)
		assert.ErrorIs(t, err, ErrRecipeNotFound)
	})
}

func TestRecipeServiceListFilters(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "author@example.com", "author")
	reader := seedUser(t, db, "reader@example.com", "reader")
	dinner := seedTag(t, db, "晚餐", "dinner")
	breakfast := seedTag(t, db, "早餐", "breakfast")
	ingredient := seedIngredient(t, db, "鸡蛋", "个")

	svc := newTestRecipeService(db, &fakeImageStore{}, nil)
	relationSvc := NewRelationService(newTestRelationRepo(db), newTestRecipeRepo(db))

	dinnerReq := validCreateRequest(dinner.ID, ingredient.ID)
	dinnerInfo, err := svc.Create(context.Background(), author.ID, dinnerReq)
	assert.NoError(t, err)

	breakfastReq := validCreateRequest(breakfast.ID, ingredient.ID)
	breakfastReq.Name = "煎蛋"
	breakfastInfo, err := svc.Create(context.Background(), author.ID, breakfastReq)
	assert.NoError(t, err)

	_, err = relationSvc.Add(reader.ID, dinnerInfo.ID, model.RelationFavorite)
	assert.NoError(t, err)

	t.Run("默认按ID倒序", func(t *testing.T) {
		data, err := svc.List(&dto.RecipeListFilter{}, 1, 20, nil)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), data.Total)
		assert.Equal(t, breakfastInfo.ID, data.Recipes[0].ID)
		assert.Equal(t, dinnerInfo.ID, data.Recipes[1].ID)
	})

	t.Run("按标签过滤", func(t *testing.T) {
		data, err := svc.List(&dto.RecipeListFilter{TagSlugs: []string{"dinner"}}, 1, 20, nil)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), data.Total)
		assert.Equal(t, dinnerInfo.ID, data.Recipes[0].ID)
	})

	t.Run("收藏过滤仅对登录用户生效", func(t *testing.T) {
		data, err := svc.List(&dto.RecipeListFilter{IsFavorited: true}, 1, 20, &reader.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), data.Total)
		assert.True(t, data.Recipes[0].IsFavorited)

		// 匿名请求忽略该过滤
		anon, err := svc.List(&dto.RecipeListFilter{IsFavorited: true}, 1, 20, nil)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), anon.Total)
	})

	t.Run("按作者过滤", func(t *testing.T) {
		data, err := svc.List(&dto.RecipeListFilter{AuthorID: &author.ID}, 1, 20, nil)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), data.Total)
	})
}
