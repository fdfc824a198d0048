package service

import (
	"context"
	"strings"
	"testing"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestShoppingListServiceBuildReport(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "author@example.com", "author")
	reader := seedUser(t, db, "reader@example.com", "reader")
	tag := seedTag(t, db, "晚餐", "dinner")

	salt := seedIngredient(t, db, "Salt", "g")
	sugar := seedIngredient(t, db, "Sugar", "g")
	saltSpoon := seedIngredient(t, db, "Salt", "勺")

	recipeSvc := newTestRecipeService(db, &fakeImageStore{}, nil)
	relationSvc := NewRelationService(newTestRelationRepo(db), newTestRecipeRepo(db))
	svc := NewShoppingListService(newTestRelationRepo(db))

	createRecipe := func(t *testing.T, name string, lines []dto.RecipeIngredientRequest) int64 {
		req := validCreateRequest(tag.ID, salt.ID)
		req.Name = name
		req.Ingredients = lines
		info, err := recipeSvc.Create(context.Background(), author.ID, req)
		assert.NoError(t, err)
		return info.ID
	}

	t.Run("空购物车只有标题行", func(t *testing.T) {
		report, err := svc.BuildReport(reader.ID)
		assert.NoError(t, err)
		assert.Equal(t, "购物清单:\n", report)
	})

	t.Run("同名同单位跨食谱求和", func(t *testing.T) {
		first := createRecipe(t, "菜一", []dto.RecipeIngredientRequest{
			{ID: salt.ID, Amount: dto.Amount("5")},
			{ID: sugar.ID, Amount: dto.Amount("20")},
		})
		second := createRecipe(t, "菜二", []dto.RecipeIngredientRequest{
			{ID: salt.ID, Amount: dto.Amount("10")},
		})

		_, err := relationSvc.Add(reader.ID, first, model.RelationShoppingCart)
		assert.NoError(t, err)
		_, err = relationSvc.Add(reader.ID, second, model.RelationShoppingCart)
		assert.NoError(t, err)

		report, err := svc.BuildReport(reader.ID)
		assert.NoError(t, err)

		lines := strings.Split(strings.TrimRight(report, "\n"), "\n")
		assert.Equal(t, "购物清单:", lines[0])
		assert.Contains(t, lines, "Salt - 15 g")
		assert.Contains(t, lines, "Sugar - 20 g")
		assert.Len(t, lines, 3)
	})

	t.Run("同名不同单位不合并", func(t *testing.T) {
		third := createRecipe(t, "菜三", []dto.RecipeIngredientRequest{
			{ID: saltSpoon.ID, Amount: dto.Amount("2")},
		})

		_, err := relationSvc.Add(reader.ID, third, model.RelationShoppingCart)
		assert.NoError(t, err)

		report, err := svc.BuildReport(reader.ID)
		assert.NoError(t, err)
		assert.Contains(t, report, "Salt - 15 g\n")
		assert.Contains(t, report, "Salt - 2 勺\n")
	})

	t.Run("不在购物车的食谱不参与汇总", func(t *testing.T) {
		report, err := svc.BuildReport(author.ID)
		assert.NoError(t, err)
		assert.Equal(t, "购物清单:\n", report)
	})
}
