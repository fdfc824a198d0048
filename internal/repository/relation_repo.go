package repository

import (
	"fmt"

	"foodgram-go/internal/model"

	"gorm.io/gorm"
)

// RelationRepository 用户与食谱关系仓储，按 kind 统一操作收藏和购物车两张表
type RelationRepository struct {
	db *gorm.DB
}

func NewRelationRepository(db *gorm.DB) *RelationRepository {
	return &RelationRepository{db: db}
}

// relationModel 返回 kind 对应的模型实例
func relationModel(kind model.RelationKind) (interface{}, error) {
	switch kind {
	case model.RelationFavorite:
		return &model.Favorite{}, nil
	case model.RelationShoppingCart:
		return &model.ShoppingCart{}, nil
	default:
		return nil, fmt.Errorf("unknown relation kind: %s", kind)
	}
}

func (r *RelationRepository) Create(kind model.RelationKind, userID, recipeID int64) error {
	switch kind {
	case model.RelationFavorite:
		return r.db.Create(&model.Favorite{UserID: userID, RecipeID: recipeID}).Error
	case model.RelationShoppingCart:
		return r.db.Create(&model.ShoppingCart{UserID: userID, RecipeID: recipeID}).Error
	default:
		return fmt.Errorf("unknown relation kind: %s", kind)
	}
}

// Delete 删除关系记录，返回是否确实删除了
func (r *RelationRepository) Delete(kind model.RelationKind, userID, recipeID int64) (bool, error) {
	m, err := relationModel(kind)
	if err != nil {
		return false, err
	}

	result := r.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(m)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *RelationRepository) Exists(kind model.RelationKind, userID, recipeID int64) (bool, error) {
	m, err := relationModel(kind)
	if err != nil {
		return false, err
	}

	var count int64
	err = r.db.Model(m).Where("user_id = ? AND recipe_id = ?", userID, recipeID).Count(&count).Error
	return count > 0, err
}

// ExistsForRecipe 检查是否有任何用户持有该食谱的此类关系（删除保护用）
func (r *RelationRepository) ExistsForRecipe(kind model.RelationKind, recipeID int64) (bool, error) {
	m, err := relationModel(kind)
	if err != nil {
		return false, err
	}

	var count int64
	err = r.db.Model(m).Where("recipe_id = ?", recipeID).Count(&count).Error
	return count > 0, err
}

// BatchCheck 批量查询用户对多个食谱是否持有此类关系
func (r *RelationRepository) BatchCheck(kind model.RelationKind, userID int64, recipeIDs []int64) (map[int64]bool, error) {
	result := make(map[int64]bool, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return result, nil
	}

	m, err := relationModel(kind)
	if err != nil {
		return nil, err
	}

	var relatedIDs []int64
	err = r.db.Model(m).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &relatedIDs).Error
	if err != nil {
		return nil, err
	}

	relatedSet := make(map[int64]bool, len(relatedIDs))
	for _, id := range relatedIDs {
		relatedSet[id] = true
	}
	for _, id := range recipeIDs {
		result[id] = relatedSet[id]
	}
	return result, nil
}

// CartIngredientSum 购物清单聚合行
type CartIngredientSum struct {
	Name   string `json:"name"`
	Unit   string `json:"unit"`
	Amount int64  `json:"amount"`
}

// AggregateCart 汇总用户购物车内全部食谱的食材
// 按 (食材名称, 计量单位) 分组求和，与食材 ID 无关，兼容同名重复记录
// 按名称、单位排序保证每次调用结果顺序一致
func (r *RelationRepository) AggregateCart(userID int64) ([]CartIngredientSum, error) {
	cartRecipes := r.db.Model(&model.ShoppingCart{}).Select("recipe_id").Where("user_id = ?", userID)

	var sums []CartIngredientSum
	err := r.db.Model(&model.RecipeIngredient{}).
		Select("ingredients.name AS name, ingredients.measurement_unit AS unit, SUM(recipe_ingredients.amount) AS amount").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Where("recipe_ingredients.recipe_id IN (?)", cartRecipes).
		Group("ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name, ingredients.measurement_unit").
		Scan(&sums).Error
	if err != nil {
		return nil, err
	}
	return sums, nil
}
