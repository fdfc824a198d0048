package repository

import (
	"foodgram-go/internal/model"

	"gorm.io/gorm"
)

type RecipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// CreateWithComposition 在单个事务内创建食谱及其标签集合和食材明细
// 任意一步失败则整体回滚，不留下孤儿记录
func (r *RecipeRepository) CreateWithComposition(recipe *model.Recipe, tags []model.Tag, lines []model.RecipeIngredient) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}

		if err := tx.Model(recipe).Association("Tags").Replace(&tags); err != nil {
			return err
		}

		for i := range lines {
			lines[i].RecipeID = recipe.ID
		}
		return tx.Create(&lines).Error
	})
}

// UpdateWithComposition 在单个事务内更新食谱
// updates 为字段级部分更新；tags 非 nil 时整体替换标签集合；
// lines 非 nil 时删除全部旧明细后重建（不做合并）
func (r *RecipeRepository) UpdateWithComposition(recipeID int64, updates map[string]interface{}, tags *[]model.Tag, lines *[]model.RecipeIngredient) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			result := tx.Model(&model.Recipe{}).Where("id = ?", recipeID).Updates(updates)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}

		if tags != nil {
			if err := tx.Model(&model.Recipe{ID: recipeID}).Association("Tags").Replace(tags); err != nil {
				return err
			}
		}

		if lines != nil {
			if err := tx.Where("recipe_id = ?", recipeID).Delete(&model.RecipeIngredient{}).Error; err != nil {
				return err
			}
			newLines := *lines
			for i := range newLines {
				newLines[i].RecipeID = recipeID
			}
			if err := tx.Create(&newLines).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete 删除食谱及其标签关联和食材明细
func (r *RecipeRepository) Delete(recipeID int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Recipe{ID: recipeID}).Association("Tags").Clear(); err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&model.RecipeIngredient{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.Recipe{}, recipeID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *RecipeRepository) GetByID(recipeID int64) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := r.db.First(&recipe, recipeID).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetByIDWithRelations 获取食谱详情，含作者、标签和食材明细
func (r *RecipeRepository) GetByIDWithRelations(recipeID int64) (*model.Recipe, error) {
	var recipe model.Recipe
	err := r.db.Preload("Author").Preload("Tags").Preload("Ingredients.Ingredient").
		First(&recipe, recipeID).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *RecipeRepository) GetByIDAndAuthor(recipeID, authorID int64) (*model.Recipe, error) {
	var recipe model.Recipe
	err := r.db.Where("id = ? AND author_id = ?", recipeID, authorID).First(&recipe).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// ListRecipes 分页获取食谱列表，按 ID 倒序
// 可选过滤：作者、标签 slug、被某用户收藏、在某用户购物车中
func (r *RecipeRepository) ListRecipes(skip, limit int, authorID *int64, tagSlugs []string, favoritedBy, inCartOf *int64) ([]model.Recipe, int64, error) {
	query := r.db.Model(&model.Recipe{})

	if authorID != nil {
		query = query.Where("recipes.author_id = ?", *authorID)
	}
	if len(tagSlugs) > 0 {
		sub := r.db.Table("recipe_tags").Select("recipe_tags.recipe_id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("tags.slug IN ?", tagSlugs)
		query = query.Where("recipes.id IN (?)", sub)
	}
	if favoritedBy != nil {
		sub := r.db.Model(&model.Favorite{}).Select("recipe_id").Where("user_id = ?", *favoritedBy)
		query = query.Where("recipes.id IN (?)", sub)
	}
	if inCartOf != nil {
		sub := r.db.Model(&model.ShoppingCart{}).Select("recipe_id").Where("user_id = ?", *inCartOf)
		query = query.Where("recipes.id IN (?)", sub)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recipes []model.Recipe
	err := query.Preload("Author").Preload("Tags").Preload("Ingredients.Ingredient").
		Order("recipes.id DESC").Offset(skip).Limit(limit).Find(&recipes).Error
	if err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

// ListByAuthor 获取作者的食谱列表，limit > 0 时截断
func (r *RecipeRepository) ListByAuthor(authorID int64, limit int) ([]model.Recipe, error) {
	query := r.db.Where("author_id = ?", authorID).Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var recipes []model.Recipe
	err := query.Find(&recipes).Error
	return recipes, err
}

func (r *RecipeRepository) CountByAuthor(authorID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Recipe{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

// GetByIDs 按 ID 批量获取食谱（含关联），保持输入顺序
func (r *RecipeRepository) GetByIDs(ids []int64) ([]model.Recipe, error) {
	if len(ids) == 0 {
		return []model.Recipe{}, nil
	}

	var recipes []model.Recipe
	err := r.db.Preload("Author").Preload("Tags").Preload("Ingredients.Ingredient").
		Where("id IN ?", ids).Find(&recipes).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]model.Recipe, len(recipes))
	for i := range recipes {
		byID[recipes[i].ID] = recipes[i]
	}

	ordered := make([]model.Recipe, 0, len(ids))
	for _, id := range ids {
		if recipe, ok := byID[id]; ok {
			ordered = append(ordered, recipe)
		}
	}
	return ordered, nil
}

// SearchByName 按名称模糊搜索（ES 不可用时的数据库降级路径）
func (r *RecipeRepository) SearchByName(name string, skip, limit int) ([]model.Recipe, int64, error) {
	query := r.db.Model(&model.Recipe{}).Where("name LIKE ?", "%"+name+"%")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recipes []model.Recipe
	err := query.Preload("Author").Preload("Tags").Preload("Ingredients.Ingredient").
		Order("recipes.id DESC").Offset(skip).Limit(limit).Find(&recipes).Error
	if err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}
