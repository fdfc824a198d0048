package model

// RecipeIngredient 食谱食材明细，绑定食谱与食材并记录用量
// 同一食谱内同一食材只允许出现一次
type RecipeIngredient struct {
	ID           int64 `gorm:"primaryKey;autoIncrement;comment:明细ID" json:"id"`
	RecipeID     int64 `gorm:"not null;uniqueIndex:uq_recipe_ingredient;index:idx_recipe_ingredients_recipe_id;comment:食谱ID" json:"recipe_id"`
	IngredientID int64 `gorm:"not null;uniqueIndex:uq_recipe_ingredient;comment:食材ID" json:"ingredient_id"`
	Amount       int64 `gorm:"not null;comment:用量" json:"amount"`

	// 关联关系
	Ingredient Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
}

func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}
