package model

import "time"

// Recipe 食谱模型
// 每个食谱至少包含一个标签和一条食材明细，作者创建后不可变更
type Recipe struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;comment:食谱标识" json:"id"`
	AuthorID    int64     `gorm:"not null;index:idx_recipes_author_id;comment:食谱作者ID" json:"author_id"`
	Name        string    `gorm:"size:256;not null;comment:食谱名称" json:"name"`
	Text        string    `gorm:"type:text;not null;comment:做法描述" json:"text"`
	Image       string    `gorm:"size:500;comment:成品图片地址" json:"image"`
	CookingTime int       `gorm:"not null;comment:烹饪时间（分钟）" json:"cooking_time"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index:idx_recipes_created_at;comment:创建时间" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updated_at"`

	// 关联关系
	Author      User               `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Tags        []Tag              `gorm:"many2many:recipe_tags" json:"tags,omitempty"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID" json:"ingredients,omitempty"`
}

func (Recipe) TableName() string {
	return "recipes"
}
