package model

import "time"

// RelationKind 用户与食谱之间的关系种类
type RelationKind string

const (
	RelationFavorite     RelationKind = "favorite"      // 收藏
	RelationShoppingCart RelationKind = "shopping_cart" // 购物车
)

// Favorite 收藏模型
type Favorite struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:收藏记录ID" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:uq_user_recipe_favorite;index:idx_favorites_user_id;comment:收藏用户ID" json:"user_id"`
	RecipeID  int64     `gorm:"not null;uniqueIndex:uq_user_recipe_favorite;index:idx_favorites_recipe_id;comment:被收藏食谱ID" json:"recipe_id"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:收藏时间" json:"created_at"`

	// 关联关系
	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Recipe Recipe `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
}

func (Favorite) TableName() string {
	return "favorites"
}

// ShoppingCart 购物车条目模型，结构与收藏一致，分表存储
type ShoppingCart struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:购物车记录ID" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:uq_user_recipe_cart;index:idx_shopping_carts_user_id;comment:用户ID" json:"user_id"`
	RecipeID  int64     `gorm:"not null;uniqueIndex:uq_user_recipe_cart;index:idx_shopping_carts_recipe_id;comment:食谱ID" json:"recipe_id"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:加入时间" json:"created_at"`

	// 关联关系
	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Recipe Recipe `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
}

func (ShoppingCart) TableName() string {
	return "shopping_carts"
}
