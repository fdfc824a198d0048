package dto

import (
	"encoding/json"
	"strings"
)

// Amount 食材用量，保留原始字面值
// 前端可能传数字也可能传字符串，是否能解析为整数由服务层逐条校验
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*a = Amount(v)
		return nil
	}
	*a = Amount(s)
	return nil
}

func (a Amount) String() string {
	return string(a)
}

// RecipeIngredientRequest 食谱食材明细请求项
type RecipeIngredientRequest struct {
	ID     int64  `json:"id"`
	Amount Amount `json:"amount"`
}

// RecipeCreateRequest 创建食谱请求
// cooking_time、ingredients、tags 的校验顺序由服务层控制，不走 binding
type RecipeCreateRequest struct {
	Name        string                    `json:"name" binding:"required,min=1,max=256"`
	Text        string                    `json:"text" binding:"required"`
	Image       string                    `json:"image" binding:"required"`
	CookingTime *int                      `json:"cooking_time"`
	Ingredients []RecipeIngredientRequest `json:"ingredients"`
	Tags        []int64                   `json:"tags"`
}

// RecipeUpdateRequest 更新食谱请求（部分更新）
// ingredients/tags 为 nil 时保持原集合不变，非 nil 时整体替换
type RecipeUpdateRequest struct {
	Name        *string                    `json:"name" binding:"omitempty,min=1,max=256"`
	Text        *string                    `json:"text"`
	Image       *string                    `json:"image"`
	CookingTime *int                       `json:"cooking_time"`
	Ingredients *[]RecipeIngredientRequest `json:"ingredients"`
	Tags        *[]int64                   `json:"tags"`
}

// RecipeIngredientInfo 食谱食材明细
type RecipeIngredientInfo struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int64  `json:"amount"`
}

// RecipeInfo 食谱详情
type RecipeInfo struct {
	ID               int64                  `json:"id"`
	Tags             []TagInfo              `json:"tags"`
	Author           UserInfo               `json:"author"`
	Ingredients      []RecipeIngredientInfo `json:"ingredients"`
	IsFavorited      bool                   `json:"is_favorited"`
	IsInShoppingCart bool                   `json:"is_in_shopping_cart"`
	Name             string                 `json:"name"`
	Image            string                 `json:"image"`
	Text             string                 `json:"text"`
	CookingTime      int                    `json:"cooking_time"`
}

// RecipeBrief 食谱简要信息（收藏、购物车、订阅列表中使用）
type RecipeBrief struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

// RecipeListData 食谱列表响应数据
type RecipeListData struct {
	Recipes    []RecipeInfo `json:"recipes"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	PageSize   int          `json:"page_size"`
	TotalPages int64        `json:"total_pages"`
}

// RecipeListFilter 食谱列表过滤条件
type RecipeListFilter struct {
	AuthorID         *int64
	TagSlugs         []string
	IsFavorited      bool
	IsInShoppingCart bool
}
