package dto

// SubscriptionAuthorInfo 订阅列表中的作者信息，附带其食谱
type SubscriptionAuthorInfo struct {
	ID           int64         `json:"id"`
	Email        string        `json:"email"`
	Username     string        `json:"username"`
	FirstName    string        `json:"first_name"`
	LastName     string        `json:"last_name"`
	Avatar       *string       `json:"avatar"`
	IsSubscribed bool          `json:"is_subscribed"`
	Recipes      []RecipeBrief `json:"recipes"`
	RecipesCount int64         `json:"recipes_count"`
}

// SubscriptionListData 订阅列表响应数据
type SubscriptionListData struct {
	Authors    []SubscriptionAuthorInfo `json:"authors"`
	Total      int64                    `json:"total"`
	Page       int                      `json:"page"`
	PageSize   int                      `json:"page_size"`
	TotalPages int64                    `json:"total_pages"`
}
