package dto

// UserInfo 用户信息
type UserInfo struct {
	ID           int64   `json:"id"`
	Email        string  `json:"email"`
	Username     string  `json:"username"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	IsSubscribed bool    `json:"is_subscribed"`
	Avatar       *string `json:"avatar"`
}

// UserListData 用户列表响应数据
type UserListData struct {
	Users      []UserInfo `json:"users"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalPages int64      `json:"total_pages"`
}

// AvatarUpdateRequest 头像更新请求，avatar 为 base64 图片数据
type AvatarUpdateRequest struct {
	Avatar string `json:"avatar" binding:"required"`
}
