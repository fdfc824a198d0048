package model

import "time"

// ShortLink 短链接模型
// token 在创建时生成一次，之后不再变更，也不会被复用
type ShortLink struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;comment:短链接ID" json:"id"`
	OriginalURL string    `gorm:"size:256;not null;uniqueIndex;comment:原始路径" json:"original_url"`
	Token       string    `gorm:"size:32;not null;uniqueIndex;comment:短链接令牌" json:"token"`
	CreatedAt   time.Time `gorm:"autoCreateTime;comment:创建时间" json:"created_at"`
}

func (ShortLink) TableName() string {
	return "short_links"
}
