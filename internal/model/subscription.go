package model

import "time"

// Subscription 用户订阅作者关系模型
// 同一对 (user, author) 只允许存在一条记录，且不允许订阅自己
type Subscription struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:订阅记录ID" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:uq_user_author_subscription;index:idx_subscriptions_user_id;comment:订阅者用户ID" json:"user_id"`
	AuthorID  int64     `gorm:"not null;uniqueIndex:uq_user_author_subscription;index:idx_subscriptions_author_id;comment:被订阅作者ID" json:"author_id"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:订阅时间" json:"created_at"`

	// 关联关系
	User   User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Author User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
