package model

// User 用户模型，email 作为登录账号
type User struct {
	ID        int64   `gorm:"primaryKey;autoIncrement;comment:用户标识" json:"id"`
	Email     string  `gorm:"size:254;not null;uniqueIndex;comment:邮箱（登录账号）" json:"email"`
	UserName  string  `gorm:"size:150;not null;uniqueIndex;comment:用户名" json:"username"`
	FirstName string  `gorm:"size:150;not null;comment:名字" json:"first_name"`
	LastName  string  `gorm:"size:150;not null;comment:姓氏" json:"last_name"`
	Password  string  `gorm:"size:255;not null;comment:密码" json:"-"` // json:"-" 序列化时忽略密码
	Avatar    *string `gorm:"size:500;comment:用户头像" json:"avatar"`

	// 关联关系
	Recipes []Recipe `gorm:"foreignKey:AuthorID" json:"recipes,omitempty"`
}

func (User) TableName() string {
	return "users"
}
