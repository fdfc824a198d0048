package model

// Tag 标签模型，属于参考数据，不通过普通业务流程修改
type Tag struct {
	ID   int64  `gorm:"primaryKey;autoIncrement;comment:标签ID" json:"id"`
	Name string `gorm:"size:32;not null;uniqueIndex;comment:标签名称" json:"name"`
	Slug string `gorm:"size:32;not null;uniqueIndex;comment:URL标识" json:"slug"`

	// 关联关系
	Recipes []Recipe `gorm:"many2many:recipe_tags" json:"recipes,omitempty"`
}

func (Tag) TableName() string {
	return "tags"
}
