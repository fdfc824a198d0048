package model

// Ingredient 食材模型，属于参考数据
// 名称不做唯一约束，购物清单按 (名称, 计量单位) 聚合以兼容同名记录
type Ingredient struct {
	ID              int64  `gorm:"primaryKey;autoIncrement;comment:食材ID" json:"id"`
	Name            string `gorm:"size:128;not null;index:idx_ingredients_name;comment:食材名称" json:"name"`
	MeasurementUnit string `gorm:"size:64;not null;comment:计量单位" json:"measurement_unit"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}
