package repository

import (
	"foodgram-go/internal/model"

	"gorm.io/gorm"
)

type IngredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{db: db}
}

// List 获取食材列表，namePrefix 非空时按名称前缀过滤
func (r *IngredientRepository) List(namePrefix string) ([]model.Ingredient, error) {
	query := r.db.Model(&model.Ingredient{})
	if namePrefix != "" {
		query = query.Where("name LIKE ?", namePrefix+"%")
	}

	var ingredients []model.Ingredient
	err := query.Order("name").Find(&ingredients).Error
	return ingredients, err
}

// ListAll 获取全部食材（索引同步用）
func (r *IngredientRepository) ListAll() ([]model.Ingredient, error) {
	var ingredients []model.Ingredient
	err := r.db.Order("id").Find(&ingredients).Error
	return ingredients, err
}

func (r *IngredientRepository) GetByID(id int64) (*model.Ingredient, error) {
	var ingredient model.Ingredient
	if err := r.db.First(&ingredient, id).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *IngredientRepository) ExistsByID(id int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Ingredient{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
