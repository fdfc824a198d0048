package repository

import (
	"foodgram-go/internal/model"

	"gorm.io/gorm"
)

type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) List() ([]model.Tag, error) {
	var tags []model.Tag
	err := r.db.Order("id").Find(&tags).Error
	return tags, err
}

func (r *TagRepository) GetByID(id int64) (*model.Tag, error) {
	var tag model.Tag
	if err := r.db.First(&tag, id).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *TagRepository) ExistsByID(id int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Tag{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// GetByIDs 按 ID 批量获取标签
func (r *TagRepository) GetByIDs(ids []int64) ([]model.Tag, error) {
	if len(ids) == 0 {
		return []model.Tag{}, nil
	}
	var tags []model.Tag
	err := r.db.Where("id IN ?", ids).Find(&tags).Error
	return tags, err
}
