package repository

import (
	"foodgram-go/internal/model"

	"gorm.io/gorm"
)

type ShortLinkRepository struct {
	db *gorm.DB
}

func NewShortLinkRepository(db *gorm.DB) *ShortLinkRepository {
	return &ShortLinkRepository{db: db}
}

func (r *ShortLinkRepository) Create(link *model.ShortLink) error {
	return r.db.Create(link).Error
}

func (r *ShortLinkRepository) GetByOriginalURL(originalURL string) (*model.ShortLink, error) {
	var link model.ShortLink
	if err := r.db.Where("original_url = ?", originalURL).First(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *ShortLinkRepository) GetByToken(token string) (*model.ShortLink, error) {
	var link model.ShortLink
	if err := r.db.Where("token = ?", token).First(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *ShortLinkRepository) TokenExists(token string) (bool, error) {
	var count int64
	err := r.db.Model(&model.ShortLink{}).Where("token = ?", token).Count(&count).Error
	return count > 0, err
}
