package service

import (
	"errors"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/model"
	"foodgram-go/internal/repository"

	"gorm.io/gorm"
)

var ErrTagNotFound = errors.New("标签不存在")

type TagService struct {
	tagRepo *repository.TagRepository
}

func NewTagService(tagRepo *repository.TagRepository) *TagService {
	return &TagService{tagRepo: tagRepo}
}

// List 获取全部标签
func (s *TagService) List() ([]dto.TagInfo, error) {
	tags, err := s.tagRepo.List()
	if err != nil {
		return nil, err
	}

	infos := make([]dto.TagInfo, 0, len(tags))
	for i := range tags {
		infos = append(infos, *toTagInfo(&tags[i]))
	}
	return infos, nil
}

// Get 获取单个标签
func (s *TagService) Get(id int64) (*dto.TagInfo, error) {
	tag, err := s.tagRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}
	return toTagInfo(tag), nil
}

func toTagInfo(tag *model.Tag) *dto.TagInfo {
	return &dto.TagInfo{
		ID:   tag.ID,
		Name: tag.Name,
		Slug: tag.Slug,
	}
}
