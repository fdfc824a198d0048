package service

import (
	"errors"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/model"
	"foodgram-go/internal/repository"

	"gorm.io/gorm"
)

var ErrIngredientNotFound = errors.New("食材不存在")

type IngredientService struct {
	ingredientRepo *repository.IngredientRepository
}

func NewIngredientService(ingredientRepo *repository.IngredientRepository) *IngredientService {
	return &IngredientService{ingredientRepo: ingredientRepo}
}

// List 获取食材列表，namePrefix 非空时按名称前缀过滤
func (s *IngredientService) List(namePrefix string) ([]dto.IngredientInfo, error) {
	ingredients, err := s.ingredientRepo.List(namePrefix)
	if err != nil {
		return nil, err
	}

	infos := make([]dto.IngredientInfo, 0, len(ingredients))
	for i := range ingredients {
		infos = append(infos, *toIngredientInfo(&ingredients[i]))
	}
	return infos, nil
}

// Get 获取单个食材
func (s *IngredientService) Get(id int64) (*dto.IngredientInfo, error) {
	ingredient, err := s.ingredientRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIngredientNotFound
		}
		return nil, err
	}
	return toIngredientInfo(ingredient), nil
}

func toIngredientInfo(ingredient *model.Ingredient) *dto.IngredientInfo {
	return &dto.IngredientInfo{
		ID:              ingredient.ID,
		Name:            ingredient.Name,
		MeasurementUnit: ingredient.MeasurementUnit,
	}
}
