package service

import (
	"errors"
	"fmt"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/model"
	"foodgram-go/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrAlreadyFavorited = errors.New("该食谱已在收藏中")
	ErrNotFavorited     = errors.New("该食谱不在收藏中")
	ErrAlreadyInCart    = errors.New("该食谱已在购物车中")
	ErrNotInCart        = errors.New("该食谱不在购物车中")
)

// RelationService 收藏与购物车服务，按 kind 统一处理两类用户食谱关系
type RelationService struct {
	relationRepo *repository.RelationRepository
	recipeRepo   *repository.RecipeRepository
}

func NewRelationService(relationRepo *repository.RelationRepository, recipeRepo *repository.RecipeRepository) *RelationService {
	return &RelationService{
		relationRepo: relationRepo,
		recipeRepo:   recipeRepo,
	}
}

func alreadyExistsErr(kind model.RelationKind) error {
	switch kind {
	case model.RelationFavorite:
		return ErrAlreadyFavorited
	case model.RelationShoppingCart:
		return ErrAlreadyInCart
	default:
		return fmt.Errorf("unknown relation kind: %s", kind)
	}
}

func notExistsErr(kind model.RelationKind) error {
	switch kind {
	case model.RelationFavorite:
		return ErrNotFavorited
	case model.RelationShoppingCart:
		return ErrNotInCart
	default:
		return fmt.Errorf("unknown relation kind: %s", kind)
	}
}

// Add 建立用户与食谱的关系，返回食谱简要信息
func (s *RelationService) Add(userID, recipeID int64, kind model.RelationKind) (*dto.RecipeBrief, error) {
	recipe, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	exists, err := s.relationRepo.Exists(kind, userID, recipeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, alreadyExistsErr(kind)
	}

	if err := s.relationRepo.Create(kind, userID, recipeID); err != nil {
		// 并发请求撞上唯一约束时按重复添加处理
		exists, checkErr := s.relationRepo.Exists(kind, userID, recipeID)
		if checkErr == nil && exists {
			return nil, alreadyExistsErr(kind)
		}
		return nil, err
	}

	return &dto.RecipeBrief{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Image:       recipe.Image,
		CookingTime: recipe.CookingTime,
	}, nil
}

// Remove 解除用户与食谱的关系
func (s *RelationService) Remove(userID, recipeID int64, kind model.RelationKind) error {
	if _, err := s.recipeRepo.GetByID(recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}

	deleted, err := s.relationRepo.Delete(kind, userID, recipeID)
	if err != nil {
		return err
	}
	if !deleted {
		return notExistsErr(kind)
	}
	return nil
}
