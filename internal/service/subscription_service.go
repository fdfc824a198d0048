package service

import (
	"errors"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/model"
	"foodgram-go/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrSelfSubscribe     = errors.New("不能订阅自己")
	ErrAlreadySubscribed = errors.New("您已经订阅过该作者了")
	ErrNotSubscribed     = errors.New("您尚未订阅该作者")
)

type SubscriptionService struct {
	subscriptionRepo *repository.SubscriptionRepository
	userRepo         *repository.UserRepository
	recipeRepo       *repository.RecipeRepository
}

func NewSubscriptionService(subscriptionRepo *repository.SubscriptionRepository, userRepo *repository.UserRepository, recipeRepo *repository.RecipeRepository) *SubscriptionService {
	return &SubscriptionService{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		recipeRepo:       recipeRepo,
	}
}

// Subscribe 订阅作者
// recipesLimit > 0 时限制返回的作者食谱数量
func (s *SubscriptionService) Subscribe(userID, authorID int64, recipesLimit int) (*dto.SubscriptionAuthorInfo, error) {
	if userID == authorID {
		return nil, ErrSelfSubscribe
	}

	author, err := s.userRepo.GetByID(authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	exists, err := s.subscriptionRepo.Exists(userID, authorID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadySubscribed
	}

	if _, err := s.subscriptionRepo.Create(userID, authorID); err != nil {
		// 并发请求撞上唯一约束时按重复订阅处理
		exists, checkErr := s.subscriptionRepo.Exists(userID, authorID)
		if checkErr == nil && exists {
			return nil, ErrAlreadySubscribed
		}
		return nil, err
	}

	return s.buildAuthorInfo(author, recipesLimit)
}

// Unsubscribe 取消订阅
func (s *SubscriptionService) Unsubscribe(userID, authorID int64) error {
	if _, err := s.userRepo.GetByID(authorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	deleted, err := s.subscriptionRepo.Delete(userID, authorID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotSubscribed
	}
	return nil
}

// List 获取订阅列表，按订阅时间倒序
func (s *SubscriptionService) List(userID int64, page, pageSize, recipesLimit int) (*dto.SubscriptionListData, error) {
	skip := (page - 1) * pageSize
	authorIDs, total, err := s.subscriptionRepo.ListAuthorIDs(userID, skip, pageSize)
	if err != nil {
		return nil, err
	}

	authors, err := s.userRepo.GetByIDs(authorIDs)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*model.User, len(authors))
	for i := range authors {
		byID[authors[i].ID] = &authors[i]
	}

	infos := make([]dto.SubscriptionAuthorInfo, 0, len(authorIDs))
	for _, id := range authorIDs {
		author, ok := byID[id]
		if !ok {
			continue
		}
		info, err := s.buildAuthorInfo(author, recipesLimit)
		if err != nil {
			return nil, err
		}
		infos = append(infos, *info)
	}

	return &dto.SubscriptionListData{
		Authors:    infos,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

func (s *SubscriptionService) buildAuthorInfo(author *model.User, recipesLimit int) (*dto.SubscriptionAuthorInfo, error) {
	recipes, err := s.recipeRepo.ListByAuthor(author.ID, recipesLimit)
	if err != nil {
		return nil, err
	}

	count, err := s.recipeRepo.CountByAuthor(author.ID)
	if err != nil {
		return nil, err
	}

	briefs := make([]dto.RecipeBrief, 0, len(recipes))
	for i := range recipes {
		briefs = append(briefs, dto.RecipeBrief{
			ID:          recipes[i].ID,
			Name:        recipes[i].Name,
			Image:       recipes[i].Image,
			CookingTime: recipes[i].CookingTime,
		})
	}

	return &dto.SubscriptionAuthorInfo{
		ID:           author.ID,
		Email:        author.Email,
		Username:     author.UserName,
		FirstName:    author.FirstName,
		LastName:     author.LastName,
		Avatar:       author.Avatar,
		IsSubscribed: true,
		Recipes:      briefs,
		RecipesCount: count,
	}, nil
}
