package service

import (
	"context"
	"errors"
	"fmt"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/repository"
	"foodgram-go/pkg/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvatarBucket 头像存储 Bucket
const AvatarBucket = "user-avatars"

type UserService struct {
	userRepo         *repository.UserRepository
	subscriptionRepo *repository.SubscriptionRepository
	images           ImageStore
}

func NewUserService(userRepo *repository.UserRepository, subscriptionRepo *repository.SubscriptionRepository, images ImageStore) *UserService {
	return &UserService{
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
		images:           images,
	}
}

// GetUserByID 获取用户信息
// currentUserID 非 nil 时计算 is_subscribed
func (s *UserService) GetUserByID(userID int64, currentUserID *int64) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	isSubscribed := false
	if currentUserID != nil && *currentUserID != userID {
		isSubscribed, err = s.subscriptionRepo.Exists(*currentUserID, userID)
		if err != nil {
			return nil, err
		}
	}

	return toUserInfo(user, isSubscribed), nil
}

// ListUsers 分页获取用户列表
func (s *UserService) ListUsers(page, pageSize int, currentUserID *int64) (*dto.UserListData, error) {
	skip := (page - 1) * pageSize
	users, total, err := s.userRepo.List(skip, pageSize)
	if err != nil {
		return nil, err
	}

	subscribed := map[int64]bool{}
	if currentUserID != nil && len(users) > 0 {
		ids := make([]int64, 0, len(users))
		for i := range users {
			ids = append(ids, users[i].ID)
		}
		subscribed, err = s.subscriptionRepo.BatchCheckSubscribed(*currentUserID, ids)
		if err != nil {
			return nil, err
		}
	}

	infos := make([]dto.UserInfo, 0, len(users))
	for i := range users {
		infos = append(infos, *toUserInfo(&users[i], subscribed[users[i].ID]))
	}

	return &dto.UserListData{
		Users:      infos,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

// SetAvatar 上传并设置当前用户头像，avatarData 为 base64 图片数据
// 返回头像公开访问 URL
func (s *UserService) SetAvatar(ctx context.Context, userID int64, avatarData string) (string, error) {
	raw, ext, err := utils.DecodeBase64Image(avatarData)
	if err != nil {
		return "", newValidationError("头像数据格式不正确")
	}

	objectName := fmt.Sprintf("%d/%s.%s", userID, uuid.NewString(), ext)
	avatarURL, err := s.images.Save(ctx, AvatarBucket, objectName, raw, contentTypeForExt(ext))
	if err != nil {
		return "", err
	}

	if err := s.userRepo.UpdateAvatar(userID, &avatarURL); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}
	return avatarURL, nil
}

// DeleteAvatar 清除当前用户头像
func (s *UserService) DeleteAvatar(userID int64) error {
	if err := s.userRepo.UpdateAvatar(userID, nil); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// totalPages 计算总页数
func totalPages(total int64, pageSize int) int64 {
	if pageSize <= 0 {
		return 0
	}
	return (total + int64(pageSize) - 1) / int64(pageSize)
}
