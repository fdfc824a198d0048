package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodgram-go/internal/model"
	"foodgram-go/internal/repository"
	"foodgram-go/pkg/logger"
	"foodgram-go/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrShortLinkNotFound = errors.New("短链接不存在")
	ErrTokenExhausted    = errors.New("无法生成唯一的短链接令牌")
)

// shortLinkKeyPrefix Redis 缓存键前缀
const shortLinkKeyPrefix = "shortlink:"

// maxTokenAttempts 令牌碰撞时的最大重试次数
const maxTokenAttempts = 5

// ShortLinkService 短链接服务
// 同一目标路径始终复用同一条短链接记录
type ShortLinkService struct {
	linkRepo    *repository.ShortLinkRepository
	cache       *redis.Client // nil 时不启用缓存
	tokenGen    func(int) string
	tokenLength int
	cacheTTL    time.Duration
}

func NewShortLinkService(linkRepo *repository.ShortLinkRepository, cache *redis.Client, tokenLength int, cacheTTL time.Duration) *ShortLinkService {
	return &ShortLinkService{
		linkRepo:    linkRepo,
		cache:       cache,
		tokenGen:    utils.GenerateShortToken,
		tokenLength: tokenLength,
		cacheTTL:    cacheTTL,
	}
}

// GetOrCreateForRecipe 获取或创建食谱的短链接
func (s *ShortLinkService) GetOrCreateForRecipe(ctx context.Context, recipeID int64) (*model.ShortLink, error) {
	originalURL := fmt.Sprintf("/recipes/%d/", recipeID)

	link, err := s.linkRepo.GetByOriginalURL(originalURL)
	if err == nil {
		return link, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	for attempt := 0; attempt < maxTokenAttempts; attempt++ {
		token := s.tokenGen(s.tokenLength)

		exists, err := s.linkRepo.TokenExists(token)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}

		link = &model.ShortLink{OriginalURL: originalURL, Token: token}
		if err := s.linkRepo.Create(link); err != nil {
			// 并发请求已为同一路径创建了记录时直接复用
			if existing, getErr := s.linkRepo.GetByOriginalURL(originalURL); getErr == nil {
				return existing, nil
			}
			continue
		}

		s.cacheSet(ctx, link.Token, link.OriginalURL)
		return link, nil
	}

	return nil, ErrTokenExhausted
}

// Resolve 将令牌解析为目标路径，缓存优先
func (s *ShortLinkService) Resolve(ctx context.Context, token string) (string, error) {
	if s.cache != nil {
		val, err := s.cache.Get(ctx, shortLinkKeyPrefix+token).Result()
		if err == nil {
			return val, nil
		}
		if !errors.Is(err, redis.Nil) {
			logger.Warn("Short link cache read failed", zap.String("token", token), zap.Error(err))
		}
	}

	link, err := s.linkRepo.GetByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrShortLinkNotFound
		}
		return "", err
	}

	s.cacheSet(ctx, link.Token, link.OriginalURL)
	return link.OriginalURL, nil
}

// cacheSet 写入缓存，失败只记录日志
func (s *ShortLinkService) cacheSet(ctx context.Context, token, originalURL string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, shortLinkKeyPrefix+token, originalURL, s.cacheTTL).Err(); err != nil {
		logger.Warn("Short link cache write failed", zap.String("token", token), zap.Error(err))
	}
}
