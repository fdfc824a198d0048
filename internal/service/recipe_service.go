package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/infra/kafka"
	"foodgram-go/internal/model"
	"foodgram-go/internal/repository"
	"foodgram-go/pkg/logger"
	"foodgram-go/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RecipeImageBucket 食谱图片存储 Bucket
const RecipeImageBucket = "recipe-images"

var (
	ErrRecipeNotFound     = errors.New("食谱不存在")
	ErrRecipeNoPermission = errors.New("没有权限操作该食谱")
	ErrRecipeFavorited    = errors.New("该食谱已被收藏，无法删除")
	ErrRecipeInCarts      = errors.New("该食谱在购物车中，无法删除")
)

// RecipeEventPublisher 食谱变更事件发布函数，nil 时不发布
type RecipeEventPublisher func(ctx context.Context, event *kafka.RecipeEvent) error

type RecipeService struct {
	recipeRepo       *repository.RecipeRepository
	tagRepo          *repository.TagRepository
	ingredientRepo   *repository.IngredientRepository
	relationRepo     *repository.RelationRepository
	subscriptionRepo *repository.SubscriptionRepository
	images           ImageStore
	publishEvent     RecipeEventPublisher
}

func NewRecipeService(
	recipeRepo *repository.RecipeRepository,
	tagRepo *repository.TagRepository,
	ingredientRepo *repository.IngredientRepository,
	relationRepo *repository.RelationRepository,
	subscriptionRepo *repository.SubscriptionRepository,
	images ImageStore,
	publishEvent RecipeEventPublisher,
) *RecipeService {
	return &RecipeService{
		recipeRepo:       recipeRepo,
		tagRepo:          tagRepo,
		ingredientRepo:   ingredientRepo,
		relationRepo:     relationRepo,
		subscriptionRepo: subscriptionRepo,
		images:           images,
		publishEvent:     publishEvent,
	}
}

// validateCookingTime 校验烹饪时间，必须为不小于 1 的整数
func validateCookingTime(cookingTime *int) error {
	if cookingTime == nil || *cookingTime < 1 {
		return newValidationError("烹饪时间必须大于0")
	}
	return nil
}

// validateIngredients 校验食材明细并换算为持久化行
// 逐条依次检查：用量可解析、食材不重复、食材存在、用量不小于 1
func (s *RecipeService) validateIngredients(items []dto.RecipeIngredientRequest) ([]model.RecipeIngredient, error) {
	if len(items) == 0 {
		return nil, newValidationError("至少需要添加一种食材")
	}

	seen := make(map[int64]bool, len(items))
	lines := make([]model.RecipeIngredient, 0, len(items))
	for _, item := range items {
		amount, err := strconv.ParseInt(item.Amount.String(), 10, 64)
		if err != nil {
			return nil, validationErrorf("食材用量必须是整数: id=%d", item.ID)
		}

		if seen[item.ID] {
			return nil, validationErrorf("食材 id=%d 重复添加", item.ID)
		}
		seen[item.ID] = true

		exists, err := s.ingredientRepo.ExistsByID(item.ID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, validationErrorf("食材 id=%d 不存在", item.ID)
		}

		if amount < 1 {
			return nil, validationErrorf("食材用量必须大于0: id=%d", item.ID)
		}

		lines = append(lines, model.RecipeIngredient{
			IngredientID: item.ID,
			Amount:       amount,
		})
	}
	return lines, nil
}

// validateTags 校验标签集合
func (s *RecipeService) validateTags(tagIDs []int64) ([]model.Tag, error) {
	if len(tagIDs) == 0 {
		return nil, newValidationError("至少需要添加一个标签")
	}

	seen := make(map[int64]bool, len(tagIDs))
	for _, id := range tagIDs {
		if seen[id] {
			return nil, newValidationError("标签不能重复")
		}
		seen[id] = true

		exists, err := s.tagRepo.ExistsByID(id)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, validationErrorf("标签 id=%d 不存在", id)
		}
	}

	return s.tagRepo.GetByIDs(tagIDs)
}

// storeImage 解码 base64 图片并保存，返回公开访问 URL
func (s *RecipeService) storeImage(ctx context.Context, authorID int64, imageData string) (string, error) {
	raw, ext, err := utils.DecodeBase64Image(imageData)
	if err != nil {
		return "", newValidationError("图片数据格式不正确")
	}

	objectName := fmt.Sprintf("%d/%s.%s", authorID, uuid.NewString(), ext)
	return s.images.Save(ctx, RecipeImageBucket, objectName, raw, contentTypeForExt(ext))
}

// notifyRecipeChange 发布食谱变更事件，失败只记录日志不影响主流程
func (s *RecipeService) notifyRecipeChange(ctx context.Context, recipeID int64, action string) {
	if s.publishEvent == nil {
		return
	}
	event := &kafka.RecipeEvent{RecipeID: recipeID, Action: action}
	if err := s.publishEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish recipe event",
			zap.Int64("recipe_id", recipeID),
			zap.String("action", action),
			zap.Error(err),
		)
	}
}

// Create 创建食谱
func (s *RecipeService) Create(ctx context.Context, authorID int64, req *dto.RecipeCreateRequest) (*dto.RecipeInfo, error) {
	if err := validateCookingTime(req.CookingTime); err != nil {
		return nil, err
	}

	lines, err := s.validateIngredients(req.Ingredients)
	if err != nil {
		return nil, err
	}

	tags, err := s.validateTags(req.Tags)
	if err != nil {
		return nil, err
	}

	imageURL, err := s.storeImage(ctx, authorID, req.Image)
	if err != nil {
		return nil, err
	}

	recipe := &model.Recipe{
		AuthorID:    authorID,
		Name:        req.Name,
		Text:        req.Text,
		Image:       imageURL,
		CookingTime: *req.CookingTime,
	}

	if err := s.recipeRepo.CreateWithComposition(recipe, tags, lines); err != nil {
		return nil, err
	}

	s.notifyRecipeChange(ctx, recipe.ID, kafka.RecipeActionUpsert)

	return s.GetDetail(recipe.ID, &authorID)
}

// Update 更新食谱（部分更新）
// ingredients/tags 提供时整体替换，未提供时保持原集合
func (s *RecipeService) Update(ctx context.Context, recipeID, userID int64, req *dto.RecipeUpdateRequest) (*dto.RecipeInfo, error) {
	recipe, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	if recipe.AuthorID != userID {
		return nil, ErrRecipeNoPermission
	}

	if req.CookingTime != nil {
		if err := validateCookingTime(req.CookingTime); err != nil {
			return nil, err
		}
	}

	var lines *[]model.RecipeIngredient
	if req.Ingredients != nil {
		validated, err := s.validateIngredients(*req.Ingredients)
		if err != nil {
			return nil, err
		}
		lines = &validated
	}

	var tags *[]model.Tag
	if req.Tags != nil {
		validated, err := s.validateTags(*req.Tags)
		if err != nil {
			return nil, err
		}
		tags = &validated
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Text != nil {
		updates["text"] = *req.Text
	}
	if req.CookingTime != nil {
		updates["cooking_time"] = *req.CookingTime
	}
	if req.Image != nil {
		imageURL, err := s.storeImage(ctx, recipe.AuthorID, *req.Image)
		if err != nil {
			return nil, err
		}
		updates["image"] = imageURL
	}

	if err := s.recipeRepo.UpdateWithComposition(recipeID, updates, tags, lines); err != nil {
		return nil, err
	}

	s.notifyRecipeChange(ctx, recipeID, kafka.RecipeActionUpsert)

	return s.GetDetail(recipeID, &userID)
}

// Delete 删除食谱
// 被任何用户收藏或加入购物车的食谱不允许删除
func (s *RecipeService) Delete(ctx context.Context, recipeID, userID int64) error {
	recipe, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}
	if recipe.AuthorID != userID {
		return ErrRecipeNoPermission
	}

	favorited, err := s.relationRepo.ExistsForRecipe(model.RelationFavorite, recipeID)
	if err != nil {
		return err
	}
	if favorited {
		return ErrRecipeFavorited
	}

	inCart, err := s.relationRepo.ExistsForRecipe(model.RelationShoppingCart, recipeID)
	if err != nil {
		return err
	}
	if inCart {
		return ErrRecipeInCarts
	}

	if err := s.recipeRepo.Delete(recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}

	s.notifyRecipeChange(ctx, recipeID, kafka.RecipeActionDelete)
	return nil
}

// GetDetail 获取食谱详情
// currentUserID 非 nil 时计算收藏、购物车和订阅状态
func (s *RecipeService) GetDetail(recipeID int64, currentUserID *int64) (*dto.RecipeInfo, error) {
	recipe, err := s.recipeRepo.GetByIDWithRelations(recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	isFavorited := false
	isInCart := false
	isSubscribed := false
	if currentUserID != nil {
		if isFavorited, err = s.relationRepo.Exists(model.RelationFavorite, *currentUserID, recipeID); err != nil {
			return nil, err
		}
		if isInCart, err = s.relationRepo.Exists(model.RelationShoppingCart, *currentUserID, recipeID); err != nil {
			return nil, err
		}
		if *currentUserID != recipe.AuthorID {
			if isSubscribed, err = s.subscriptionRepo.Exists(*currentUserID, recipe.AuthorID); err != nil {
				return nil, err
			}
		}
	}

	return toRecipeInfo(recipe, isFavorited, isInCart, isSubscribed), nil
}

// List 分页获取食谱列表，按 ID 倒序
// is_favorited/is_in_shopping_cart 过滤仅对已登录用户生效
func (s *RecipeService) List(filter *dto.RecipeListFilter, page, pageSize int, currentUserID *int64) (*dto.RecipeListData, error) {
	var favoritedBy, inCartOf *int64
	if currentUserID != nil {
		if filter.IsFavorited {
			favoritedBy = currentUserID
		}
		if filter.IsInShoppingCart {
			inCartOf = currentUserID
		}
	}

	skip := (page - 1) * pageSize
	recipes, total, err := s.recipeRepo.ListRecipes(skip, pageSize, filter.AuthorID, filter.TagSlugs, favoritedBy, inCartOf)
	if err != nil {
		return nil, err
	}

	return s.buildRecipeListData(recipes, total, page, pageSize, currentUserID)
}

// buildRecipeListData 组装食谱列表响应，批量计算状态标记
func (s *RecipeService) buildRecipeListData(recipes []model.Recipe, total int64, page, pageSize int, currentUserID *int64) (*dto.RecipeListData, error) {
	favorited := map[int64]bool{}
	inCart := map[int64]bool{}
	subscribed := map[int64]bool{}

	if currentUserID != nil && len(recipes) > 0 {
		recipeIDs := make([]int64, 0, len(recipes))
		authorIDs := make([]int64, 0, len(recipes))
		for i := range recipes {
			recipeIDs = append(recipeIDs, recipes[i].ID)
			authorIDs = append(authorIDs, recipes[i].AuthorID)
		}

		var err error
		if favorited, err = s.relationRepo.BatchCheck(model.RelationFavorite, *currentUserID, recipeIDs); err != nil {
			return nil, err
		}
		if inCart, err = s.relationRepo.BatchCheck(model.RelationShoppingCart, *currentUserID, recipeIDs); err != nil {
			return nil, err
		}
		if subscribed, err = s.subscriptionRepo.BatchCheckSubscribed(*currentUserID, authorIDs); err != nil {
			return nil, err
		}
	}

	infos := make([]dto.RecipeInfo, 0, len(recipes))
	for i := range recipes {
		r := &recipes[i]
		infos = append(infos, *toRecipeInfo(r, favorited[r.ID], inCart[r.ID], subscribed[r.AuthorID]))
	}

	return &dto.RecipeListData{
		Recipes:    infos,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

func toRecipeInfo(recipe *model.Recipe, isFavorited, isInCart, authorSubscribed bool) *dto.RecipeInfo {
	tags := make([]dto.TagInfo, 0, len(recipe.Tags))
	for i := range recipe.Tags {
		tags = append(tags, *toTagInfo(&recipe.Tags[i]))
	}

	ingredients := make([]dto.RecipeIngredientInfo, 0, len(recipe.Ingredients))
	for i := range recipe.Ingredients {
		line := &recipe.Ingredients[i]
		ingredients = append(ingredients, dto.RecipeIngredientInfo{
			ID:              line.IngredientID,
			Name:            line.Ingredient.Name,
			MeasurementUnit: line.Ingredient.MeasurementUnit,
			Amount:          line.Amount,
		})
	}

	return &dto.RecipeInfo{
		ID:               recipe.ID,
		Tags:             tags,
		Author:           *toUserInfo(&recipe.Author, authorSubscribed),
		Ingredients:      ingredients,
		IsFavorited:      isFavorited,
		IsInShoppingCart: isInCart,
		Name:             recipe.Name,
		Image:            recipe.Image,
		Text:             recipe.Text,
		CookingTime:      recipe.CookingTime,
	}
}
