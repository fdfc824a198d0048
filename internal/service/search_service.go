package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"foodgram-go/internal/api/dto"
	infraES "foodgram-go/internal/infra/elasticsearch"
	"foodgram-go/internal/repository"
	"foodgram-go/pkg/logger"

	"go.uber.org/zap"
)

// SearchService 搜索服务（ES 优先，失败则降级到 DB）
type SearchService struct {
	recipeRepo     *repository.RecipeRepository
	ingredientRepo *repository.IngredientRepository
	recipeService  *RecipeService
}

func NewSearchService(recipeRepo *repository.RecipeRepository, ingredientRepo *repository.IngredientRepository, recipeService *RecipeService) *SearchService {
	return &SearchService{
		recipeRepo:     recipeRepo,
		ingredientRepo: ingredientRepo,
		recipeService:  recipeService,
	}
}

// SearchRecipes 按关键词搜索食谱
func (s *SearchService) SearchRecipes(query string, page, pageSize int, currentUserID *int64) (*dto.RecipeListData, error) {
	query = strings.TrimSpace(query)

	data, err := s.searchRecipesFromES(query, page, pageSize, currentUserID)
	if err != nil {
		logger.Warn("ES recipe search failed, fallback to DB", zap.Error(err))
		return s.searchRecipesFromDB(query, page, pageSize, currentUserID)
	}
	return data, nil
}

func (s *SearchService) searchRecipesFromES(query string, page, pageSize int, currentUserID *int64) (*dto.RecipeListData, error) {
	esQuery := map[string]interface{}{
		"from": (page - 1) * pageSize,
		"size": pageSize,
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"name^3", "text^1", "author_username^2"},
				"type":   "best_fields",
			},
		},
	}

	queryJSON, err := json.Marshal(esQuery)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, err := infraES.Search(ctx, infraES.IndexName("recipes"), bytes.NewReader(queryJSON))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, fmt.Errorf("ES search error: %s", resp.String())
	}

	var esResp struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source struct {
					ID int64 `json:"id"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&esResp); err != nil {
		return nil, err
	}

	recipeIDs := make([]int64, 0, len(esResp.Hits.Hits))
	for _, h := range esResp.Hits.Hits {
		recipeIDs = append(recipeIDs, h.Source.ID)
	}

	recipes, err := s.recipeRepo.GetByIDs(recipeIDs)
	if err != nil {
		return nil, err
	}

	return s.recipeService.buildRecipeListData(recipes, esResp.Hits.Total.Value, page, pageSize, currentUserID)
}

func (s *SearchService) searchRecipesFromDB(query string, page, pageSize int, currentUserID *int64) (*dto.RecipeListData, error) {
	skip := (page - 1) * pageSize
	recipes, total, err := s.recipeRepo.SearchByName(query, skip, pageSize)
	if err != nil {
		return nil, err
	}
	return s.recipeService.buildRecipeListData(recipes, total, page, pageSize, currentUserID)
}

// SearchIngredients 按名称前缀搜索食材
func (s *SearchService) SearchIngredients(prefix string) ([]dto.IngredientInfo, error) {
	prefix = strings.TrimSpace(prefix)

	infos, err := s.searchIngredientsFromES(prefix)
	if err != nil {
		logger.Warn("ES ingredient search failed, fallback to DB", zap.Error(err))
		return s.searchIngredientsFromDB(prefix)
	}
	return infos, nil
}

func (s *SearchService) searchIngredientsFromES(prefix string) ([]dto.IngredientInfo, error) {
	esQuery := map[string]interface{}{
		"size": 100,
		"query": map[string]interface{}{
			"match_phrase_prefix": map[string]interface{}{
				"name": map[string]interface{}{"query": prefix},
			},
		},
		"sort": []interface{}{
			map[string]interface{}{"name.keyword": "asc"},
		},
	}

	queryJSON, err := json.Marshal(esQuery)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, err := infraES.Search(ctx, infraES.IndexName("ingredients"), bytes.NewReader(queryJSON))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, fmt.Errorf("ES search error: %s", resp.String())
	}

	var esResp struct {
		Hits struct {
			Hits []struct {
				Source infraES.ESIngredientDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&esResp); err != nil {
		return nil, err
	}

	infos := make([]dto.IngredientInfo, 0, len(esResp.Hits.Hits))
	for _, h := range esResp.Hits.Hits {
		infos = append(infos, dto.IngredientInfo{
			ID:              h.Source.ID,
			Name:            h.Source.Name,
			MeasurementUnit: h.Source.MeasurementUnit,
		})
	}
	return infos, nil
}

func (s *SearchService) searchIngredientsFromDB(prefix string) ([]dto.IngredientInfo, error) {
	ingredients, err := s.ingredientRepo.List(prefix)
	if err != nil {
		return nil, err
	}

	infos := make([]dto.IngredientInfo, 0, len(ingredients))
	for i := range ingredients {
		infos = append(infos, *toIngredientInfo(&ingredients[i]))
	}
	return infos, nil
}
