package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"foodgram-go/internal/model"
	"foodgram-go/pkg/logger"

	"go.uber.org/zap"
)

// ESRecipeDoc ES 食谱文档结构
type ESRecipeDoc struct {
	ID             int64    `json:"id"`
	AuthorID       int64    `json:"author_id"`
	AuthorUsername string   `json:"author_username"`
	Name           string   `json:"name"`
	Text           string   `json:"text"`
	Tags           []string `json:"tags"`
	CookingTime    int      `json:"cooking_time"`
	CreatedAt      string   `json:"created_at"`
}

// ESIngredientDoc ES 食材文档结构
type ESIngredientDoc struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

func recipeToESDoc(r *model.Recipe, authorUsername string) *ESRecipeDoc {
	tags := make([]string, 0, len(r.Tags))
	for _, t := range r.Tags {
		tags = append(tags, t.Slug)
	}
	return &ESRecipeDoc{
		ID:             r.ID,
		AuthorID:       r.AuthorID,
		AuthorUsername: authorUsername,
		Name:           r.Name,
		Text:           r.Text,
		Tags:           tags,
		CookingTime:    r.CookingTime,
		CreatedAt:      r.CreatedAt.Format(time.RFC3339),
	}
}

// SyncRecipe 同步单个食谱到 ES
func SyncRecipe(ctx context.Context, r *model.Recipe, authorUsername string) error {
	indexName := IndexName("recipes")

	doc := recipeToESDoc(r, authorUsername)
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	resp, err := Index(ctx, indexName, fmt.Sprintf("%d", r.ID), bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("index document failed: %s", resp.String())
	}

	logger.Debug("Recipe synced to ES", zap.Int64("recipe_id", r.ID))
	return nil
}

// DeleteRecipe 从 ES 删除食谱
func DeleteRecipe(ctx context.Context, recipeID int64) error {
	indexName := IndexName("recipes")

	resp, err := Delete(ctx, indexName, fmt.Sprintf("%d", recipeID))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() && resp.StatusCode != 404 {
		return fmt.Errorf("delete document failed: %s", resp.String())
	}
	return nil
}

// BulkSyncIngredients 批量同步食材参考数据到 ES（Worker 启动时调用）
func BulkSyncIngredients(ctx context.Context, ingredients []model.Ingredient) (success, failed int, err error) {
	indexName := IndexName("ingredients")

	var buf strings.Builder
	for _, ing := range ingredients {
		doc := ESIngredientDoc{
			ID:              ing.ID,
			Name:            ing.Name,
			MeasurementUnit: ing.MeasurementUnit,
		}
		docBody, _ := json.Marshal(doc)

		buf.WriteString(fmt.Sprintf(`{"index":{"_index":"%s","_id":"%d"}}`, indexName, ing.ID))
		buf.WriteString("\n")
		buf.Write(docBody)
		buf.WriteString("\n")
	}

	if buf.Len() == 0 {
		return 0, 0, nil
	}

	resp, err := Bulk(ctx, strings.NewReader(buf.String()))
	if err != nil {
		return 0, len(ingredients), err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return 0, len(ingredients), fmt.Errorf("bulk failed: %s", resp.String())
	}

	var bulkResp struct {
		Errors bool `json:"errors"`
		Items  []struct {
			Index struct {
				Status int `json:"status"`
			} `json:"index"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&bulkResp); err != nil {
		return len(ingredients), 0, nil
	}

	for _, item := range bulkResp.Items {
		if item.Index.Status >= 200 && item.Index.Status < 300 {
			success++
		} else {
			failed++
		}
	}

	logger.Info("Bulk sync to ES completed", zap.Int("success", success), zap.Int("failed", failed))
	return success, failed, nil
}
