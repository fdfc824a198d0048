package elasticsearch

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"foodgram-go/internal/config"
	"foodgram-go/pkg/logger"

	"go.uber.org/zap"
)

// GetRecipesIndexMapping 返回 recipes 索引的 mapping
func GetRecipesIndexMapping() string {
	return `{
		"settings": {
			"number_of_shards": 1,
			"number_of_replicas": 0
		},
		"mappings": {
			"properties": {
				"id": {"type": "long"},
				"author_id": {"type": "long"},
				"author_username": {"type": "keyword"},
				"name": {
					"type": "text",
					"fields": {"keyword": {"type": "keyword", "ignore_above": 256}}
				},
				"text": {"type": "text"},
				"tags": {"type": "keyword"},
				"cooking_time": {"type": "integer"},
				"created_at": {"type": "date", "format": "strict_date_optional_time||epoch_millis"}
			}
		}
	}`
}

// GetIngredientsIndexMapping 返回 ingredients 索引的 mapping
// name 额外保存 prefix 子字段，用于前缀搜索
func GetIngredientsIndexMapping() string {
	return `{
		"settings": {
			"number_of_shards": 1,
			"number_of_replicas": 0
		},
		"mappings": {
			"properties": {
				"id": {"type": "long"},
				"name": {
					"type": "text",
					"fields": {
						"keyword": {"type": "keyword", "ignore_above": 128},
						"prefix": {"type": "search_as_you_type"}
					}
				},
				"measurement_unit": {"type": "keyword"}
			}
		}
	}`
}

// IndexName 返回配置的索引名称，未配置时使用默认值
func IndexName(key string) string {
	cfg := config.GetElasticsearch()
	name := cfg.Index[key]
	if name == "" {
		name = key
	}
	return name
}

// ensureIndex 确保索引存在，不存在则按 mapping 创建
func ensureIndex(ctx context.Context, indexName, mapping string) error {
	exists, err := IndicesExists(ctx, indexName)
	if err != nil {
		return fmt.Errorf("check index exists: %w", err)
	}
	if exists {
		logger.Info("Elasticsearch index already exists", zap.String("index", indexName))
		return nil
	}

	body := bytes.NewReader([]byte(mapping))
	resp, err := IndicesCreate(ctx, indexName, body)
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("create index failed: %s", resp.String())
	}

	logger.Info("Elasticsearch index created", zap.String("index", indexName))
	return nil
}

// InitIndexes 初始化所有索引（启动时调用）
func InitIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := ensureIndex(ctx, IndexName("recipes"), GetRecipesIndexMapping()); err != nil {
		return err
	}
	return ensureIndex(ctx, IndexName("ingredients"), GetIngredientsIndexMapping())
}
