package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodgram-go/internal/config"
	"foodgram-go/internal/infra/database"
	infraES "foodgram-go/internal/infra/elasticsearch"
	infraKafka "foodgram-go/internal/infra/kafka"
	"foodgram-go/internal/repository"
	"foodgram-go/pkg/logger"

	"go.uber.org/zap"
)

// 索引 Worker：消费食谱变更事件并同步 Elasticsearch 索引
func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	if err := infraES.Init(&cfg.Elasticsearch); err != nil {
		logger.Fatal("Failed to init elasticsearch", zap.Error(err))
	}
	defer infraES.Close()

	if err := infraES.InitIndexes(); err != nil {
		logger.Fatal("Failed to init elasticsearch indexes", zap.Error(err))
	}

	db := database.Get()
	recipeRepo := repository.NewRecipeRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)

	// 启动时全量同步食材参考数据
	syncCtx, syncCancel := context.WithTimeout(context.Background(), 60*time.Second)
	ingredients, err := ingredientRepo.ListAll()
	if err != nil {
		logger.Fatal("Failed to load ingredients", zap.Error(err))
	}
	if success, failed, err := infraES.BulkSyncIngredients(syncCtx, ingredients); err != nil {
		logger.Error("Ingredient bulk sync failed", zap.Error(err))
	} else {
		logger.Info("Ingredient bulk sync done", zap.Int("success", success), zap.Int("failed", failed))
	}
	syncCancel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	topic := cfg.Kafka.Topics["recipe_events"]
	if topic == "" {
		logger.Fatal("Kafka topic recipe_events not configured")
	}
	groupID := "foodgram-index-worker"

	logger.Info("Index worker started",
		zap.String("topic", topic),
		zap.String("group", groupID),
		zap.Strings("brokers", cfg.Kafka.Brokers),
	)

	eventHandler := func(event *infraKafka.RecipeEvent) error {
		handleCtx, handleCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer handleCancel()

		switch event.Action {
		case infraKafka.RecipeActionDelete:
			return infraES.DeleteRecipe(handleCtx, event.RecipeID)
		case infraKafka.RecipeActionUpsert:
			recipe, err := recipeRepo.GetByIDWithRelations(event.RecipeID)
			if err != nil {
				// 事件到达前食谱已被删除，直接清理索引
				return infraES.DeleteRecipe(handleCtx, event.RecipeID)
			}
			return infraES.SyncRecipe(handleCtx, recipe, recipe.Author.UserName)
		default:
			logger.Warn("Unknown recipe event action", zap.String("action", event.Action))
			return nil
		}
	}

	infraKafka.StartRecipeEventConsumer(ctx, cfg.Kafka.Brokers, topic, groupID, eventHandler)
}
