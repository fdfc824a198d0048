package kafka

import (
	"context"
	"encoding/json"
	"time"

	"foodgram-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RecipeEventHandler 处理食谱变更事件的回调函数
type RecipeEventHandler func(event *RecipeEvent) error

// StartRecipeEventConsumer 启动食谱事件消费者（阻塞，需在 goroutine 中运行）
// ctx 取消后会自动停止
func StartRecipeEventConsumer(ctx context.Context, brokers []string, topic, groupID string, handler RecipeEventHandler) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		StartOffset:    kafka.LastOffset,
	})

	defer func() {
		if err := reader.Close(); err != nil {
			logger.Error("Failed to close kafka consumer", zap.Error(err))
		}
		logger.Info("Kafka recipe event consumer stopped")
	}()

	logger.Info("Kafka recipe event consumer started",
		zap.String("topic", topic),
		zap.String("group", groupID),
	)

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("Failed to read kafka message", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}

		var event RecipeEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logger.Error("Failed to unmarshal recipe event",
				zap.Error(err),
				zap.ByteString("value", msg.Value),
			)
			continue
		}

		logger.Info("Received recipe event",
			zap.Int64("recipe_id", event.RecipeID),
			zap.String("action", event.Action),
		)

		if err := handler(&event); err != nil {
			logger.Error("Failed to handle recipe event",
				zap.Int64("recipe_id", event.RecipeID),
				zap.Error(err),
			)
		}
	}
}
