package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateShortToken 生成指定长度的短链接令牌
// 令牌取自 UUID 去掉连字符后的前缀，碰撞由调用方检查并重新生成
func GenerateShortToken(length int) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	if length <= 0 || length > len(id) {
		length = len(id)
	}
	return id[:length]
}
