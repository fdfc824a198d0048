package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateShortToken(t *testing.T) {
	t.Run("指定长度", func(t *testing.T) {
		token := GenerateShortToken(8)
		assert.Len(t, token, 8)
		assert.NotContains(t, token, "-")
	})

	t.Run("非法长度回退为完整长度", func(t *testing.T) {
		assert.Len(t, GenerateShortToken(0), 32)
		assert.Len(t, GenerateShortToken(100), 32)
	})

	t.Run("多次调用结果不同", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 50; i++ {
			seen[GenerateShortToken(16)] = true
		}
		assert.Len(t, seen, 50)
	})
}
