package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountUnmarshalJSON(t *testing.T) {
	type payload struct {
		Amount Amount `json:"amount"`
	}

	t.Run("JSON 数字", func(t *testing.T) {
		var p payload
		assert.NoError(t, json.Unmarshal([]byte(`{"amount": 15}`), &p))
		assert.Equal(t, "15", p.Amount.String())
	})

	t.Run("JSON 字符串", func(t *testing.T) {
		var p payload
		assert.NoError(t, json.Unmarshal([]byte(`{"amount": "20"}`), &p))
		assert.Equal(t, "20", p.Amount.String())
	})

	t.Run("保留非整数字面值交由服务层校验", func(t *testing.T) {
		var p payload
		assert.NoError(t, json.Unmarshal([]byte(`{"amount": 1.5}`), &p))
		assert.Equal(t, "1.5", p.Amount.String())

		assert.NoError(t, json.Unmarshal([]byte(`{"amount": "abc"}`), &p))
		assert.Equal(t, "abc", p.Amount.String())
	})
}
