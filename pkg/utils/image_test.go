package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeBase64Image(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("image-bytes"))

	t.Run("png", func(t *testing.T) {
		raw, ext, err := DecodeBase64Image("data:image/png;base64," + payload)
		assert.NoError(t, err)
		assert.Equal(t, "png", ext)
		assert.Equal(t, []byte("image-bytes"), raw)
	})

	t.Run("jpeg 扩展名归一为 jpg", func(t *testing.T) {
		_, ext, err := DecodeBase64Image("data:image/jpeg;base64," + payload)
		assert.NoError(t, err)
		assert.Equal(t, "jpg", ext)
	})

	t.Run("非法输入", func(t *testing.T) {
		cases := []string{
			"",
			"no-prefix" + payload,
			"data:image/png," + payload,
			"data:image/tiff;base64," + payload,
			"data:image/png;base64,@@@invalid@@@",
			"data:image/png;base64,",
		}
		for _, c := range cases {
			_, _, err := DecodeBase64Image(c)
			assert.ErrorIs(t, err, ErrInvalidImageData)
		}
	})
}
