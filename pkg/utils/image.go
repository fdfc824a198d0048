package utils

import (
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalidImageData = errors.New("invalid base64 image data")

// 支持的图片子类型到文件扩展名的映射
var imageExtensions = map[string]string{
	"png":  "png",
	"jpeg": "jpg",
	"jpg":  "jpg",
	"gif":  "gif",
	"webp": "webp",
}

// DecodeBase64Image 解析 data:image/...;base64,... 形式的图片数据
// 返回解码后的字节和文件扩展名
func DecodeBase64Image(data string) ([]byte, string, error) {
	const prefix = "data:image/"

	if !strings.HasPrefix(data, prefix) {
		return nil, "", ErrInvalidImageData
	}

	rest := data[len(prefix):]
	sep := strings.Index(rest, ";base64,")
	if sep < 0 {
		return nil, "", ErrInvalidImageData
	}

	ext, ok := imageExtensions[strings.ToLower(rest[:sep])]
	if !ok {
		return nil, "", ErrInvalidImageData
	}

	raw, err := base64.StdEncoding.DecodeString(rest[sep+len(";base64,"):])
	if err != nil || len(raw) == 0 {
		return nil, "", ErrInvalidImageData
	}

	return raw, ext, nil
}
