package service

import "context"

// ImageStore 图片存储接口，生产环境由 MinIO 实现
type ImageStore interface {
	Save(ctx context.Context, bucket, objectName string, data []byte, contentType string) (string, error)
}

// contentTypeForExt 根据扩展名返回 Content-Type
func contentTypeForExt(ext string) string {
	switch ext {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	default:
		return "image/png"
	}
}
