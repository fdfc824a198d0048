package dto

// ShortLinkData 短链接响应数据
type ShortLinkData struct {
	ShortLink string `json:"short-link"`
}
