package handler

import (
	"errors"
	"net/http"

	"foodgram-go/internal/api/response"
	"foodgram-go/internal/service"
	"foodgram-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ShortLinkHandler struct {
	shortLinkService *service.ShortLinkService
}

func NewShortLinkHandler(shortLinkService *service.ShortLinkService) *ShortLinkHandler {
	return &ShortLinkHandler{shortLinkService: shortLinkService}
}

// Redirect 短链接跳转
// @Summary 短链接跳转
// @Description 将短链接令牌 302 重定向到食谱页面
// @Tags 短链接
// @Param token path string true "短链接令牌"
// @Success 302 {string} string "重定向"
// @Failure 404 {object} response.ErrorResponse "短链接不存在"
// @Router /s/{token} [get]
func (h *ShortLinkHandler) Redirect(c *gin.Context) {
	token := c.Param("token")

	target, err := h.shortLinkService.Resolve(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, service.ErrShortLinkNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("Resolve short link failed", zap.String("token", token), zap.Error(err))
		response.InternalError(c, "短链接解析失败")
		return
	}

	c.Redirect(http.StatusFound, target)
}
