package handler

import (
	"strconv"

	"foodgram-go/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// parsePagination 解析分页参数，page 默认 1，page_size 默认 20、上限 100
func parsePagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	return page, pageSize
}

// currentUserIDPtr 获取当前登录用户 ID，匿名请求返回 nil
func currentUserIDPtr(c *gin.Context) *int64 {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return nil
	}
	return &userID
}
