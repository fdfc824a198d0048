package handler

import (
	"errors"
	"strconv"

	"foodgram-go/internal/api/middleware"
	"foodgram-go/internal/api/response"
	"foodgram-go/internal/service"
	"foodgram-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SubscriptionHandler struct {
	subscriptionService *service.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// parseRecipesLimit 解析 recipes_limit 参数，0 表示不限制
func parseRecipesLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("recipes_limit", "0"))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

// Subscribe 订阅作者
// @Summary 订阅作者
// @Tags 订阅
// @Produce json
// @Security BearerAuth
// @Param id path int true "作者ID"
// @Param recipes_limit query int false "返回的作者食谱数量上限"
// @Success 201 {object} response.Response{data=dto.SubscriptionAuthorInfo} "订阅成功"
// @Failure 400 {object} response.ErrorResponse "重复订阅或订阅自己"
// @Failure 404 {object} response.ErrorResponse "作者不存在"
// @Router /users/{id}/subscribe [post]
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	authorID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	info, err := h.subscriptionService.Subscribe(userID, authorID, parseRecipesLimit(c))
	if err != nil {
		handleSubscriptionError(c, err)
		return
	}

	response.Created(c, "订阅成功", info)
}

// Unsubscribe 取消订阅
// @Summary 取消订阅
// @Tags 订阅
// @Produce json
// @Security BearerAuth
// @Param id path int true "作者ID"
// @Success 204 "取消订阅成功"
// @Failure 400 {object} response.ErrorResponse "尚未订阅"
// @Failure 404 {object} response.ErrorResponse "作者不存在"
// @Router /users/{id}/subscribe [delete]
func (h *SubscriptionHandler) Unsubscribe(c *gin.Context) {
	authorID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	if err := h.subscriptionService.Unsubscribe(userID, authorID); err != nil {
		handleSubscriptionError(c, err)
		return
	}

	response.NoContent(c)
}

// ListSubscriptions 获取我的订阅列表
// @Summary 获取订阅列表
// @Tags 订阅
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Param recipes_limit query int false "每位作者返回的食谱数量上限"
// @Success 200 {object} response.Response{data=dto.SubscriptionListData} "获取成功"
// @Router /users/subscriptions [get]
func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)
	page, pageSize := parsePagination(c)

	data, err := h.subscriptionService.List(userID, page, pageSize, parseRecipesLimit(c))
	if err != nil {
		logger.Error("List subscriptions failed", zap.Error(err))
		response.InternalError(c, "获取订阅列表失败")
		return
	}

	response.OK(c, "获取订阅列表成功", data)
}

func handleSubscriptionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSelfSubscribe),
		errors.Is(err, service.ErrAlreadySubscribed),
		errors.Is(err, service.ErrNotSubscribed):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("Subscription operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
