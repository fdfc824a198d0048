package handler

import (
	"errors"
	"strconv"

	"foodgram-go/internal/api/middleware"
	"foodgram-go/internal/api/response"
	"foodgram-go/internal/model"
	"foodgram-go/internal/service"
	"foodgram-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RelationHandler 收藏与购物车接口
type RelationHandler struct {
	relationService *service.RelationService
}

func NewRelationHandler(relationService *service.RelationService) *RelationHandler {
	return &RelationHandler{relationService: relationService}
}

// Favorite 收藏食谱
// @Summary 收藏食谱
// @Tags 收藏
// @Produce json
// @Security BearerAuth
// @Param id path int true "食谱ID"
// @Success 201 {object} response.Response{data=dto.RecipeBrief} "收藏成功"
// @Failure 400 {object} response.ErrorResponse "已收藏"
// @Failure 404 {object} response.ErrorResponse "食谱不存在"
// @Router /recipes/{id}/favorite [post]
func (h *RelationHandler) Favorite(c *gin.Context) {
	h.add(c, model.RelationFavorite, "收藏成功")
}

// Unfavorite 取消收藏
// @Summary 取消收藏
// @Tags 收藏
// @Produce json
// @Security BearerAuth
// @Param id path int true "食谱ID"
// @Success 204 "取消收藏成功"
// @Failure 400 {object} response.ErrorResponse "未收藏"
// @Failure 404 {object} response.ErrorResponse "食谱不存在"
// @Router /recipes/{id}/favorite [delete]
func (h *RelationHandler) Unfavorite(c *gin.Context) {
	h.remove(c, model.RelationFavorite)
}

// AddToCart 加入购物车
// @Summary 加入购物车
// @Tags 购物车
// @Produce json
// @Security BearerAuth
// @Param id path int true "食谱ID"
// @Success 201 {object} response.Response{data=dto.RecipeBrief} "加入成功"
// @Failure 400 {object} response.ErrorResponse "已在购物车中"
// @Failure 404 {object} response.ErrorResponse "食谱不存在"
// @Router /recipes/{id}/shopping_cart [post]
func (h *RelationHandler) AddToCart(c *gin.Context) {
	h.add(c, model.RelationShoppingCart, "加入购物车成功")
}

// RemoveFromCart 移出购物车
// @Summary 移出购物车
// @Tags 购物车
// @Produce json
// @Security BearerAuth
// @Param id path int true "食谱ID"
// @Success 204 "移出成功"
// @Failure 400 {object} response.ErrorResponse "不在购物车中"
// @Failure 404 {object} response.ErrorResponse "食谱不存在"
// @Router /recipes/{id}/shopping_cart [delete]
func (h *RelationHandler) RemoveFromCart(c *gin.Context) {
	h.remove(c, model.RelationShoppingCart)
}

func (h *RelationHandler) add(c *gin.Context, kind model.RelationKind, message string) {
	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的食谱ID")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	brief, err := h.relationService.Add(userID, recipeID, kind)
	if err != nil {
		handleRelationError(c, err)
		return
	}

	response.Created(c, message, brief)
}

func (h *RelationHandler) remove(c *gin.Context, kind model.RelationKind) {
	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的食谱ID")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	if err := h.relationService.Remove(userID, recipeID, kind); err != nil {
		handleRelationError(c, err)
		return
	}

	response.NoContent(c)
}

func handleRelationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAlreadyFavorited),
		errors.Is(err, service.ErrNotFavorited),
		errors.Is(err, service.ErrAlreadyInCart),
		errors.Is(err, service.ErrNotInCart):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrRecipeNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("Relation operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
