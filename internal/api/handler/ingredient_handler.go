package handler

import (
	"errors"
	"strconv"

	"foodgram-go/internal/api/response"
	"foodgram-go/internal/service"
	"foodgram-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type IngredientHandler struct {
	ingredientService *service.IngredientService
	searchService     *service.SearchService
}

func NewIngredientHandler(ingredientService *service.IngredientService, searchService *service.SearchService) *IngredientHandler {
	return &IngredientHandler{
		ingredientService: ingredientService,
		searchService:     searchService,
	}
}

// List 获取食材列表
// @Summary 获取食材列表
// @Description name 参数非空时按名称前缀搜索
// @Tags 食材
// @Produce json
// @Param name query string false "名称前缀"
// @Success 200 {object} response.Response{data=[]dto.IngredientInfo} "获取成功"
// @Router /ingredients [get]
func (h *IngredientHandler) List(c *gin.Context) {
	name := c.Query("name")

	if name != "" {
		infos, err := h.searchService.SearchIngredients(name)
		if err != nil {
			logger.Error("Search ingredients failed", zap.Error(err))
			response.InternalError(c, "搜索食材失败")
			return
		}
		response.OK(c, "获取食材列表成功", infos)
		return
	}

	infos, err := h.ingredientService.List("")
	if err != nil {
		logger.Error("List ingredients failed", zap.Error(err))
		response.InternalError(c, "获取食材列表失败")
		return
	}

	response.OK(c, "获取食材列表成功", infos)
}

// Get 获取单个食材
// @Summary 获取食材
// @Tags 食材
// @Produce json
// @Param id path int true "食材ID"
// @Success 200 {object} response.Response{data=dto.IngredientInfo} "获取成功"
// @Failure 404 {object} response.ErrorResponse "食材不存在"
// @Router /ingredients/{id} [get]
func (h *IngredientHandler) Get(c *gin.Context) {
	ingredientID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的食材ID")
		return
	}

	info, err := h.ingredientService.Get(ingredientID)
	if err != nil {
		if errors.Is(err, service.ErrIngredientNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("Get ingredient failed", zap.Error(err))
		response.InternalError(c, "获取食材失败")
		return
	}

	response.OK(c, "获取食材成功", info)
}
