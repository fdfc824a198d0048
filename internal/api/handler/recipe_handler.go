package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/api/middleware"
	"foodgram-go/internal/api/response"
	"foodgram-go/internal/service"
	"foodgram-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RecipeHandler struct {
	recipeService       *service.RecipeService
	shoppingListService *service.ShoppingListService
	shortLinkService    *service.ShortLinkService
	searchService       *service.SearchService
}

func NewRecipeHandler(
	recipeService *service.RecipeService,
	shoppingListService *service.ShoppingListService,
	shortLinkService *service.ShortLinkService,
	searchService *service.SearchService,
) *RecipeHandler {
	return &RecipeHandler{
		recipeService:       recipeService,
		shoppingListService: shoppingListService,
		shortLinkService:    shortLinkService,
		searchService:       searchService,
	}
}

// List 获取食谱列表
// @Summary 获取食谱列表
// @Description 支持按作者、标签、收藏、购物车过滤，收藏和购物车过滤仅对登录用户生效
// @Tags 食谱
// @Produce json
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Param author query int false "作者ID"
// @Param tags query []string false "标签 slug，可多值"
// @Param is_favorited query bool false "只看我收藏的"
// @Param is_in_shopping_cart query bool false "只看我购物车中的"
// @Success 200 {object} response.Response{data=dto.RecipeListData} "获取成功"
// @Router /recipes [get]
func (h *RecipeHandler) List(c *gin.Context) {
	page, pageSize := parsePagination(c)

	filter := &dto.RecipeListFilter{
		TagSlugs:         c.QueryArray("tags"),
		IsFavorited:      parseBoolFlag(c.Query("is_favorited")),
		IsInShoppingCart: parseBoolFlag(c.Query("is_in_shopping_cart")),
	}
	if authorStr := c.Query("author"); authorStr != "" {
		authorID, err := strconv.ParseInt(authorStr, 10, 64)
		if err != nil {
			response.BadRequest(c, "无效的作者ID")
			return
		}
		filter.AuthorID = &authorID
	}

	data, err := h.recipeService.List(filter, page, pageSize, currentUserIDPtr(c))
	if err != nil {
		logger.Error("List recipes failed", zap.Error(err))
		response.InternalError(c, "获取食谱列表失败")
		return
	}

	response.OK(c, "获取食谱列表成功", data)
}

// Create 创建食谱
// @Summary 创建食谱
// @Description 创建食谱，image 为 base64 图片数据
// @Tags 食谱
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RecipeCreateRequest true "食谱信息"
// @Success 201 {object} response.Response{data=dto.RecipeInfo} "创建成功"
// @Failure 400 {object} response.ErrorResponse "校验失败"
// @Router /recipes [post]
func (h *RecipeHandler) Create(c *gin.Context) {
	var req dto.RecipeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	info, err := h.recipeService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		handleRecipeError(c, err)
		return
	}

	response.Created(c, "创建食谱成功", info)
}

// GetDetail 获取食谱详情
// @Summary 获取食谱详情
// @Tags 食谱
// @Produce json
// @Param id path int true "食谱ID"
// @Success 200 {object} response.Response{data=dto.RecipeInfo} "获取成功"
// @Failure 404 {object} response.ErrorResponse "食谱不存在"
// @Router /recipes/{id} [get]
func (h *RecipeHandler) GetDetail(c *gin.Context) {
	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的食谱ID")
		return
	}

	info, err := h.recipeService.GetDetail(recipeID, currentUserIDPtr(c))
	if err != nil {
		handleRecipeError(c, err)
		return
	}

	response.OK(c, "获取食谱详情成功", info)
}

// Update 更新食谱
// @Summary 更新食谱
// @Description 部分更新，ingredients 和 tags 提供时整体替换
// @Tags 食谱
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "食谱ID"
// @Param request body dto.RecipeUpdateRequest true "更新内容"
// @Success 200 {object} response.Response{data=dto.RecipeInfo} "更新成功"
// @Failure 403 {object} response.ErrorResponse "没有权限"
// @Failure 404 {object} response.ErrorResponse "食谱不存在"
// @Router /recipes/{id} [patch]
func (h *RecipeHandler) Update(c *gin.Context) {
	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的食谱ID")
		return
	}

	var req dto.RecipeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	info, err := h.recipeService.Update(c.Request.Context(), recipeID, userID, &req)
	if err != nil {
		handleRecipeError(c, err)
		return
	}

	response.OK(c, "更新食谱成功", info)
}

// Delete 删除食谱
// @Summary 删除食谱
// @Description 被任何用户收藏或加入购物车的食谱不允许删除
// @Tags 食谱
// @Produce json
// @Security BearerAuth
// @Param id path int true "食谱ID"
// @Success 204 "删除成功"
// @Failure 400 {object} response.ErrorResponse "食谱被收藏或在购物车中"
// @Failure 403 {object} response.ErrorResponse "没有权限"
// @Failure 404 {object} response.ErrorResponse "食谱不存在"
// @Router /recipes/{id} [delete]
func (h *RecipeHandler) Delete(c *gin.Context) {
	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的食谱ID")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	if err := h.recipeService.Delete(c.Request.Context(), recipeID, userID); err != nil {
		handleRecipeError(c, err)
		return
	}

	response.NoContent(c)
}

// GetLink 获取食谱短链接
// @Summary 获取食谱短链接
// @Description 同一食谱重复请求返回同一条短链接
// @Tags 食谱
// @Produce json
// @Param id path int true "食谱ID"
// @Success 200 {object} response.Response{data=dto.ShortLinkData} "获取成功"
// @Failure 404 {object} response.ErrorResponse "食谱不存在"
// @Router /recipes/{id}/get-link [get]
func (h *RecipeHandler) GetLink(c *gin.Context) {
	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的食谱ID")
		return
	}

	// 不存在的食谱不生成短链接
	if _, err := h.recipeService.GetDetail(recipeID, nil); err != nil {
		handleRecipeError(c, err)
		return
	}

	link, err := h.shortLinkService.GetOrCreateForRecipe(c.Request.Context(), recipeID)
	if err != nil {
		logger.Error("Get short link failed", zap.Int64("recipe_id", recipeID), zap.Error(err))
		response.InternalError(c, "获取短链接失败")
		return
	}

	response.OK(c, "获取短链接成功", dto.ShortLinkData{
		ShortLink: fmt.Sprintf("%s/s/%s", requestBaseURL(c), link.Token),
	})
}

// DownloadShoppingCart 下载购物清单
// @Summary 下载购物清单
// @Description 汇总购物车内全部食谱的食材，同名同单位跨食谱求和，以文本文件返回
// @Tags 食谱
// @Produce plain
// @Security BearerAuth
// @Success 200 {string} string "购物清单文本"
// @Router /recipes/download_shopping_cart [get]
func (h *RecipeHandler) DownloadShoppingCart(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)

	report, err := h.shoppingListService.BuildReport(userID)
	if err != nil {
		logger.Error("Build shopping list failed", zap.Error(err))
		response.InternalError(c, "生成购物清单失败")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="shopping_cart.txt"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(report))
}

// Search 搜索食谱
// @Summary 搜索食谱
// @Tags 食谱
// @Produce json
// @Param q query string true "关键词"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} response.Response{data=dto.RecipeListData} "搜索成功"
// @Router /recipes/search [get]
func (h *RecipeHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "请输入搜索关键词")
		return
	}

	page, pageSize := parsePagination(c)

	data, err := h.searchService.SearchRecipes(query, page, pageSize, currentUserIDPtr(c))
	if err != nil {
		logger.Error("Search recipes failed", zap.Error(err))
		response.InternalError(c, "搜索食谱失败")
		return
	}

	response.OK(c, "搜索食谱成功", data)
}

// parseBoolFlag 解析布尔过滤参数，"1" 和 "true" 视为真
func parseBoolFlag(val string) bool {
	return val == "1" || val == "true"
}

// requestBaseURL 根据请求还原站点基础 URL
func requestBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, c.Request.Host)
}

func handleRecipeError(c *gin.Context, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		response.BadRequest(c, vErr.Message)
	case errors.Is(err, service.ErrRecipeFavorited),
		errors.Is(err, service.ErrRecipeInCarts):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrRecipeNoPermission):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrRecipeNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("Recipe operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
