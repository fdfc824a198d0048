package handler

import (
	"errors"
	"strconv"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/api/middleware"
	"foodgram-go/internal/api/response"
	"foodgram-go/internal/service"
	"foodgram-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers 获取用户列表
// @Summary 获取用户列表
// @Tags 用户
// @Produce json
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} response.Response{data=dto.UserListData} "获取成功"
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, pageSize := parsePagination(c)

	data, err := h.userService.ListUsers(page, pageSize, currentUserIDPtr(c))
	if err != nil {
		logger.Error("List users failed", zap.Error(err))
		response.InternalError(c, "获取用户列表失败")
		return
	}

	response.OK(c, "获取用户列表成功", data)
}

// GetUser 获取用户信息
// @Summary 获取用户信息
// @Tags 用户
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response{data=dto.UserInfo} "获取成功"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	info, err := h.userService.GetUserByID(userID, currentUserIDPtr(c))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("Get user failed", zap.Error(err))
		response.InternalError(c, "获取用户信息失败")
		return
	}

	response.OK(c, "获取用户信息成功", info)
}

// SetAvatar 设置当前用户头像
// @Summary 设置头像
// @Description 上传 base64 图片数据作为当前用户头像
// @Tags 用户
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AvatarUpdateRequest true "头像数据"
// @Success 200 {object} response.Response "设置成功"
// @Failure 400 {object} response.ErrorResponse "图片数据无效"
// @Router /users/me/avatar [put]
func (h *UserHandler) SetAvatar(c *gin.Context) {
	var req dto.AvatarUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	avatarURL, err := h.userService.SetAvatar(c.Request.Context(), userID, req.Avatar)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			response.BadRequest(c, vErr.Message)
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, err.Error())
		default:
			logger.Error("Set avatar failed", zap.Error(err))
			response.InternalError(c, "设置头像失败")
		}
		return
	}

	response.OK(c, "设置头像成功", gin.H{"avatar": avatarURL})
}

// DeleteAvatar 清除当前用户头像
// @Summary 清除头像
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Success 204 "清除成功"
// @Router /users/me/avatar [delete]
func (h *UserHandler) DeleteAvatar(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)

	if err := h.userService.DeleteAvatar(userID); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("Delete avatar failed", zap.Error(err))
		response.InternalError(c, "清除头像失败")
		return
	}

	response.NoContent(c)
}
