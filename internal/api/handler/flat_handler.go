package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"dormbook/internal/dto"
	"dormbook/internal/service"
	"dormbook/pkg/response"
)

// FlatHandler 套间模块 HTTP 处理器
type FlatHandler struct {
	flatSvc service.FlatService
}

// NewFlatHandler 创建 FlatHandler
func NewFlatHandler(flatSvc service.FlatService) *FlatHandler {
	return &FlatHandler{flatSvc: flatSvc}
}

// ListFlats 获取套间列表（连带层级标签，可按楼层过滤）
// GET /api/flats?floorId=1
func (h *FlatHandler) ListFlats(c *gin.Context) {
	var req dto.FlatListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	flats, err := h.flatSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c, "Failed to fetch flats")
		return
	}

	response.OK(c, flats)
}

// CreateFlat 创建套间
// POST /api/flats
func (h *FlatHandler) CreateFlat(c *gin.Context) {
	var req dto.CreateFlatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "floorId and flatNumber are required")
		return
	}

	flat, err := h.flatSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleFlatError(c, err, "Failed to create flat")
		return
	}

	response.Created(c, flat)
}

// UpdateFlat 更新套间
// PUT /api/flats/:id
func (h *FlatHandler) UpdateFlat(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateFlatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	flat, err := h.flatSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleFlatError(c, err, "Failed to update flat")
		return
	}

	response.OK(c, flat)
}

// DeleteFlat 删除套间
// DELETE /api/flats/:id
func (h *FlatHandler) DeleteFlat(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.flatSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleFlatError(c, err, "Failed to delete flat")
		return
	}

	response.NoContent(c)
}

// handleFlatError 统一处理套间模块业务错误
func (h *FlatHandler) handleFlatError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrFlatNotFound):
		response.NotFound(c, "Flat not found")
	default:
		response.InternalError(c, fallback)
	}
}
