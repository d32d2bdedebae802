package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"dormbook/internal/dto"
	"dormbook/internal/service"
	"dormbook/pkg/response"
)

// BedHandler 床位模块 HTTP 处理器
type BedHandler struct {
	bedSvc service.BedService
}

// NewBedHandler 创建 BedHandler
func NewBedHandler(bedSvc service.BedService) *BedHandler {
	return &BedHandler{bedSvc: bedSvc}
}

// ListBeds 获取床位列表（连带层级标签，可按房间过滤）
// GET /api/beds?roomId=1
func (h *BedHandler) ListBeds(c *gin.Context) {
	var req dto.BedListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	beds, err := h.bedSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c, "Failed to fetch beds")
		return
	}

	response.OK(c, beds)
}

// CreateBed 创建床位
// POST /api/beds
func (h *BedHandler) CreateBed(c *gin.Context) {
	var req dto.CreateBedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "roomId and bedCode are required")
		return
	}

	bed, err := h.bedSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleBedError(c, err, "Failed to create bed")
		return
	}

	response.Created(c, bed)
}

// UpdateBed 更新床位
// PUT /api/beds/:id
func (h *BedHandler) UpdateBed(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateBedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	bed, err := h.bedSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleBedError(c, err, "Failed to update bed")
		return
	}

	response.OK(c, bed)
}

// DeleteBed 删除床位
// DELETE /api/beds/:id
func (h *BedHandler) DeleteBed(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.bedSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleBedError(c, err, "Failed to delete bed")
		return
	}

	response.NoContent(c)
}

// handleBedError 统一处理床位模块业务错误
func (h *BedHandler) handleBedError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrBedNotFound):
		response.NotFound(c, "Bed not found")
	case errors.Is(err, service.ErrBedCodeTaken):
		response.Conflict(c, "BedCode already exists in this room")
	default:
		response.InternalError(c, fallback)
	}
}
