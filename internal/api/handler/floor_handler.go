package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"dormbook/internal/dto"
	"dormbook/internal/service"
	"dormbook/pkg/response"
)

// FloorHandler 楼层模块 HTTP 处理器
type FloorHandler struct {
	floorSvc service.FloorService
}

// NewFloorHandler 创建 FloorHandler
func NewFloorHandler(floorSvc service.FloorService) *FloorHandler {
	return &FloorHandler{floorSvc: floorSvc}
}

// ListFloors 获取楼层列表（连带楼栋名，可按楼栋过滤）
// GET /api/floors?buildingId=1
func (h *FloorHandler) ListFloors(c *gin.Context) {
	var req dto.FloorListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	floors, err := h.floorSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c, "Failed to fetch floors")
		return
	}

	response.OK(c, floors)
}

// CreateFloor 创建楼层
// POST /api/floors
func (h *FloorHandler) CreateFloor(c *gin.Context) {
	var req dto.CreateFloorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "buildingId and floorNumber are required")
		return
	}

	floor, err := h.floorSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleFloorError(c, err, "Failed to create floor")
		return
	}

	response.Created(c, floor)
}

// UpdateFloor 更新楼层
// PUT /api/floors/:id
func (h *FloorHandler) UpdateFloor(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateFloorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	floor, err := h.floorSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleFloorError(c, err, "Failed to update floor")
		return
	}

	response.OK(c, floor)
}

// DeleteFloor 删除楼层
// DELETE /api/floors/:id
func (h *FloorHandler) DeleteFloor(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.floorSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleFloorError(c, err, "Failed to delete floor")
		return
	}

	response.NoContent(c)
}

// handleFloorError 统一处理楼层模块业务错误
func (h *FloorHandler) handleFloorError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrFloorNotFound):
		response.NotFound(c, "Floor not found")
	default:
		response.InternalError(c, fallback)
	}
}
