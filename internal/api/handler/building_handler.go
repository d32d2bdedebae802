package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"dormbook/internal/dto"
	"dormbook/internal/service"
	"dormbook/pkg/response"
)

// BuildingHandler 楼栋模块 HTTP 处理器
type BuildingHandler struct {
	buildingSvc service.BuildingService
}

// NewBuildingHandler 创建 BuildingHandler
func NewBuildingHandler(buildingSvc service.BuildingService) *BuildingHandler {
	return &BuildingHandler{buildingSvc: buildingSvc}
}

// ListBuildings 获取楼栋列表
// GET /api/buildings
func (h *BuildingHandler) ListBuildings(c *gin.Context) {
	buildings, err := h.buildingSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to fetch buildings")
		return
	}

	response.OK(c, buildings)
}

// CreateBuilding 创建楼栋
// POST /api/buildings
func (h *BuildingHandler) CreateBuilding(c *gin.Context) {
	var req dto.CreateBuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "buildingName is required")
		return
	}

	building, err := h.buildingSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleBuildingError(c, err, "Failed to create building")
		return
	}

	response.Created(c, building)
}

// UpdateBuilding 更新楼栋
// PUT /api/buildings/:id
func (h *BuildingHandler) UpdateBuilding(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateBuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	building, err := h.buildingSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleBuildingError(c, err, "Failed to update building")
		return
	}

	response.OK(c, building)
}

// DeleteBuilding 删除楼栋
// DELETE /api/buildings/:id
func (h *BuildingHandler) DeleteBuilding(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.buildingSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleBuildingError(c, err, "Failed to delete building")
		return
	}

	response.NoContent(c)
}

// handleBuildingError 统一处理楼栋模块业务错误
func (h *BuildingHandler) handleBuildingError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrBuildingNotFound):
		response.NotFound(c, "Building not found")
	default:
		response.InternalError(c, fallback)
	}
}
