package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"dormbook/internal/dto"
	"dormbook/internal/service"
	"dormbook/pkg/response"
)

// RoomHandler 房间模块 HTTP 处理器
type RoomHandler struct {
	roomSvc service.RoomService
}

// NewRoomHandler 创建 RoomHandler
func NewRoomHandler(roomSvc service.RoomService) *RoomHandler {
	return &RoomHandler{roomSvc: roomSvc}
}

// ListRooms 获取房间列表（连带层级标签，可按套间过滤）
// GET /api/rooms?flatId=1
func (h *RoomHandler) ListRooms(c *gin.Context) {
	var req dto.RoomListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	rooms, err := h.roomSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c, "Failed to fetch rooms")
		return
	}

	response.OK(c, rooms)
}

// CreateRoom 创建房间
// POST /api/rooms
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "flatId, roomNumber and maxOccupancy are required")
		return
	}

	room, err := h.roomSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleRoomError(c, err, "Failed to create room")
		return
	}

	response.Created(c, room)
}

// UpdateRoom 更新房间
// PUT /api/rooms/:id
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	room, err := h.roomSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleRoomError(c, err, "Failed to update room")
		return
	}

	response.OK(c, room)
}

// DeleteRoom 删除房间
// DELETE /api/rooms/:id
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.roomSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleRoomError(c, err, "Failed to delete room")
		return
	}

	response.NoContent(c)
}

// handleRoomError 统一处理房间模块业务错误
func (h *RoomHandler) handleRoomError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrRoomNotFound):
		response.NotFound(c, "Room not found")
	default:
		response.InternalError(c, fallback)
	}
}
