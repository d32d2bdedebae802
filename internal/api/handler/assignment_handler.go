package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"dormbook/internal/dto"
	"dormbook/internal/service"
	"dormbook/pkg/response"
)

// AssignmentHandler 床位分配模块 HTTP 处理器
type AssignmentHandler struct {
	assignmentSvc service.AssignmentService
}

// NewAssignmentHandler 创建 AssignmentHandler
func NewAssignmentHandler(assignmentSvc service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentSvc: assignmentSvc}
}

// ListAssignments 获取分配列表（连带员工与床位层级标签）
// GET /api/assignments
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	assignments, err := h.assignmentSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to fetch assignments")
		return
	}

	response.OK(c, assignments)
}

// CreateAssignment 创建分配并占用床位
// POST /api/assignments
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var req dto.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "employeeId, bedId and startDate are required")
		return
	}

	assignment, err := h.assignmentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleAssignmentError(c, err, "Failed to create assignment")
		return
	}

	response.Created(c, assignment)
}

// UpdateAssignment 更新分配，状态改为 Closed 时按存活分配数回收床位
// PUT /api/assignments/:id
func (h *AssignmentHandler) UpdateAssignment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	assignment, err := h.assignmentSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleAssignmentError(c, err, "Failed to update assignment")
		return
	}

	response.OK(c, assignment)
}

// DeleteAssignment 删除分配并回收床位，返回受影响的床位
// DELETE /api/assignments/:id
func (h *AssignmentHandler) DeleteAssignment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.assignmentSvc.Delete(c.Request.Context(), id)
	if err != nil {
		h.handleAssignmentError(c, err, "Failed to delete assignment")
		return
	}

	response.OK(c, result)
}

// handleAssignmentError 统一处理分配模块业务错误
func (h *AssignmentHandler) handleAssignmentError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrAssignmentNotFound):
		response.NotFound(c, "Assignment not found")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
	default:
		response.InternalError(c, fallback)
	}
}
