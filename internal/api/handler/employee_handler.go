package handler

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"dormbook/internal/dto"
	"dormbook/internal/service"
	"dormbook/pkg/response"
)

// EmployeeHandler 员工模块 HTTP 处理器
type EmployeeHandler struct {
	employeeSvc service.EmployeeService
}

// NewEmployeeHandler 创建 EmployeeHandler
func NewEmployeeHandler(employeeSvc service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeSvc: employeeSvc}
}

// ListEmployees 获取员工列表
// GET /api/employees
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	employees, err := h.employeeSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to fetch employees")
		return
	}

	response.OK(c, employees)
}

// CreateEmployee 创建员工
// POST /api/employees
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "employeeCode, firstName, lastName, and gender are required")
		return
	}

	employee, err := h.employeeSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleEmployeeError(c, err, "Failed to create employee")
		return
	}

	response.Created(c, employee)
}

// UpdateEmployee 更新员工
// PUT /api/employees/:id
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	employee, err := h.employeeSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleEmployeeError(c, err, "Failed to update employee")
		return
	}

	response.OK(c, employee)
}

// DeleteEmployee 删除员工
// DELETE /api/employees/:id
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.employeeSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleEmployeeError(c, err, "Failed to delete employee")
		return
	}

	response.NoContent(c)
}

// ImportEmployees 批量导入员工（multipart 上传 .xlsx 文件，表单字段名 file）
// POST /api/employees/import
func (h *EmployeeHandler) ImportEmployees(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}

	if ext := strings.ToLower(filepath.Ext(fileHeader.Filename)); ext != ".xlsx" {
		response.BadRequest(c, "Only .xlsx files are supported")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	rows, err := h.employeeSvc.ParseImportFile(file)
	if err != nil {
		// 解析失败都是文件本身的问题，错误信息直接回显
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.employeeSvc.ImportEmployees(c.Request.Context(), rows)
	if err != nil {
		response.InternalError(c, "Failed to import employees")
		return
	}

	response.OK(c, result)
}

// handleEmployeeError 统一处理员工模块业务错误
func (h *EmployeeHandler) handleEmployeeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, "Employee not found")
	case errors.Is(err, service.ErrEmployeeCodeTaken):
		response.Conflict(c, "EmployeeCode already exists")
	default:
		response.InternalError(c, fallback)
	}
}
