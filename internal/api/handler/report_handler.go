package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"dormbook/internal/service"
	"dormbook/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler 报表模块 HTTP 处理器
type ReportHandler struct {
	reportSvc service.ReportService
}

// NewReportHandler 创建 ReportHandler
func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// OccupancySummary 获取全局与分楼栋占用汇总
// GET /api/reports/summary
func (h *ReportHandler) OccupancySummary(c *gin.Context) {
	summary, err := h.reportSvc.Summary(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to build occupancy summary")
		return
	}

	response.OK(c, summary)
}

// ExportOccupancy 导出床位占用明细 Excel
// GET /api/export/occupancy
func (h *ReportHandler) ExportOccupancy(c *gin.Context) {
	buf, filename, err := h.reportSvc.ExportOccupancy(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to export occupancy report")
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
