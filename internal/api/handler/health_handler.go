package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler 健康检查 HTTP 处理器
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler 创建 HealthHandler
// db 为 nil 时返回 not-configured（数据库未配置的部署场景）
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health 健康检查，带轻量数据库 Ping
// GET /health 与 GET /api/health
func (h *HealthHandler) Health(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "not-configured"})
		return
	}

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "DB connection failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "connected"})
}
