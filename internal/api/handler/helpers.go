package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"dormbook/pkg/response"
)

// parseIDParam 解析路径参数 :id 为 uint
// 解析失败时写入 400 响应并返回 false，调用方直接 return
func parseIDParam(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "Invalid id")
		return 0, false
	}
	return uint(id), true
}
