package dto

// ── 楼层模块 DTO ──

// CreateFloorRequest 创建楼层请求
// floorNumber 允许 0（地面层），用指针区分缺省
type CreateFloorRequest struct {
	BuildingID  *uint   `json:"buildingId"  binding:"required"`
	FloorNumber *int    `json:"floorNumber" binding:"required"`
	Description *string `json:"description"`
}

// UpdateFloorRequest 更新楼层请求（缺省字段保持原值）
type UpdateFloorRequest struct {
	BuildingID  *uint   `json:"buildingId"`
	FloorNumber *int    `json:"floorNumber"`
	Description *string `json:"description"`
}

// FloorListRequest 楼层列表查询参数
type FloorListRequest struct {
	BuildingID *uint `form:"buildingId"`
}

// FloorResponse 楼层连带楼栋名称的响应
type FloorResponse struct {
	FloorID      uint   `json:"FloorID"`
	BuildingID   uint   `json:"BuildingID"`
	FloorNumber  int    `json:"FloorNumber"`
	Description  string `json:"Description"`
	BuildingName string `json:"BuildingName"`
}
