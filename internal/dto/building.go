package dto

// ── 楼栋模块 DTO ──

// CreateBuildingRequest 创建楼栋请求
type CreateBuildingRequest struct {
	BuildingName string  `json:"buildingName" binding:"required"`
	Location     *string `json:"location"`
	Description  *string `json:"description"`
	Status       *string `json:"status"`
}

// UpdateBuildingRequest 更新楼栋请求（缺省字段保持原值）
type UpdateBuildingRequest struct {
	BuildingName *string `json:"buildingName"`
	Location     *string `json:"location"`
	Description  *string `json:"description"`
	Status       *string `json:"status"`
}

// BuildingResponse 楼栋响应
type BuildingResponse struct {
	BuildingID   uint   `json:"BuildingID"`
	BuildingName string `json:"BuildingName"`
	Location     string `json:"Location"`
	Description  string `json:"Description"`
	Status       string `json:"Status"`
}
