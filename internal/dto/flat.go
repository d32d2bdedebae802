package dto

// ── 套间模块 DTO ──

// CreateFlatRequest 创建套间请求
type CreateFlatRequest struct {
	FloorID    *uint   `json:"floorId"    binding:"required"`
	FlatNumber string  `json:"flatNumber" binding:"required"`
	FlatType   *string `json:"flatType"`
	Status     *string `json:"status"`
}

// UpdateFlatRequest 更新套间请求（缺省字段保持原值）
type UpdateFlatRequest struct {
	FloorID    *uint   `json:"floorId"`
	FlatNumber *string `json:"flatNumber"`
	FlatType   *string `json:"flatType"`
	Status     *string `json:"status"`
}

// FlatListRequest 套间列表查询参数
type FlatListRequest struct {
	FloorID *uint `form:"floorId"`
}

// FlatResponse 套间实体响应
type FlatResponse struct {
	FlatID     uint   `json:"FlatID"`
	FloorID    uint   `json:"FloorID"`
	FlatNumber string `json:"FlatNumber"`
	FlatType   string `json:"FlatType"`
	Status     string `json:"Status"`
}

// FlatDetailResponse 套间连带层级标签的响应
type FlatDetailResponse struct {
	FlatID       uint   `json:"FlatID"`
	FloorID      uint   `json:"FloorID"`
	FlatNumber   string `json:"FlatNumber"`
	FlatType     string `json:"FlatType"`
	Status       string `json:"Status"`
	FloorNumber  int    `json:"FloorNumber"`
	BuildingID   uint   `json:"BuildingID"`
	BuildingName string `json:"BuildingName"`
}
