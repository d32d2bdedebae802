package dto

// ── 床位模块 DTO ──

// CreateBedRequest 创建床位请求
type CreateBedRequest struct {
	RoomID  *uint   `json:"roomId"  binding:"required"`
	BedCode string  `json:"bedCode" binding:"required"`
	Status  *string `json:"status"`
}

// UpdateBedRequest 更新床位请求（缺省字段保持原值）
type UpdateBedRequest struct {
	RoomID  *uint   `json:"roomId"`
	BedCode *string `json:"bedCode"`
	Status  *string `json:"status"`
}

// BedListRequest 床位列表查询参数
type BedListRequest struct {
	RoomID *uint `form:"roomId"`
}

// BedResponse 床位实体响应
type BedResponse struct {
	BedID   uint   `json:"BedID"`
	RoomID  uint   `json:"RoomID"`
	BedCode string `json:"BedCode"`
	Status  string `json:"Status"`
}

// BedDetailResponse 床位连带层级标签的响应
type BedDetailResponse struct {
	BedID        uint    `json:"BedID"`
	RoomID       uint    `json:"RoomID"`
	BedCode      string  `json:"BedCode"`
	Status       string  `json:"Status"`
	RoomNumber   *string `json:"RoomNumber"`
	FlatNumber   *string `json:"FlatNumber"`
	FloorNumber  *int    `json:"FloorNumber"`
	BuildingID   *uint   `json:"BuildingID"`
	BuildingName *string `json:"BuildingName"`
}
