package dto

// ── 房间模块 DTO ──

// CreateRoomRequest 创建房间请求
type CreateRoomRequest struct {
	FlatID            *uint   `json:"flatId"       binding:"required"`
	RoomNumber        string  `json:"roomNumber"   binding:"required"`
	MaxOccupancy      *int    `json:"maxOccupancy" binding:"required"`
	RoomType          *string `json:"roomType"`
	GenderRestriction *string `json:"genderRestriction"`
	Status            *string `json:"status"`
}

// UpdateRoomRequest 更新房间请求（缺省字段保持原值）
type UpdateRoomRequest struct {
	FlatID            *uint   `json:"flatId"`
	RoomNumber        *string `json:"roomNumber"`
	RoomType          *string `json:"roomType"`
	MaxOccupancy      *int    `json:"maxOccupancy"`
	GenderRestriction *string `json:"genderRestriction"`
	Status            *string `json:"status"`
}

// RoomListRequest 房间列表查询参数
type RoomListRequest struct {
	FlatID *uint `form:"flatId"`
}

// RoomResponse 房间实体响应
type RoomResponse struct {
	RoomID            uint   `json:"RoomID"`
	FlatID            uint   `json:"FlatID"`
	RoomNumber        string `json:"RoomNumber"`
	RoomType          string `json:"RoomType"`
	MaxOccupancy      int    `json:"MaxOccupancy"`
	GenderRestriction string `json:"GenderRestriction"`
	Status            string `json:"Status"`
}

// RoomDetailResponse 房间连带层级标签的响应
type RoomDetailResponse struct {
	RoomID            uint    `json:"RoomID"`
	FlatID            uint    `json:"FlatID"`
	RoomNumber        string  `json:"RoomNumber"`
	RoomType          string  `json:"RoomType"`
	MaxOccupancy      int     `json:"MaxOccupancy"`
	GenderRestriction string  `json:"GenderRestriction"`
	Status            string  `json:"Status"`
	FlatNumber        *string `json:"FlatNumber"`
	FloorNumber       *int    `json:"FloorNumber"`
	BuildingID        *uint   `json:"BuildingID"`
	BuildingName      *string `json:"BuildingName"`
}
