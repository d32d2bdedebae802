package model

// 床位占用状态
// 仅允许床位分配逻辑写入，保持与存活分配集合一致
const (
	BedStatusAvailable = "Available"
	BedStatusOccupied  = "Occupied"
)

// Bed 床位表 — 对应 beds
// (room_id, bed_code) 唯一
type Bed struct {
	BedID   uint   `gorm:"primaryKey"                                    json:"BedID"`
	RoomID  uint   `gorm:"not null;uniqueIndex:uq_beds_room_code"        json:"RoomID"`
	BedCode string `gorm:"type:varchar(50);not null;uniqueIndex:uq_beds_room_code" json:"BedCode"`
	Status  string `gorm:"type:varchar(20);not null;default:'Available'" json:"Status"`
}

// TableName 指定表名
func (Bed) TableName() string { return "beds" }

// BedDetail 床位连带全层级标签的列表行
// 层级连接为 LEFT JOIN，标签列可能为 NULL
type BedDetail struct {
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
