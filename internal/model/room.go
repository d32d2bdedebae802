package model

// Room 房间表 — 对应 rooms
type Room struct {
	RoomID            uint   `gorm:"primaryKey"                                 json:"RoomID"`
	FlatID            uint   `gorm:"not null"                                   json:"FlatID"`
	RoomNumber        string `gorm:"type:varchar(50);not null"                  json:"RoomNumber"`
	RoomType          string `gorm:"type:varchar(50)"                           json:"RoomType"`
	MaxOccupancy      int    `gorm:"not null"                                   json:"MaxOccupancy"`
	GenderRestriction string `gorm:"type:varchar(20)"                           json:"GenderRestriction"`
	Status            string `gorm:"type:varchar(20);not null;default:'Active'" json:"Status"`
}

// TableName 指定表名
func (Room) TableName() string { return "rooms" }

// RoomDetail 房间连带套间/楼层/楼栋标签的列表行
// 层级连接为 LEFT JOIN，标签列可能为 NULL
type RoomDetail struct {
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
