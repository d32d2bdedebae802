package model

// Floor 楼层表 — 对应 floors
type Floor struct {
	FloorID     uint   `gorm:"primaryKey"        json:"FloorID"`
	BuildingID  uint   `gorm:"not null"          json:"BuildingID"`
	FloorNumber int    `gorm:"not null"          json:"FloorNumber"`
	Description string `gorm:"type:text"         json:"Description"`
}

// TableName 指定表名
func (Floor) TableName() string { return "floors" }

// FloorDetail 楼层连带楼栋名称的列表行
type FloorDetail struct {
	FloorID      uint   `json:"FloorID"`
	BuildingID   uint   `json:"BuildingID"`
	FloorNumber  int    `json:"FloorNumber"`
	Description  string `json:"Description"`
	BuildingName string `json:"BuildingName"`
}
