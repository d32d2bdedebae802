package model

// Flat 套间表 — 对应 flats
type Flat struct {
	FlatID     uint   `gorm:"primaryKey"                                 json:"FlatID"`
	FloorID    uint   `gorm:"not null"                                   json:"FloorID"`
	FlatNumber string `gorm:"type:varchar(50);not null"                  json:"FlatNumber"`
	FlatType   string `gorm:"type:varchar(50)"                           json:"FlatType"`
	Status     string `gorm:"type:varchar(20);not null;default:'Active'" json:"Status"`
}

// TableName 指定表名
func (Flat) TableName() string { return "flats" }

// FlatDetail 套间连带楼层/楼栋标签的列表行
type FlatDetail struct {
	FlatID       uint   `json:"FlatID"`
	FloorID      uint   `json:"FloorID"`
	FlatNumber   string `json:"FlatNumber"`
	FlatType     string `json:"FlatType"`
	Status       string `json:"Status"`
	FloorNumber  int    `json:"FloorNumber"`
	BuildingID   uint   `json:"BuildingID"`
	BuildingName string `json:"BuildingName"`
}
