package model

// Building 楼栋表 — 对应 buildings
type Building struct {
	BuildingID   uint   `gorm:"primaryKey"                                json:"BuildingID"`
	BuildingName string `gorm:"type:varchar(100);not null"                json:"BuildingName"`
	Location     string `gorm:"type:varchar(200)"                         json:"Location"`
	Description  string `gorm:"type:text"                                 json:"Description"`
	Status       string `gorm:"type:varchar(20);not null;default:'Active'" json:"Status"`
}

// TableName 指定表名
func (Building) TableName() string { return "buildings" }
