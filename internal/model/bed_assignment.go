package model

import "time"

// 分配生命周期状态
// Planned → Active → Closed 为约定路径，写入时不校验取值与顺序；
// 仅 Planned/Active 计入床位占用（存活分配）
const (
	AssignmentStatusPlanned = "Planned"
	AssignmentStatusActive  = "Active"
	AssignmentStatusClosed  = "Closed"
)

// BedAssignment 床位分配表 — 对应 bed_assignments
// EmployeeID/BedID 创建后不可变更
type BedAssignment struct {
	AssignmentID uint       `gorm:"primaryKey"                                 json:"AssignmentID"`
	EmployeeID   uint       `gorm:"not null"                                   json:"EmployeeID"`
	BedID        uint       `gorm:"not null"                                   json:"BedID"`
	StartDate    time.Time  `gorm:"type:date;not null"                         json:"StartDate"`
	EndDate      *time.Time `gorm:"type:date"                                  json:"EndDate"`
	Status       string     `gorm:"type:varchar(20);not null;default:'Active'" json:"Status"`
	Reason       *string    `gorm:"type:varchar(500)"                          json:"Reason"`
	CreatedAt    time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"         json:"CreatedAt"`
	CreatedBy    string     `gorm:"type:varchar(50)"                           json:"CreatedBy"`
}

// TableName 指定表名
func (BedAssignment) TableName() string { return "bed_assignments" }

// LiveStatuses 计入床位占用的状态集合
func LiveStatuses() []string {
	return []string{AssignmentStatusPlanned, AssignmentStatusActive}
}

// AssignmentDetail 分配连带员工与全层级标签的列表行
type AssignmentDetail struct {
	AssignmentID uint       `json:"AssignmentID"`
	EmployeeID   uint       `json:"EmployeeID"`
	EmployeeCode string     `json:"EmployeeCode"`
	FirstName    string     `json:"FirstName"`
	LastName     string     `json:"LastName"`
	BedID        uint       `json:"BedID"`
	BedCode      string     `json:"BedCode"`
	RoomNumber   string     `json:"RoomNumber"`
	FlatNumber   string     `json:"FlatNumber"`
	FloorNumber  int        `json:"FloorNumber"`
	BuildingName string     `json:"BuildingName"`
	StartDate    time.Time  `json:"StartDate"`
	EndDate      *time.Time `json:"EndDate"`
	Status       string     `json:"Status"`
	Reason       *string    `json:"Reason"`
	CreatedAt    time.Time  `json:"CreatedAt"`
	CreatedBy    string     `json:"CreatedBy"`
}
