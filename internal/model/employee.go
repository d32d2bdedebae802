package model

// Employee 员工表 — 对应 employees
// employee_code 全局唯一
type Employee struct {
	EmployeeID   uint   `gorm:"primaryKey"                                 json:"EmployeeID"`
	EmployeeCode string `gorm:"type:varchar(50);not null;uniqueIndex"      json:"EmployeeCode"`
	FirstName    string `gorm:"type:varchar(100);not null"                 json:"FirstName"`
	LastName     string `gorm:"type:varchar(100);not null"                 json:"LastName"`
	Department   string `gorm:"type:varchar(100)"                          json:"Department"`
	Grade        string `gorm:"type:varchar(50)"                           json:"Grade"`
	Gender       string `gorm:"type:varchar(20);not null"                  json:"Gender"`
	Status       string `gorm:"type:varchar(20);not null;default:'Active'" json:"Status"`
}

// TableName 指定表名
func (Employee) TableName() string { return "employees" }
