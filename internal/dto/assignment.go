package dto

// ── 床位分配模块 DTO ──
//
// 请求体使用 camelCase 字段与显式可选性（指针字段缺省 = 不修改），
// 响应体沿用前端约定的 PascalCase 列名

// CreateAssignmentRequest 创建分配请求
// employeeId/bedId/startDate 必填，status 缺省 Active，createdBy 缺省 web
type CreateAssignmentRequest struct {
	EmployeeID *uint   `json:"employeeId" binding:"required"`
	BedID      *uint   `json:"bedId"      binding:"required"`
	StartDate  string  `json:"startDate"  binding:"required"`
	EndDate    *string `json:"endDate"`
	Status     *string `json:"status"`
	Reason     *string `json:"reason"`
	CreatedBy  *string `json:"createdBy"`
}

// UpdateAssignmentRequest 更新分配请求
// employeeId/bedId 创建后不可变更，不在此出现。
// startDate/status/reason 缺省保持原值；endDate 每次整体覆盖，缺省即清空
type UpdateAssignmentRequest struct {
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	Status    *string `json:"status"`
	Reason    *string `json:"reason"`
}

// AssignmentResponse 分配连带员工与层级标签的响应
type AssignmentResponse struct {
	AssignmentID uint    `json:"AssignmentID"`
	EmployeeID   uint    `json:"EmployeeID"`
	EmployeeCode string  `json:"EmployeeCode"`
	FirstName    string  `json:"FirstName"`
	LastName     string  `json:"LastName"`
	BedID        uint    `json:"BedID"`
	BedCode      string  `json:"BedCode"`
	RoomNumber   string  `json:"RoomNumber"`
	FlatNumber   string  `json:"FlatNumber"`
	FloorNumber  int     `json:"FloorNumber"`
	BuildingName string  `json:"BuildingName"`
	StartDate    string  `json:"StartDate"`
	EndDate      *string `json:"EndDate"`
	Status       string  `json:"Status"`
	Reason       *string `json:"Reason"`
	CreatedAt    string  `json:"CreatedAt"`
	CreatedBy    string  `json:"CreatedBy"`
}

// DeleteAssignmentResponse 删除分配响应，返回被释放（或保持占用）的床位
type DeleteAssignmentResponse struct {
	BedID uint `json:"bedId"`
}
