package dto

// ── 员工模块 DTO ──

// CreateEmployeeRequest 创建员工请求
type CreateEmployeeRequest struct {
	EmployeeCode string  `json:"employeeCode" binding:"required"`
	FirstName    string  `json:"firstName"    binding:"required"`
	LastName     string  `json:"lastName"     binding:"required"`
	Gender       string  `json:"gender"       binding:"required"`
	Department   *string `json:"department"`
	Grade        *string `json:"grade"`
	Status       *string `json:"status"`
}

// UpdateEmployeeRequest 更新员工请求（缺省字段保持原值）
type UpdateEmployeeRequest struct {
	EmployeeCode *string `json:"employeeCode"`
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	Department   *string `json:"department"`
	Grade        *string `json:"grade"`
	Gender       *string `json:"gender"`
	Status       *string `json:"status"`
}

// EmployeeResponse 员工响应
type EmployeeResponse struct {
	EmployeeID   uint   `json:"EmployeeID"`
	EmployeeCode string `json:"EmployeeCode"`
	FirstName    string `json:"FirstName"`
	LastName     string `json:"LastName"`
	Department   string `json:"Department"`
	Grade        string `json:"Grade"`
	Gender       string `json:"Gender"`
	Status       string `json:"Status"`
}

// ImportFailure 导入失败行（Row 为 Excel 行号，从 1 计）
type ImportFailure struct {
	Row     int    `json:"Row"`
	Message string `json:"Message"`
}

// ImportEmployeesResponse 员工导入结果
type ImportEmployeesResponse struct {
	Total    int             `json:"Total"`
	Imported int             `json:"Imported"`
	Skipped  int             `json:"Skipped"`
	Failures []ImportFailure `json:"Failures"`
}
