package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"dormbook/internal/dto"
	"dormbook/internal/model"
	"dormbook/internal/repository"
)

// ── 员工模块业务错误 ──

var (
	ErrEmployeeNotFound  = errors.New("员工不存在")
	ErrEmployeeCodeTaken = errors.New("员工编号已存在")
)

// maxImportRows 单次导入行数上限
const maxImportRows = 1000

var (
	ErrImportNoData      = errors.New("Excel 文件无数据行（第一行为表头）")
	ErrImportTooManyRows = fmt.Errorf("数据行数超过上限 %d 行", maxImportRows)
	ErrImportBadHeader   = errors.New("Excel 表头缺少必要列（EmployeeCode/FirstName/LastName/Gender）")
)

// ImportEmployeeRow 导入文件解析出的单行数据
type ImportEmployeeRow struct {
	Row          int // Excel 行号，报错时回显
	EmployeeCode string
	FirstName    string
	LastName     string
	Department   string
	Grade        string
	Gender       string
}

// EmployeeService 员工业务接口
// 删除不校验存活分配（分配行保留，列表里继续显示已删员工的 ID 连接失败行除外）
type EmployeeService interface {
	List(ctx context.Context) ([]dto.EmployeeResponse, error)
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error)
	Delete(ctx context.Context, id uint) error
	// ParseImportFile 解析导入 Excel，返回行数据；不触达数据库
	ParseImportFile(reader io.Reader) ([]ImportEmployeeRow, error)
	// ImportEmployees 逐行校验并写入，重复编号跳过并计数
	ImportEmployees(ctx context.Context, rows []ImportEmployeeRow) (*dto.ImportEmployeesResponse, error)
}

type employeeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEmployeeService 创建 EmployeeService 实例
func NewEmployeeService(repo *repository.Repository, logger *zap.Logger) EmployeeService {
	return &employeeService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *employeeService) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	employees, err := s.repo.Employee.List(ctx)
	if err != nil {
		s.logger.Error("查询员工列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		result = append(result, *s.toEmployeeResponse(&employees[i]))
	}

	return result, nil
}

// ────────────────────── Create ──────────────────────

func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	e := &model.Employee{
		EmployeeCode: req.EmployeeCode,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Gender:       req.Gender,
		Status:       "Active",
	}
	if req.Department != nil {
		e.Department = *req.Department
	}
	if req.Grade != nil {
		e.Grade = *req.Grade
	}
	if req.Status != nil && *req.Status != "" {
		e.Status = *req.Status
	}

	if err := s.repo.Employee.Create(ctx, e); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmployeeCodeTaken
		}
		s.logger.Error("创建员工失败", zap.String("code", e.EmployeeCode), zap.Error(err))
		return nil, err
	}

	return s.toEmployeeResponse(e), nil
}

// ────────────────────── Update ──────────────────────

func (s *employeeService) Update(ctx context.Context, id uint, req *dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	e, err := s.repo.Employee.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("查询员工失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	if req.EmployeeCode != nil {
		e.EmployeeCode = *req.EmployeeCode
	}
	if req.FirstName != nil {
		e.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		e.LastName = *req.LastName
	}
	if req.Department != nil {
		e.Department = *req.Department
	}
	if req.Grade != nil {
		e.Grade = *req.Grade
	}
	if req.Gender != nil {
		e.Gender = *req.Gender
	}
	if req.Status != nil {
		e.Status = *req.Status
	}

	if err := s.repo.Employee.Update(ctx, e); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmployeeCodeTaken
		}
		s.logger.Error("更新员工失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return s.toEmployeeResponse(e), nil
}

// ────────────────────── Delete ──────────────────────

func (s *employeeService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Employee.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmployeeNotFound
		}
		s.logger.Error("删除员工失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── ParseImportFile ──────────────────────

func (s *employeeService) ParseImportFile(reader io.Reader) ([]ImportEmployeeRow, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("无法解析 Excel 文件: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	excelRows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("读取工作表失败: %w", err)
	}

	if len(excelRows) < 2 {
		return nil, ErrImportNoData
	}

	// 解析表头（支持灵活列序）
	colIndex := parseEmployeeHeader(excelRows[0])
	if colIndex["code"] < 0 || colIndex["first_name"] < 0 || colIndex["last_name"] < 0 || colIndex["gender"] < 0 {
		return nil, ErrImportBadHeader
	}

	cell := func(row []string, key string) string {
		if idx := colIndex[key]; idx >= 0 && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	var rows []ImportEmployeeRow
	for i := 1; i < len(excelRows); i++ {
		row := excelRows[i]
		item := ImportEmployeeRow{
			Row:          i + 1,
			EmployeeCode: cell(row, "code"),
			FirstName:    cell(row, "first_name"),
			LastName:     cell(row, "last_name"),
			Department:   cell(row, "department"),
			Grade:        cell(row, "grade"),
			Gender:       cell(row, "gender"),
		}

		// 跳过全空行
		if item.EmployeeCode == "" && item.FirstName == "" && item.LastName == "" && item.Gender == "" {
			continue
		}

		rows = append(rows, item)
	}

	if len(rows) == 0 {
		return nil, ErrImportNoData
	}
	if len(rows) > maxImportRows {
		return nil, ErrImportTooManyRows
	}

	return rows, nil
}

// parseEmployeeHeader 解析 Excel 表头，返回列名 → 列索引映射
func parseEmployeeHeader(header []string) map[string]int {
	idx := map[string]int{
		"code":       -1,
		"first_name": -1,
		"last_name":  -1,
		"department": -1,
		"grade":      -1,
		"gender":     -1,
	}
	for i, h := range header {
		lower := strings.ToLower(strings.TrimSpace(h))
		switch lower {
		case "employeecode", "employee code", "code":
			idx["code"] = i
		case "firstname", "first name":
			idx["first_name"] = i
		case "lastname", "last name":
			idx["last_name"] = i
		case "department":
			idx["department"] = i
		case "grade":
			idx["grade"] = i
		case "gender":
			idx["gender"] = i
		}
	}
	return idx
}

// ────────────────────── ImportEmployees ──────────────────────

func (s *employeeService) ImportEmployees(ctx context.Context, rows []ImportEmployeeRow) (*dto.ImportEmployeesResponse, error) {
	resp := &dto.ImportEmployeesResponse{
		Total:    len(rows),
		Failures: []dto.ImportFailure{},
	}

	// 预加载已有编号，文件内重复也在这里挡
	codes, err := s.repo.Employee.ListCodes(ctx)
	if err != nil {
		s.logger.Error("加载员工编号失败", zap.Error(err))
		return nil, err
	}
	seen := make(map[string]bool, len(codes))
	for _, c := range codes {
		seen[strings.ToUpper(c)] = true
	}

	for _, row := range rows {
		var missing []string
		if row.EmployeeCode == "" {
			missing = append(missing, "EmployeeCode")
		}
		if row.FirstName == "" {
			missing = append(missing, "FirstName")
		}
		if row.LastName == "" {
			missing = append(missing, "LastName")
		}
		if row.Gender == "" {
			missing = append(missing, "Gender")
		}
		if len(missing) > 0 {
			resp.Failures = append(resp.Failures, dto.ImportFailure{
				Row:     row.Row,
				Message: "缺少必填列: " + strings.Join(missing, ", "),
			})
			continue
		}

		key := strings.ToUpper(row.EmployeeCode)
		if seen[key] {
			resp.Skipped++
			continue
		}

		e := &model.Employee{
			EmployeeCode: row.EmployeeCode,
			FirstName:    row.FirstName,
			LastName:     row.LastName,
			Department:   row.Department,
			Grade:        row.Grade,
			Gender:       row.Gender,
			Status:       "Active",
		}
		if err := s.repo.Employee.Create(ctx, e); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				resp.Skipped++
				continue
			}
			s.logger.Error("导入员工失败",
				zap.Int("row", row.Row),
				zap.String("code", row.EmployeeCode),
				zap.Error(err),
			)
			resp.Failures = append(resp.Failures, dto.ImportFailure{
				Row:     row.Row,
				Message: "写入失败",
			})
			continue
		}

		seen[key] = true
		resp.Imported++
	}

	return resp, nil
}

// ── 内部辅助方法 ──

func (s *employeeService) toEmployeeResponse(e *model.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		EmployeeID:   e.EmployeeID,
		EmployeeCode: e.EmployeeCode,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Department:   e.Department,
		Grade:        e.Grade,
		Gender:       e.Gender,
		Status:       e.Status,
	}
}
