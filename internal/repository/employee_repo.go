package repository

import (
	"context"

	"gorm.io/gorm"

	"dormbook/internal/model"
)

// listEmployeesLimit 员工列表上限
const listEmployeesLimit = 100

// EmployeeRepository 员工数据访问接口
type EmployeeRepository interface {
	Create(ctx context.Context, e *model.Employee) error
	GetByID(ctx context.Context, id uint) (*model.Employee, error)
	List(ctx context.Context) ([]model.Employee, error)
	// ListCodes 返回全部员工编号，导入时用于重复检测
	ListCodes(ctx context.Context) ([]string, error)
	Update(ctx context.Context, e *model.Employee) error
	Delete(ctx context.Context, id uint) error
}

type employeeRepo struct {
	db *gorm.DB
}

// NewEmployeeRepo 创建 EmployeeRepository 实例
func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) Create(ctx context.Context, e *model.Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *employeeRepo) GetByID(ctx context.Context, id uint) (*model.Employee, error) {
	var e model.Employee
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", id).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *employeeRepo) List(ctx context.Context) ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.WithContext(ctx).
		Order("employee_id DESC").
		Limit(listEmployeesLimit).
		Find(&employees).Error
	return employees, err
}

func (r *employeeRepo) ListCodes(ctx context.Context) ([]string, error) {
	var codes []string
	err := r.db.WithContext(ctx).
		Model(&model.Employee{}).
		Pluck("employee_code", &codes).Error
	return codes, err
}

func (r *employeeRepo) Update(ctx context.Context, e *model.Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *employeeRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).
		Where("employee_id = ?", id).
		Delete(&model.Employee{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
