package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"dormbook/internal/dto"
	"dormbook/internal/model"
	"dormbook/internal/repository"
)

// ── 床位分配模块业务错误 ──

var (
	ErrAssignmentNotFound = errors.New("分配记录不存在")
	ErrInvalidDate        = errors.New("日期格式无效，应为 YYYY-MM-DD")
)

// dateLayout 起止日期的传输格式
const dateLayout = "2006-01-02"

// AssignmentService 床位分配业务接口
//
// 床位占用不变式：床位 Occupied 当且仅当其上存在 Planned/Active 分配——
// 唯一的例外是创建：任何新建分配都会把床位置为 Occupied，与分配自身
// 状态无关（沿用既有系统行为，前端依赖此语义，勿擅自"修正"）
type AssignmentService interface {
	List(ctx context.Context) ([]dto.AssignmentResponse, error)
	Create(ctx context.Context, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateAssignmentRequest) (*dto.AssignmentResponse, error)
	Delete(ctx context.Context, id uint) (*dto.DeleteAssignmentResponse, error)
}

type assignmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAssignmentService 创建 AssignmentService 实例
func NewAssignmentService(repo *repository.Repository, logger *zap.Logger) AssignmentService {
	return &assignmentService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *assignmentService) List(ctx context.Context) ([]dto.AssignmentResponse, error) {
	assignments, err := s.repo.Assignment.List(ctx)
	if err != nil {
		s.logger.Error("查询分配列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.AssignmentResponse, 0, len(assignments))
	for i := range assignments {
		result = append(result, *s.toAssignmentResponse(&assignments[i]))
	}

	return result, nil
}

// ────────────────────── Create ──────────────────────

func (s *assignmentService) Create(ctx context.Context, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error) {
	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	var endDate *time.Time
	if req.EndDate != nil && *req.EndDate != "" {
		t, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		endDate = &t
	}

	status := model.AssignmentStatusActive
	if req.Status != nil && *req.Status != "" {
		status = *req.Status
	}

	createdBy := "web"
	if req.CreatedBy != nil && *req.CreatedBy != "" {
		createdBy = *req.CreatedBy
	}

	a := &model.BedAssignment{
		EmployeeID: *req.EmployeeID,
		BedID:      *req.BedID,
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     status,
		Reason:     req.Reason,
		CreatedBy:  createdBy,
	}

	if err := s.repo.Assignment.Create(ctx, a); err != nil {
		s.logger.Error("创建分配失败",
			zap.Uint("employee_id", a.EmployeeID),
			zap.Uint("bed_id", a.BedID),
			zap.Error(err),
		)
		return nil, err
	}

	detail, err := s.repo.Assignment.GetDetail(ctx, a.AssignmentID)
	if err != nil {
		s.logger.Error("回读新建分配失败", zap.Uint("id", a.AssignmentID), zap.Error(err))
		return nil, err
	}

	return s.toAssignmentResponse(detail), nil
}

// ────────────────────── Update ──────────────────────

func (s *assignmentService) Update(ctx context.Context, id uint, req *dto.UpdateAssignmentRequest) (*dto.AssignmentResponse, error) {
	updates := map[string]interface{}{}

	if req.StartDate != nil && *req.StartDate != "" {
		t, err := time.Parse(dateLayout, *req.StartDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		updates["start_date"] = t
	}

	// endDate 每次整体覆盖：请求未携带即清空（前端编辑表单始终回传该字段）
	if req.EndDate != nil && *req.EndDate != "" {
		t, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		updates["end_date"] = t
	} else {
		updates["end_date"] = nil
	}

	if req.Status != nil && *req.Status != "" {
		updates["status"] = *req.Status
	}
	if req.Reason != nil {
		updates["reason"] = *req.Reason
	}

	// 床位释放只看本次请求是否写入 Closed
	closeRequested := req.Status != nil && *req.Status == model.AssignmentStatusClosed

	if err := s.repo.Assignment.Update(ctx, id, updates, closeRequested); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		s.logger.Error("更新分配失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	detail, err := s.repo.Assignment.GetDetail(ctx, id)
	if err != nil {
		s.logger.Error("回读更新后分配失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return s.toAssignmentResponse(detail), nil
}

// ────────────────────── Delete ──────────────────────

func (s *assignmentService) Delete(ctx context.Context, id uint) (*dto.DeleteAssignmentResponse, error) {
	bedID, err := s.repo.Assignment.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		s.logger.Error("删除分配失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return &dto.DeleteAssignmentResponse{BedID: bedID}, nil
}

// ── 内部辅助方法 ──

func (s *assignmentService) toAssignmentResponse(d *model.AssignmentDetail) *dto.AssignmentResponse {
	var endDate *string
	if d.EndDate != nil {
		formatted := d.EndDate.Format(dateLayout)
		endDate = &formatted
	}

	return &dto.AssignmentResponse{
		AssignmentID: d.AssignmentID,
		EmployeeID:   d.EmployeeID,
		EmployeeCode: d.EmployeeCode,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		BedID:        d.BedID,
		BedCode:      d.BedCode,
		RoomNumber:   d.RoomNumber,
		FlatNumber:   d.FlatNumber,
		FloorNumber:  d.FloorNumber,
		BuildingName: d.BuildingName,
		StartDate:    d.StartDate.Format(dateLayout),
		EndDate:      endDate,
		Status:       d.Status,
		Reason:       d.Reason,
		CreatedAt:    d.CreatedAt.Format("2006-01-02T15:04:05Z"),
		CreatedBy:    d.CreatedBy,
	}
}
