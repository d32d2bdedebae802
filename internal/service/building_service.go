package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"dormbook/internal/dto"
	"dormbook/internal/model"
	"dormbook/internal/repository"
)

// ── 楼栋模块业务错误 ──

var ErrBuildingNotFound = errors.New("楼栋不存在")

// BuildingService 楼栋业务接口
type BuildingService interface {
	List(ctx context.Context) ([]dto.BuildingResponse, error)
	Create(ctx context.Context, req *dto.CreateBuildingRequest) (*dto.BuildingResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateBuildingRequest) (*dto.BuildingResponse, error)
	Delete(ctx context.Context, id uint) error
}

type buildingService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewBuildingService 创建 BuildingService 实例
func NewBuildingService(repo *repository.Repository, logger *zap.Logger) BuildingService {
	return &buildingService{repo: repo, logger: logger}
}

func (s *buildingService) List(ctx context.Context) ([]dto.BuildingResponse, error) {
	buildings, err := s.repo.Building.List(ctx)
	if err != nil {
		s.logger.Error("查询楼栋列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.BuildingResponse, 0, len(buildings))
	for i := range buildings {
		result = append(result, *s.toBuildingResponse(&buildings[i]))
	}

	return result, nil
}

func (s *buildingService) Create(ctx context.Context, req *dto.CreateBuildingRequest) (*dto.BuildingResponse, error) {
	b := &model.Building{
		BuildingName: req.BuildingName,
		Status:       "Active",
	}
	if req.Location != nil {
		b.Location = *req.Location
	}
	if req.Description != nil {
		b.Description = *req.Description
	}
	if req.Status != nil && *req.Status != "" {
		b.Status = *req.Status
	}

	if err := s.repo.Building.Create(ctx, b); err != nil {
		s.logger.Error("创建楼栋失败", zap.Error(err))
		return nil, err
	}

	return s.toBuildingResponse(b), nil
}

func (s *buildingService) Update(ctx context.Context, id uint, req *dto.UpdateBuildingRequest) (*dto.BuildingResponse, error) {
	b, err := s.repo.Building.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBuildingNotFound
		}
		s.logger.Error("查询楼栋失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	if req.BuildingName != nil {
		b.BuildingName = *req.BuildingName
	}
	if req.Location != nil {
		b.Location = *req.Location
	}
	if req.Description != nil {
		b.Description = *req.Description
	}
	if req.Status != nil {
		b.Status = *req.Status
	}

	if err := s.repo.Building.Update(ctx, b); err != nil {
		s.logger.Error("更新楼栋失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return s.toBuildingResponse(b), nil
}

func (s *buildingService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Building.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBuildingNotFound
		}
		s.logger.Error("删除楼栋失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *buildingService) toBuildingResponse(b *model.Building) *dto.BuildingResponse {
	return &dto.BuildingResponse{
		BuildingID:   b.BuildingID,
		BuildingName: b.BuildingName,
		Location:     b.Location,
		Description:  b.Description,
		Status:       b.Status,
	}
}
