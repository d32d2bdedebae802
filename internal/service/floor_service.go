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

// ── 楼层模块业务错误 ──

var ErrFloorNotFound = errors.New("楼层不存在")

// FloorService 楼层业务接口
// 楼层的读写都连带楼栋名称返回，前端楼层表格直接展示
type FloorService interface {
	List(ctx context.Context, req *dto.FloorListRequest) ([]dto.FloorResponse, error)
	Create(ctx context.Context, req *dto.CreateFloorRequest) (*dto.FloorResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateFloorRequest) (*dto.FloorResponse, error)
	Delete(ctx context.Context, id uint) error
}

type floorService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewFloorService 创建 FloorService 实例
func NewFloorService(repo *repository.Repository, logger *zap.Logger) FloorService {
	return &floorService{repo: repo, logger: logger}
}

func (s *floorService) List(ctx context.Context, req *dto.FloorListRequest) ([]dto.FloorResponse, error) {
	floors, err := s.repo.Floor.List(ctx, req.BuildingID)
	if err != nil {
		s.logger.Error("查询楼层列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.FloorResponse, 0, len(floors))
	for i := range floors {
		result = append(result, *s.toFloorResponse(&floors[i]))
	}

	return result, nil
}

func (s *floorService) Create(ctx context.Context, req *dto.CreateFloorRequest) (*dto.FloorResponse, error) {
	f := &model.Floor{
		BuildingID:  *req.BuildingID,
		FloorNumber: *req.FloorNumber,
	}
	if req.Description != nil {
		f.Description = *req.Description
	}

	if err := s.repo.Floor.Create(ctx, f); err != nil {
		s.logger.Error("创建楼层失败", zap.Uint("building_id", f.BuildingID), zap.Error(err))
		return nil, err
	}

	detail, err := s.repo.Floor.GetDetail(ctx, f.FloorID)
	if err != nil {
		s.logger.Error("回读新建楼层失败", zap.Uint("id", f.FloorID), zap.Error(err))
		return nil, err
	}

	return s.toFloorResponse(detail), nil
}

func (s *floorService) Update(ctx context.Context, id uint, req *dto.UpdateFloorRequest) (*dto.FloorResponse, error) {
	f, err := s.repo.Floor.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFloorNotFound
		}
		s.logger.Error("查询楼层失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	if req.BuildingID != nil {
		f.BuildingID = *req.BuildingID
	}
	if req.FloorNumber != nil {
		f.FloorNumber = *req.FloorNumber
	}
	if req.Description != nil {
		f.Description = *req.Description
	}

	if err := s.repo.Floor.Update(ctx, f); err != nil {
		s.logger.Error("更新楼层失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	detail, err := s.repo.Floor.GetDetail(ctx, id)
	if err != nil {
		s.logger.Error("回读更新后楼层失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return s.toFloorResponse(detail), nil
}

func (s *floorService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Floor.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFloorNotFound
		}
		s.logger.Error("删除楼层失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *floorService) toFloorResponse(d *model.FloorDetail) *dto.FloorResponse {
	return &dto.FloorResponse{
		FloorID:      d.FloorID,
		BuildingID:   d.BuildingID,
		FloorNumber:  d.FloorNumber,
		Description:  d.Description,
		BuildingName: d.BuildingName,
	}
}
