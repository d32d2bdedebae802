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

// ── 套间模块业务错误 ──

var ErrFlatNotFound = errors.New("套间不存在")

// FlatService 套间业务接口
type FlatService interface {
	List(ctx context.Context, req *dto.FlatListRequest) ([]dto.FlatDetailResponse, error)
	Create(ctx context.Context, req *dto.CreateFlatRequest) (*dto.FlatResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateFlatRequest) (*dto.FlatResponse, error)
	Delete(ctx context.Context, id uint) error
}

type flatService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewFlatService 创建 FlatService 实例
func NewFlatService(repo *repository.Repository, logger *zap.Logger) FlatService {
	return &flatService{repo: repo, logger: logger}
}

func (s *flatService) List(ctx context.Context, req *dto.FlatListRequest) ([]dto.FlatDetailResponse, error) {
	flats, err := s.repo.Flat.List(ctx, req.FloorID)
	if err != nil {
		s.logger.Error("查询套间列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.FlatDetailResponse, 0, len(flats))
	for _, fl := range flats {
		result = append(result, dto.FlatDetailResponse{
			FlatID:       fl.FlatID,
			FloorID:      fl.FloorID,
			FlatNumber:   fl.FlatNumber,
			FlatType:     fl.FlatType,
			Status:       fl.Status,
			FloorNumber:  fl.FloorNumber,
			BuildingID:   fl.BuildingID,
			BuildingName: fl.BuildingName,
		})
	}

	return result, nil
}

func (s *flatService) Create(ctx context.Context, req *dto.CreateFlatRequest) (*dto.FlatResponse, error) {
	fl := &model.Flat{
		FloorID:    *req.FloorID,
		FlatNumber: req.FlatNumber,
		Status:     "Active",
	}
	if req.FlatType != nil {
		fl.FlatType = *req.FlatType
	}
	if req.Status != nil && *req.Status != "" {
		fl.Status = *req.Status
	}

	if err := s.repo.Flat.Create(ctx, fl); err != nil {
		s.logger.Error("创建套间失败", zap.Uint("floor_id", fl.FloorID), zap.Error(err))
		return nil, err
	}

	return s.toFlatResponse(fl), nil
}

func (s *flatService) Update(ctx context.Context, id uint, req *dto.UpdateFlatRequest) (*dto.FlatResponse, error) {
	fl, err := s.repo.Flat.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFlatNotFound
		}
		s.logger.Error("查询套间失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	if req.FloorID != nil {
		fl.FloorID = *req.FloorID
	}
	if req.FlatNumber != nil {
		fl.FlatNumber = *req.FlatNumber
	}
	if req.FlatType != nil {
		fl.FlatType = *req.FlatType
	}
	if req.Status != nil {
		fl.Status = *req.Status
	}

	if err := s.repo.Flat.Update(ctx, fl); err != nil {
		s.logger.Error("更新套间失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return s.toFlatResponse(fl), nil
}

func (s *flatService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Flat.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFlatNotFound
		}
		s.logger.Error("删除套间失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *flatService) toFlatResponse(fl *model.Flat) *dto.FlatResponse {
	return &dto.FlatResponse{
		FlatID:     fl.FlatID,
		FloorID:    fl.FloorID,
		FlatNumber: fl.FlatNumber,
		FlatType:   fl.FlatType,
		Status:     fl.Status,
	}
}
