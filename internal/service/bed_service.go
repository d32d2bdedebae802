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

// ── 床位模块业务错误 ──

var (
	ErrBedNotFound  = errors.New("床位不存在")
	ErrBedCodeTaken = errors.New("房间内床位编号已存在")
)

// BedService 床位业务接口
// 床位占用状态由分配模块写入，这里的 Update 仅覆盖基础字段的人工修正
type BedService interface {
	List(ctx context.Context, req *dto.BedListRequest) ([]dto.BedDetailResponse, error)
	Create(ctx context.Context, req *dto.CreateBedRequest) (*dto.BedResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateBedRequest) (*dto.BedResponse, error)
	Delete(ctx context.Context, id uint) error
}

type bedService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewBedService 创建 BedService 实例
func NewBedService(repo *repository.Repository, logger *zap.Logger) BedService {
	return &bedService{repo: repo, logger: logger}
}

func (s *bedService) List(ctx context.Context, req *dto.BedListRequest) ([]dto.BedDetailResponse, error) {
	beds, err := s.repo.Bed.List(ctx, req.RoomID)
	if err != nil {
		s.logger.Error("查询床位列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.BedDetailResponse, 0, len(beds))
	for _, bd := range beds {
		result = append(result, dto.BedDetailResponse{
			BedID:        bd.BedID,
			RoomID:       bd.RoomID,
			BedCode:      bd.BedCode,
			Status:       bd.Status,
			RoomNumber:   bd.RoomNumber,
			FlatNumber:   bd.FlatNumber,
			FloorNumber:  bd.FloorNumber,
			BuildingID:   bd.BuildingID,
			BuildingName: bd.BuildingName,
		})
	}

	return result, nil
}

func (s *bedService) Create(ctx context.Context, req *dto.CreateBedRequest) (*dto.BedResponse, error) {
	bd := &model.Bed{
		RoomID:  *req.RoomID,
		BedCode: req.BedCode,
		Status:  model.BedStatusAvailable,
	}
	if req.Status != nil && *req.Status != "" {
		bd.Status = *req.Status
	}

	if err := s.repo.Bed.Create(ctx, bd); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrBedCodeTaken
		}
		s.logger.Error("创建床位失败", zap.Uint("room_id", bd.RoomID), zap.Error(err))
		return nil, err
	}

	return s.toBedResponse(bd), nil
}

func (s *bedService) Update(ctx context.Context, id uint, req *dto.UpdateBedRequest) (*dto.BedResponse, error) {
	bd, err := s.repo.Bed.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBedNotFound
		}
		s.logger.Error("查询床位失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	if req.RoomID != nil {
		bd.RoomID = *req.RoomID
	}
	if req.BedCode != nil {
		bd.BedCode = *req.BedCode
	}
	if req.Status != nil {
		bd.Status = *req.Status
	}

	if err := s.repo.Bed.Update(ctx, bd); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrBedCodeTaken
		}
		s.logger.Error("更新床位失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return s.toBedResponse(bd), nil
}

func (s *bedService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Bed.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBedNotFound
		}
		s.logger.Error("删除床位失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *bedService) toBedResponse(bd *model.Bed) *dto.BedResponse {
	return &dto.BedResponse{
		BedID:   bd.BedID,
		RoomID:  bd.RoomID,
		BedCode: bd.BedCode,
		Status:  bd.Status,
	}
}
