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

// ── 房间模块业务错误 ──

var ErrRoomNotFound = errors.New("房间不存在")

// RoomService 房间业务接口
// maxOccupancy 只作展示参考，不参与床位数量或分配约束
type RoomService interface {
	List(ctx context.Context, req *dto.RoomListRequest) ([]dto.RoomDetailResponse, error)
	Create(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateRoomRequest) (*dto.RoomResponse, error)
	Delete(ctx context.Context, id uint) error
}

type roomService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRoomService 创建 RoomService 实例
func NewRoomService(repo *repository.Repository, logger *zap.Logger) RoomService {
	return &roomService{repo: repo, logger: logger}
}

func (s *roomService) List(ctx context.Context, req *dto.RoomListRequest) ([]dto.RoomDetailResponse, error) {
	rooms, err := s.repo.Room.List(ctx, req.FlatID)
	if err != nil {
		s.logger.Error("查询房间列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.RoomDetailResponse, 0, len(rooms))
	for _, rm := range rooms {
		result = append(result, dto.RoomDetailResponse{
			RoomID:            rm.RoomID,
			FlatID:            rm.FlatID,
			RoomNumber:        rm.RoomNumber,
			RoomType:          rm.RoomType,
			MaxOccupancy:      rm.MaxOccupancy,
			GenderRestriction: rm.GenderRestriction,
			Status:            rm.Status,
			FlatNumber:        rm.FlatNumber,
			FloorNumber:       rm.FloorNumber,
			BuildingID:        rm.BuildingID,
			BuildingName:      rm.BuildingName,
		})
	}

	return result, nil
}

func (s *roomService) Create(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	rm := &model.Room{
		FlatID:       *req.FlatID,
		RoomNumber:   req.RoomNumber,
		MaxOccupancy: *req.MaxOccupancy,
		Status:       "Active",
	}
	if req.RoomType != nil {
		rm.RoomType = *req.RoomType
	}
	if req.GenderRestriction != nil {
		rm.GenderRestriction = *req.GenderRestriction
	}
	if req.Status != nil && *req.Status != "" {
		rm.Status = *req.Status
	}

	if err := s.repo.Room.Create(ctx, rm); err != nil {
		s.logger.Error("创建房间失败", zap.Uint("flat_id", rm.FlatID), zap.Error(err))
		return nil, err
	}

	return s.toRoomResponse(rm), nil
}

func (s *roomService) Update(ctx context.Context, id uint, req *dto.UpdateRoomRequest) (*dto.RoomResponse, error) {
	rm, err := s.repo.Room.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("查询房间失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	if req.FlatID != nil {
		rm.FlatID = *req.FlatID
	}
	if req.RoomNumber != nil {
		rm.RoomNumber = *req.RoomNumber
	}
	if req.RoomType != nil {
		rm.RoomType = *req.RoomType
	}
	if req.MaxOccupancy != nil {
		rm.MaxOccupancy = *req.MaxOccupancy
	}
	if req.GenderRestriction != nil {
		rm.GenderRestriction = *req.GenderRestriction
	}
	if req.Status != nil {
		rm.Status = *req.Status
	}

	if err := s.repo.Room.Update(ctx, rm); err != nil {
		s.logger.Error("更新房间失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return s.toRoomResponse(rm), nil
}

func (s *roomService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Room.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomNotFound
		}
		s.logger.Error("删除房间失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *roomService) toRoomResponse(rm *model.Room) *dto.RoomResponse {
	return &dto.RoomResponse{
		RoomID:            rm.RoomID,
		FlatID:            rm.FlatID,
		RoomNumber:        rm.RoomNumber,
		RoomType:          rm.RoomType,
		MaxOccupancy:      rm.MaxOccupancy,
		GenderRestriction: rm.GenderRestriction,
		Status:            rm.Status,
	}
}
