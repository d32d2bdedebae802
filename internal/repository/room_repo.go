package repository

import (
	"context"

	"gorm.io/gorm"

	"dormbook/internal/model"
)

// RoomRepository 房间数据访问接口
type RoomRepository interface {
	Create(ctx context.Context, rm *model.Room) error
	GetByID(ctx context.Context, id uint) (*model.Room, error)
	List(ctx context.Context, flatID *uint) ([]model.RoomDetail, error)
	Update(ctx context.Context, rm *model.Room) error
	Delete(ctx context.Context, id uint) error
}

type roomRepo struct {
	db *gorm.DB
}

// NewRoomRepo 创建 RoomRepository 实例
func NewRoomRepo(db *gorm.DB) RoomRepository {
	return &roomRepo{db: db}
}

func (r *roomRepo) Create(ctx context.Context, rm *model.Room) error {
	return r.db.WithContext(ctx).Create(rm).Error
}

func (r *roomRepo) GetByID(ctx context.Context, id uint) (*model.Room, error) {
	var rm model.Room
	err := r.db.WithContext(ctx).
		Where("room_id = ?", id).
		First(&rm).Error
	if err != nil {
		return nil, err
	}
	return &rm, nil
}

func (r *roomRepo) List(ctx context.Context, flatID *uint) ([]model.RoomDetail, error) {
	q := r.db.WithContext(ctx).
		Table("rooms AS r").
		Select(`r.room_id, r.flat_id, r.room_number, r.room_type, r.max_occupancy,
			r.gender_restriction, r.status,
			fl.flat_number, f.floor_number, f.building_id, b.building_name`).
		Joins("LEFT JOIN flats fl ON r.flat_id = fl.flat_id").
		Joins("LEFT JOIN floors f ON fl.floor_id = f.floor_id").
		Joins("LEFT JOIN buildings b ON f.building_id = b.building_id")

	if flatID != nil {
		q = q.Where("r.flat_id = ?", *flatID)
	}

	var rooms []model.RoomDetail
	err := q.Order("b.building_name ASC, f.floor_number ASC, fl.flat_number ASC, r.room_number ASC").
		Scan(&rooms).Error
	return rooms, err
}

func (r *roomRepo) Update(ctx context.Context, rm *model.Room) error {
	return r.db.WithContext(ctx).Save(rm).Error
}

func (r *roomRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).
		Where("room_id = ?", id).
		Delete(&model.Room{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
