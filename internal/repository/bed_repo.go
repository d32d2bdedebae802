package repository

import (
	"context"

	"gorm.io/gorm"

	"dormbook/internal/model"
)

// BedRepository 床位数据访问接口
// 床位 Status 列只读；占用状态的写入集中在 AssignmentRepository
type BedRepository interface {
	Create(ctx context.Context, bd *model.Bed) error
	GetByID(ctx context.Context, id uint) (*model.Bed, error)
	List(ctx context.Context, roomID *uint) ([]model.BedDetail, error)
	Update(ctx context.Context, bd *model.Bed) error
	Delete(ctx context.Context, id uint) error
}

type bedRepo struct {
	db *gorm.DB
}

// NewBedRepo 创建 BedRepository 实例
func NewBedRepo(db *gorm.DB) BedRepository {
	return &bedRepo{db: db}
}

func (r *bedRepo) Create(ctx context.Context, bd *model.Bed) error {
	return r.db.WithContext(ctx).Create(bd).Error
}

func (r *bedRepo) GetByID(ctx context.Context, id uint) (*model.Bed, error) {
	var bd model.Bed
	err := r.db.WithContext(ctx).
		Where("bed_id = ?", id).
		First(&bd).Error
	if err != nil {
		return nil, err
	}
	return &bd, nil
}

func (r *bedRepo) List(ctx context.Context, roomID *uint) ([]model.BedDetail, error) {
	q := r.db.WithContext(ctx).
		Table("beds AS bd").
		Select(`bd.bed_id, bd.room_id, bd.bed_code, bd.status,
			r.room_number, fl.flat_number, f.floor_number, f.building_id, b.building_name`).
		Joins("LEFT JOIN rooms r ON bd.room_id = r.room_id").
		Joins("LEFT JOIN flats fl ON r.flat_id = fl.flat_id").
		Joins("LEFT JOIN floors f ON fl.floor_id = f.floor_id").
		Joins("LEFT JOIN buildings b ON f.building_id = b.building_id")

	if roomID != nil {
		q = q.Where("bd.room_id = ?", *roomID)
	}

	var beds []model.BedDetail
	err := q.Order("b.building_name ASC, f.floor_number ASC, fl.flat_number ASC, r.room_number ASC, bd.bed_code ASC").
		Scan(&beds).Error
	return beds, err
}

func (r *bedRepo) Update(ctx context.Context, bd *model.Bed) error {
	return r.db.WithContext(ctx).Save(bd).Error
}

func (r *bedRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).
		Where("bed_id = ?", id).
		Delete(&model.Bed{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
