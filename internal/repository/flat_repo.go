package repository

import (
	"context"

	"gorm.io/gorm"

	"dormbook/internal/model"
)

// FlatRepository 套间数据访问接口
type FlatRepository interface {
	Create(ctx context.Context, fl *model.Flat) error
	GetByID(ctx context.Context, id uint) (*model.Flat, error)
	List(ctx context.Context, floorID *uint) ([]model.FlatDetail, error)
	Update(ctx context.Context, fl *model.Flat) error
	Delete(ctx context.Context, id uint) error
}

type flatRepo struct {
	db *gorm.DB
}

// NewFlatRepo 创建 FlatRepository 实例
func NewFlatRepo(db *gorm.DB) FlatRepository {
	return &flatRepo{db: db}
}

func (r *flatRepo) Create(ctx context.Context, fl *model.Flat) error {
	return r.db.WithContext(ctx).Create(fl).Error
}

func (r *flatRepo) GetByID(ctx context.Context, id uint) (*model.Flat, error) {
	var fl model.Flat
	err := r.db.WithContext(ctx).
		Where("flat_id = ?", id).
		First(&fl).Error
	if err != nil {
		return nil, err
	}
	return &fl, nil
}

func (r *flatRepo) List(ctx context.Context, floorID *uint) ([]model.FlatDetail, error) {
	q := r.db.WithContext(ctx).
		Table("flats AS fl").
		Select(`fl.flat_id, fl.floor_id, fl.flat_number, fl.flat_type, fl.status,
			f.floor_number, f.building_id, b.building_name`).
		Joins("JOIN floors f ON fl.floor_id = f.floor_id").
		Joins("JOIN buildings b ON f.building_id = b.building_id")

	if floorID != nil {
		q = q.Where("fl.floor_id = ?", *floorID)
	}

	var flats []model.FlatDetail
	err := q.Order("b.building_name ASC, f.floor_number ASC, fl.flat_number ASC").Scan(&flats).Error
	return flats, err
}

func (r *flatRepo) Update(ctx context.Context, fl *model.Flat) error {
	return r.db.WithContext(ctx).Save(fl).Error
}

func (r *flatRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).
		Where("flat_id = ?", id).
		Delete(&model.Flat{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
