package repository

import (
	"context"

	"gorm.io/gorm"

	"dormbook/internal/model"
)

// FloorRepository 楼层数据访问接口
type FloorRepository interface {
	Create(ctx context.Context, f *model.Floor) error
	GetByID(ctx context.Context, id uint) (*model.Floor, error)
	GetDetail(ctx context.Context, id uint) (*model.FloorDetail, error)
	List(ctx context.Context, buildingID *uint) ([]model.FloorDetail, error)
	Update(ctx context.Context, f *model.Floor) error
	Delete(ctx context.Context, id uint) error
}

type floorRepo struct {
	db *gorm.DB
}

// NewFloorRepo 创建 FloorRepository 实例
func NewFloorRepo(db *gorm.DB) FloorRepository {
	return &floorRepo{db: db}
}

func (r *floorRepo) Create(ctx context.Context, f *model.Floor) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *floorRepo) GetByID(ctx context.Context, id uint) (*model.Floor, error) {
	var f model.Floor
	err := r.db.WithContext(ctx).
		Where("floor_id = ?", id).
		First(&f).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *floorRepo) GetDetail(ctx context.Context, id uint) (*model.FloorDetail, error) {
	var detail model.FloorDetail
	res := r.detailQuery(ctx).
		Where("f.floor_id = ?", id).
		Scan(&detail)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &detail, nil
}

func (r *floorRepo) List(ctx context.Context, buildingID *uint) ([]model.FloorDetail, error) {
	q := r.detailQuery(ctx)
	if buildingID != nil {
		q = q.Where("f.building_id = ?", *buildingID)
	}

	var floors []model.FloorDetail
	err := q.Order("b.building_name ASC, f.floor_number ASC").Scan(&floors).Error
	return floors, err
}

func (r *floorRepo) Update(ctx context.Context, f *model.Floor) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *floorRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).
		Where("floor_id = ?", id).
		Delete(&model.Floor{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *floorRepo) detailQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("floors AS f").
		Select("f.floor_id, f.building_id, f.floor_number, f.description, b.building_name").
		Joins("JOIN buildings b ON f.building_id = b.building_id")
}
