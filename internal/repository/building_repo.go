package repository

import (
	"context"

	"gorm.io/gorm"

	"dormbook/internal/model"
)

// listBuildingsLimit 楼栋列表上限
const listBuildingsLimit = 50

// BuildingRepository 楼栋数据访问接口
type BuildingRepository interface {
	Create(ctx context.Context, b *model.Building) error
	GetByID(ctx context.Context, id uint) (*model.Building, error)
	List(ctx context.Context) ([]model.Building, error)
	Update(ctx context.Context, b *model.Building) error
	Delete(ctx context.Context, id uint) error
}

type buildingRepo struct {
	db *gorm.DB
}

// NewBuildingRepo 创建 BuildingRepository 实例
func NewBuildingRepo(db *gorm.DB) BuildingRepository {
	return &buildingRepo{db: db}
}

func (r *buildingRepo) Create(ctx context.Context, b *model.Building) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *buildingRepo) GetByID(ctx context.Context, id uint) (*model.Building, error) {
	var b model.Building
	err := r.db.WithContext(ctx).
		Where("building_id = ?", id).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *buildingRepo) List(ctx context.Context) ([]model.Building, error) {
	var buildings []model.Building
	err := r.db.WithContext(ctx).
		Order("building_name ASC").
		Limit(listBuildingsLimit).
		Find(&buildings).Error
	return buildings, err
}

func (r *buildingRepo) Update(ctx context.Context, b *model.Building) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *buildingRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).
		Where("building_id = ?", id).
		Delete(&model.Building{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
