package repository

import (
	"context"

	"gorm.io/gorm"

	"dormbook/internal/model"
)

// AssignmentRepository 床位分配数据访问接口
//
// 这是床位占用一致性的唯一写入口：每个写操作把分配行变更与床位状态
// 变更放在同一事务里，失败时不留下半截效果。
type AssignmentRepository interface {
	List(ctx context.Context) ([]model.AssignmentDetail, error)
	GetDetail(ctx context.Context, id uint) (*model.AssignmentDetail, error)
	// Create 插入分配行并无条件将目标床位置为 Occupied
	Create(ctx context.Context, a *model.BedAssignment) error
	// Update 按 updates 更新分配行；closeRequested 为真时按存活分配集合
	// 复核床位占用。分配不存在返回 gorm.ErrRecordNotFound
	Update(ctx context.Context, id uint, updates map[string]interface{}, closeRequested bool) error
	// Delete 删除分配行并复核床位占用，返回该分配占用的床位 ID
	Delete(ctx context.Context, id uint) (uint, error)
}

type assignmentRepo struct {
	db *gorm.DB
}

// NewAssignmentRepo 创建 AssignmentRepository 实例
func NewAssignmentRepo(db *gorm.DB) AssignmentRepository {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) List(ctx context.Context) ([]model.AssignmentDetail, error) {
	var assignments []model.AssignmentDetail
	err := r.detailQuery(ctx).
		Order("a.assignment_id DESC").
		Scan(&assignments).Error
	return assignments, err
}

func (r *assignmentRepo) GetDetail(ctx context.Context, id uint) (*model.AssignmentDetail, error) {
	var detail model.AssignmentDetail
	res := r.detailQuery(ctx).
		Where("a.assignment_id = ?", id).
		Scan(&detail)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &detail, nil
}

func (r *assignmentRepo) Create(ctx context.Context, a *model.BedAssignment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(a).Error; err != nil {
			return err
		}

		// 任何新建分配都占用床位，与分配自身的 Status 取值无关
		// （包括 Planned 甚至直接建成 Closed 的分配）
		return tx.Model(&model.Bed{}).
			Where("bed_id = ?", a.BedID).
			Update("status", model.BedStatusOccupied).Error
	})
}

func (r *assignmentRepo) Update(ctx context.Context, id uint, updates map[string]interface{}, closeRequested bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var a model.BedAssignment
		if err := tx.Select("bed_id").
			Where("assignment_id = ?", id).
			First(&a).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.BedAssignment{}).
			Where("assignment_id = ?", id).
			Updates(updates).Error; err != nil {
			return err
		}

		// 只有本次请求写入 Closed 才触发复核；
		// 写回 Planned/Active 不会重新占用床位
		if closeRequested {
			return reconcileBedStatus(tx, a.BedID)
		}
		return nil
	})
}

func (r *assignmentRepo) Delete(ctx context.Context, id uint) (uint, error) {
	var bedID uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var a model.BedAssignment
		if err := tx.Select("bed_id").
			Where("assignment_id = ?", id).
			First(&a).Error; err != nil {
			return err
		}
		bedID = a.BedID

		if err := tx.Where("assignment_id = ?", id).
			Delete(&model.BedAssignment{}).Error; err != nil {
			return err
		}

		return reconcileBedStatus(tx, bedID)
	})
	if err != nil {
		return 0, err
	}
	return bedID, nil
}

// reconcileBedStatus 按存活分配集合复核床位占用
// 无 Planned/Active 分配时释放床位；否则保持现状（不反向强制 Occupied）。
// 所有释放路径都必须经过这里，避免各调用点各写一套规则产生漂移
func reconcileBedStatus(tx *gorm.DB, bedID uint) error {
	var live int64
	err := tx.Model(&model.BedAssignment{}).
		Where("bed_id = ? AND status IN ?", bedID, model.LiveStatuses()).
		Count(&live).Error
	if err != nil {
		return err
	}

	if live == 0 {
		return tx.Model(&model.Bed{}).
			Where("bed_id = ?", bedID).
			Update("status", model.BedStatusAvailable).Error
	}
	return nil
}

func (r *assignmentRepo) detailQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("bed_assignments AS a").
		Select(`a.assignment_id, a.employee_id, e.employee_code, e.first_name, e.last_name,
			a.bed_id, bd.bed_code, r.room_number, fl.flat_number, f.floor_number, b.building_name,
			a.start_date, a.end_date, a.status, a.reason, a.created_at, a.created_by`).
		Joins("JOIN employees e ON a.employee_id = e.employee_id").
		Joins("JOIN beds bd ON a.bed_id = bd.bed_id").
		Joins("JOIN rooms r ON bd.room_id = r.room_id").
		Joins("JOIN flats fl ON r.flat_id = fl.flat_id").
		Joins("JOIN floors f ON fl.floor_id = f.floor_id").
		Joins("JOIN buildings b ON f.building_id = b.building_id")
}
