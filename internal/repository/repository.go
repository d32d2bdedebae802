package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Building   BuildingRepository
	Floor      FloorRepository
	Flat       FlatRepository
	Room       RoomRepository
	Bed        BedRepository
	Employee   EmployeeRepository
	Assignment AssignmentRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Building:   NewBuildingRepo(db),
		Floor:      NewFloorRepo(db),
		Flat:       NewFlatRepo(db),
		Room:       NewRoomRepo(db),
		Bed:        NewBedRepo(db),
		Employee:   NewEmployeeRepo(db),
		Assignment: NewAssignmentRepo(db),
	}
}
