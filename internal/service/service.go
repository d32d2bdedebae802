package service

import (
	"go.uber.org/zap"

	"dormbook/internal/repository"
	"dormbook/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Building   BuildingService
	Floor      FloorService
	Flat       FlatService
	Room       RoomService
	Bed        BedService
	Employee   EmployeeService
	Assignment AssignmentService
	Report     ReportService
}

// NewService 创建 Service 聚合
// rdb 可为 nil（Redis 不可用时报表降级为直查）
func NewService(repo *repository.Repository, rdb *redis.Client, logger *zap.Logger) *Service {
	return &Service{
		Building:   NewBuildingService(repo, logger),
		Floor:      NewFloorService(repo, logger),
		Flat:       NewFlatService(repo, logger),
		Room:       NewRoomService(repo, logger),
		Bed:        NewBedService(repo, logger),
		Employee:   NewEmployeeService(repo, logger),
		Assignment: NewAssignmentService(repo, logger),
		Report:     NewReportService(repo, rdb, logger),
	}
}
