package handler

import (
	"gorm.io/gorm"

	"dormbook/internal/service"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Health     *HealthHandler
	Building   *BuildingHandler
	Floor      *FloorHandler
	Flat       *FlatHandler
	Room       *RoomHandler
	Bed        *BedHandler
	Employee   *EmployeeHandler
	Assignment *AssignmentHandler
	Report     *ReportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service, db *gorm.DB) *Handler {
	return &Handler{
		Health:     NewHealthHandler(db),
		Building:   NewBuildingHandler(svc.Building),
		Floor:      NewFloorHandler(svc.Floor),
		Flat:       NewFlatHandler(svc.Flat),
		Room:       NewRoomHandler(svc.Room),
		Bed:        NewBedHandler(svc.Bed),
		Employee:   NewEmployeeHandler(svc.Employee),
		Assignment: NewAssignmentHandler(svc.Assignment),
		Report:     NewReportHandler(svc.Report),
	}
}
