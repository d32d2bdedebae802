package dto

// ── 报表模块 DTO ──

// BuildingOccupancy 单楼栋床位占用统计
type BuildingOccupancy struct {
	BuildingID    uint   `json:"BuildingID"`
	BuildingName  string `json:"BuildingName"`
	TotalBeds     int    `json:"TotalBeds"`
	OccupiedBeds  int    `json:"OccupiedBeds"`
	AvailableBeds int    `json:"AvailableBeds"`
}

// OccupancySummaryResponse 全局占用汇总（仪表盘数据源）
type OccupancySummaryResponse struct {
	TotalBeds     int                 `json:"TotalBeds"`
	OccupiedBeds  int                 `json:"OccupiedBeds"`
	AvailableBeds int                 `json:"AvailableBeds"`
	// OccupancyRate 取整百分比，总床位为 0 时为 0
	OccupancyRate int                 `json:"OccupancyRate"`
	Buildings     []BuildingOccupancy `json:"Buildings"`
}
