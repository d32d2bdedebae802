package service

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"dormbook/internal/dto"
	"dormbook/internal/model"
	"dormbook/internal/repository"
	"dormbook/pkg/redis"
)

const (
	summaryCacheKey = "dormbook:report:summary"
	summaryCacheTTL = 60 * time.Second
)

// ReportService 占用率报表业务接口
type ReportService interface {
	// Summary 全局与分楼栋占用汇总，带短 TTL 缓存
	Summary(ctx context.Context) (*dto.OccupancySummaryResponse, error)
	// ExportOccupancy 导出床位明细与汇总为 Excel，返回文件内容与建议文件名
	ExportOccupancy(ctx context.Context) (*bytes.Buffer, string, error)
}

type reportService struct {
	repo   *repository.Repository
	rdb    *redis.Client
	logger *zap.Logger
}

// NewReportService 创建 ReportService 实例
func NewReportService(repo *repository.Repository, rdb *redis.Client, logger *zap.Logger) ReportService {
	return &reportService{repo: repo, rdb: rdb, logger: logger}
}

// ────────────────────── Summary ──────────────────────

func (s *reportService) Summary(ctx context.Context) (*dto.OccupancySummaryResponse, error) {
	if s.rdb != nil {
		var cached dto.OccupancySummaryResponse
		hit, err := s.rdb.GetJSON(ctx, summaryCacheKey, &cached)
		if err != nil {
			// 缓存故障降级为直读
			s.logger.Warn("读取占用汇总缓存失败", zap.Error(err))
		} else if hit {
			return &cached, nil
		}
	}

	summary, err := s.buildSummary(ctx)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if err := s.rdb.SetJSON(ctx, summaryCacheKey, summary, summaryCacheTTL); err != nil {
			s.logger.Warn("写入占用汇总缓存失败", zap.Error(err))
		}
	}

	return summary, nil
}

func (s *reportService) buildSummary(ctx context.Context) (*dto.OccupancySummaryResponse, error) {
	beds, err := s.repo.Bed.List(ctx, nil)
	if err != nil {
		s.logger.Error("查询床位明细失败", zap.Error(err))
		return nil, err
	}

	summary := &dto.OccupancySummaryResponse{
		Buildings: []dto.BuildingOccupancy{},
	}

	// 楼栋层级缺失的床位只计入全局，不单列楼栋
	perBuilding := make(map[uint]*dto.BuildingOccupancy)
	for i := range beds {
		bed := &beds[i]
		occupied := bed.Status == model.BedStatusOccupied

		summary.TotalBeds++
		if occupied {
			summary.OccupiedBeds++
		}

		if bed.BuildingID == nil {
			continue
		}
		b, ok := perBuilding[*bed.BuildingID]
		if !ok {
			b = &dto.BuildingOccupancy{BuildingID: *bed.BuildingID}
			if bed.BuildingName != nil {
				b.BuildingName = *bed.BuildingName
			}
			perBuilding[*bed.BuildingID] = b
		}
		b.TotalBeds++
		if occupied {
			b.OccupiedBeds++
		}
	}

	summary.AvailableBeds = summary.TotalBeds - summary.OccupiedBeds
	if summary.TotalBeds > 0 {
		summary.OccupancyRate = summary.OccupiedBeds * 100 / summary.TotalBeds
	}

	for _, b := range perBuilding {
		b.AvailableBeds = b.TotalBeds - b.OccupiedBeds
		summary.Buildings = append(summary.Buildings, *b)
	}
	sort.Slice(summary.Buildings, func(i, j int) bool {
		return summary.Buildings[i].BuildingID < summary.Buildings[j].BuildingID
	})

	return summary, nil
}

// ────────────────────── ExportOccupancy ──────────────────────

func (s *reportService) ExportOccupancy(ctx context.Context) (*bytes.Buffer, string, error) {
	beds, err := s.repo.Bed.List(ctx, nil)
	if err != nil {
		s.logger.Error("查询床位明细失败", zap.Error(err))
		return nil, "", err
	}

	summary, err := s.buildSummary(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	// Beds 工作表：逐床位明细
	const bedsSheet = "Beds"
	f.SetSheetName(f.GetSheetName(0), bedsSheet)

	bedHeaders := []string{"BedID", "BedCode", "Status", "Room", "Flat", "Floor", "Building"}
	for i, h := range bedHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(bedsSheet, cell, h)
	}

	deref := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}

	for i := range beds {
		bed := &beds[i]
		row := i + 2
		floor := ""
		if bed.FloorNumber != nil {
			floor = fmt.Sprintf("%d", *bed.FloorNumber)
		}
		values := []interface{}{
			bed.BedID,
			bed.BedCode,
			bed.Status,
			deref(bed.RoomNumber),
			deref(bed.FlatNumber),
			floor,
			deref(bed.BuildingName),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			f.SetCellValue(bedsSheet, cell, v)
		}
	}

	// Summary 工作表：全局行 + 分楼栋行
	const summarySheet = "Summary"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, "", fmt.Errorf("创建汇总工作表失败: %w", err)
	}

	summaryHeaders := []string{"Building", "TotalBeds", "OccupiedBeds", "AvailableBeds", "OccupancyRate"}
	for i, h := range summaryHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(summarySheet, cell, h)
	}

	totalRow := []interface{}{
		"All",
		summary.TotalBeds,
		summary.OccupiedBeds,
		summary.AvailableBeds,
		fmt.Sprintf("%d%%", summary.OccupancyRate),
	}
	for j, v := range totalRow {
		cell, _ := excelize.CoordinatesToCellName(j+1, 2)
		f.SetCellValue(summarySheet, cell, v)
	}

	for i, b := range summary.Buildings {
		row := i + 3
		rate := 0
		if b.TotalBeds > 0 {
			rate = b.OccupiedBeds * 100 / b.TotalBeds
		}
		values := []interface{}{
			b.BuildingName,
			b.TotalBeds,
			b.OccupiedBeds,
			b.AvailableBeds,
			fmt.Sprintf("%d%%", rate),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			f.SetCellValue(summarySheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("生成 Excel 文件失败", zap.Error(err))
		return nil, "", fmt.Errorf("生成 Excel 文件失败: %w", err)
	}

	filename := fmt.Sprintf("occupancy_%s.xlsx", time.Now().Format("20060102_150405"))
	return buf, filename, nil
}
