package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dormbook/config"
	"dormbook/internal/api/handler"
	"dormbook/internal/api/middleware"
	"dormbook/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
// rdb 可为 nil（限流中间件降级放行）
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))
	if cfg.Server.RateLimit > 0 {
		r.Use(middleware.RateLimit(rdb, cfg.Server.RateLimit, time.Minute))
	}

	// ── 健康检查 ──
	r.GET("/health", h.Health.Health)

	// ── API ──
	api := r.Group("/api")
	{
		api.GET("/health", h.Health.Health)

		// 楼栋模块
		buildings := api.Group("/buildings")
		{
			buildings.GET("", h.Building.ListBuildings)
			buildings.POST("", h.Building.CreateBuilding)
			buildings.PUT("/:id", h.Building.UpdateBuilding)
			buildings.DELETE("/:id", h.Building.DeleteBuilding)
		}

		// 楼层模块
		floors := api.Group("/floors")
		{
			floors.GET("", h.Floor.ListFloors)
			floors.POST("", h.Floor.CreateFloor)
			floors.PUT("/:id", h.Floor.UpdateFloor)
			floors.DELETE("/:id", h.Floor.DeleteFloor)
		}

		// 套间模块
		flats := api.Group("/flats")
		{
			flats.GET("", h.Flat.ListFlats)
			flats.POST("", h.Flat.CreateFlat)
			flats.PUT("/:id", h.Flat.UpdateFlat)
			flats.DELETE("/:id", h.Flat.DeleteFlat)
		}

		// 房间模块
		rooms := api.Group("/rooms")
		{
			rooms.GET("", h.Room.ListRooms)
			rooms.POST("", h.Room.CreateRoom)
			rooms.PUT("/:id", h.Room.UpdateRoom)
			rooms.DELETE("/:id", h.Room.DeleteRoom)
		}

		// 床位模块
		beds := api.Group("/beds")
		{
			beds.GET("", h.Bed.ListBeds)
			beds.POST("", h.Bed.CreateBed)
			beds.PUT("/:id", h.Bed.UpdateBed)
			beds.DELETE("/:id", h.Bed.DeleteBed)
		}

		// 员工模块
		employees := api.Group("/employees")
		{
			employees.GET("", h.Employee.ListEmployees)
			employees.POST("", h.Employee.CreateEmployee)
			employees.PUT("/:id", h.Employee.UpdateEmployee)
			employees.DELETE("/:id", h.Employee.DeleteEmployee)
			employees.POST("/import", h.Employee.ImportEmployees)
		}

		// 床位分配模块
		assignments := api.Group("/assignments")
		{
			assignments.GET("", h.Assignment.ListAssignments)
			assignments.POST("", h.Assignment.CreateAssignment)
			assignments.PUT("/:id", h.Assignment.UpdateAssignment)
			assignments.DELETE("/:id", h.Assignment.DeleteAssignment)
		}

		// 报表模块
		api.GET("/reports/summary", h.Report.OccupancySummary)
		api.GET("/export/occupancy", h.Report.ExportOccupancy)
	}

	return r
}
