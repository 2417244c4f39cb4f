package app

import (
	"database/sql"

	"go-dtr/internal/cdo"
	"go-dtr/internal/dtr"
	"go-dtr/internal/employee"
	"go-dtr/internal/fixlog"
	"go-dtr/internal/holiday"
	"go-dtr/internal/leave"
	"go-dtr/internal/locator"
	"go-dtr/internal/messaging/kafka"
	"go-dtr/internal/middleware"
	"go-dtr/internal/shared/counter"
	"go-dtr/internal/shift"
	"go-dtr/internal/timelog"
	"go-dtr/internal/travel"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	cdoRepo := cdo.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	fixLogRepo := fixlog.NewRepository(gormDB)
	holidayRepo := holiday.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	locatorRepo := locator.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	shiftRepo := shift.NewRepository(gormDB)
	timeLogRepo := timelog.NewRepository(gormDB)
	travelRepo := travel.NewRepository(gormDB)

	// Timesheet cache. Filing services bump the per-employee version
	// through it, dtr reads through it.
	dtrCache := dtr.NewCache(rdb)

	// --- Services ---
	cdoService := cdo.NewService(cdoRepo)
	employeeService := employee.NewService(employeeRepo)
	fixLogService := fixlog.NewService(db, fixLogRepo, counterRepo, outboxRepo, dtrCache)
	holidayService := holiday.NewService(holidayRepo)
	leaveService := leave.NewService(db, leaveRepo, counterRepo, outboxRepo, dtrCache)
	locatorService := locator.NewService(db, locatorRepo, counterRepo, outboxRepo, dtrCache)
	shiftService := shift.NewService(shiftRepo)
	timeLogService := timelog.NewService(timeLogRepo, employeeService)
	travelService := travel.NewService(travelRepo)

	dtrService := dtr.NewService(dtr.Feeds{
		Schedule: shiftService,
		Punches:  timeLogService,
		Locators: locatorService,
		Leaves:   leaveService,
		Travels:  travelService,
		Holidays: holidayService,
		Cdo:      cdoService,
		FixLogs:  fixLogService,
		Users:    employeeService,
	}, dtrCache)

	// --- Handlers ---
	dtrHandler := dtr.NewHandler(dtrService)
	fixLogHandler := fixlog.NewHandlerWithRedis(fixLogService, rdb)
	holidayHandler := holiday.NewHandler(holidayService)
	leaveHandler := leave.NewHandlerWithRedis(leaveService, rdb)
	locatorHandler := locator.NewHandlerWithRedis(locatorService, rdb)
	shiftHandler := shift.NewHandler(shiftService)
	timeLogHandler := timelog.NewHandler(timeLogService)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	{
		dtr.RegisterRoutes(api, dtrHandler, zap.L())
		fixlog.RegisterRoutes(api, fixLogHandler, rdb)
		holiday.RegisterRoutes(api, holidayHandler)
		leave.RegisterRoutes(api, leaveHandler, rdb)
		locator.RegisterRoutes(api, locatorHandler, rdb)
		shift.RegisterRoutes(api, shiftHandler)
		timelog.RegisterRoutes(api, timeLogHandler, zap.L())
	}

	return nil
}
