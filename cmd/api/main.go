package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/acadexa/testcenter-api/api/swagger"
	"github.com/acadexa/testcenter-api/internal/handler"
	"github.com/acadexa/testcenter-api/internal/middleware"
	"github.com/acadexa/testcenter-api/internal/models"
	"github.com/acadexa/testcenter-api/internal/repository"
	"github.com/acadexa/testcenter-api/internal/service"
	"github.com/acadexa/testcenter-api/pkg/cache"
	"github.com/acadexa/testcenter-api/pkg/config"
	"github.com/acadexa/testcenter-api/pkg/database"
	"github.com/acadexa/testcenter-api/pkg/logger"
	"github.com/acadexa/testcenter-api/pkg/middleware/cors"
	"github.com/acadexa/testcenter-api/pkg/middleware/requestid"
	"github.com/acadexa/testcenter-api/pkg/store"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	log, err := logger.New(cfg)
	if err != nil {
		panic(fmt.Sprintf("failed to init logger: %v", err))
	}
	defer func() { _ = log.Sync() }()

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	st, redisClient, err := buildStore(ctx, cfg)
	if err != nil {
		log.Fatal("failed to init store", zap.String("backend", cfg.Store.Backend), zap.Error(err))
	}
	log.Info("store ready", zap.String("backend", cfg.Store.Backend))

	// Repositories.
	userRepo := repository.NewUserRepository(st)
	teacherRepo := repository.NewTeacherRepository(st)
	courseRepo := repository.NewCourseRepository(st)
	timeframeRepo := repository.NewTimeframeRepository(st)
	roomRepo := repository.NewRoomRepository(st)
	batchRepo := repository.NewBatchRepository(st)
	slotRepo := repository.NewTestSlotRepository(st)
	studentRepo := repository.NewStudentRepository(st)
	registrationRepo := repository.NewRegistrationRepository(st)
	attendanceRepo := repository.NewAttendanceRepository(st)
	performanceRepo := repository.NewPerformanceRepository(st)

	// Services.
	metricsSvc := service.NewMetricsService()
	authSvc := service.NewAuthService(userRepo, nil, log, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
	})
	catalogSvc := service.NewCatalogService(teacherRepo, courseRepo, timeframeRepo, roomRepo, nil, log)
	batchSvc := service.NewBatchService(batchRepo, timeframeRepo, roomRepo, teacherRepo, metricsSvc, nil, log)
	slotSvc := service.NewTestSlotService(slotRepo, nil, log)
	speakingSvc := service.NewSpeakingService(slotRepo, nil, log)
	registrationSvc := service.NewRegistrationService(registrationRepo, studentRepo, slotRepo, roomRepo, metricsSvc, nil, log)
	resultSvc := service.NewResultService(slotRepo, performanceRepo, nil, log)
	attendanceSvc := service.NewAttendanceService(attendanceRepo, studentRepo, batchRepo, nil, log)
	studentSvc := service.NewStudentService(studentRepo, registrationRepo, performanceRepo, slotRepo, nil, log)

	var dashboardSvc *service.DashboardService
	if redisClient != nil {
		cacheRepo := repository.NewCacheRepository(redisClient)
		dashboardSvc = service.NewDashboardService(batchRepo, timeframeRepo, courseRepo, roomRepo, teacherRepo, cacheRepo, metricsSvc, cfg.Dashboard.CacheTTL, log)
	} else {
		dashboardSvc = service.NewDashboardService(batchRepo, timeframeRepo, courseRepo, roomRepo, teacherRepo, nil, metricsSvc, cfg.Dashboard.CacheTTL, log)
	}
	exportSvc := service.NewExportService(registrationSvc, dashboardSvc, log)

	if cfg.Seed.DemoData {
		seedSvc := service.NewSeedService(st, userRepo, teacherRepo, courseRepo, timeframeRepo, roomRepo, log)
		if err := seedSvc.EnsureDemoData(ctx); err != nil {
			log.Fatal("failed to seed demo data", zap.Error(err))
		}
	}

	// Handlers.
	authHandler := handler.NewAuthHandler(authSvc)
	catalogHandler := handler.NewCatalogHandler(catalogSvc)
	batchHandler := handler.NewBatchHandler(batchSvc)
	slotHandler := handler.NewTestSlotHandler(slotSvc)
	speakingHandler := handler.NewSpeakingHandler(speakingSvc, slotSvc)
	registrationHandler := handler.NewRegistrationHandler(registrationSvc)
	resultHandler := handler.NewResultHandler(resultSvc)
	attendanceHandler := handler.NewAttendanceHandler(attendanceSvc)
	studentHandler := handler.NewStudentHandler(studentSvc)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestid.Middleware())
	r.Use(logger.GinMiddleware(log))
	r.Use(cors.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.POST("/auth/login", authHandler.Login)

	authed := api.Group("")
	authed.Use(middleware.JWT(authSvc))
	authed.GET("/auth/me", authHandler.Me)

	// Read endpoints accept any authenticated role. Attendance,
	// registration and score entry need staff. The rest is admin-only.
	reads := authed.Group("")
	reads.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher, models.RoleStudent))
	{
		reads.GET("/teachers", catalogHandler.ListTeachers)
		reads.GET("/courses", catalogHandler.ListCourses)
		reads.GET("/timeframes", catalogHandler.ListTimeframes)
		reads.GET("/rooms", catalogHandler.ListRooms)

		reads.GET("/batches", batchHandler.List)
		reads.GET("/batches/:id", batchHandler.Get)

		reads.GET("/test-slots", slotHandler.List)
		reads.GET("/test-slots/overview", slotHandler.Overview)
		reads.GET("/test-slots/speaking-times", slotHandler.SpeakingTimeOptions)
		reads.GET("/test-slots/:id", slotHandler.Get)
		reads.GET("/speaking-batches", speakingHandler.List)
		reads.GET("/speaking-batches/:id/slots", speakingHandler.AvailableSlots)
		reads.GET("/speaking-slots", speakingHandler.OpenSlots)

		if cfg.Dashboard.Enabled {
			reads.GET("/dashboard/schedule", dashboardHandler.DaySchedule)
		}
	}

	staff := authed.Group("")
	staff.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher))
	{
		staff.GET("/batches/:id/attendance", attendanceHandler.Sheet)
		staff.POST("/attendance", attendanceHandler.Mark)

		staff.GET("/registrations", registrationHandler.List)
		staff.POST("/registrations", registrationHandler.Register)
		staff.GET("/results", resultHandler.List)
		staff.POST("/results", resultHandler.Record)

		staff.GET("/students", studentHandler.List)
		staff.GET("/students/:id", studentHandler.Detail)

		if cfg.Exports.Enabled {
			staff.GET("/exports/registrations.csv", exportHandler.RegistrationsCSV)
			staff.GET("/exports/schedule.pdf", exportHandler.SchedulePDF)
		}
	}

	admin := authed.Group("")
	admin.Use(middleware.RequireRoles(models.RoleAdmin))
	{
		admin.POST("/teachers", catalogHandler.CreateTeacher)
		admin.PUT("/teachers/:id", catalogHandler.UpdateTeacher)
		admin.DELETE("/teachers/:id", catalogHandler.DeleteTeacher)
		admin.POST("/courses", catalogHandler.CreateCourse)
		admin.PUT("/courses/:id", catalogHandler.UpdateCourse)
		admin.DELETE("/courses/:id", catalogHandler.DeleteCourse)
		admin.POST("/timeframes", catalogHandler.CreateTimeframe)
		admin.DELETE("/timeframes/:id", catalogHandler.DeleteTimeframe)
		admin.POST("/rooms", catalogHandler.CreateRoom)
		admin.DELETE("/rooms/:id", catalogHandler.DeleteRoom)

		admin.POST("/batches", batchHandler.Create)
		admin.POST("/batches/check-conflicts", batchHandler.Check)
		admin.PUT("/batches/:id", batchHandler.Update)
		admin.DELETE("/batches/:id", batchHandler.Delete)

		admin.POST("/test-slots/partial", slotHandler.CreatePartial)
		admin.POST("/test-slots/speaking-batches", slotHandler.CreateSpeakingBatch)
		admin.POST("/test-slots/mock", slotHandler.CreateMock)
		admin.PUT("/test-slots/:id", slotHandler.Update)
		admin.DELETE("/test-slots/:id", slotHandler.Delete)

		admin.PUT("/speaking-batches/:id/purpose", speakingHandler.SetPurpose)
		admin.DELETE("/speaking-batches/:id", speakingHandler.Delete)

		admin.DELETE("/registrations/:id", registrationHandler.Unregister)
		admin.DELETE("/results/:id", resultHandler.Delete)
		admin.PUT("/students/:id", studentHandler.Update)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info("starting api server", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := r.Run(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

// buildStore wires the configured collection store backend. The redis
// client is returned separately so the dashboard cache can reuse it.
func buildStore(ctx context.Context, cfg *config.Config) (store.Store, *redis.Client, error) {
	switch cfg.Store.Backend {
	case config.StorePostgres:
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		pg := store.NewPostgres(db)
		schemaCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := pg.EnsureSchema(schemaCtx); err != nil {
			return nil, nil, err
		}
		return pg, nil, nil
	case config.StoreRedis:
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return store.NewRedisStore(client), client, nil
	default:
		return store.NewMemory(), nil, nil
	}
}
