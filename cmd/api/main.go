package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/time/rate"

	"github.com/jhoicas/factory-ops-api/internal/application/analytics"
	"github.com/jhoicas/factory-ops-api/internal/application/auth"
	"github.com/jhoicas/factory-ops-api/internal/application/inventory"
	"github.com/jhoicas/factory-ops-api/internal/application/notification"
	"github.com/jhoicas/factory-ops-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/factory-ops-api/internal/infrastructure/pdf"
	"github.com/jhoicas/factory-ops-api/internal/infrastructure/postgres"
	"github.com/jhoicas/factory-ops-api/internal/infrastructure/push"
	"github.com/jhoicas/factory-ops-api/internal/infrastructure/tokenstore"
	infraxlsx "github.com/jhoicas/factory-ops-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/factory-ops-api/internal/interfaces/http"
	"github.com/jhoicas/factory-ops-api/pkg/config"
	"github.com/jhoicas/factory-ops-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("timezone", cfg.App.Timezone).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	loc := cfg.App.Location()

	// Repositorios
	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	groupRepo := postgres.NewGroupRepository(pool)
	deviceTokenRepo := postgres.NewDeviceTokenRepository(pool)
	departmentRepo := postgres.NewDepartmentRepository(pool)
	designationRepo := postgres.NewDesignationRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	floorRepo := postgres.NewFloorRepository(pool)
	lineRepo := postgres.NewLineRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	machineRepo := postgres.NewMachineRepository(pool)
	problemTypeRepo := postgres.NewProblemCategoryTypeRepository(pool)
	problemRepo := postgres.NewProblemCategoryRepository(pool)
	breakdownRepo := postgres.NewBreakdownLogRepository(pool)
	partRepo := postgres.NewMachinePartRepository(pool)
	purchaseRepo := postgres.NewPurchaseItemRepository(pool)
	usageRepo := postgres.NewPartsUsageRecordRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Notificaciones de cambio de estado: webpush si hay llaves VAPID, si no solo log.
	var sink notification.Notifier = notification.NewLogNotifier(log.Named("notification"))
	var pushPool *push.WorkerPool
	if cfg.Push.Enabled() {
		pushPool = push.NewWorkerPool(cfg.Push, deviceTokenRepo, push.WebPushSender{}, log)
		// Stop drena la cola tras apagar HTTP
		pushPool.Start(context.Background())
		sink = pushPool
	} else {
		log.Warn().Msg("VAPID sin configurar: las notificaciones push solo se registran en el log")
	}
	statusNotifier := notification.NewStatusNotifier(sink, lineRepo, log.Named("notification"))

	revoked := tokenstore.NewRevocationList(10 * time.Minute)
	authUC := auth.NewAuthUseCase(auth.Repos{
		Users:        userRepo,
		Employees:    employeeRepo,
		Companies:    companyRepo,
		Departments:  departmentRepo,
		Designations: designationRepo,
	}, postgres.NewRegisterTxRunner(pool), revoked, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log.Named("auth"))

	// Reporte de tiempo perdido: JSON + descargas PDF (maroto) y XLSX (excelize)
	reportUC := analytics.NewReportUseCase(reportRepo, machineRepo, loc,
		infrapdf.NewLostTimeRenderer(cfg.App.Name),
		infraxlsx.NewLostTimeRenderer(),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerFile,
			Path:     "docs",
			Title:    cfg.App.Name + " API",
		}))
	} else {
		log.Warn().Str("file", cfg.HTTP.SwaggerFile).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CompanyUC:     usecase.NewCompanyUseCase(companyRepo),
		DepartmentUC:  usecase.NewDepartmentUseCase(departmentRepo),
		DesignationUC: usecase.NewDesignationUseCase(designationRepo, departmentRepo),
		EmployeeUC:    usecase.NewEmployeeUseCase(employeeRepo, departmentRepo, designationRepo, userRepo),
		UserUC:        usecase.NewUserUseCase(userRepo, groupRepo),
		DeviceTokenUC: usecase.NewDeviceTokenUseCase(deviceTokenRepo),
		FloorUC:       usecase.NewFloorUseCase(floorRepo),
		LineUC:        usecase.NewLineUseCase(lineRepo, floorRepo),
		CatalogUC:     usecase.NewCatalogUseCase(catalogRepo),
		MachineUC:     usecase.NewMachineUseCase(machineRepo, lineRepo, catalogRepo, statusNotifier),
		ProblemTypeUC: usecase.NewProblemCategoryTypeUseCase(problemTypeRepo),
		ProblemUC:     usecase.NewProblemCategoryUseCase(problemRepo, problemTypeRepo),
		BreakdownUC:   usecase.NewBreakdownLogUseCase(breakdownRepo, machineRepo, lineRepo, problemRepo, employeeRepo),
		PartUC:        inventory.NewPartUseCase(partRepo),
		PurchaseUC:    inventory.NewPurchaseUseCase(txRunner, purchaseRepo, log.Named("inventory")),
		UsageUC:       inventory.NewUsageUseCase(txRunner, usageRepo, breakdownRepo, loc, log.Named("inventory")),
		ReportUC:      reportUC,
		JWTSecret:     cfg.JWT.Secret,
		Revoker:       revoked,
		LoginLimiter:  httpRouter.NewIPRateLimiter(rate.Limit(cfg.HTTP.LoginRateLimit), cfg.HTTP.LoginBurst),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if pushPool != nil {
		pushPool.Stop()
	}

	log.Info().Msg("aplicación detenida")
}
