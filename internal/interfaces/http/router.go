package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/factory-ops-api/internal/application/analytics"
	"github.com/jhoicas/factory-ops-api/internal/application/auth"
	"github.com/jhoicas/factory-ops-api/internal/application/dto"
	"github.com/jhoicas/factory-ops-api/internal/application/inventory"
	"github.com/jhoicas/factory-ops-api/internal/application/usecase"
	"github.com/jhoicas/factory-ops-api/internal/domain/entity"
	"github.com/jhoicas/factory-ops-api/internal/domain/permission"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CompanyUC     *usecase.CompanyUseCase
	DepartmentUC  *usecase.DepartmentUseCase
	DesignationUC *usecase.DesignationUseCase
	EmployeeUC    *usecase.EmployeeUseCase
	UserUC        *usecase.UserUseCase
	DeviceTokenUC *usecase.DeviceTokenUseCase
	FloorUC       *usecase.FloorUseCase
	LineUC        *usecase.LineUseCase
	CatalogUC     *usecase.CatalogUseCase
	MachineUC     *usecase.MachineUseCase
	ProblemTypeUC *usecase.ProblemCategoryTypeUseCase
	ProblemUC     *usecase.ProblemCategoryUseCase
	BreakdownUC   *usecase.BreakdownLogUseCase
	PartUC        *inventory.PartUseCase
	PurchaseUC    *inventory.PurchaseUseCase
	UsageUC       *inventory.UsageUseCase
	ReportUC      *analytics.ReportUseCase
	JWTSecret     string
	Revoker       RevocationChecker
	LoginLimiter  *IPRateLimiter // nil desactiva el límite en login/register
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	authMW := AuthMiddleware(deps.JWTSecret, deps.Revoker)

	// Auth: register/login públicos y con límite por IP
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	throttle := func(c *fiber.Ctx) error { return c.Next() }
	if deps.LoginLimiter != nil {
		throttle = RateLimit(deps.LoginLimiter)
	}
	authGroup.Post("/register", throttle, authHandler.Register)
	authGroup.Post("/login", throttle, authHandler.Login)
	authGroup.Get("/logout", authMW, authHandler.Logout)
	authGroup.Get("/employee-details", authMW, authHandler.EmployeeDetails)

	// Companies: list/create/retrieve públicos (alta previa al registro); update/delete sobre la propia
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	manageCompany := RequireCapability(permission.ManageCompany)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", authMW, manageCompany, companyHandler.Update)
	companies.Patch("/:id", authMW, manageCompany, companyHandler.Update)
	companies.Delete("/:id", authMW, manageCompany, companyHandler.Delete)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", authMW)
	manageHR := RequireCapability(permission.ManageHR)
	manageAssets := RequireCapability(permission.ManageAssets)
	manageInventory := RequireCapability(permission.ManageInventory)

	// HR
	NewCRUDHandler[dto.CreateDepartmentRequest, dto.UpdateDepartmentRequest, dto.DepartmentResponse, dto.DepartmentListResponse](
		deps.DepartmentUC, "departamento").Mount(protected.Group("/departments"), manageHR)
	NewCRUDHandler[dto.CreateDesignationRequest, dto.UpdateDesignationRequest, dto.DesignationResponse, dto.DesignationListResponse](
		deps.DesignationUC, "cargo").Mount(protected.Group("/designations"), manageHR)
	NewCRUDHandler[dto.CreateEmployeeRequest, dto.UpdateEmployeeRequest, dto.EmployeeResponse, dto.EmployeeListResponse](
		deps.EmployeeUC, "empleado").Mount(protected.Group("/employees"), manageHR)

	// Usuarios, grupos y suscripciones push
	userHandler := NewUserHandler(deps.UserUC, deps.DeviceTokenUC)
	protected.Get("/users", userHandler.ListUsers)
	protected.Get("/users/:id", userHandler.GetUser)
	protected.Get("/groups", userHandler.ListGroups)
	protected.Get("/groups/:id", userHandler.GetGroup)
	devices := protected.Group("/device-tokens")
	devices.Get("/", userHandler.ListDeviceTokens)
	devices.Post("/", userHandler.CreateDeviceToken)
	devices.Get("/:id", userHandler.GetDeviceToken)
	devices.Delete("/:id", userHandler.DeleteDeviceToken)

	// Topología de planta
	NewCRUDHandler[dto.CreateFloorRequest, dto.UpdateFloorRequest, dto.FloorResponse, dto.FloorListResponse](
		deps.FloorUC, "piso").Mount(protected.Group("/floors"), manageAssets)
	NewCRUDHandler[dto.CreateLineRequest, dto.UpdateLineRequest, dto.LineResponse, dto.LineListResponse](
		deps.LineUC, "línea").Mount(protected.Group("/lines"), manageAssets)

	// Taxonomía de máquinas
	NewCatalogHandler(deps.CatalogUC, entity.CatalogCategory, "categoría").Mount(protected.Group("/categories"), manageAssets)
	NewCatalogHandler(deps.CatalogUC, entity.CatalogType, "tipo").Mount(protected.Group("/types"), manageAssets)
	NewCatalogHandler(deps.CatalogUC, entity.CatalogBrand, "marca").Mount(protected.Group("/brands"), manageAssets)
	NewCatalogHandler(deps.CatalogUC, entity.CatalogSupplier, "proveedor").Mount(protected.Group("/suppliers"), manageAssets)

	// Máquinas
	machines := protected.Group("/machines")
	machineHandler := NewMachineHandler(deps.MachineUC)
	machines.Get("/", machineHandler.List)
	machines.Get("/:id", machineHandler.GetByID)
	machines.Post("/", manageAssets, machineHandler.Create)
	machines.Put("/:id", manageAssets, machineHandler.Update)
	machines.Patch("/:id", manageAssets, machineHandler.Update)
	machines.Delete("/:id", manageAssets, machineHandler.Delete)

	// Mantenimiento
	NewCRUDHandler[dto.ProblemCategoryTypeRequest, dto.UpdateProblemCategoryTypeRequest, dto.ProblemCategoryTypeResponse, dto.ProblemCategoryTypeListResponse](
		Global[dto.ProblemCategoryTypeRequest, dto.UpdateProblemCategoryTypeRequest, dto.ProblemCategoryTypeResponse, dto.ProblemCategoryTypeListResponse](deps.ProblemTypeUC),
		"tipo de problema").Mount(protected.Group("/problem-category-types"), manageAssets)
	NewCRUDHandler[dto.ProblemCategoryRequest, dto.UpdateProblemCategoryRequest, dto.ProblemCategoryResponse, dto.ProblemCategoryListResponse](
		Global[dto.ProblemCategoryRequest, dto.UpdateProblemCategoryRequest, dto.ProblemCategoryResponse, dto.ProblemCategoryListResponse](deps.ProblemUC),
		"categoría de problema").Mount(protected.Group("/problem-categories"), manageAssets)
	NewCRUDHandler[dto.CreateBreakdownLogRequest, dto.UpdateBreakdownLogRequest, dto.BreakdownLogResponse, dto.BreakdownLogListResponse](
		deps.BreakdownUC, "parada").Mount(protected.Group("/breakdown-logs"), manageAssets)

	// Inventario de repuestos
	NewCRUDHandler[dto.CreateMachinePartRequest, dto.UpdateMachinePartRequest, dto.MachinePartResponse, dto.MachinePartListResponse](
		deps.PartUC, "repuesto").Mount(protected.Group("/machine-parts"), manageInventory)

	inventoryHandler := NewInventoryHandler(deps.PurchaseUC, deps.UsageUC)
	purchases := protected.Group("/purchase-items")
	purchases.Get("/", inventoryHandler.ListPurchases)
	purchases.Get("/:id", inventoryHandler.GetPurchase)
	purchases.Post("/", manageInventory, inventoryHandler.CreatePurchase)
	purchases.Delete("/:id", manageInventory, inventoryHandler.DeletePurchase)

	usage := protected.Group("/parts-usage-records")
	usage.Get("/total_cost", inventoryHandler.TotalCost)
	usage.Post("/bulk-create-parts-usage", manageInventory, inventoryHandler.BulkCreateUsage)
	usage.Get("/", inventoryHandler.ListUsage)
	usage.Get("/:id", inventoryHandler.GetUsage)
	usage.Post("/", manageInventory, inventoryHandler.CreateUsage)
	usage.Put("/:id", manageInventory, inventoryHandler.UpdateUsage)
	usage.Patch("/:id", manageInventory, inventoryHandler.UpdateUsage)
	usage.Delete("/:id", manageInventory, inventoryHandler.DeleteUsage)

	// Reportes
	analyticsHandler := NewAnalyticsHandler(deps.ReportUC)
	protected.Get("/total-lost-time-per-location", analyticsHandler.LostTime)
	protected.Get("/total-lost-time-per-location/export.:format", analyticsHandler.ExportLostTime)
	protected.Get("/machines-monitoring", analyticsHandler.MachineMonitoring)
}
