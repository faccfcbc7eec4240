package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Inventario-consola/internal/application/analytics"
	"github.com/jhoicas/Inventario-consola/internal/application/auth"
	"github.com/jhoicas/Inventario-consola/internal/application/importer"
	"github.com/jhoicas/Inventario-consola/internal/application/report"
	"github.com/jhoicas/Inventario-consola/internal/application/usecase"
	"github.com/jhoicas/Inventario-consola/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ItemUC        *usecase.ItemUseCase
	ConsumableUC  *usecase.ConsumableUseCase
	MovementUC    *usecase.MovementUseCase
	UserUC        *usecase.UserUseCase
	ReferenceUC   *usecase.ReferenceUseCase
	DashboardUC   *appanalytics.DashboardUseCase
	ReportUC      *report.UseCase
	ExcelExporter report.Exporter
	PDFExporter   report.Exporter
	ImportUC      *importer.UseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
//
// RBAC: admin todo; almacen escribe items, consumibles, movimientos e importa;
// todos los roles leen listados, dashboard y reportes; usuarios solo admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	api.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("", AuthMiddleware(deps.JWTSecret))
	writers := RequireRole(entity.RoleAdmin, entity.RoleWarehouse)
	adminOnly := RequireRole(entity.RoleAdmin)

	protected.Post("/change-password", authHandler.ChangePassword)
	protected.Get("/perfil", authHandler.Profile)
	protected.Put("/perfil", authHandler.UpdateProfile)

	itemHandler := NewItemHandler(deps.ItemUC)
	protected.Get("/items", itemHandler.List)
	protected.Get("/items/:id", itemHandler.GetByID)
	protected.Post("/items", writers, itemHandler.Create)
	protected.Put("/items/:id", writers, itemHandler.Update)
	protected.Delete("/items/:id", writers, itemHandler.Delete)

	consumableHandler := NewConsumableHandler(deps.ConsumableUC)
	protected.Get("/consumibles", consumableHandler.List)
	protected.Get("/consumibles/:id", consumableHandler.GetByID)
	protected.Post("/consumibles", writers, consumableHandler.Create)
	protected.Put("/consumibles/:id", writers, consumableHandler.Update)
	protected.Delete("/consumibles/:id", writers, consumableHandler.Delete)

	movementHandler := NewMovementHandler(deps.MovementUC)
	protected.Get("/movimientos", movementHandler.List)
	protected.Post("/movimientos", writers, movementHandler.Create)

	userHandler := NewUserHandler(deps.UserUC)
	protected.Get("/usuarios", adminOnly, userHandler.List)
	protected.Post("/usuarios", adminOnly, userHandler.Create)
	protected.Put("/usuarios/:id", adminOnly, userHandler.Update)
	protected.Delete("/usuarios/:id", adminOnly, userHandler.Delete)

	referenceHandler := NewReferenceHandler(deps.ReferenceUC)
	protected.Get("/categorias", referenceHandler.Categories)
	protected.Get("/laboratorios", referenceHandler.Laboratories)
	protected.Get("/carreras", referenceHandler.Careers)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.GetSummary)

	reportHandler := NewReportHandler(deps.ReportUC, deps.ExcelExporter, deps.PDFExporter)
	protected.Get("/reportes/:entidad/estadisticas", reportHandler.Stats)
	protected.Get("/reportes/:entidad/excel", reportHandler.Excel)
	protected.Get("/reportes/:entidad/pdf", reportHandler.PDF)

	importHandler := NewImportHandler(deps.ImportUC)
	protected.Post("/importar/:entidad/preview", writers, importHandler.Preview)
	protected.Post("/importar/:entidad", writers, importHandler.Import)
}
