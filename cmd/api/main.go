package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	appanalytics "github.com/jhoicas/Inventario-consola/internal/application/analytics"
	"github.com/jhoicas/Inventario-consola/internal/application/auth"
	"github.com/jhoicas/Inventario-consola/internal/application/importer"
	"github.com/jhoicas/Inventario-consola/internal/application/report"
	"github.com/jhoicas/Inventario-consola/internal/application/usecase"
	"github.com/jhoicas/Inventario-consola/internal/domain/repository"
	infrapdf "github.com/jhoicas/Inventario-consola/internal/infrastructure/pdf"
	"github.com/jhoicas/Inventario-consola/internal/infrastructure/postgres"
	"github.com/jhoicas/Inventario-consola/internal/infrastructure/remote"
	"github.com/jhoicas/Inventario-consola/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/Inventario-consola/internal/interfaces/http"
	"github.com/jhoicas/Inventario-consola/pkg/config"
	"github.com/jhoicas/Inventario-consola/pkg/logger"
)

// gateway puertos de datos del driver elegido.
type gateway struct {
	items       repository.ItemRepository
	consumables repository.ConsumableRepository
	movements   repository.MovementRepository
	users       repository.UserRepository
	references  repository.ReferenceRepository
	close       func()
}

func newGateway(ctx context.Context, cfg *config.Config, log *logger.Logger) (*gateway, error) {
	if cfg.Gateway.Driver == config.GatewayPostgres {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		return &gateway{
			items:       postgres.NewItemRepository(pool),
			consumables: postgres.NewConsumableRepository(pool),
			movements:   postgres.NewMovementRepository(pool),
			users:       postgres.NewUserRepository(pool),
			references:  postgres.NewReferenceRepository(pool),
			close:       pool.Close,
		}, nil
	}

	client := remote.NewClient(cfg.Gateway, log)
	return &gateway{
		items:       remote.NewItemRepository(client),
		consumables: remote.NewConsumableRepository(client),
		movements:   remote.NewMovementRepository(client),
		users:       remote.NewUserRepository(client),
		references:  remote.NewReferenceRepository(client),
		close:       func() {},
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("gateway", cfg.Gateway.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx := context.Background()
	gw, err := newGateway(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al gateway de datos")
	}
	defer gw.close()

	reportUC := report.NewUseCase(gw.items, gw.consumables, gw.movements, report.Settings{
		Institution:    cfg.Report.Institution,
		CurrencySymbol: cfg.Report.CurrencySymbol,
		Location:       cfg.Report.Location(),
	})
	importUC := importer.NewUseCase(gw.items, gw.consumables,
		importer.Decoders{
			".xlsx": xlsx.Reader{},
			".csv":  importer.CSVDecoder{},
		},
		importer.Settings{
			Concurrency: cfg.Import.Concurrency,
			MaxBytes:    int64(cfg.Import.MaxFileMB) << 20,
			Defaults: importer.Defaults{
				CategoryID:     cfg.Import.DefaultCategoryID,
				LaboratoryID:   cfg.Import.DefaultLaboratoryID,
				CurrencySymbol: cfg.Report.CurrencySymbol,
			},
		},
		log,
	)
	authUC := auth.NewAuthUseCase(gw.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.HTTP.BodyLimitMB << 20,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 60,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.HTTP.AllowOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders: "Content-Disposition",
	}))
	app.Use(log.FiberMiddleware())

	// Swagger UI en local: http://localhost:<port>/docs (solo si se generó docs/swagger.json)
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Inventario Consola API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "gateway": cfg.Gateway.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ItemUC:        usecase.NewItemUseCase(gw.items),
		ConsumableUC:  usecase.NewConsumableUseCase(gw.consumables),
		MovementUC:    usecase.NewMovementUseCase(gw.movements),
		UserUC:        usecase.NewUserUseCase(gw.users),
		ReferenceUC:   usecase.NewReferenceUseCase(gw.references),
		DashboardUC:   appanalytics.NewDashboardUseCase(gw.items, gw.consumables, gw.movements),
		ReportUC:      reportUC,
		ExcelExporter: xlsx.NewExporter(),
		PDFExporter:   infrapdf.NewReportGenerator(),
		ImportUC:      importUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
