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

	_ "github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/docs"
	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/application/auth"
	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/application/inventory"
	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/application/usecase"
	infrapdf "github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/infrastructure/pdf"
	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/infrastructure/postgres"
	httpRouter "github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/interfaces/http"
	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/pkg/config"
	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/pkg/logger"
)

// @title Sistema de Inventario API
// @version 1.0
// @description API de gestión de inventario: catálogo de productos, libro de movimientos y reportes.
// @BasePath /api
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)
	bodegaRepo := postgres.NewBodegaRepository(pool)
	marcaRepo := postgres.NewMarcaRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	reporteRepo := postgres.NewReporteRepository(pool)

	txRunner := postgres.NewTxRunner(pool)
	registrarMovUC := inventory.NewRegistrarMovimientoUseCase(txRunner)

	movimientoUC := usecase.NewMovimientoUseCase(movimientoRepo)
	productoUC := usecase.NewProductoUseCase(productoRepo)
	bodegaUC := usecase.NewBodegaUseCase(bodegaRepo)
	marcaUC := usecase.NewMarcaUseCase(marcaRepo)
	proveedorUC := usecase.NewProveedorUseCase(proveedorRepo)
	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo)

	pdfGenerator := infrapdf.NewMarotoReporteGenerator()
	reporteUC := usecase.NewReporteUseCase(reporteRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		RegistrarMov: registrarMovUC,
		MovimientoUC: movimientoUC,
		ProductoUC:   productoUC,
		BodegaUC:     bodegaUC,
		MarcaUC:      marcaUC,
		ProveedorUC:  proveedorUC,
		CategoriaUC:  categoriaUC,
		ReporteUC:    reporteUC,
		JWTSecret:    cfg.JWT.Secret,
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
