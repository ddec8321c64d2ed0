package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/application/auth"
	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/application/inventory"
	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	RegistrarMov *inventory.RegistrarMovimientoUseCase
	MovimientoUC *usecase.MovimientoUseCase
	ProductoUC   *usecase.ProductoUseCase
	BodegaUC     *usecase.BodegaUseCase
	MarcaUC      *usecase.MarcaUseCase
	ProveedorUC  *usecase.ProveedorUseCase
	CategoriaUC  *usecase.CategoriaUseCase
	ReporteUC    *usecase.ReporteUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Movimientos (protegido; el libro es append-only: sin PUT ni DELETE)
	movHandler := NewMovimientoHandler(deps.RegistrarMov, deps.MovimientoUC)
	movimientos := protected.Group("/movimientos")
	movimientos.Post("/", movHandler.Registrar)
	movimientos.Get("/", movHandler.List)
	movimientos.Get("/:id", movHandler.GetByID)

	// Productos (protegido)
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos := protected.Group("/productos")
	productos.Post("/", productoHandler.Create)
	productos.Get("/", productoHandler.List)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", productoHandler.Update)
	productos.Delete("/:id", productoHandler.Delete)

	// Entidades de referencia (protegido): mismo handler, distinto recurso
	registrarReferencia(protected, "/bodegas", NewReferenciaHandler(deps.BodegaUC, "bodega"))
	registrarReferencia(protected, "/marcas", NewReferenciaHandler(deps.MarcaUC, "marca"))
	registrarReferencia(protected, "/proveedores", NewReferenciaHandler(deps.ProveedorUC, "proveedor"))
	registrarReferencia(protected, "/categorias", NewReferenciaHandler(deps.CategoriaUC, "categoría"))

	// Reportes (protegido)
	reporteHandler := NewReporteHandler(deps.ReporteUC)
	reportes := protected.Group("/reportes")
	reportes.Get("/inventario", reporteHandler.ResumenInventario)
	reportes.Get("/inventario/pdf", reporteHandler.ResumenInventarioPDF)
}

func registrarReferencia(router fiber.Router, prefix string, h *ReferenciaHandler) {
	grp := router.Group(prefix)
	grp.Post("/", h.Create)
	grp.Get("/", h.List)
	grp.Get("/:id", h.GetByID)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}
