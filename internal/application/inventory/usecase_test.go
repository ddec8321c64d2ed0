package inventory_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/application/inventory"
	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/domain"
	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/domain/entity"
	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con semántica de transacción (commit/rollback)
// ──────────────────────────────────────────────────────────────────────────────

// fakeStore es el "estado de la base": productos por ID y el libro de
// movimientos. El TxRunner de prueba trabaja sobre una copia y solo hace
// visible el resultado si el callback no devuelve error.
type fakeStore struct {
	productos   map[string]*entity.Producto
	movimientos []*entity.Movimiento
}

func newFakeStore(productos ...*entity.Producto) *fakeStore {
	s := &fakeStore{productos: make(map[string]*entity.Producto)}
	for _, p := range productos {
		cp := *p
		s.productos[p.ID] = &cp
	}
	return s
}

func (s *fakeStore) clone() *fakeStore {
	cp := &fakeStore{
		productos:   make(map[string]*entity.Producto, len(s.productos)),
		movimientos: append([]*entity.Movimiento(nil), s.movimientos...),
	}
	for id, p := range s.productos {
		pc := *p
		cp.productos[id] = &pc
	}
	return cp
}

// fakeTxRunner implementa inventory.TxRunner: ejecuta el callback sobre una
// copia del estado y hace commit solo si no hubo error. El mutex serializa
// transacciones concurrentes igual que lo hace el bloqueo de fila en la base:
// cada callback ve el estado confirmado por la transacción anterior.
type fakeTxRunner struct {
	mu    sync.Mutex
	store *fakeStore

	// errores inyectables para simular fallos dentro de la transacción
	createMovErr    error
	updateStockErr  error
	transacciones   int
	rollbacksVistos int
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.MovimientoRepository, repository.ProductoRepository) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transacciones++
	work := r.store.clone()
	movRepo := &fakeMovimientoRepo{store: work, createErr: r.createMovErr}
	productoRepo := &fakeProductoRepo{store: work, updateStockErr: r.updateStockErr}
	if err := fn(movRepo, productoRepo); err != nil {
		r.rollbacksVistos++
		return err // rollback: work se descarta
	}
	r.store = work
	return nil
}

type fakeMovimientoRepo struct {
	store     *fakeStore
	createErr error
}

func (r *fakeMovimientoRepo) Create(m *entity.Movimiento) error {
	if r.createErr != nil {
		return r.createErr
	}
	cp := *m
	r.store.movimientos = append(r.store.movimientos, &cp)
	return nil
}

func (r *fakeMovimientoRepo) GetDetalleByID(string) (*repository.MovimientoDetalle, error) {
	return nil, nil
}

func (r *fakeMovimientoRepo) ListDetalle(repository.FiltroMovimientos) ([]*repository.MovimientoDetalle, error) {
	return nil, nil
}

type fakeProductoRepo struct {
	store          *fakeStore
	updateStockErr error
}

func (r *fakeProductoRepo) GetForUpdate(id string) (*entity.Producto, error) {
	p, ok := r.store.productos[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductoRepo) UpdateStock(id string, stock int) error {
	if r.updateStockErr != nil {
		return r.updateStockErr
	}
	p, ok := r.store.productos[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.StockActual = stock
	return nil
}

func (r *fakeProductoRepo) Create(*entity.Producto) error                  { return nil }
func (r *fakeProductoRepo) GetByID(string) (*entity.Producto, error)       { return nil, nil }
func (r *fakeProductoRepo) GetByCodigo(string) (*entity.Producto, error)   { return nil, nil }
func (r *fakeProductoRepo) Update(*entity.Producto) error                  { return nil }
func (r *fakeProductoRepo) UpdateEstado(string, string) error              { return nil }
func (r *fakeProductoRepo) GetDetalleByID(string) (*repository.ProductoDetalle, error) {
	return nil, nil
}
func (r *fakeProductoRepo) ListDetalle(repository.FiltroProductos) ([]*repository.ProductoDetalle, error) {
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const productoID = "00000000-0000-0000-0000-00000000000a"

func productoConStock(stock int, precio string) *entity.Producto {
	return &entity.Producto{
		ID:             productoID,
		Codigo:         "SKU-001",
		Nombre:         "Filtro de aceite",
		StockActual:    stock,
		PrecioUnitario: decimal.RequireFromString(precio),
		Estado:         entity.EstadoActivo,
	}
}

func entrada(cantidad int) inventory.MovimientoInput {
	return inventory.MovimientoInput{
		ProductoID: productoID,
		Tipo:       entity.TipoEntrada,
		Cantidad:   cantidad,
		Motivo:     "compra",
	}
}

func salida(cantidad int) inventory.MovimientoInput {
	return inventory.MovimientoInput{
		ProductoID: productoID,
		Tipo:       entity.TipoSalida,
		Cantidad:   cantidad,
		Motivo:     "venta",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrar_EntradaAumentaStock(t *testing.T) {
	runner := &fakeTxRunner{store: newFakeStore(productoConStock(10, "100"))}
	uc := inventory.NewRegistrarMovimientoUseCase(runner)

	id, err := uc.Registrar(context.Background(), entrada(5))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	assert.Equal(t, 15, runner.store.productos[productoID].StockActual)
	require.Len(t, runner.store.movimientos, 1)
	mov := runner.store.movimientos[0]
	assert.Equal(t, id, mov.ID)
	assert.Equal(t, entity.TipoEntrada, mov.Tipo)
	assert.Equal(t, 5, mov.Cantidad)
}

func TestRegistrar_SalidaDisminuyeStock(t *testing.T) {
	runner := &fakeTxRunner{store: newFakeStore(productoConStock(10, "100"))}
	uc := inventory.NewRegistrarMovimientoUseCase(runner)

	_, err := uc.Registrar(context.Background(), salida(4))
	require.NoError(t, err)

	assert.Equal(t, 6, runner.store.productos[productoID].StockActual)
}

// Sin precio_historico en la entrada, el movimiento captura el precio
// unitario vigente del producto.
func TestRegistrar_PrecioHistoricoPorDefecto(t *testing.T) {
	runner := &fakeTxRunner{store: newFakeStore(productoConStock(10, "100"))}
	uc := inventory.NewRegistrarMovimientoUseCase(runner)

	_, err := uc.Registrar(context.Background(), entrada(1))
	require.NoError(t, err)

	mov := runner.store.movimientos[0]
	assert.True(t, decimal.RequireFromString("100").Equal(mov.PrecioHistorico),
		"debe capturar el precio unitario vigente, obtuvo %s", mov.PrecioHistorico)
}

// Con precio_historico explícito, se guarda tal cual (no el del producto).
func TestRegistrar_PrecioHistoricoExplicito(t *testing.T) {
	runner := &fakeTxRunner{store: newFakeStore(productoConStock(10, "100"))}
	uc := inventory.NewRegistrarMovimientoUseCase(runner)

	precio := decimal.RequireFromString("87.50")
	in := entrada(1)
	in.PrecioHistorico = &precio

	_, err := uc.Registrar(context.Background(), in)
	require.NoError(t, err)

	mov := runner.store.movimientos[0]
	assert.True(t, precio.Equal(mov.PrecioHistorico))
}

func TestRegistrar_SalidaInsuficiente_RechazaSinEscribir(t *testing.T) {
	runner := &fakeTxRunner{store: newFakeStore(productoConStock(3, "100"))}
	uc := inventory.NewRegistrarMovimientoUseCase(runner)

	_, err := uc.Registrar(context.Background(), salida(4))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 3, runner.store.productos[productoID].StockActual,
		"el stock no debe cambiar")
	assert.Empty(t, runner.store.movimientos, "el libro no debe registrar nada")
}

// Salida que deja el stock exactamente en cero es válida.
func TestRegistrar_SalidaHastaCero(t *testing.T) {
	runner := &fakeTxRunner{store: newFakeStore(productoConStock(4, "100"))}
	uc := inventory.NewRegistrarMovimientoUseCase(runner)

	_, err := uc.Registrar(context.Background(), salida(4))
	require.NoError(t, err)
	assert.Equal(t, 0, runner.store.productos[productoID].StockActual)
}

func TestRegistrar_ProductoDesconocido_SinEscrituras(t *testing.T) {
	runner := &fakeTxRunner{store: newFakeStore()}
	uc := inventory.NewRegistrarMovimientoUseCase(runner)

	_, err := uc.Registrar(context.Background(), entrada(1))
	require.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Empty(t, runner.store.movimientos)
}

func TestRegistrar_ProductoInactivo_Rechaza(t *testing.T) {
	p := productoConStock(10, "100")
	p.Estado = entity.EstadoInactivo
	runner := &fakeTxRunner{store: newFakeStore(p)}
	uc := inventory.NewRegistrarMovimientoUseCase(runner)

	_, err := uc.Registrar(context.Background(), entrada(1))
	require.ErrorIs(t, err, domain.ErrInactiveResource)
}

func TestRegistrar_EntradaInvalida(t *testing.T) {
	runner := &fakeTxRunner{store: newFakeStore(productoConStock(10, "100"))}
	uc := inventory.NewRegistrarMovimientoUseCase(runner)

	casos := []struct {
		nombre string
		mutar  func(*inventory.MovimientoInput)
	}{
		{"tipo desconocido", func(in *inventory.MovimientoInput) { in.Tipo = "ajuste" }},
		{"cantidad cero", func(in *inventory.MovimientoInput) { in.Cantidad = 0 }},
		{"cantidad negativa", func(in *inventory.MovimientoInput) { in.Cantidad = -3 }},
		{"motivo vacío", func(in *inventory.MovimientoInput) { in.Motivo = "   " }},
		{"precio negativo", func(in *inventory.MovimientoInput) {
			p := decimal.RequireFromString("-1")
			in.PrecioHistorico = &p
		}},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			in := entrada(1)
			tc.mutar(&in)
			_, err := uc.Registrar(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Empty(t, runner.store.movimientos,
		"ninguna entrada inválida debe llegar a la transacción")
	assert.Zero(t, runner.transacciones)
}

// Un proveedor_id que no existe viola la FK al insertar la fila del libro;
// el error de referencia se propaga y nada queda escrito.
func TestRegistrar_ProveedorInexistente_RevierteYPropaga(t *testing.T) {
	runner := &fakeTxRunner{
		store:        newFakeStore(productoConStock(10, "100")),
		createMovErr: domain.ErrReferenceNotFound,
	}
	uc := inventory.NewRegistrarMovimientoUseCase(runner)

	proveedorID := "00000000-0000-0000-0000-0000000000ff"
	in := entrada(2)
	in.ProveedorID = &proveedorID

	_, err := uc.Registrar(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrReferenceNotFound)

	assert.Equal(t, 10, runner.store.productos[productoID].StockActual)
	assert.Empty(t, runner.store.movimientos)
	assert.Equal(t, 1, runner.rollbacksVistos)
}

// Escenario completo: stock inicial 10 a precio 100; una entrada de 5 deja
// 15 y captura precio 100; una salida de 3 con precio_historico=120 deja 12
// y captura 120.
func TestRegistrar_EscenarioEntradaYSalida(t *testing.T) {
	runner := &fakeTxRunner{store: newFakeStore(productoConStock(10, "100"))}
	uc := inventory.NewRegistrarMovimientoUseCase(runner)
	ctx := context.Background()

	_, err := uc.Registrar(ctx, entrada(5))
	require.NoError(t, err)
	assert.Equal(t, 15, runner.store.productos[productoID].StockActual)

	precio := decimal.RequireFromString("120")
	out := salida(3)
	out.PrecioHistorico = &precio
	_, err = uc.Registrar(ctx, out)
	require.NoError(t, err)

	assert.Equal(t, 12, runner.store.productos[productoID].StockActual)
	require.Len(t, runner.store.movimientos, 2)
	assert.True(t, decimal.RequireFromString("100").Equal(runner.store.movimientos[0].PrecioHistorico))
	assert.True(t, precio.Equal(runner.store.movimientos[1].PrecioHistorico))
}

// Si la segunda escritura falla, la primera también se revierte: ni el
// movimiento ni el stock quedan a medias.
func TestRegistrar_FalloTrasInsert_RevierteTodo(t *testing.T) {
	runner := &fakeTxRunner{
		store:          newFakeStore(productoConStock(10, "100")),
		updateStockErr: errors.New("conexión perdida"),
	}
	uc := inventory.NewRegistrarMovimientoUseCase(runner)

	_, err := uc.Registrar(context.Background(), entrada(5))
	require.Error(t, err)

	assert.Equal(t, 10, runner.store.productos[productoID].StockActual)
	assert.Empty(t, runner.store.movimientos,
		"el insert del movimiento debe revertirse junto con el update")
	assert.Equal(t, 1, runner.rollbacksVistos)
}

// Propiedad de replay: el stock final siempre es igual al stock inicial más
// la suma de entradas menos la suma de salidas aceptadas.
func TestRegistrar_ReplayDelLibroReproduceElStock(t *testing.T) {
	inicial := 20
	runner := &fakeTxRunner{store: newFakeStore(productoConStock(inicial, "100"))}
	uc := inventory.NewRegistrarMovimientoUseCase(runner)

	ctx := context.Background()
	secuencia := []inventory.MovimientoInput{
		entrada(7), salida(5), entrada(1), salida(30), // la salida de 30 se rechaza
		salida(10), entrada(4),
	}
	for _, in := range secuencia {
		_, _ = uc.Registrar(ctx, in)
	}

	replay := inicial
	for _, m := range runner.store.movimientos {
		switch m.Tipo {
		case entity.TipoEntrada:
			replay += m.Cantidad
		case entity.TipoSalida:
			replay -= m.Cantidad
		}
	}
	assert.Equal(t, replay, runner.store.productos[productoID].StockActual,
		"re-aplicar el libro debe reproducir el stock actual")
	assert.Equal(t, 17, runner.store.productos[productoID].StockActual)
}

// Salidas concurrentes sobre el mismo producto no deben perderse: el stock se
// lee dentro de la transacción ya serializada (GetForUpdate), no antes. Si el
// caso de uso leyera el stock fuera de la transacción, dos salidas simultáneas
// partirían ambas de 100 y una sobrescribiría a la otra.
func TestRegistrar_SalidasConcurrentes_SinLostUpdate(t *testing.T) {
	inicial := 100
	runner := &fakeTxRunner{store: newFakeStore(productoConStock(inicial, "100"))}
	uc := inventory.NewRegistrarMovimientoUseCase(runner)

	const salidas = 20
	const cantidad = 3

	var wg sync.WaitGroup
	wg.Add(salidas)
	for i := 0; i < salidas; i++ {
		go func() {
			defer wg.Done()
			_, err := uc.Registrar(context.Background(), salida(cantidad))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, inicial-salidas*cantidad, runner.store.productos[productoID].StockActual,
		"todas las salidas deben descontarse, ninguna puede perderse")
	assert.Len(t, runner.store.movimientos, salidas)

	replay := inicial
	for _, m := range runner.store.movimientos {
		replay -= m.Cantidad
	}
	assert.Equal(t, replay, runner.store.productos[productoID].StockActual)
}
