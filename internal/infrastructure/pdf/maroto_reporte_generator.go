// Package pdf genera el reporte de inventario en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Reporte de Inventario + fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: productos / valor total / entradas / salidas       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA STOCK BAJO: Código | Producto | Stock | Mín | Precio  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/application/dto"
	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/application/usecase"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// printer formatea montos con agrupación de miles en formato local.
var printer = message.NewPrinter(language.Spanish)

var _ usecase.ReportePDFGenerator = (*MarotoReporteGenerator)(nil)

// MarotoReporteGenerator implementa usecase.ReportePDFGenerator usando Maroto v2.
type MarotoReporteGenerator struct{}

// NewMarotoReporteGenerator construye el generador.
func NewMarotoReporteGenerator() *MarotoReporteGenerator { return &MarotoReporteGenerator{} }

// GenerarReporteInventario genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReporteGenerator) GenerarReporteInventario(_ context.Context, resumen *dto.ResumenInventarioResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(resumenRows(resumen)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tablaHeaderRow())
	for _, r := range tablaStockBajoRows(resumen.StockBajo) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow() core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New("Reporte de Inventario", props.Text{
				Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
			}),
		),
		col.New(4).Add(
			text.New(time.Now().Format("2006-01-02 15:04"), props.Text{
				Size: 9, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func resumenRows(r *dto.ResumenInventarioResponse) []core.Row {
	linea := func(etiqueta, valor string) core.Row {
		return row.New(6).Add(
			col.New(4).Add(text.New(etiqueta, props.Text{Size: 9, Color: colorGray})),
			col.New(8).Add(text.New(valor, props.Text{Size: 9, Style: fontstyle.Bold})),
		)
	}
	return []core.Row{
		linea("Total productos", printer.Sprintf("%d", r.TotalProductos)),
		linea("Productos activos", printer.Sprintf("%d", r.ProductosActivos)),
		linea("Valor del inventario", formatoMonto(r.ValorInventario)),
		linea("Entradas registradas", printer.Sprintf("%d", r.TotalEntradas)),
		linea("Salidas registradas", printer.Sprintf("%d", r.TotalSalidas)),
	}
}

func tablaHeaderRow() core.Row {
	th := props.Text{Size: 9, Style: fontstyle.Bold, Color: colorPrimary}
	return row.New(8).Add(
		col.New(2).Add(text.New("Código", th)),
		col.New(5).Add(text.New("Producto (stock bajo)", th)),
		col.New(1).Add(text.New("Stock", props.Text{Size: 9, Style: fontstyle.Bold, Color: colorPrimary, Align: align.Right})),
		col.New(1).Add(text.New("Mín.", props.Text{Size: 9, Style: fontstyle.Bold, Color: colorPrimary, Align: align.Right})),
		col.New(3).Add(text.New("Precio unitario", props.Text{Size: 9, Style: fontstyle.Bold, Color: colorPrimary, Align: align.Right})),
	)
}

func tablaStockBajoRows(items []dto.ProductoStockBajoDTO) []core.Row {
	if len(items) == 0 {
		return []core.Row{row.New(8).Add(
			col.New(12).Add(text.New("Sin productos bajo el stock mínimo", props.Text{Size: 9, Color: colorGray})),
		)}
	}
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(it.Codigo, props.Text{Size: 8})),
			col.New(5).Add(text.New(it.Nombre, props.Text{Size: 8})),
			col.New(1).Add(text.New(printer.Sprintf("%d", it.StockActual), props.Text{Size: 8, Align: align.Right})),
			col.New(1).Add(text.New(printer.Sprintf("%d", it.StockMinimo), props.Text{Size: 8, Align: align.Right})),
			col.New(3).Add(text.New(formatoMonto(it.PrecioUnitario), props.Text{Size: 8, Align: align.Right})),
		))
	}
	return rows
}

func formatoMonto(d decimal.Decimal) string {
	f, _ := d.Float64()
	return printer.Sprintf("$ %.2f", f)
}
