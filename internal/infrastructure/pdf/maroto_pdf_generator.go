// Package pdf implementa la generación del documento imprimible de una
// operación de stock (hoja de picking / comprobante de recepción).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Referencia │ Tipo + Estado + Fecha                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RUTA: Ubicación origen -> destino                           │
//	│  TERCERO: Nombre + contacto (si aplica)                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | UdM | Demanda | Hecho               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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

	"github.com/tu-usuario/stockmaster/internal/application/inventory"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ inventory.OperationPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa inventory.OperationPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateOperationPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateOperationPDF(_ context.Context, data inventory.DocumentData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Operación "+data.Operation.Reference, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(routeRow(data))
	if data.Partner != nil {
		m.AddRows(partnerRow(data))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(data.Lines) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: referencia (izq) y tipo + estado + fecha (der).
func headerRow(data inventory.DocumentData) core.Row {
	op := data.Operation
	fecha := op.CreatedAt.Format("02/01/2006")
	if op.ScheduledDate != nil {
		fecha = op.ScheduledDate.Format("02/01/2006")
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New(op.Reference, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Documento de operación de stock", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(strings.ToUpper(op.OperationType), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Estado: "+op.Status, props.Text{
				Size: 9, Align: align.Right, Top: 8,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// routeRow: ubicaciones origen y destino de la operación.
func routeRow(data inventory.DocumentData) core.Row {
	source := nonEmpty(data.SourceName, "Externo")
	dest := nonEmpty(data.DestName, "Externo")
	return row.New(12).Add(
		col.New(12).Add(
			text.New("RUTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s  ->  %s", source, dest), props.Text{
				Size: 10, Top: 7,
			}),
		),
	)
}

// partnerRow: datos del tercero (proveedor o cliente).
func partnerRow(data inventory.DocumentData) core.Row {
	p := data.Partner
	return row.New(12).Add(
		col.New(12).Add(
			text.New("TERCERO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   %s   |   %s",
				p.Name, p.Type, nonEmpty(p.Contact, "—"),
			), props.Text{Size: 9, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Producto", 5, align.Left),
		h("UdM", 1, align.Center),
		h("Demanda", 2, align.Right),
		h("Hecho", 2, align.Right),
	)
}

// tableLineRows: una fila por línea de la operación.
func tableLineRows(lines []inventory.DocumentLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				l.SKU,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(5).Add(text.New(
				l.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1},
			)),
			col.New(1).Add(text.New(
				l.UOM,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				l.DemandQty.String(),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				l.DoneQty.String(),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
