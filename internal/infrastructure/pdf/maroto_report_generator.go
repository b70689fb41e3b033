// Package pdf implementa a geração do relatório de CMV para impressão.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nome do restaurante  │  Período do relatório        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Produto | Categoria | Status | Qtd | Peso | Custo   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: Custo total / Receita / CMV %                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/application/dto"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/application/reports"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 140, Green: 60, Blue: 20}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Garantia de que o generator implementa a porta.
var _ reports.CMVReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa reports.CMVReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator constrói o generator.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateCMVReport gera o PDF e devolve seus bytes.
func (g *MarotoReportGenerator) GenerateCMVReport(_ context.Context, restaurantName string, report *dto.ValuationReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de CMV", true).
		WithAuthor(restaurantName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(restaurantName, report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(report.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: nome do restaurante (esq) e período (dir).
func headerRow(restaurantName string, report *dto.ValuationReportDTO) core.Row {
	period := fmt.Sprintf("%s a %s", report.Period.StartDate, report.Period.EndDate)
	return row.New(16).Add(
		col.New(7).Add(
			text.New(restaurantName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Relatório de Custo da Mercadoria Vendida", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PERÍODO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(period, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de linhas valorizadas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Produto", 4, align.Left),
		h("Categoria", 3, align.Left),
		h("Status", 1, align.Center),
		h("Qtd", 1, align.Right),
		h("Peso", 1, align.Center),
		h("Custo", 2, align.Right),
	)
}

// tableDetailRows: uma linha por item valorizado.
func tableDetailRows(items []dto.ValuationLineDTO) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(
				it.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				it.CategoryName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				it.Status,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				it.Quantity.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				it.Weight.StringFixed(2),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+it.Cost.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloco de totais alinhado à direita. CMV sem receita informada
// aparece como "—".
func totalsRow(report *dto.ValuationReportDTO) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	revenue := "—"
	if report.Revenue != nil {
		revenue = "R$ " + report.Revenue.StringFixed(2)
	}
	cmv := "—"
	if report.CMVPercent != nil {
		cmv = report.CMVPercent.StringFixed(2) + "%"
	}

	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(
			label("Custo total:"),
			label("Receita:"),
			grandLabel("CMV:"),
		),
		col.New(3).Add(
			value("R$ "+report.TotalCost.StringFixed(2)),
			value(revenue),
			grandValue(cmv),
		),
		col.New(3),
	)
}
