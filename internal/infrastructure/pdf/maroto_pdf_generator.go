// Package pdf genera la versión imprimible del reporte de tiempo perdido.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  FILTROS: pisos / líneas / fechas                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  INDICADORES: tiempo perdido, máquinas, tiempo de respuesta  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLAS: por máquina, tipo, problema, línea, día, mecánico   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"
	"strings"
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

	"github.com/jhoicas/factory-ops-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

// LostTimeRenderer implementa analytics.ReportRenderer usando Maroto v2.
type LostTimeRenderer struct {
	author string
}

// NewLostTimeRenderer construye el renderer; author se escribe en los metadatos del PDF.
func NewLostTimeRenderer(author string) *LostTimeRenderer {
	return &LostTimeRenderer{author: author}
}

func (g *LostTimeRenderer) Format() string      { return "pdf" }
func (g *LostTimeRenderer) ContentType() string { return "application/pdf" }

// Render genera el PDF y devuelve sus bytes.
func (g *LostTimeRenderer) Render(report *dto.LostTimeReport, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de tiempo perdido", true).
		WithAuthor(nonEmpty(g.author, "factory-ops"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(filtersRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(indicatorsRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	for _, t := range summaryTables(report) {
		m.AddRows(t.rows()...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("REPORTE DE TIEMPO PERDIDO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func filtersRow(r *dto.LostTimeReport) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Pisos: %s   |   Líneas: %s   |   Fechas: %s",
				joinOrAll(r.Floors), joinOrAll(r.LineNos), joinOrAll(r.Dates),
			), props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
	)
}

func indicatorsRow(r *dto.LostTimeReport) core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(2).Add(
			text.New(label, props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center, Color: colorPrimary, Top: 6,
			}),
		)
	}
	return row.New(16).Add(
		kpi("Tiempo perdido", r.TotalLostTime.String()),
		kpi("Máquinas", strconv.Itoa(r.TotalMachineCount)),
		kpi("Activas", strconv.Itoa(r.TotalActiveMachines)),
		kpi("En reparación", strconv.Itoa(r.TotalRepairingMachines)),
		kpi("Inactivas", strconv.Itoa(r.TotalIdleMachines)),
		kpi("Resp. promedio", r.AvgTimeToRespond.String()),
	)
}

// table sección tabular; sizes debe sumar 12 columnas de la grilla.
type table struct {
	title   string
	headers []string
	sizes   []int
	body    [][]string
}

func (t table) rows() []core.Row {
	out := []core.Row{
		row.New(4),
		row.New(7).Add(col.New(12).Add(text.New(t.title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}))),
	}

	head := make([]core.Col, 0, len(t.headers))
	for i, h := range t.headers {
		head = append(head, col.New(t.sizes[i]).Add(text.New(h, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: alignFor(i),
			Color: colorWhite, Top: 1.5, Left: 1, Right: 1,
		})))
	}
	out = append(out, row.New(7).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(head...))

	if len(t.body) == 0 {
		out = append(out, row.New(6).Add(col.New(12).Add(text.New("Sin registros", props.Text{
			Size: 8, Color: colorGray, Top: 1, Left: 1,
		}))))
		return out
	}
	for _, cells := range t.body {
		cols := make([]core.Col, 0, len(cells))
		for i, c := range cells {
			cols = append(cols, col.New(t.sizes[i]).Add(text.New(c, props.Text{
				Size: 8, Align: alignFor(i), Top: 1, Left: 1, Right: 1,
			})))
		}
		out = append(out, row.New(6).Add(cols...))
	}
	return out
}

func summaryTables(r *dto.LostTimeReport) []table {
	byMachine := table{
		title:   "Por máquina",
		headers: []string{"Máquina", "Estado", "Tipo", "Paradas", "Tiempo perdido"},
		sizes:   []int{3, 2, 3, 2, 2},
	}
	for _, s := range r.SummaryByMachineID {
		byMachine.body = append(byMachine.body, []string{
			dto.Deref(s.MachineID), dto.Deref(s.Status), dto.Deref(s.Type), strconv.Itoa(s.BreakdownsCount), s.LostTime.String(),
		})
	}

	byType := table{
		title:   "Por tipo de máquina",
		headers: []string{"Tipo", "Máquinas", "Paradas", "Tiempo perdido"},
		sizes:   []int{5, 2, 2, 3},
	}
	for _, s := range r.SummaryByType {
		byType.body = append(byType.body, []string{
			dto.Deref(s.Type), strconv.Itoa(s.MachineCount), strconv.Itoa(s.BreakdownsCount), s.LostTime.String(),
		})
	}

	byProblem := table{
		title:   "Por problema",
		headers: []string{"Problema", "Paradas", "Tiempo perdido"},
		sizes:   []int{7, 2, 3},
	}
	for _, s := range r.SummaryByProblem {
		byProblem.body = append(byProblem.body, []string{
			dto.Deref(s.Problem), strconv.Itoa(s.BreakdownsCount), s.LostTime.String(),
		})
	}

	byLine := table{
		title:   "Por línea",
		headers: []string{"Línea", "Paradas", "Tiempo perdido"},
		sizes:   []int{7, 2, 3},
	}
	for _, s := range r.SummaryByLine {
		byLine.body = append(byLine.body, []string{
			dto.Deref(s.Line), strconv.Itoa(s.BreakdownsCount), s.LostTime.String(),
		})
	}

	byDay := table{
		title:   "Por día",
		headers: []string{"Fecha", "Paradas", "Tiempo perdido"},
		sizes:   []int{7, 2, 3},
	}
	for _, s := range r.SummaryByDay {
		byDay.body = append(byDay.body, []string{
			s.Date, strconv.Itoa(s.BreakdownsCount), s.LostTime.String(),
		})
	}

	byMechanic := table{
		title:   "Por mecánico",
		headers: []string{"Mecánico", "Resp. promedio", "Paradas", "Tiempo perdido"},
		sizes:   []int{5, 3, 2, 2},
	}
	for _, s := range r.SummaryByMechanic {
		byMechanic.body = append(byMechanic.body, []string{
			dto.Deref(s.ID), s.AvgTimeToRespond.String(), strconv.Itoa(s.BreakdownsCount), s.LostTime.String(),
		})
	}

	return []table{byMachine, byType, byProblem, byLine, byDay, byMechanic}
}

// ── helpers ───────────────────────────────────────────────────────────────────

// alignFor: primera columna a la izquierda, el resto a la derecha.
func alignFor(i int) align.Type {
	if i == 0 {
		return align.Left
	}
	return align.Right
}

func joinOrAll(values []string) string {
	return nonEmpty(strings.Join(values, ", "), "todos")
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
