// Package xlsx exporta el reporte de tiempo perdido a una planilla Excel con una hoja por resumen.
package xlsx

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/factory-ops-api/internal/application/dto"
)

const contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// LostTimeRenderer implementa analytics.ReportRenderer usando excelize.
type LostTimeRenderer struct{}

// NewLostTimeRenderer construye el renderer.
func NewLostTimeRenderer() *LostTimeRenderer { return &LostTimeRenderer{} }

func (LostTimeRenderer) Format() string      { return "xlsx" }
func (LostTimeRenderer) ContentType() string { return contentType }

// sheet hoja tabular; los valores se escriben con su tipo (números quedan como números).
type sheet struct {
	name    string
	headers []string
	widths  []float64
	rows    [][]any
}

// Render arma el libro y devuelve sus bytes.
func (LostTimeRenderer) Render(report *dto.LostTimeReport, generatedAt time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo de cabecera: %w", err)
	}

	sheets := append([]sheet{summarySheet(report, generatedAt)}, detailSheets(report)...)
	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return nil, fmt.Errorf("xlsx: crear hoja %s: %w", s.name, err)
		}
		if err := writeSheet(f, s, headerStyle); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, s sheet, headerStyle int) error {
	for i, h := range s.headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("xlsx: celda de cabecera: %w", err)
		}
		if err := f.SetCellValue(s.name, cell, h); err != nil {
			return fmt.Errorf("xlsx: %s!%s: %w", s.name, cell, err)
		}
		if err := f.SetCellStyle(s.name, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("xlsx: estilo %s!%s: %w", s.name, cell, err)
		}
	}
	for r, values := range s.rows {
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return fmt.Errorf("xlsx: celda: %w", err)
			}
			if err := f.SetCellValue(s.name, cell, v); err != nil {
				return fmt.Errorf("xlsx: %s!%s: %w", s.name, cell, err)
			}
		}
	}
	for i, w := range s.widths {
		name, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(s.name, name, name, w); err != nil {
			return fmt.Errorf("xlsx: ancho de columna: %w", err)
		}
	}
	return nil
}

func summarySheet(r *dto.LostTimeReport, generatedAt time.Time) sheet {
	return sheet{
		name:    "Resumen",
		headers: []string{"Indicador", "Valor"},
		widths:  []float64{28, 24},
		rows: [][]any{
			{"Generado", generatedAt.Format("2006-01-02 15:04")},
			{"Pisos", joinOrAll(r.Floors)},
			{"Líneas", joinOrAll(r.LineNos)},
			{"Fechas", joinOrAll(r.Dates)},
			{"Tiempo perdido total", r.TotalLostTime.String()},
			{"Máquinas", r.TotalMachineCount},
			{"Máquinas activas", r.TotalActiveMachines},
			{"Máquinas en reparación", r.TotalRepairingMachines},
			{"Máquinas inactivas", r.TotalIdleMachines},
			{"Tiempo de respuesta promedio", r.AvgTimeToRespond.String()},
		},
	}
}

func detailSheets(r *dto.LostTimeReport) []sheet {
	byMachine := sheet{
		name:    "Por máquina",
		headers: []string{"Máquina", "Estado", "Tipo", "Paradas", "Tiempo perdido"},
		widths:  []float64{16, 12, 20, 10, 16},
	}
	for _, s := range r.SummaryByMachineID {
		byMachine.rows = append(byMachine.rows, []any{dto.Deref(s.MachineID), dto.Deref(s.Status), dto.Deref(s.Type), s.BreakdownsCount, s.LostTime.String()})
	}

	byType := sheet{
		name:    "Por tipo",
		headers: []string{"Tipo", "Máquinas", "Paradas", "Tiempo perdido"},
		widths:  []float64{24, 10, 10, 16},
	}
	for _, s := range r.SummaryByType {
		byType.rows = append(byType.rows, []any{dto.Deref(s.Type), s.MachineCount, s.BreakdownsCount, s.LostTime.String()})
	}

	byProblem := sheet{
		name:    "Por problema",
		headers: []string{"Problema", "Paradas", "Tiempo perdido"},
		widths:  []float64{32, 10, 16},
	}
	for _, s := range r.SummaryByProblem {
		byProblem.rows = append(byProblem.rows, []any{dto.Deref(s.Problem), s.BreakdownsCount, s.LostTime.String()})
	}

	byLine := sheet{
		name:    "Por línea",
		headers: []string{"Línea", "Paradas", "Tiempo perdido"},
		widths:  []float64{24, 10, 16},
	}
	for _, s := range r.SummaryByLine {
		byLine.rows = append(byLine.rows, []any{dto.Deref(s.Line), s.BreakdownsCount, s.LostTime.String()})
	}

	byDay := sheet{
		name:    "Por día",
		headers: []string{"Fecha", "Paradas", "Tiempo perdido"},
		widths:  []float64{14, 10, 16},
	}
	for _, s := range r.SummaryByDay {
		byDay.rows = append(byDay.rows, []any{s.Date, s.BreakdownsCount, s.LostTime.String()})
	}

	byMechanic := sheet{
		name:    "Por mecánico",
		headers: []string{"Mecánico", "Respuesta promedio", "Paradas", "Tiempo perdido"},
		widths:  []float64{38, 18, 10, 16},
	}
	for _, s := range r.SummaryByMechanic {
		byMechanic.rows = append(byMechanic.rows, []any{dto.Deref(s.ID), s.AvgTimeToRespond.String(), s.BreakdownsCount, s.LostTime.String()})
	}

	return []sheet{byMachine, byType, byProblem, byLine, byDay, byMechanic}
}

func joinOrAll(values []string) string {
	if len(values) == 0 {
		return "todos"
	}
	return strings.Join(values, ", ")
}
