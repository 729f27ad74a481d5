// Package analytics contiene los reportes de tiempo perdido por paradas y el
// monitoreo semanal por máquina. Solo lectura.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/factory-ops-api/internal/application/dto"
	"github.com/jhoicas/factory-ops-api/internal/domain/entity"
	"github.com/jhoicas/factory-ops-api/internal/domain/maintenance"
	"github.com/jhoicas/factory-ops-api/internal/domain/repository"
)

// LostTimeQuery filtros crudos del reporte: listas separadas por coma.
type LostTimeQuery struct {
	Floor string
	Line  string
	Date  string
}

// ReportUseCase arma el reporte de tiempo perdido y la foto de monitoreo por máquina.
type ReportUseCase struct {
	reportRepo  repository.ReportRepository
	machineRepo repository.MachineRepository
	loc         *time.Location
	now         func() time.Time
	renderers   map[string]ReportRenderer
}

// NewReportUseCase construye el caso de uso. loc define el día calendario de breakdown_start.
func NewReportUseCase(
	reportRepo repository.ReportRepository,
	machineRepo repository.MachineRepository,
	loc *time.Location,
	renderers ...ReportRenderer,
) *ReportUseCase {
	if loc == nil {
		loc = time.UTC
	}
	uc := &ReportUseCase{
		reportRepo:  reportRepo,
		machineRepo: machineRepo,
		loc:         loc,
		now:         time.Now,
		renderers:   make(map[string]ReportRenderer, len(renderers)),
	}
	for _, r := range renderers {
		uc.renderers[r.Format()] = r
	}
	return uc
}

// LostTimeReport agrega las paradas filtradas por piso, línea y fecha.
// Las fechas inválidas se ignoran; si ninguna es válida no se filtra por fecha.
// Los conteos de máquinas solo usan piso y línea.
func (uc *ReportUseCase) LostTimeReport(ctx context.Context, companyID string, q LostTimeQuery) (*dto.LostTimeReport, error) {
	floors := splitList(q.Floor)
	lines := splitList(q.Line)
	dates := splitList(q.Date)

	filter := repository.LocationFilter{
		CompanyID: companyID,
		FloorIDs:  floors,
		LineIDs:   lines,
		Location:  uc.loc,
	}
	for _, s := range dates {
		if d, err := time.ParseInLocation(dto.DateLayout, s, uc.loc); err == nil {
			filter.Dates = append(filter.Dates, d)
		}
	}

	// Paradas y conteo de máquinas son consultas independientes: en paralelo.
	type factsResult struct {
		rows []repository.BreakdownFact
		err  error
	}
	type countsResult struct {
		counts map[string]int
		err    error
	}
	factsCh := make(chan factsResult, 1)
	countsCh := make(chan countsResult, 1)

	go func() {
		rows, err := uc.reportRepo.ListBreakdownFacts(ctx, filter)
		factsCh <- factsResult{rows, err}
	}()
	go func() {
		counts, err := uc.reportRepo.CountMachinesByStatus(ctx, filter)
		countsCh <- countsResult{counts, err}
	}()

	facts := <-factsCh
	counts := <-countsCh
	if facts.err != nil {
		return nil, fmt.Errorf("reporte: paradas: %w", facts.err)
	}
	if counts.err != nil {
		return nil, fmt.Errorf("reporte: máquinas: %w", counts.err)
	}

	report := &dto.LostTimeReport{
		Floors:                 floors,
		LineNos:                lines,
		Dates:                  dates,
		TotalActiveMachines:    counts.counts[entity.MachineActive],
		TotalRepairingMachines: counts.counts[entity.MachineMaintenance],
		TotalIdleMachines:      counts.counts[entity.MachineInactive],
	}
	for _, n := range counts.counts {
		report.TotalMachineCount += n
	}

	var total, respondSum time.Duration
	responded := 0
	for _, f := range facts.rows {
		total += f.LostTime
		if f.RepairingStart != nil {
			respondSum += f.RepairingStart.Sub(f.BreakdownStart)
			responded++
		}
	}
	report.TotalLostTime = maintenance.Duration(total)
	if responded > 0 {
		report.AvgTimeToRespond = maintenance.Duration(respondSum / time.Duration(responded))
	}

	report.SummaryByMachineID = summarizeByMachine(facts.rows)
	report.SummaryByType = summarizeByType(facts.rows)
	report.SummaryByProblem = summarizeByProblem(facts.rows)
	report.SummaryByLine = summarizeByLine(facts.rows)
	report.SummaryByDay = summarizeByDay(facts.rows, uc.loc)
	report.SummaryByMechanic = summarizeByMechanic(facts.rows)
	return report, nil
}

func summarizeByMachine(rows []repository.BreakdownFact) []dto.MachineSummary {
	idx := map[string]int{}
	out := []dto.MachineSummary{}
	for _, f := range rows {
		i, ok := idx[f.MachineRef]
		if !ok {
			i = len(out)
			idx[f.MachineRef] = i
			out = append(out, dto.MachineSummary{
				ID:        dto.NullString(f.MachineRef),
				MachineID: dto.NullString(f.MachineCode),
				Status:    dto.NullString(f.MachineStatus),
				Type:      dto.NullString(f.MachineType),
			})
		}
		out[i].BreakdownsCount++
		out[i].LostTime += maintenance.Duration(f.LostTime)
	}
	sort.Slice(out, func(a, b int) bool { return dto.Deref(out[a].MachineID) < dto.Deref(out[b].MachineID) })
	return out
}

func summarizeByType(rows []repository.BreakdownFact) []dto.TypeSummary {
	idx := map[string]int{}
	machines := map[string]map[string]bool{}
	out := []dto.TypeSummary{}
	for _, f := range rows {
		i, ok := idx[f.MachineType]
		if !ok {
			i = len(out)
			idx[f.MachineType] = i
			machines[f.MachineType] = map[string]bool{}
			out = append(out, dto.TypeSummary{Type: dto.NullString(f.MachineType)})
		}
		machines[f.MachineType][f.MachineRef] = true
		out[i].MachineCount = len(machines[f.MachineType])
		out[i].BreakdownsCount++
		out[i].LostTime += maintenance.Duration(f.LostTime)
	}
	sort.Slice(out, func(a, b int) bool { return dto.Deref(out[a].Type) < dto.Deref(out[b].Type) })
	return out
}

func summarizeByProblem(rows []repository.BreakdownFact) []dto.ProblemSummary {
	idx := map[string]int{}
	out := []dto.ProblemSummary{}
	for _, f := range rows {
		i, ok := idx[f.Problem]
		if !ok {
			i = len(out)
			idx[f.Problem] = i
			out = append(out, dto.ProblemSummary{Problem: dto.NullString(f.Problem)})
		}
		out[i].BreakdownsCount++
		out[i].LostTime += maintenance.Duration(f.LostTime)
	}
	sort.Slice(out, func(a, b int) bool { return dto.Deref(out[a].Problem) < dto.Deref(out[b].Problem) })
	return out
}

func summarizeByLine(rows []repository.BreakdownFact) []dto.LineSummary {
	idx := map[string]int{}
	out := []dto.LineSummary{}
	for _, f := range rows {
		i, ok := idx[f.LineID]
		if !ok {
			i = len(out)
			idx[f.LineID] = i
			out = append(out, dto.LineSummary{ID: dto.NullString(f.LineID), Line: dto.NullString(f.LineName)})
		}
		out[i].BreakdownsCount++
		out[i].LostTime += maintenance.Duration(f.LostTime)
	}
	sort.Slice(out, func(a, b int) bool { return dto.Deref(out[a].Line) < dto.Deref(out[b].Line) })
	return out
}

func summarizeByDay(rows []repository.BreakdownFact, loc *time.Location) []dto.DaySummary {
	idx := map[string]int{}
	out := []dto.DaySummary{}
	for _, f := range rows {
		day := f.BreakdownStart.In(loc).Format(dto.DateLayout)
		i, ok := idx[day]
		if !ok {
			i = len(out)
			idx[day] = i
			out = append(out, dto.DaySummary{Date: day})
		}
		out[i].BreakdownsCount++
		out[i].LostTime += maintenance.Duration(f.LostTime)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Date < out[b].Date })
	return out
}

// summarizeByMechanic solo cuenta paradas con repairing_start (las que tienen tiempo de respuesta).
func summarizeByMechanic(rows []repository.BreakdownFact) []dto.MechanicSummary {
	idx := map[string]int{}
	respond := map[string]time.Duration{}
	out := []dto.MechanicSummary{}
	for _, f := range rows {
		if f.RepairingStart == nil {
			continue
		}
		i, ok := idx[f.MechanicID]
		if !ok {
			i = len(out)
			idx[f.MechanicID] = i
			out = append(out, dto.MechanicSummary{ID: dto.NullString(f.MechanicID)})
		}
		respond[f.MechanicID] += f.RepairingStart.Sub(f.BreakdownStart)
		out[i].BreakdownsCount++
		out[i].LostTime += maintenance.Duration(f.LostTime)
	}
	for i := range out {
		id := dto.Deref(out[i].ID)
		out[i].AvgTimeToRespond = maintenance.Duration(respond[id] / time.Duration(out[i].BreakdownsCount))
	}
	sort.Slice(out, func(a, b int) bool { return dto.Deref(out[a].ID) < dto.Deref(out[b].ID) })
	return out
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
