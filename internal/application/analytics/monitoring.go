package analytics

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/factory-ops-api/internal/application/dto"
	"github.com/jhoicas/factory-ops-api/internal/domain"
	"github.com/jhoicas/factory-ops-api/internal/domain/maintenance"
)

// MachineMonitoring devuelve la foto de los últimos 7 días de la máquina con código machineID.
func (uc *ReportUseCase) MachineMonitoring(ctx context.Context, companyID, machineID string) (*dto.MachineMonitoring, error) {
	machineID = strings.TrimSpace(machineID)
	if machineID == "" {
		return nil, domain.NewValidationError("machine_id", "es requerido")
	}
	m, err := uc.machineRepo.GetDetailByMachineID(ctx, companyID, machineID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}

	since := uc.now().Add(-maintenance.MonitoringWindow)
	rows, err := uc.reportRepo.ListMachineBreakdownsSince(ctx, m.ID, since)
	if err != nil {
		return nil, fmt.Errorf("monitoreo: paradas: %w", err)
	}

	var total time.Duration
	perDay := map[string]time.Duration{}
	perReason := map[string]time.Duration{}
	for _, f := range rows {
		total += f.LostTime
		perDay[f.BreakdownStart.In(uc.loc).Format(dto.DateLayout)] += f.LostTime
		perReason[f.Problem] += f.LostTime
	}

	days := make([]dto.DayLostTime, 0, len(perDay))
	for d, lost := range perDay {
		days = append(days, dto.DayLostTime{Date: d, LostTime: maintenance.Duration(lost)})
	}
	sort.Slice(days, func(a, b int) bool { return days[a].Date < days[b].Date })

	reasons := make([]dto.ReasonLostTime, 0, len(perReason))
	for p, lost := range perReason {
		reasons = append(reasons, dto.ReasonLostTime{ProblemCategory: dto.NullString(p), LostTime: maintenance.Duration(lost)})
	}
	// Sin categoría al final, como NULL en un ORDER BY ascendente.
	sort.Slice(reasons, func(a, b int) bool {
		pa, pb := dto.Deref(reasons[a].ProblemCategory), dto.Deref(reasons[b].ProblemCategory)
		if pa == "" || pb == "" {
			return pb == "" && pa != ""
		}
		return pa < pb
	})

	out := &dto.MachineMonitoring{
		ID:                      m.ID,
		MachineID:               m.MachineID,
		ModelNumber:             m.ModelNumber,
		SerialNo:                m.SerialNo,
		PurchaseDate:            dto.DatePtr(m.PurchaseDate),
		Status:                  m.Status,
		Category:                dto.NullString(m.Category),
		Type:                    dto.NullString(m.Type),
		Brand:                   dto.NullString(m.Brand),
		Line:                    dto.NullString(m.Line),
		Floor:                   dto.NullString(m.Floor),
		Supplier:                dto.NullString(m.Supplier),
		BreakdownsLastWeek:      days,
		TotalLostTimeLastWeek:   maintenance.Duration(total),
		UtilizationLastWeek:     maintenance.Utilization(total),
		BreakdownsCountLast:     len(rows),
		MTBFLastWeek:            maintenance.Duration(maintenance.MTBF(len(rows))),
		LostTimeReasonsLastWeek: reasons,
	}
	if m.LastBreakdownStart != nil {
		s := m.LastBreakdownStart.In(uc.loc).Format(time.RFC3339)
		out.LastBreakdownStart = &s
	}
	return out, nil
}
