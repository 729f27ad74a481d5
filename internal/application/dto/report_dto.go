package dto

import "github.com/jhoicas/factory-ops-api/internal/domain/maintenance"

// LostTimeReport resumen de paradas filtrado por piso, línea y fecha.
type LostTimeReport struct {
	Floors                 []string             `json:"floors"`
	LineNos                []string             `json:"line_nos"`
	Dates                  []string             `json:"dates"`
	TotalLostTime          maintenance.Duration `json:"total_lost_time"`
	TotalMachineCount      int                  `json:"total_machine_count"`
	TotalActiveMachines    int                  `json:"total_active_machines"`
	TotalRepairingMachines int                  `json:"total_repairing_machines"`
	TotalIdleMachines      int                  `json:"total_idle_machines"`
	AvgTimeToRespond       maintenance.Duration `json:"avg_time_to_respond"`
	SummaryByMachineID     []MachineSummary     `json:"summary_by_machine_id"`
	SummaryByType          []TypeSummary        `json:"summary_by_type"`
	SummaryByProblem       []ProblemSummary     `json:"summary_by_problem"`
	SummaryByLine          []LineSummary        `json:"summary_by_line"`
	SummaryByDay           []DaySummary         `json:"summary_by_day"`
	SummaryByMechanic      []MechanicSummary    `json:"summary_by_mechanic"`
}

// MachineSummary paradas por máquina. Los campos de referencia son null cuando la parada
// no tiene máquina o la máquina no tiene tipo.
type MachineSummary struct {
	ID              *string              `json:"id"`
	MachineID       *string              `json:"machine_id"`
	Status          *string              `json:"status"`
	Type            *string              `json:"type"`
	BreakdownsCount int                  `json:"breakdowns_count"`
	LostTime        maintenance.Duration `json:"lost_time"`
}

// TypeSummary paradas por tipo de máquina; MachineCount son máquinas distintas.
type TypeSummary struct {
	Type            *string              `json:"type"`
	MachineCount    int                  `json:"machine_count"`
	BreakdownsCount int                  `json:"breakdowns_count"`
	LostTime        maintenance.Duration `json:"lost_time"`
}

// ProblemSummary paradas por categoría de problema.
type ProblemSummary struct {
	Problem         *string              `json:"problem"`
	BreakdownsCount int                  `json:"breakdowns_count"`
	LostTime        maintenance.Duration `json:"lost_time"`
}

// LineSummary paradas por línea.
type LineSummary struct {
	ID              *string              `json:"id"`
	Line            *string              `json:"line"`
	BreakdownsCount int                  `json:"breakdowns_count"`
	LostTime        maintenance.Duration `json:"lost_time"`
}

// DaySummary paradas por día calendario (YYYY-MM-DD).
type DaySummary struct {
	Date            string               `json:"date"`
	BreakdownsCount int                  `json:"breakdowns_count"`
	LostTime        maintenance.Duration `json:"lost_time"`
}

// MechanicSummary paradas atendidas por mecánico (solo con repairing_start).
type MechanicSummary struct {
	ID               *string              `json:"id"`
	AvgTimeToRespond maintenance.Duration `json:"avg_time_to_respond"`
	BreakdownsCount  int                  `json:"breakdowns_count"`
	LostTime         maintenance.Duration `json:"lost_time"`
}

// MachineMonitoring foto de la última semana de una máquina. Las claves siguen el contrato
// histórico del tablero de monitoreo (con guiones).
type MachineMonitoring struct {
	ID                      string               `json:"id"`
	MachineID               string               `json:"machine_id"`
	ModelNumber             string               `json:"model_number"`
	SerialNo                string               `json:"serial_no"`
	PurchaseDate            *Date                `json:"purchase_date"`
	LastBreakdownStart      *string              `json:"last_breakdown_start"`
	Status                  string               `json:"status"`
	Category                *string              `json:"category"`
	Type                    *string              `json:"type"`
	Brand                   *string              `json:"brand"`
	Line                    *string              `json:"line"`
	Floor                   *string              `json:"floor"`
	Supplier                *string              `json:"supplier"`
	BreakdownsLastWeek      []DayLostTime        `json:"breakdowns-last-week"`
	TotalLostTimeLastWeek   maintenance.Duration `json:"total-lost-time-last-week"`
	UtilizationLastWeek     float64              `json:"utilization-last-week"`
	BreakdownsCountLast     int                  `json:"breakdowns-count-last-week"`
	MTBFLastWeek            maintenance.Duration `json:"MTBF-last-week"`
	LostTimeReasonsLastWeek []ReasonLostTime     `json:"lost-time-reasons-last-week"`
}

// DayLostTime tiempo perdido de un día.
type DayLostTime struct {
	Date     string               `json:"date"`
	LostTime maintenance.Duration `json:"lost-time"`
}

// ReasonLostTime tiempo perdido por categoría de problema.
type ReasonLostTime struct {
	ProblemCategory *string              `json:"problem-category"`
	LostTime        maintenance.Duration `json:"lost-time"`
}
