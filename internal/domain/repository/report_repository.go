package repository

import (
	"context"
	"time"
)

// BreakdownFact fila plana de una parada con los nombres necesarios para agrupar.
// La produce la DB; el caso de uso la agrega.
type BreakdownFact struct {
	ID             string
	MachineRef     string // id interno de la máquina
	MachineCode    string // machine_id visible
	MachineStatus  string
	MachineType    string
	Problem        string
	LineID         string
	LineName       string
	MechanicID     string
	BreakdownStart time.Time
	RepairingStart *time.Time
	LostTime       time.Duration
}

// LocationFilter filtros por piso, línea y fecha (día calendario) de inicio de parada.
type LocationFilter struct {
	CompanyID string
	FloorIDs  []string
	LineIDs   []string
	Dates     []time.Time // días calendario en Location
	Location  *time.Location
}

// ReportRepository consultas de solo lectura para reportes de tiempo perdido.
type ReportRepository interface {
	// ListBreakdownFacts devuelve las paradas que cumplen piso, línea y fecha.
	ListBreakdownFacts(ctx context.Context, f LocationFilter) ([]BreakdownFact, error)
	// CountMachinesByStatus cuenta máquinas por estado usando solo piso y línea.
	CountMachinesByStatus(ctx context.Context, f LocationFilter) (map[string]int, error)
	// ListMachineBreakdownsSince paradas de una máquina con breakdown_start >= since.
	ListMachineBreakdownsSince(ctx context.Context, machineRef string, since time.Time) ([]BreakdownFact, error)
}
