package entity

import "time"

// Estados de una máquina.
const (
	MachineActive      = "active"
	MachineInactive    = "inactive"
	MachineMaintenance = "maintenance"
	MachineBroken      = "broken"
)

// ValidMachineStatus indica si s es un estado de máquina conocido.
func ValidMachineStatus(s string) bool {
	switch s {
	case MachineActive, MachineInactive, MachineMaintenance, MachineBroken:
		return true
	}
	return false
}

// Machine equipo de planta ubicado en una línea.
type Machine struct {
	ID                 string
	CompanyID          string
	MachineID          string // código visible, único
	CategoryID         *string
	TypeID             *string
	BrandID            *string
	SupplierID         *string
	ModelNumber        string
	SerialNo           string
	LineID             *string
	Sequence           int
	PurchaseDate       *time.Time
	LastBreakdownStart *time.Time
	LastRepairingStart *time.Time
	MechanicID         *string
	OperatorID         *string
	LastProblem        string
	Status             string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// MachineDetail máquina con los nombres de su taxonomía y ubicación resueltos.
type MachineDetail struct {
	Machine
	Category  string
	Type      string
	Brand     string
	Supplier  string
	Line      string
	Floor     string
	Operation string
}
