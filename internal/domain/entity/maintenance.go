package entity

import "time"

// Severidad de una categoría de problema.
const (
	SeverityMinor    = "minor"
	SeverityMajor    = "major"
	SeverityCritical = "critical"
)

// ProblemCategoryType agrupador de categorías de problema (global, no por empresa).
type ProblemCategoryType struct {
	ID          string
	Name        string
	Description string
}

// ProblemCategory categoría de falla.
type ProblemCategory struct {
	ID             string
	Name           string
	Description    string
	Severity       string
	CategoryTypeID *string
}

// BreakdownLog registro de una parada de máquina.
type BreakdownLog struct {
	ID                string
	CompanyID         string
	MachineID         *string
	MechanicID        *string
	OperatorID        *string
	ProblemCategoryID *string
	LineID            *string
	BreakdownStart    time.Time
	RepairingStart    *time.Time
	LostTime          time.Duration
	Comments          string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
