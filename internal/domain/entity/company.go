package entity

import "time"

// Tipos de industria de una empresa.
const (
	IndustryRMG      = "RMG"
	IndustryTextiles = "Textiles"
	IndustryOther    = "Other"
)

// Company representa una organización/tenant del sistema. Todas las entidades de planta
// cuelgan directa o transitivamente de una Company.
type Company struct {
	ID           string
	Name         string
	IndustryType string // RMG, Textiles, Other
	About        string
	Address      string
	Contacts     string
	Email        *string // único si está presente
	Website      string
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
