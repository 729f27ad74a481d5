package repository

import (
	"context"
	"time"

	"github.com/jhoicas/factory-ops-api/internal/domain/entity"
)

// MachineFilter filtros del listado de máquinas. Los campos de texto se comparan por
// "contiene" sin distinguir mayúsculas; PurchaseDate y Status son exactos.
type MachineFilter struct {
	CompanyID    string
	MachineID    string
	Category     string
	Type         string
	Brand        string
	ModelNumber  string
	SerialNo     string
	Floor        string
	Line         string
	Supplier     string
	PurchaseDate *time.Time
	Status       string
	Search       string
	Ordering     string // campo permitido, prefijo "-" para descendente
	Limit        int
	Offset       int
}

// MachineRepository puerto de persistencia para Machine.
type MachineRepository interface {
	Create(ctx context.Context, m *entity.Machine) error
	GetByID(ctx context.Context, id string) (*entity.Machine, error)
	GetDetail(ctx context.Context, id string) (*entity.MachineDetail, error)
	GetDetailByMachineID(ctx context.Context, companyID, machineID string) (*entity.MachineDetail, error)
	Update(ctx context.Context, m *entity.Machine) error
	List(ctx context.Context, f MachineFilter) ([]*entity.MachineDetail, int, error)
	Delete(ctx context.Context, id string) error
}
