package inventory

import (
	"context"
	"sort"

	"github.com/jhoicas/factory-ops-api/internal/domain"
	"github.com/jhoicas/factory-ops-api/internal/domain/entity"
	"github.com/jhoicas/factory-ops-api/internal/domain/inventory"
	"github.com/jhoicas/factory-ops-api/internal/domain/repository"
)

// adjustStock es la única escritura de MachinePart.quantity: bloquea la fila del repuesto
// (SELECT FOR UPDATE), aplica delta y persiste. Debe llamarse dentro de TxRunner.Run.
func adjustStock(
	ctx context.Context,
	partRepo repository.MachinePartRepository,
	companyID, partID string,
	delta int,
) (*entity.MachinePart, error) {
	part, err := partRepo.GetForUpdate(ctx, partID)
	if err != nil {
		return nil, err
	}
	if part == nil || part.CompanyID != companyID {
		return nil, domain.NewValidationError("part_id", "el repuesto no existe")
	}
	next, err := inventory.ApplyDelta(part.ID, part.Quantity, delta)
	if err != nil {
		return nil, err
	}
	if err := partRepo.UpdateQuantity(ctx, part.ID, next); err != nil {
		return nil, err
	}
	part.Quantity = next
	return part, nil
}

// lockParts toma los bloqueos de fila de todos los repuestos en orden de ID. Así dos
// transacciones que tocan los mismos repuestos los piden en el mismo orden y no se interbloquean.
func lockParts(ctx context.Context, partRepo repository.MachinePartRepository, partIDs []string) error {
	ids := make([]string, 0, len(partIDs))
	seen := make(map[string]bool, len(partIDs))
	for _, id := range partIDs {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	for _, id := range ids {
		if _, err := partRepo.GetForUpdate(ctx, id); err != nil {
			return err
		}
	}
	return nil
}
