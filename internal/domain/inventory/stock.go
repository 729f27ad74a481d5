// Package inventory contiene las reglas puras de stock de repuestos.
package inventory

import "github.com/jhoicas/factory-ops-api/internal/domain"

// ApplyDelta calcula la nueva cantidad de un repuesto tras sumar delta (positivo en compras,
// negativo en consumos). La cantidad resultante nunca puede ser negativa.
func ApplyDelta(partID string, current, delta int) (int, error) {
	next := current + delta
	if next < 0 {
		return current, &domain.InsufficientStockError{PartID: partID, Requested: -delta, Available: current}
	}
	return next, nil
}

// UsageDelta convierte una cantidad consumida en el delta a aplicar al stock.
func UsageDelta(quantityUsed int) int { return -quantityUsed }

// PurchaseDelta convierte una cantidad comprada en el delta a aplicar al stock.
func PurchaseDelta(quantityPurchased int) int { return quantityPurchased }
