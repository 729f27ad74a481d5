package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/factory-ops-api/internal/application/dto"
	"github.com/jhoicas/factory-ops-api/internal/domain"
	"github.com/jhoicas/factory-ops-api/internal/domain/entity"
	"github.com/jhoicas/factory-ops-api/internal/domain/inventory"
	"github.com/jhoicas/factory-ops-api/internal/domain/repository"
	"github.com/jhoicas/factory-ops-api/pkg/logger"
)

// PurchaseUseCase registra compras de repuestos: cada compra suma su cantidad al stock
// en la misma transacción que persiste el registro.
type PurchaseUseCase struct {
	txRunner TxRunner
	repo     repository.PurchaseItemRepository
	log      *logger.Logger
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(txRunner TxRunner, repo repository.PurchaseItemRepository, log *logger.Logger) *PurchaseUseCase {
	return &PurchaseUseCase{txRunner: txRunner, repo: repo, log: log}
}

// Create persiste la compra y suma quantity_purchased al repuesto.
// domain.ErrDuplicate si la factura ya existe en la empresa.
func (uc *PurchaseUseCase) Create(ctx context.Context, companyID string, in dto.CreatePurchaseItemRequest) (*dto.PurchaseItemResponse, error) {
	verr := &domain.ValidationError{}
	if in.Invoice == "" {
		verr.Add("invoice", "es requerido")
	}
	if in.PartID == "" {
		verr.Add("part_id", "es requerido")
	}
	if in.QuantityPurchased <= 0 {
		verr.Add("quantity_purchased", "debe ser mayor que 0")
	}
	if !verr.Empty() {
		return nil, verr
	}

	item := &entity.PurchaseItem{
		ID:                uuid.New().String(),
		CompanyID:         companyID,
		PartID:            in.PartID,
		Invoice:           in.Invoice,
		QuantityPurchased: in.QuantityPurchased,
		CreatedAt:         time.Now(),
	}

	var stockAfter int
	err := uc.txRunner.Run(ctx, func(
		partRepo repository.MachinePartRepository,
		purchaseRepo repository.PurchaseItemRepository,
		_ repository.PartsUsageRecordRepository,
	) error {
		part, err := adjustStock(ctx, partRepo, companyID, item.PartID, inventory.PurchaseDelta(item.QuantityPurchased))
		if err != nil {
			return err
		}
		stockAfter = part.Quantity
		return purchaseRepo.Create(ctx, item)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("company_id", companyID).
		Str("part_id", item.PartID).
		Str("invoice", item.Invoice).
		Int("quantity", item.QuantityPurchased).
		Int("stock", stockAfter).
		Msg("compra de repuesto registrada")
	return toPurchaseResponse(item), nil
}

// GetByID obtiene una compra de la empresa; nil si no existe.
func (uc *PurchaseUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.PurchaseItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil || item.CompanyID != companyID {
		return nil, nil
	}
	return toPurchaseResponse(item), nil
}

// List lista compras de la empresa.
func (uc *PurchaseUseCase) List(ctx context.Context, companyID string, limit, offset int) (*dto.PurchaseItemListResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseItemResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPurchaseResponse(p))
	}
	return &dto.PurchaseItemListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// Delete anula una compra restando su cantidad del stock. Falla con stock insuficiente
// si lo comprado ya se consumió.
func (uc *PurchaseUseCase) Delete(ctx context.Context, companyID, id string) error {
	return uc.txRunner.Run(ctx, func(
		partRepo repository.MachinePartRepository,
		purchaseRepo repository.PurchaseItemRepository,
		_ repository.PartsUsageRecordRepository,
	) error {
		item, err := purchaseRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if item == nil || item.CompanyID != companyID {
			return domain.ErrNotFound
		}
		if _, err := adjustStock(ctx, partRepo, companyID, item.PartID, -item.QuantityPurchased); err != nil {
			return err
		}
		return purchaseRepo.Delete(ctx, item.ID)
	})
}

func toPurchaseResponse(p *entity.PurchaseItem) *dto.PurchaseItemResponse {
	return &dto.PurchaseItemResponse{
		ID:                p.ID,
		CompanyID:         p.CompanyID,
		PartID:            p.PartID,
		Invoice:           p.Invoice,
		QuantityPurchased: p.QuantityPurchased,
		CreatedAt:         p.CreatedAt,
	}
}
