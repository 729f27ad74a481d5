package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/factory-ops-api/internal/application/dto"
	"github.com/jhoicas/factory-ops-api/internal/domain"
	"github.com/jhoicas/factory-ops-api/internal/domain/entity"
	"github.com/jhoicas/factory-ops-api/internal/domain/inventory"
	"github.com/jhoicas/factory-ops-api/internal/domain/repository"
	"github.com/jhoicas/factory-ops-api/pkg/logger"
)

// UsageUseCase registra consumos de repuestos contra paradas. El stock nunca queda negativo:
// la verificación y el descuento ocurren bajo el bloqueo de fila del repuesto.
type UsageUseCase struct {
	txRunner      TxRunner
	repo          repository.PartsUsageRecordRepository
	breakdownRepo repository.BreakdownLogRepository
	loc           *time.Location
	log           *logger.Logger
	now           func() time.Time
}

// NewUsageUseCase construye el caso de uso. loc define el día calendario para total_cost.
func NewUsageUseCase(
	txRunner TxRunner,
	repo repository.PartsUsageRecordRepository,
	breakdownRepo repository.BreakdownLogRepository,
	loc *time.Location,
	log *logger.Logger,
) *UsageUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &UsageUseCase{
		txRunner:      txRunner,
		repo:          repo,
		breakdownRepo: breakdownRepo,
		loc:           loc,
		log:           log,
		now:           time.Now,
	}
}

// Create descuenta quantity_used del repuesto y persiste el consumo en una sola transacción.
// Si el stock no alcanza devuelve domain.ErrInsufficientStock y no se confirma nada.
func (uc *UsageUseCase) Create(ctx context.Context, companyID string, in dto.CreatePartsUsageRequest) (*dto.PartsUsageResponse, error) {
	if verr := validateUsage(in, ""); !verr.Empty() {
		return nil, verr
	}
	if err := uc.checkBreakdown(ctx, companyID, in.BreakdownID, ""); err != nil {
		return nil, err
	}
	rec := uc.newRecord(companyID, in)

	err := uc.txRunner.Run(ctx, func(
		partRepo repository.MachinePartRepository,
		_ repository.PurchaseItemRepository,
		usageRepo repository.PartsUsageRecordRepository,
	) error {
		return applyUsage(ctx, partRepo, usageRepo, rec)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("company_id", companyID).
		Str("part_id", rec.PartID).
		Str("breakdown_id", rec.BreakdownID).
		Int("quantity", rec.QuantityUsed).
		Msg("consumo de repuesto registrado")
	return toUsageResponse(rec), nil
}

// CreateBulk valida todos los registros y luego los aplica en una única transacción.
// El primer fallo (p. ej. stock insuficiente) revierte el lote completo y se informa con su índice.
func (uc *UsageUseCase) CreateBulk(ctx context.Context, companyID string, in []dto.CreatePartsUsageRequest) ([]dto.PartsUsageResponse, error) {
	if len(in) == 0 {
		return nil, domain.NewValidationError("records", "se requiere al menos un registro")
	}
	verr := &domain.ValidationError{}
	for i, item := range in {
		for k, v := range validateUsage(item, fmt.Sprintf("[%d].", i)).Fields {
			verr.Add(k, v)
		}
	}
	if !verr.Empty() {
		return nil, verr
	}
	seen := make(map[string]bool, len(in))
	for i, item := range in {
		if seen[item.BreakdownID] {
			continue
		}
		if err := uc.checkBreakdown(ctx, companyID, item.BreakdownID, fmt.Sprintf("[%d].", i)); err != nil {
			return nil, err
		}
		seen[item.BreakdownID] = true
	}

	records := make([]*entity.PartsUsageRecord, 0, len(in))
	for _, item := range in {
		records = append(records, uc.newRecord(companyID, item))
	}

	err := uc.txRunner.Run(ctx, func(
		partRepo repository.MachinePartRepository,
		_ repository.PurchaseItemRepository,
		usageRepo repository.PartsUsageRecordRepository,
	) error {
		partIDs := make([]string, 0, len(records))
		for _, rec := range records {
			partIDs = append(partIDs, rec.PartID)
		}
		if err := lockParts(ctx, partRepo, partIDs); err != nil {
			return err
		}
		for i, rec := range records {
			if err := applyUsage(ctx, partRepo, usageRepo, rec); err != nil {
				return fmt.Errorf("registro %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("company_id", companyID).Int("records", len(records)).Msg("consumos en lote registrados")
	out := make([]dto.PartsUsageResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, *toUsageResponse(rec))
	}
	return out, nil
}

// GetByID obtiene un consumo de la empresa; nil si no existe.
func (uc *UsageUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.PartsUsageResponse, error) {
	rec, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.CompanyID != companyID {
		return nil, nil
	}
	return toUsageResponse(rec), nil
}

// List lista consumos de la empresa.
func (uc *UsageUseCase) List(ctx context.Context, companyID string, limit, offset int) (*dto.PartsUsageListResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PartsUsageResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toUsageResponse(r))
	}
	return &dto.PartsUsageListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// UpdateRemarks modifica solo las observaciones; cantidad y repuesto son inmutables.
func (uc *UsageUseCase) UpdateRemarks(ctx context.Context, companyID, id string, in dto.UpdatePartsUsageRequest) (*dto.PartsUsageResponse, error) {
	rec, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.CompanyID != companyID {
		return nil, nil
	}
	if err := uc.repo.UpdateRemarks(ctx, id, in.Remarks); err != nil {
		return nil, err
	}
	rec.Remarks = in.Remarks
	return toUsageResponse(rec), nil
}

// Delete elimina el consumo y devuelve su cantidad al stock.
func (uc *UsageUseCase) Delete(ctx context.Context, companyID, id string) error {
	return uc.txRunner.Run(ctx, func(
		partRepo repository.MachinePartRepository,
		_ repository.PurchaseItemRepository,
		usageRepo repository.PartsUsageRecordRepository,
	) error {
		rec, err := usageRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if rec == nil || rec.CompanyID != companyID {
			return domain.ErrNotFound
		}
		if _, err := adjustStock(ctx, partRepo, companyID, rec.PartID, -inventory.UsageDelta(rec.QuantityUsed)); err != nil {
			return err
		}
		return usageRepo.Delete(ctx, rec.ID)
	})
}

// TotalCost suma quantity_used * price de los consumos en paradas de la línea entre
// startdate y enddate (ambos inclusive, YYYY-MM-DD).
func (uc *UsageUseCase) TotalCost(ctx context.Context, companyID, lineID, startDate, endDate string) (*dto.TotalCostResponse, error) {
	verr := &domain.ValidationError{}
	if strings.TrimSpace(lineID) == "" {
		verr.Add("line", "es requerido")
	} else if _, err := uuid.Parse(lineID); err != nil {
		verr.Add("line", "debe ser un UUID")
	}
	from, err := time.ParseInLocation(dto.DateLayout, startDate, uc.loc)
	if err != nil {
		verr.Add("startdate", "formato esperado YYYY-MM-DD")
	}
	to, err := time.ParseInLocation(dto.DateLayout, endDate, uc.loc)
	if err != nil {
		verr.Add("enddate", "formato esperado YYYY-MM-DD")
	}
	if !verr.Empty() {
		return nil, verr
	}
	total, err := uc.repo.TotalCost(ctx, companyID, lineID, from, to.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	return &dto.TotalCostResponse{TotalCost: total.Round(2)}, nil
}

// applyUsage descuenta el stock (bloqueando la fila) y luego persiste el consumo.
func applyUsage(
	ctx context.Context,
	partRepo repository.MachinePartRepository,
	usageRepo repository.PartsUsageRecordRepository,
	rec *entity.PartsUsageRecord,
) error {
	if _, err := adjustStock(ctx, partRepo, rec.CompanyID, rec.PartID, inventory.UsageDelta(rec.QuantityUsed)); err != nil {
		return err
	}
	return usageRepo.Create(ctx, rec)
}

func (uc *UsageUseCase) checkBreakdown(ctx context.Context, companyID, breakdownID, prefix string) error {
	b, err := uc.breakdownRepo.GetByID(ctx, breakdownID)
	if err != nil {
		return err
	}
	if b == nil || b.CompanyID != companyID {
		return domain.NewValidationError(prefix+"breakdown_id", "la parada no existe")
	}
	return nil
}

func (uc *UsageUseCase) newRecord(companyID string, in dto.CreatePartsUsageRequest) *entity.PartsUsageRecord {
	return &entity.PartsUsageRecord{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		PartID:       in.PartID,
		BreakdownID:  in.BreakdownID,
		QuantityUsed: in.QuantityUsed,
		UsageDate:    uc.now(),
		Mechanic:     in.Mechanic,
		Remarks:      in.Remarks,
	}
}

func validateUsage(in dto.CreatePartsUsageRequest, prefix string) *domain.ValidationError {
	verr := &domain.ValidationError{}
	if in.PartID == "" {
		verr.Add(prefix+"part_id", "es requerido")
	}
	if in.BreakdownID == "" {
		verr.Add(prefix+"breakdown_id", "es requerido")
	}
	if in.QuantityUsed <= 0 {
		verr.Add(prefix+"quantity_used", "debe ser mayor que 0")
	}
	if strings.TrimSpace(in.Mechanic) == "" {
		verr.Add(prefix+"mechanic", "es requerido")
	}
	return verr
}

func toUsageResponse(r *entity.PartsUsageRecord) *dto.PartsUsageResponse {
	return &dto.PartsUsageResponse{
		ID:           r.ID,
		CompanyID:    r.CompanyID,
		PartID:       r.PartID,
		BreakdownID:  r.BreakdownID,
		QuantityUsed: r.QuantityUsed,
		UsageDate:    r.UsageDate,
		Mechanic:     r.Mechanic,
		Remarks:      r.Remarks,
	}
}
