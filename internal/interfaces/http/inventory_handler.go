package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/factory-ops-api/internal/application/dto"
	"github.com/jhoicas/factory-ops-api/internal/application/inventory"
	"github.com/jhoicas/factory-ops-api/internal/domain"
)

// InventoryHandler compras y consumos de repuestos. Ambos mueven el stock.
type InventoryHandler struct {
	purchases *inventory.PurchaseUseCase
	usage     *inventory.UsageUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(purchases *inventory.PurchaseUseCase, usage *inventory.UsageUseCase) *InventoryHandler {
	return &InventoryHandler{purchases: purchases, usage: usage}
}

// CreatePurchase godoc
// @Summary      Registrar compra de repuestos (suma al stock)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseItemRequest  true  "Factura, repuesto y cantidad"
// @Success      201   {object}  dto.PurchaseItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/purchase-items [post]
func (h *InventoryHandler) CreatePurchase(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.CreatePurchaseItemRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.purchases.Create(c.Context(), companyID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetPurchase godoc
// @Summary      Obtener compra por ID
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la compra"
// @Success      200  {object}  dto.PurchaseItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase-items/{id} [get]
func (h *InventoryHandler) GetPurchase(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.purchases.GetByID(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "compra")
	}
	return c.JSON(out)
}

// ListPurchases godoc
// @Summary      Listar compras
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.PurchaseItemListResponse
// @Router       /api/purchase-items [get]
func (h *InventoryHandler) ListPurchases(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	limit, offset := pageParams(c)
	out, err := h.purchases.List(c.Context(), companyID, limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeletePurchase godoc
// @Summary      Anular compra (resta del stock)
// @Tags         inventory
// @Security     Bearer
// @Param        id   path  string  true  "ID de la compra"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase-items/{id} [delete]
func (h *InventoryHandler) DeletePurchase(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	if err := h.purchases.Delete(c.Context(), companyID, c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateUsage godoc
// @Summary      Registrar consumo de repuesto contra una parada (resta del stock)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePartsUsageRequest  true  "Repuesto, parada y cantidad"
// @Success      201   {object}  dto.PartsUsageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/parts-usage-records [post]
func (h *InventoryHandler) CreateUsage(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.CreatePartsUsageRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.usage.Create(c.Context(), companyID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// BulkCreateUsage godoc
// @Summary      Registrar varios consumos en una sola transacción (todo o nada)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  []dto.CreatePartsUsageRequest  true  "Consumos"
// @Success      201   {array}   dto.PartsUsageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/parts-usage-records/bulk-create-parts-usage [post]
func (h *InventoryHandler) BulkCreateUsage(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in []dto.CreatePartsUsageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "se espera un arreglo de consumos"})
	}
	verr := &domain.ValidationError{}
	for i := range in {
		if err := validateStruct(in[i]); err != nil {
			fieldErr, ok := err.(*domain.ValidationError)
			if !ok {
				return writeError(c, err)
			}
			for k, v := range fieldErr.Fields {
				verr.Add(fmt.Sprintf("[%d].%s", i, k), v)
			}
		}
	}
	if !verr.Empty() {
		return writeError(c, verr)
	}
	out, err := h.usage.CreateBulk(c.Context(), companyID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetUsage godoc
// @Summary      Obtener consumo por ID
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del consumo"
// @Success      200  {object}  dto.PartsUsageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/parts-usage-records/{id} [get]
func (h *InventoryHandler) GetUsage(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.usage.GetByID(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "consumo")
	}
	return c.JSON(out)
}

// ListUsage godoc
// @Summary      Listar consumos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.PartsUsageListResponse
// @Router       /api/parts-usage-records [get]
func (h *InventoryHandler) ListUsage(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	limit, offset := pageParams(c)
	out, err := h.usage.List(c.Context(), companyID, limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateUsage godoc
// @Summary      Editar observaciones de un consumo (PUT o PATCH)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID del consumo"
// @Param        body  body  dto.UpdatePartsUsageRequest  true  "remarks"
// @Success      200   {object}  dto.PartsUsageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/parts-usage-records/{id} [patch]
func (h *InventoryHandler) UpdateUsage(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.UpdatePartsUsageRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.usage.UpdateRemarks(c.Context(), companyID, c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "consumo")
	}
	return c.JSON(out)
}

// DeleteUsage godoc
// @Summary      Eliminar consumo (devuelve la cantidad al stock)
// @Tags         inventory
// @Security     Bearer
// @Param        id   path  string  true  "ID del consumo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/parts-usage-records/{id} [delete]
func (h *InventoryHandler) DeleteUsage(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	if err := h.usage.Delete(c.Context(), companyID, c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// TotalCost godoc
// @Summary      Costo de repuestos consumidos en una línea entre dos fechas (inclusive)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        line       query  string  true  "ID de la línea"
// @Param        startdate  query  string  true  "YYYY-MM-DD"
// @Param        enddate    query  string  true  "YYYY-MM-DD"
// @Success      200  {object}  dto.TotalCostResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/parts-usage-records/total_cost [get]
func (h *InventoryHandler) TotalCost(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.usage.TotalCost(c.Context(), companyID, c.Query("line"), c.Query("startdate"), c.Query("enddate"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
