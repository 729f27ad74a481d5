package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/factory-ops-api/internal/application/dto"
	"github.com/jhoicas/factory-ops-api/internal/application/usecase"
	"github.com/jhoicas/factory-ops-api/internal/domain"
	"github.com/jhoicas/factory-ops-api/internal/domain/repository"
)

// MachineHandler maneja las peticiones HTTP para Machine (protegido).
type MachineHandler struct {
	uc *usecase.MachineUseCase
}

// NewMachineHandler construye el handler.
func NewMachineHandler(uc *usecase.MachineUseCase) *MachineHandler {
	return &MachineHandler{uc: uc}
}

// machineQuery filtros del listado tal como llegan en la URL.
type machineQuery struct {
	MachineID    string `query:"machine_id"`
	Category     string `query:"category"`
	Type         string `query:"type"`
	Brand        string `query:"brand"`
	ModelNumber  string `query:"model_number"`
	SerialNo     string `query:"serial_no"`
	Floor        string `query:"floor"`
	Line         string `query:"line"`
	Supplier     string `query:"supplier"`
	PurchaseDate string `query:"purchase_date"`
	Status       string `query:"status"`
	Search       string `query:"search"`
	Ordering     string `query:"ordering"`
	Limit        int    `query:"limit"`
	Offset       int    `query:"offset"`
}

// Create godoc
// @Summary      Crear máquina
// @Tags         machines
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMachineRequest  true  "Datos de la máquina"
// @Success      201   {object}  dto.MachineResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/machines [post]
func (h *MachineHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.CreateMachineRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.Context(), companyID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener máquina por ID
// @Tags         machines
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la máquina"
// @Success      200  {object}  dto.MachineResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/machines/{id} [get]
func (h *MachineHandler) GetByID(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	out, err := h.uc.GetByID(c.Context(), companyID, id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "máquina")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar máquinas con filtros, búsqueda y orden
// @Tags         machines
// @Security     Bearer
// @Produce      json
// @Param        machine_id     query  string  false  "Contiene (sin mayúsculas)"
// @Param        category       query  string  false  "Nombre de categoría (contiene)"
// @Param        type           query  string  false  "Nombre de tipo (contiene)"
// @Param        brand          query  string  false  "Nombre de marca (contiene)"
// @Param        model_number   query  string  false  "Contiene"
// @Param        serial_no      query  string  false  "Contiene"
// @Param        floor          query  string  false  "Nombre de piso (contiene)"
// @Param        line           query  string  false  "Nombre de línea (contiene)"
// @Param        supplier       query  string  false  "Nombre de proveedor (contiene)"
// @Param        purchase_date  query  string  false  "Exacta (YYYY-MM-DD)"
// @Param        status         query  string  false  "active|inactive|maintenance|broken"
// @Param        search         query  string  false  "Búsqueda libre"
// @Param        ordering       query  string  false  "machine_id|purchase_date|status|sequence|last_breakdown_start, prefijo - descendente"
// @Param        limit          query  int     false  "Tamaño de página" default(10)
// @Param        offset         query  int     false  "Offset" default(0)
// @Success      200  {object}  dto.MachineListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/machines [get]
func (h *MachineHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var q machineQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	f := repository.MachineFilter{
		CompanyID:   companyID,
		MachineID:   q.MachineID,
		Category:    q.Category,
		Type:        q.Type,
		Brand:       q.Brand,
		ModelNumber: q.ModelNumber,
		SerialNo:    q.SerialNo,
		Floor:       q.Floor,
		Line:        q.Line,
		Supplier:    q.Supplier,
		Status:      q.Status,
		Search:      q.Search,
		Ordering:    q.Ordering,
		Limit:       q.Limit,
		Offset:      q.Offset,
	}
	if q.PurchaseDate != "" {
		d, err := time.Parse(dto.DateLayout, q.PurchaseDate)
		if err != nil {
			return writeError(c, domain.NewValidationError("purchase_date", "formato esperado YYYY-MM-DD"))
		}
		f.PurchaseDate = &d
	}
	out, err := h.uc.List(c.Context(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar máquina (PUT o PATCH); un cambio de estado notifica a los mecánicos
// @Tags         machines
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la máquina"
// @Param        body  body  dto.UpdateMachineRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.MachineResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/machines/{id} [put]
func (h *MachineHandler) Update(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.UpdateMachineRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.Context(), companyID, id, in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "máquina")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar máquina
// @Tags         machines
// @Security     Bearer
// @Param        id   path  string  true  "ID de la máquina"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/machines/{id} [delete]
func (h *MachineHandler) Delete(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.Delete(c.Context(), companyID, id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
