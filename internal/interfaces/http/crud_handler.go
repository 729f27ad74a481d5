package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// tenantCRUD contrato común de los casos de uso acotados a la empresa del token
// (departamentos, cargos, empleados, pisos, líneas, paradas, repuestos, taxonomías).
type tenantCRUD[C, U, R, L any] interface {
	Create(ctx context.Context, companyID string, in C) (*R, error)
	GetByID(ctx context.Context, companyID, id string) (*R, error)
	List(ctx context.Context, companyID string, limit, offset int) (*L, error)
	Update(ctx context.Context, companyID, id string, in U) (*R, error)
	Delete(ctx context.Context, companyID, id string) error
}

// CRUDHandler handlers REST genéricos para un recurso de la empresa. PUT y PATCH comparten
// Update: los DTO de actualización usan punteros y solo aplican los campos presentes.
type CRUDHandler[C, U, R, L any] struct {
	uc   tenantCRUD[C, U, R, L]
	name string // para mensajes de error ("piso", "línea", ...)
}

// NewCRUDHandler construye el handler genérico.
func NewCRUDHandler[C, U, R, L any](uc tenantCRUD[C, U, R, L], name string) *CRUDHandler[C, U, R, L] {
	return &CRUDHandler[C, U, R, L]{uc: uc, name: name}
}

// Mount registra list/create/retrieve/update/partial-update/delete en g. write protege las mutaciones.
func (h *CRUDHandler[C, U, R, L]) Mount(g fiber.Router, write fiber.Handler) {
	g.Get("/", h.List)
	g.Get("/:id", h.GetByID)
	g.Post("/", write, h.Create)
	g.Put("/:id", write, h.Update)
	g.Patch("/:id", write, h.Update)
	g.Delete("/:id", write, h.Delete)
}

func (h *CRUDHandler[C, U, R, L]) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in C
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.Context(), companyID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *CRUDHandler[C, U, R, L]) GetByID(c *fiber.Ctx) error {
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
		return notFound(c, h.name)
	}
	return c.JSON(out)
}

func (h *CRUDHandler[C, U, R, L]) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Context(), companyID, limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *CRUDHandler[C, U, R, L]) Update(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in U
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.Context(), companyID, id, in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, h.name)
	}
	return c.JSON(out)
}

func (h *CRUDHandler[C, U, R, L]) Delete(c *fiber.Ctx) error {
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

// globalCRUD casos de uso sin empresa (tipos y categorías de problema).
type globalCRUD[C, U, R, L any] interface {
	Create(ctx context.Context, in C) (*R, error)
	GetByID(ctx context.Context, id string) (*R, error)
	List(ctx context.Context, limit, offset int) (*L, error)
	Update(ctx context.Context, id string, in U) (*R, error)
	Delete(ctx context.Context, id string) error
}

// globalAdapter presenta un globalCRUD como tenantCRUD ignorando la empresa.
type globalAdapter[C, U, R, L any] struct {
	uc globalCRUD[C, U, R, L]
}

// Global adapta un caso de uso global para montarlo con CRUDHandler.
func Global[C, U, R, L any](uc globalCRUD[C, U, R, L]) tenantCRUD[C, U, R, L] {
	return globalAdapter[C, U, R, L]{uc: uc}
}

func (a globalAdapter[C, U, R, L]) Create(ctx context.Context, _ string, in C) (*R, error) {
	return a.uc.Create(ctx, in)
}

func (a globalAdapter[C, U, R, L]) GetByID(ctx context.Context, _, id string) (*R, error) {
	return a.uc.GetByID(ctx, id)
}

func (a globalAdapter[C, U, R, L]) List(ctx context.Context, _ string, limit, offset int) (*L, error) {
	return a.uc.List(ctx, limit, offset)
}

func (a globalAdapter[C, U, R, L]) Update(ctx context.Context, _, id string, in U) (*R, error) {
	return a.uc.Update(ctx, id, in)
}

func (a globalAdapter[C, U, R, L]) Delete(ctx context.Context, _, id string) error {
	return a.uc.Delete(ctx, id)
}
