package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/factory-ops-api/internal/application/dto"
	"github.com/jhoicas/factory-ops-api/internal/application/usecase"
)

// UserHandler usuarios de la empresa, grupos (solo lectura) y suscripciones push del usuario.
type UserHandler struct {
	users   *usecase.UserUseCase
	devices *usecase.DeviceTokenUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(users *usecase.UserUseCase, devices *usecase.DeviceTokenUseCase) *UserHandler {
	return &UserHandler{users: users, devices: devices}
}

// ListUsers godoc
// @Summary      Listar usuarios de la empresa
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.UserListResponse
// @Router       /api/users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	limit, offset := pageParams(c)
	out, err := h.users.List(c.Context(), companyID, limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetUser godoc
// @Summary      Obtener usuario por ID
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.users.GetByID(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "usuario")
	}
	return c.JSON(out)
}

// ListGroups godoc
// @Summary      Listar grupos
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.GroupListResponse
// @Router       /api/groups [get]
func (h *UserHandler) ListGroups(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.users.ListGroups(c.Context(), limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetGroup godoc
// @Summary      Obtener grupo por ID
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del grupo"
// @Success      200  {object}  dto.GroupResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/groups/{id} [get]
func (h *UserHandler) GetGroup(c *fiber.Ctx) error {
	out, err := h.users.GetGroup(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "grupo")
	}
	return c.JSON(out)
}

// CreateDeviceToken godoc
// @Summary      Registrar suscripción push del usuario
// @Tags         device-tokens
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDeviceTokenRequest  true  "Endpoint y llaves webpush"
// @Success      201   {object}  dto.DeviceTokenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/device-tokens [post]
func (h *UserHandler) CreateDeviceToken(c *fiber.Ctx) error {
	var in dto.CreateDeviceTokenRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.devices.Create(c.Context(), GetUserID(c), GetCompanyID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListDeviceTokens godoc
// @Summary      Listar suscripciones push del usuario
// @Tags         device-tokens
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DeviceTokenListResponse
// @Router       /api/device-tokens [get]
func (h *UserHandler) ListDeviceTokens(c *fiber.Ctx) error {
	out, err := h.devices.List(c.Context(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetDeviceToken godoc
// @Summary      Obtener suscripción push
// @Tags         device-tokens
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la suscripción"
// @Success      200  {object}  dto.DeviceTokenResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/device-tokens/{id} [get]
func (h *UserHandler) GetDeviceToken(c *fiber.Ctx) error {
	out, err := h.devices.GetByID(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "suscripción")
	}
	return c.JSON(out)
}

// DeleteDeviceToken godoc
// @Summary      Eliminar suscripción push
// @Tags         device-tokens
// @Security     Bearer
// @Param        id   path  string  true  "ID de la suscripción"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/device-tokens/{id} [delete]
func (h *UserHandler) DeleteDeviceToken(c *fiber.Ctx) error {
	if err := h.devices.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
