package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/factory-ops-api/internal/application/analytics"
	"github.com/jhoicas/factory-ops-api/internal/application/dto"
)

// AnalyticsHandler reportes de tiempo perdido y monitoreo por máquina (solo lectura).
type AnalyticsHandler struct {
	uc *analytics.ReportUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *analytics.ReportUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// lostTimeQuery filtros del reporte: listas separadas por coma.
type lostTimeQuery struct {
	Floor string `query:"floor"`
	Line  string `query:"line"`
	Date  string `query:"date"`
}

func (q lostTimeQuery) toQuery() analytics.LostTimeQuery {
	return analytics.LostTimeQuery{Floor: q.Floor, Line: q.Line, Date: q.Date}
}

// LostTime godoc
// @Summary      Tiempo perdido por paradas agregado por máquina, tipo, problema, línea, día y mecánico
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        floor  query  string  false  "IDs de piso separados por coma"
// @Param        line   query  string  false  "IDs de línea separados por coma"
// @Param        date   query  string  false  "Fechas YYYY-MM-DD separadas por coma"
// @Success      200  {object}  dto.LostTimeReport
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/total-lost-time-per-location [get]
func (h *AnalyticsHandler) LostTime(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var q lostTimeQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	report, err := h.uc.LostTimeReport(c.Context(), companyID, q.toQuery())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(report)
}

// ExportLostTime godoc
// @Summary      Descargar el reporte de tiempo perdido en PDF o XLSX
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        format  path   string  true   "pdf | xlsx"
// @Param        floor   query  string  false  "IDs de piso separados por coma"
// @Param        line    query  string  false  "IDs de línea separados por coma"
// @Param        date    query  string  false  "Fechas YYYY-MM-DD separadas por coma"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/total-lost-time-per-location/export.{format} [get]
func (h *AnalyticsHandler) ExportLostTime(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var q lostTimeQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	file, err := h.uc.ExportLostTime(c.Context(), companyID, q.toQuery(), c.Params("format"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+file.Name+`"`)
	return c.Send(file.Data)
}

// MachineMonitoring godoc
// @Summary      Foto de los últimos 7 días de una máquina
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        machine_id  query  string  true  "Código de la máquina"
// @Success      200  {object}  dto.MachineMonitoring
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/machines-monitoring [get]
func (h *AnalyticsHandler) MachineMonitoring(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.uc.MachineMonitoring(c.Context(), companyID, c.Query("machine_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
