package http

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/factory-ops-api/internal/application/dto"
	"github.com/jhoicas/factory-ops-api/internal/domain"
)

// validate instancia compartida; los errores se reportan con el nombre json del campo.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct aplica las etiquetas validate: de in. Devuelve *domain.ValidationError o nil.
func validateStruct(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	verr := &domain.ValidationError{}
	for _, fe := range fieldErrs {
		verr.Add(fieldPath(fe), ruleMessage(fe))
	}
	return verr
}

// fieldPath quita el nombre del struct raíz: "CreateMachineRequest.machine_id" -> "machine_id".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es requerido"
	case "email":
		return "email inválido"
	case "uuid":
		return "debe ser un UUID"
	case "oneof":
		return "valor permitido: " + fe.Param()
	case "min":
		return "mínimo " + fe.Param()
	case "max":
		return "máximo " + fe.Param()
	case "gt":
		return "debe ser mayor que " + fe.Param()
	case "url":
		return "URL inválida"
	}
	return "no cumple la regla " + fe.Tag()
}

// parseBody decodifica el JSON en in y lo valida. Si falla ya escribió la respuesta 400 y
// devuelve ok=false; el handler debe retornar el error que acompaña.
func parseBody(c *fiber.Ctx, in any) (bool, error) {
	if err := c.BodyParser(in); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido: " + err.Error()})
	}
	if err := validateStruct(in); err != nil {
		return false, writeError(c, err)
	}
	return true, nil
}
