package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/factory-ops-api/internal/application/dto"
	"github.com/jhoicas/factory-ops-api/internal/domain/permission"
	"github.com/jhoicas/factory-ops-api/pkg/jwt"
)

// Locals keys para los claims del token en Fiber.
const (
	LocalUserID      = "user_id"
	LocalCompanyID   = "company_id"
	LocalRole        = "role"
	LocalTokenID     = "token_id"
	LocalTokenExpiry = "token_expiry"
)

// RevocationChecker consulta la lista de tokens invalidados por logout.
type RevocationChecker interface {
	IsRevoked(tokenID string) bool
}

// AuthMiddleware valida el Bearer Token JWT, rechaza tokens revocados y carga los claims en c.Locals.
// revoker puede ser nil (sin logout).
func AuthMiddleware(jwtSecret string, revoker RevocationChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.ParseClaims(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		if revoker != nil && revoker.IsRevoked(claims.TokenID()) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token revocado"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalCompanyID, claims.CompanyID)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalTokenID, claims.TokenID())
		c.Locals(LocalTokenExpiry, claims.ExpiresAtTime())
		return c.Next()
	}
}

// RequireRole permite el paso solo a los roles listados (superuser siempre pasa).
// Debe usarse DESPUÉS de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := permission.Normalize(GetRole(c))
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"})
		}
		if role == permission.RoleSuperuser {
			return c.Next()
		}
		for _, r := range roles {
			if permission.Normalize(r) == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para esta operación"})
	}
}

// RequireCapability autoriza según permission.Allowed(rol, action). Debe usarse DESPUÉS de AuthMiddleware.
func RequireCapability(action permission.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"})
		}
		if !permission.Allowed(role, action) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para " + string(action)})
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string { return localString(c, LocalUserID) }

// GetCompanyID devuelve el CompanyID del contexto (después del middleware de auth).
func GetCompanyID(c *fiber.Ctx) string { return localString(c, LocalCompanyID) }

// GetRole devuelve el rol del token.
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }

// GetTokenID devuelve el jti del token.
func GetTokenID(c *fiber.Ctx) string { return localString(c, LocalTokenID) }

// GetTokenExpiry devuelve la expiración del token o el instante cero.
func GetTokenExpiry(c *fiber.Ctx) time.Time {
	t, _ := c.Locals(LocalTokenExpiry).(time.Time)
	return t
}

func localString(c *fiber.Ctx, key string) string {
	s, _ := c.Locals(key).(string)
	return s
}
