package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/magasin-pro/internal/application/dataset"
	"github.com/jhoicas/magasin-pro/internal/application/dto"
	"github.com/jhoicas/magasin-pro/internal/domain"
	"github.com/jhoicas/magasin-pro/pkg/jwt"
)

// Locals keys para la identidad del caller en Fiber.
const (
	LocalUserID    = "user_id"
	LocalStoreID   = "magasin_id"
	LocalRole      = "role"
	LocalSuperuser = "superuser"
)

// AuthMiddleware valida el Bearer Token JWT y deja la identidad del caller
// (user, magasin, rol, superuser) en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalStoreID, claims.StoreID)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalSuperuser, claims.Superuser)
		return c.Next()
	}
}

// RequireRole exige que el caller tenga uno de los roles dados. Los
// superusers pasan siempre.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if IsSuperuser(c) {
			return c.Next()
		}
		role := GetRole(c)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "rol sin permiso para esta operación"})
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetStoreID devuelve el magasin del caller, vacío si no tiene.
func GetStoreID(c *fiber.Ctx) string {
	return localString(c, LocalStoreID)
}

// GetRole devuelve el rol del caller.
func GetRole(c *fiber.Ctx) string {
	return localString(c, LocalRole)
}

// IsSuperuser indica si el caller es superusuario.
func IsSuperuser(c *fiber.Ctx) bool {
	v := c.Locals(LocalSuperuser)
	if v == nil {
		return false
	}
	b, _ := v.(bool)
	return b
}

// ScopeFrom deriva el scope de datos del caller: un superuser ve todos los
// magasins, el resto solo el suyo.
func ScopeFrom(c *fiber.Ctx) domain.Scope {
	if IsSuperuser(c) {
		return domain.ScopeAll()
	}
	return domain.ScopeStore(GetStoreID(c))
}

// CallerFrom arma la identidad que consume la importación de datasets.
func CallerFrom(c *fiber.Ctx) dataset.Caller {
	return dataset.Caller{
		UserID:    GetUserID(c),
		StoreID:   GetStoreID(c),
		Role:      GetRole(c),
		Superuser: IsSuperuser(c),
	}
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
