package middleware

import (
	"context"
	"strings"

	"dcn-community/internal/domain"

	"github.com/gofiber/fiber/v2"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	AdminKey            = "admin" // Key for storing the admin in fiber.Ctx locals
)

// Authenticator resolves a session token to an active admin.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.Admin, error)
}

// RequireAdmin rejects requests without a valid admin session. The token is
// read from the session cookie first, then from a Bearer header.
func RequireAdmin(auth Authenticator, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		admin, err := auth.Authenticate(c.UserContext(), sessionToken(c, cookieName))
		if err != nil {
			return err
		}
		c.Locals(AdminKey, admin)
		return c.Next()
	}
}

// RequirePermission must run after RequireAdmin.
func RequirePermission(perm string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		admin := CurrentAdmin(c)
		if admin == nil {
			return domain.NewUnauthorizedError("Silakan login terlebih dahulu")
		}
		if !admin.Can(perm) {
			return domain.NewForbiddenError("Anda tidak memiliki izin untuk aksi ini")
		}
		return c.Next()
	}
}

func RequireSuperAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		admin := CurrentAdmin(c)
		if admin == nil {
			return domain.NewUnauthorizedError("Silakan login terlebih dahulu")
		}
		if admin.Role != domain.RoleSuperAdmin {
			return domain.NewForbiddenError("Anda tidak memiliki izin untuk aksi ini")
		}
		return c.Next()
	}
}

// CurrentAdmin returns the admin stored by RequireAdmin, or nil.
func CurrentAdmin(c *fiber.Ctx) *domain.Admin {
	admin, _ := c.Locals(AdminKey).(*domain.Admin)
	return admin
}

func sessionToken(c *fiber.Ctx, cookieName string) string {
	if cookieName != "" {
		if v := c.Cookies(cookieName); v != "" {
			return v
		}
	}
	header := c.Get(AuthorizationHeader)
	if strings.HasPrefix(header, BearerSchema) {
		return strings.TrimSpace(strings.TrimPrefix(header, BearerSchema))
	}
	return ""
}
