package auth

import (
	"github.com/gofiber/fiber/v2"

	"sekolahku_backend/internals/constants"
)

// OnlyRolesSlice membatasi akses berdasarkan daftar role dari klaim token.
func OnlyRolesSlice(errMessage string, allowed []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(string)
		if !ok || role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Missing role claim")
		}
		for _, r := range allowed {
			if role == r {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, errMessage)
	}
}

// OnlyAdmin shortcut untuk endpoint khusus admin.
func OnlyAdmin(feature string) fiber.Handler {
	return OnlyRolesSlice(constants.RoleErrorAdmin(feature), constants.AdminOnly)
}

// OnlyStaff shortcut untuk teacher + admin.
func OnlyStaff(feature string) fiber.Handler {
	return OnlyRolesSlice(constants.RoleErrorStaff(feature), constants.StaffRoles)
}
