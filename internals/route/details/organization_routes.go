// file: internals/route/details/organization_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	DivisionRoute "ormawaku_backend/internals/features/organization/divisions/route"
)

func OrganizationAdminRoutes(r fiber.Router, db *gorm.DB) {
	DivisionRoute.AdminDivisionRoutes(r, db)
}
