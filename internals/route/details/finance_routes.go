// file: internals/route/details/finance_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	DuesRoute "ormawaku_backend/internals/features/finance/dues/route"
)

func FinanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	DuesRoute.AdminDuesRoutes(r, db)
}

func FinanceUserRoutes(r fiber.Router, db *gorm.DB) {
	DuesRoute.UserDuesRoutes(r, db)
}
