// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ormawaku_backend/internals/constants"
	authMiddleware "ormawaku_backend/internals/middlewares/auth"
	routeDetails "ormawaku_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PRIVATE (ANGGOTA) =====================
	log.Println("[INFO] Setting up PRIVATE (anggota) group...")
	private := app.Group("/api/u",
		authMiddleware.AuthMiddleware(),
	)
	routeDetails.FinanceUserRoutes(private, db)

	// ===================== ADMIN (BPH) =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(
			constants.RoleErrorBPH("keuangan & organisasi"),
			constants.ElevatedRoles...,
		),
	)
	routeDetails.FinanceAdminRoutes(admin, db)
	routeDetails.OrganizationAdminRoutes(admin, db)
}
