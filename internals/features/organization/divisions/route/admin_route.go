// file: internals/features/organization/divisions/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	divisionController "ormawaku_backend/internals/features/organization/divisions/controller"
)

func AdminDivisionRoutes(r fiber.Router, db *gorm.DB) {
	ctl := divisionController.NewDivisionController(db)

	divisions := r.Group("/divisions")
	{
		divisions.Post("/", ctl.Create)
		divisions.Get("/", ctl.List)
		divisions.Patch("/:id", ctl.Patch)
		divisions.Delete("/:id", ctl.Delete)
	}
}
