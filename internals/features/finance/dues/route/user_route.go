// file: internals/features/finance/dues/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserDuesRoutes: anggota lihat tagihan sendiri + ajukan klaim bayar.
// Approve/reject tetap di route admin — anggota tidak pernah bisa memaksa paid.
func UserDuesRoutes(r fiber.Router, db *gorm.DB) {
	ctl := newDueController(db)

	dues := r.Group("/dues")
	{
		dues.Get("/my", ctl.ListMine)
		dues.Post("/:id/claim", ctl.SubmitClaim)
	}
}
