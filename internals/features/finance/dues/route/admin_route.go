// file: internals/features/finance/dues/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	duesController "ormawaku_backend/internals/features/finance/dues/controller"
	duesService "ormawaku_backend/internals/features/finance/dues/service"
	ledgerService "ormawaku_backend/internals/features/finance/ledger/service"
	memberService "ormawaku_backend/internals/features/organization/members/service"
	"ormawaku_backend/internals/middlewares"
)

func newDueController(db *gorm.DB) *duesController.DueController {
	svc := duesService.NewDuesService(
		db,
		memberService.NewMemberResolverDB(db),
		ledgerService.NewLedgerRecorder(db),
	)
	return duesController.NewDueController(svc)
}

// AdminDuesRoutes: semua operasi BPH (role gate dipasang di group /api/a)
func AdminDuesRoutes(r fiber.Router, db *gorm.DB) {
	ctl := newDueController(db)

	dues := r.Group("/dues")
	{
		dues.Post("/", ctl.Create)
		dues.Post("/bulk", ctl.IssueBulk)

		dues.Get("/grouped-by-member", ctl.ListGroupedByMember)
		dues.Get("/deletable-groups", ctl.ListDeletableGroups)
		dues.Post("/deletable-groups/delete", middlewares.BulkMutationRateLimiter(), ctl.DeleteGroup)

		dues.Get("/:id", ctl.GetByID)
		dues.Patch("/:id", ctl.Patch)
		dues.Delete("/:id", ctl.Delete)

		dues.Post("/:id/transition", ctl.Transition)
	}
}
