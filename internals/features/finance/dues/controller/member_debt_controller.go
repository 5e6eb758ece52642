// file: internals/features/finance/dues/controller/member_debt_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	service "ormawaku_backend/internals/features/finance/dues/service"
	helper "ormawaku_backend/internals/helpers"
)

// GET /dues/grouped-by-member?search=&pending_only=
// Rekap tunggakan per anggota; grup ber-pending naik duluan (lihat aggregator).
func (ctl *DueController) ListGroupedByMember(c *fiber.Ctx) error {
	f := service.AggregateFilter{
		Search:      c.Query("search"),
		PendingOnly: c.QueryBool("pending_only"),
	}

	groups, err := ctl.Service.ListGroupedByMember(c.UserContext(), f)
	if err != nil {
		return mapServiceError(c, err)
	}
	return helper.JsonOK(c, "ok", groups)
}
