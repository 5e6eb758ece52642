// file: internals/features/finance/dues/controller/due_bulk_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	dto "ormawaku_backend/internals/features/finance/dues/dto"
	model "ormawaku_backend/internals/features/finance/dues/model"
	service "ormawaku_backend/internals/features/finance/dues/service"
	helper "ormawaku_backend/internals/helpers"
)

/* ========================================================
   Bulk issuance & bulk retirement
======================================================== */

// POST /dues/bulk  (terbitkan tagihan massal, terms sama, invoice per anggota)
func (ctl *DueController) IssueBulk(c *fiber.Ctx) error {
	var req dto.BulkIssueRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid JSON body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	dueDate, err := time.Parse(dto.DueDateLayout, req.DueDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid due_date")
	}

	status := model.DueStatusUnpaid
	if req.DueStatus != nil && *req.DueStatus != "" {
		status = *req.DueStatus
	}

	result, err := ctl.Service.IssueBulk(c.UserContext(), req.MemberIDs, service.IssueTerms{
		AmountIDR: req.DueAmountIDR,
		DueDate:   dueDate,
		Note:      req.DueNote,
		Status:    status,
	})
	if err != nil {
		return mapServiceError(c, err)
	}

	// Sukses parsial tetap 201: pemanggil yang memutuskan retry subset yang gagal.
	return helper.JsonCreated(c, "bulk issuance selesai", result)
}

// GET /dues/deletable-groups  (kandidat hapus massal per tanggal, paid tak pernah ikut)
func (ctl *DueController) ListDeletableGroups(c *fiber.Ctx) error {
	groups, err := ctl.Service.GroupDeletableByDate(c.UserContext())
	if err != nil {
		return mapServiceError(c, err)
	}
	return helper.JsonOK(c, "ok", groups)
}

// POST /dues/deletable-groups/delete  (IRREVERSIBLE — wajib confirm=true dari pemanggil)
func (ctl *DueController) DeleteGroup(c *fiber.Ctx) error {
	var req dto.DeleteGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid JSON body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	date, err := time.Parse(dto.DueDateLayout, req.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid date")
	}

	result, err := ctl.Service.DeleteGroup(c.UserContext(), date, req.IDs)
	if err != nil {
		return mapServiceError(c, err)
	}
	return helper.JsonOK(c, "bulk delete selesai", result)
}
