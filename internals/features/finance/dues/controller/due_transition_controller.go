// file: internals/features/finance/dues/controller/due_transition_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	dto "ormawaku_backend/internals/features/finance/dues/dto"
	model "ormawaku_backend/internals/features/finance/dues/model"
	service "ormawaku_backend/internals/features/finance/dues/service"
	helper "ormawaku_backend/internals/helpers"
)

/* ========================================================
   Transisi status — semua perubahan due_status lewat sini
======================================================== */

// POST /dues/:id/transition  (BPH: approve/reject/settle/koreksi status)
func (ctl *DueController) Transition(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.TransitionDueRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid JSON body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	role, _ := c.Locals("userRole").(string)

	after, err := ctl.Service.Transition(c.UserContext(), id, req.DueTargetStatus, role, nil)
	if err != nil {
		return mapServiceError(c, err)
	}
	return helper.JsonUpdated(c, "status tagihan diperbarui", dto.FromModelDue(after))
}

// POST /dues/:id/claim  (anggota: ajukan klaim bayar, bukti opsional)
func (ctl *DueController) SubmitClaim(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.SubmitClaimRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid JSON body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	role, _ := c.Locals("userRole").(string)
	claim := &service.ClaimUpdate{
		PaymentMethod: req.DuePaymentMethod,
		ProofURL:      req.DueProofURL,
	}

	after, err := ctl.Service.Transition(c.UserContext(), id, model.DueStatusPendingVerification, role, claim)
	if err != nil {
		return mapServiceError(c, err)
	}
	return helper.JsonUpdated(c, "klaim pembayaran diajukan, menunggu verifikasi", dto.FromModelDue(after))
}
