// file: internals/features/finance/dues/controller/due_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	dto "ormawaku_backend/internals/features/finance/dues/dto"
	service "ormawaku_backend/internals/features/finance/dues/service"
	helper "ormawaku_backend/internals/helpers"
)

/* ========================================================
   Controller
======================================================== */

type DueController struct {
	Service   *service.DuesService
	Validator *validator.Validate
}

func NewDueController(svc *service.DuesService) *DueController {
	return &DueController{
		Service:   svc,
		Validator: validator.New(),
	}
}

/* ========================================================
   Helpers
======================================================== */

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	val := c.Params(name)
	id, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, helper.JsonError(c, fiber.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// mapServiceError: sentinel service → HTTP status
func mapServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrPermissionDenied):
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrConflict), errors.Is(err, service.ErrDuplicateInvoice):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrEmptySelection),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidAmount):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}

/* ========================================================
   Handlers (single record)
======================================================== */

// POST /dues
func (ctl *DueController) Create(c *fiber.Ctx) error {
	var req dto.CreateDueRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid JSON body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	dueDate, err := req.ParsedDueDate()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid due_date")
	}

	created, err := ctl.Service.CreateDue(c.UserContext(), req.ToModel(dueDate))
	if err != nil {
		return mapServiceError(c, err)
	}
	return helper.JsonCreated(c, "tagihan dibuat", dto.FromModelDue(created))
}

// GET /dues/:id
func (ctl *DueController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	m, err := ctl.Service.GetDue(c.UserContext(), id)
	if err != nil {
		return mapServiceError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModelDue(m))
}

// PATCH /dues/:id  (direct edit amount/date/note — khusus BPH, status tidak lewat sini)
func (ctl *DueController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	m, err := ctl.Service.GetDue(c.UserContext(), id)
	if err != nil {
		return mapServiceError(c, err)
	}

	var p dto.PatchDueRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid JSON body")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	changed, err := p.Apply(&m)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if !changed {
		// tidak ada perubahan — tetap kembalikan state saat ini
		return helper.JsonOK(c, "no changes", dto.FromModelDue(m))
	}

	if err := ctl.Service.SaveEdited(c.UserContext(), &m); err != nil {
		return mapServiceError(c, err)
	}
	return helper.JsonUpdated(c, "tagihan diperbarui", dto.FromModelDue(m))
}

// DELETE /dues/:id  (soft delete; tagihan paid tidak bisa dihapus)
func (ctl *DueController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := ctl.Service.DeleteDue(c.UserContext(), id); err != nil {
		if errors.Is(err, service.ErrConflict) {
			return helper.JsonError(c, fiber.StatusConflict, "tagihan paid tidak bisa dihapus")
		}
		return mapServiceError(c, err)
	}
	return helper.JsonDeleted(c, "tagihan dihapus", fiber.Map{"due_id": id})
}

// GET /dues/my  (anggota: tagihan milik sendiri, tertua dulu)
func (ctl *DueController) ListMine(c *fiber.Ctx) error {
	memberIDStr, _ := c.Locals("member_id").(string)
	memberID, err := uuid.Parse(memberIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing member identity in token")
	}

	dues, err := ctl.Service.ListMemberDues(c.UserContext(), memberID)
	if err != nil {
		return mapServiceError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModelDues(dues))
}
