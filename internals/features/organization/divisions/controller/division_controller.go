// file: internals/features/organization/divisions/controller/division_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "ormawaku_backend/internals/features/organization/divisions/dto"
	model "ormawaku_backend/internals/features/organization/divisions/model"
	helper "ormawaku_backend/internals/helpers"
)

type DivisionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewDivisionController(db *gorm.DB) *DivisionController {
	return &DivisionController{
		DB:        db,
		Validator: validator.New(),
	}
}

func isUniqueErr(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// POST /divisions
func (ctl *DivisionController) Create(c *fiber.Ctx) error {
	var req dto.CreateDivisionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid JSON body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if isUniqueErr(err) {
			return helper.JsonError(c, fiber.StatusConflict, "nama divisi sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "divisi dibuat", dto.FromModelDivision(m))
}

// GET /divisions
func (ctl *DivisionController) List(c *fiber.Ctx) error {
	var ms []model.DivisionModel
	q := ctl.DB.WithContext(c.UserContext()).Order("division_name ASC")
	if c.QueryBool("active_only") {
		q = q.Where("division_is_active = ?", true)
	}
	if err := q.Find(&ms).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.FromModelDivisions(ms))
}

// PATCH /divisions/:id
func (ctl *DivisionController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.DivisionModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "division_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "divisi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var p dto.PatchDivisionRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid JSON body")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if !p.Apply(&m) {
		return helper.JsonOK(c, "no changes", dto.FromModelDivision(m))
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		if isUniqueErr(err) {
			return helper.JsonError(c, fiber.StatusConflict, "nama divisi sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "divisi diperbarui", dto.FromModelDivision(m))
}

// DELETE /divisions/:id  (soft delete)
func (ctl *DivisionController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	res := ctl.DB.WithContext(c.UserContext()).Where("division_id = ?", id).Delete(&model.DivisionModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "divisi tidak ditemukan")
	}
	return helper.JsonDeleted(c, "divisi dihapus", fiber.Map{"division_id": id})
}
