// file: internals/features/organization/divisions/dto/division_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "ormawaku_backend/internals/features/organization/divisions/model"
)

/* ===================== REQUEST ===================== */

type CreateDivisionRequest struct {
	DivisionName string  `json:"division_name" validate:"required,min=2,max=80"`
	DivisionDesc *string `json:"division_desc"`
}

func (r CreateDivisionRequest) ToModel() model.DivisionModel {
	return model.DivisionModel{
		DivisionName:     r.DivisionName,
		DivisionDesc:     r.DivisionDesc,
		DivisionIsActive: true,
	}
}

type PatchDivisionRequest struct {
	DivisionName     *string `json:"division_name" validate:"omitempty,min=2,max=80"`
	DivisionDesc     *string `json:"division_desc"`
	DivisionIsActive *bool   `json:"division_is_active"`
}

func (p PatchDivisionRequest) Apply(m *model.DivisionModel) (changed bool) {
	if p.DivisionName != nil && *p.DivisionName != m.DivisionName {
		m.DivisionName = *p.DivisionName
		changed = true
	}
	if p.DivisionDesc != nil {
		m.DivisionDesc = p.DivisionDesc
		changed = true
	}
	if p.DivisionIsActive != nil && *p.DivisionIsActive != m.DivisionIsActive {
		m.DivisionIsActive = *p.DivisionIsActive
		changed = true
	}
	return changed
}

/* ===================== RESPONSE ===================== */

type DivisionResponse struct {
	DivisionID       uuid.UUID `json:"division_id"`
	DivisionName     string    `json:"division_name"`
	DivisionDesc     *string   `json:"division_desc,omitempty"`
	DivisionIsActive bool      `json:"division_is_active"`
	DivisionCreated  time.Time `json:"division_created_at"`
	DivisionUpdated  time.Time `json:"division_updated_at"`
}

func FromModelDivision(m model.DivisionModel) DivisionResponse {
	return DivisionResponse{
		DivisionID:       m.DivisionID,
		DivisionName:     m.DivisionName,
		DivisionDesc:     m.DivisionDesc,
		DivisionIsActive: m.DivisionIsActive,
		DivisionCreated:  m.DivisionCreatedAt,
		DivisionUpdated:  m.DivisionUpdatedAt,
	}
}

func FromModelDivisions(ms []model.DivisionModel) []DivisionResponse {
	out := make([]DivisionResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModelDivision(m))
	}
	return out
}
