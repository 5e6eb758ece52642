// file: internals/features/finance/dues/dto/due_dto.go
package dto

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "ormawaku_backend/internals/features/finance/dues/model"
)

const DueDateLayout = "2006-01-02"

/* =========================================================
   REQUEST: Create (tagihan tunggal)
   ========================================================= */

type CreateDueRequest struct {
	DueMemberID   *uuid.UUID `json:"due_member_id"` // optional (minimal salah satu: member_id atau member_name)
	DueMemberName *string    `json:"due_member_name"`

	DueAmountIDR int64  `json:"due_amount_idr" validate:"required,min=1"`
	DueDate      string `json:"due_date" validate:"required,datetime=2006-01-02"`

	DueStatus *string `json:"due_status" validate:"omitempty,oneof=unpaid partial"`
	DueNote   *string `json:"due_note"`

	DueMeta map[string]any `json:"due_meta"`
}

func (r *CreateDueRequest) Validate() error {
	// Minimal salah satu identitas harus ada: member_id atau member_name
	if r.DueMemberID == nil && (r.DueMemberName == nil || *r.DueMemberName == "") {
		return errors.New("either due_member_id or due_member_name must be provided")
	}
	return nil
}

func (r CreateDueRequest) ParsedDueDate() (time.Time, error) {
	return time.Parse(DueDateLayout, r.DueDate)
}

func (r CreateDueRequest) ToModel(dueDate time.Time) model.DueModel {
	status := model.DueStatusUnpaid
	if r.DueStatus != nil && *r.DueStatus != "" {
		status = *r.DueStatus
	}

	name := ""
	if r.DueMemberName != nil {
		name = *r.DueMemberName
	}

	var meta datatypes.JSONMap
	if r.DueMeta != nil {
		meta = datatypes.JSONMap(r.DueMeta)
	}

	return model.DueModel{
		DueMemberID:           r.DueMemberID,
		DueMemberNameSnapshot: name,
		DueAmountIDR:          r.DueAmountIDR,
		DueDate:               dueDate,
		DueStatus:             status,
		DueNote:               r.DueNote,
		DueMeta:               meta,
	}
}

/* =========================================================
   REQUEST: Patch / Update (partial, khusus BPH)
   - Status TIDAK lewat sini; status hanya lewat state machine.
   ========================================================= */

type PatchDueRequest struct {
	DueAmountIDR *int64  `json:"due_amount_idr" validate:"omitempty,min=1"`
	DueDate      *string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	DueNote      *string `json:"due_note"`
}

func (p PatchDueRequest) Apply(m *model.DueModel) (changed bool, err error) {
	if p.DueAmountIDR != nil && *p.DueAmountIDR != m.DueAmountIDR {
		if *p.DueAmountIDR <= 0 {
			return false, errors.New("due_amount_idr must be > 0")
		}
		m.DueAmountIDR = *p.DueAmountIDR
		changed = true
	}
	if p.DueDate != nil {
		d, perr := time.Parse(DueDateLayout, *p.DueDate)
		if perr != nil {
			return false, perr
		}
		if !d.Equal(m.DueDate) {
			m.DueDate = d
			changed = true
		}
	}
	if p.DueNote != nil {
		m.DueNote = p.DueNote
		changed = true
	}
	return changed, nil
}

/* =========================================================
   REQUEST: Transisi status & klaim bayar
   ========================================================= */

// TransitionDueRequest: entry point state machine (BPH: approve/reject/settle/edit status)
type TransitionDueRequest struct {
	DueTargetStatus string `json:"due_target_status" validate:"required,oneof=unpaid partial pending_verification paid"`
}

// SubmitClaimRequest: anggota mengajukan klaim bayar (bukti opsional, URL opaque)
type SubmitClaimRequest struct {
	DuePaymentMethod *string `json:"due_payment_method" validate:"omitempty,max=30"`
	DueProofURL      *string `json:"due_proof_url"`
}

/* =========================================================
   RESPONSE
   ========================================================= */

type DueResponse struct {
	DueID uuid.UUID `json:"due_id"`

	DueMemberID           *uuid.UUID `json:"due_member_id,omitempty"`
	DueMemberNameSnapshot string     `json:"due_member_name_snapshot"`
	DueDivisionSnapshot   string     `json:"due_division_snapshot,omitempty"`

	DueAmountIDR int64  `json:"due_amount_idr"`
	DueDate      string `json:"due_date"`

	DueStatus        string `json:"due_status"`
	DueInvoiceNumber string `json:"due_invoice_number"`

	DuePaymentMethod *string `json:"due_payment_method,omitempty"`
	DueProofURL      *string `json:"due_proof_url,omitempty"`
	DueNote          *string `json:"due_note,omitempty"`

	DueCreatedAt time.Time `json:"due_created_at"`
	DueUpdatedAt time.Time `json:"due_updated_at"`
}

func FromModelDue(m model.DueModel) DueResponse {
	return DueResponse{
		DueID:                 m.DueID,
		DueMemberID:           m.DueMemberID,
		DueMemberNameSnapshot: m.DueMemberNameSnapshot,
		DueDivisionSnapshot:   m.DueDivisionSnapshot,
		DueAmountIDR:          m.DueAmountIDR,
		DueDate:               m.DueDate.Format(DueDateLayout),
		DueStatus:             m.DueStatus,
		DueInvoiceNumber:      m.DueInvoiceNumber,
		DuePaymentMethod:      m.DuePaymentMethod,
		DueProofURL:           m.DueProofURL,
		DueNote:               m.DueNote,
		DueCreatedAt:          m.DueCreatedAt,
		DueUpdatedAt:          m.DueUpdatedAt,
	}
}

func FromModelDues(ms []model.DueModel) []DueResponse {
	out := make([]DueResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModelDue(m))
	}
	return out
}
