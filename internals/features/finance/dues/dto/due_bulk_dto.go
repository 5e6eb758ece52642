// file: internals/features/finance/dues/dto/due_bulk_dto.go
package dto

import (
	"github.com/google/uuid"
)

/* =========================================================
   Bulk issuance (satu batch, terms sama, invoice beda-beda)
   ========================================================= */

type BulkIssueRequest struct {
	MemberIDs []uuid.UUID `json:"member_ids"`

	DueAmountIDR int64   `json:"due_amount_idr" validate:"required,min=1"`
	DueDate      string  `json:"due_date" validate:"required,datetime=2006-01-02"`
	DueNote      *string `json:"due_note"`
	DueStatus    *string `json:"due_status" validate:"omitempty,oneof=unpaid partial"`
}

/* =========================================================
   Bulk retirement (hapus per kelompok tanggal jatuh tempo)
   ========================================================= */

type DeleteGroupRequest struct {
	Date string      `json:"date" validate:"required,datetime=2006-01-02"`
	IDs  []uuid.UUID `json:"ids" validate:"required,min=1"`

	// Gate konfirmasi di boundary pemanggil — operasi ini TIDAK punya undo.
	Confirm bool `json:"confirm" validate:"required,eq=true"`
}

/* =========================================================
   Hasil bulk (sukses parsial dilaporkan, tidak di-rollback)
   ========================================================= */

type BulkItemFailure struct {
	Ref    string `json:"ref"` // member_id / due_id yang gagal
	Reason string `json:"reason"`
}

type BulkResult struct {
	Created  int               `json:"created,omitempty"`
	Deleted  int               `json:"deleted,omitempty"`
	Failures []BulkItemFailure `json:"failures,omitempty"`
	Dues     []DueResponse     `json:"dues,omitempty"`
}

/* =========================================================
   Grouping response
   ========================================================= */

// MemberDebtGroup: agregat tunggakan per anggota (derived, tidak dipersist)
type MemberDebtGroup struct {
	MemberID    *uuid.UUID    `json:"member_id,omitempty"`
	MemberName  string        `json:"member_name"`
	Division    string        `json:"division,omitempty"`
	TotalIDR    int64         `json:"total_idr"`
	Count       int           `json:"count"`
	HasPending  bool          `json:"has_pending"`
	OldestDueID *uuid.UUID    `json:"oldest_due_id,omitempty"`
	Dues        []DueResponse `json:"dues"`
}

// DeletableDateGroup: kandidat bulk delete per tanggal jatuh tempo (paid tidak pernah ikut)
type DeletableDateGroup struct {
	Date  string      `json:"date"`
	Count int         `json:"count"`
	IDs   []uuid.UUID `json:"ids"`
}
