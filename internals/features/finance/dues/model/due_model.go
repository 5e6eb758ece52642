// file: internals/features/finance/dues/model/due_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ===================== Status Constants ===================== */

const (
	DueStatusUnpaid              = "unpaid"
	DueStatusPartial             = "partial"
	DueStatusPendingVerification = "pending_verification"
	DueStatusPaid                = "paid"
)

// AllDueStatuses: daftar status valid (dipakai validasi DTO & state machine)
var AllDueStatuses = []string{
	DueStatusUnpaid,
	DueStatusPartial,
	DueStatusPendingVerification,
	DueStatusPaid,
}

func IsValidDueStatus(s string) bool {
	for _, v := range AllDueStatuses {
		if s == v {
			return true
		}
	}
	return false
}

/* ===================== Model ===================== */

type DueModel struct {
	// PK
	DueID uuid.UUID `json:"due_id" gorm:"type:uuid;primaryKey;column:due_id"`

	// Subject (anggota). MemberID boleh NULL kalau tagihan dibuat untuk nama
	// yang belum terhubung ke akun; NameSnapshot selalu terisi.
	DueMemberID           *uuid.UUID `json:"due_member_id" gorm:"type:uuid;index;column:due_member_id"`
	DueMemberNameSnapshot string     `json:"due_member_name_snapshot" gorm:"type:text;not null;column:due_member_name_snapshot"`
	DueDivisionSnapshot   string     `json:"due_division_snapshot" gorm:"type:text;column:due_division_snapshot"`

	// Nominal & jatuh tempo
	DueAmountIDR int64     `json:"due_amount_idr" gorm:"type:bigint;not null;column:due_amount_idr;check:due_amount_idr>0"`
	DueDate      time.Time `json:"due_date" gorm:"type:date;not null;index;column:due_date"`

	// Status & invoice
	DueStatus        string `json:"due_status" gorm:"type:varchar(24);not null;default:'unpaid';column:due_status"`
	DueInvoiceNumber string `json:"due_invoice_number" gorm:"type:varchar(20);not null;uniqueIndex:uq_dues_invoice_number;column:due_invoice_number"`

	// Klaim pembayaran (diisi saat anggota submit klaim; TIDAK dihapus saat reject — audit)
	DuePaymentMethod *string `json:"due_payment_method" gorm:"type:varchar(30);column:due_payment_method"`
	DueProofURL      *string `json:"due_proof_url" gorm:"type:text;column:due_proof_url"`

	DueNote *string           `json:"due_note" gorm:"type:text;column:due_note"`
	DueMeta datatypes.JSONMap `json:"due_meta" gorm:"type:jsonb;column:due_meta"`

	// Timestamps (tipe kolom ikut dialect — postgres timestamptz, sqlite datetime di test)
	DueCreatedAt time.Time      `json:"due_created_at" gorm:"not null;autoCreateTime;column:due_created_at"`
	DueUpdatedAt time.Time      `json:"due_updated_at" gorm:"not null;autoUpdateTime;column:due_updated_at"`
	DueDeletedAt gorm.DeletedAt `json:"due_deleted_at" gorm:"index;column:due_deleted_at"`
}

func (DueModel) TableName() string { return "dues" }

/* =========================
   Hooks
   ========================= */

// BeforeCreate: isi UUID kalau DB tidak punya gen_random_uuid (mis. sqlite di test)
func (d *DueModel) BeforeCreate(tx *gorm.DB) error {
	if d.DueID == uuid.Nil {
		d.DueID = uuid.New()
	}
	if d.DueStatus == "" {
		d.DueStatus = DueStatusUnpaid
	}
	return nil
}

// IsPaid: status terminal untuk alur normal
func (d *DueModel) IsPaid() bool { return d.DueStatus == DueStatusPaid }

// MemberKey: kunci grouping per anggota — pakai member_id kalau ada, fallback nama
func (d *DueModel) MemberKey() string {
	if d.DueMemberID != nil {
		return d.DueMemberID.String()
	}
	return d.DueMemberNameSnapshot
}
