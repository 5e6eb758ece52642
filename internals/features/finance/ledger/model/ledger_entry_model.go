// file: internals/features/finance/ledger/model/ledger_entry_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	LedgerEntryTypeIncome = "income"

	LedgerEntrySourceDues = "dues"
)

// LedgerEntryModel: catatan pemasukan yang didorong subsistem lain ke buku kas.
// Buku kas umum (pemasukan/pengeluaran organisasi) hidup di subsistem terpisah;
// di sini hanya record push read-only hasil rekonsiliasi iuran.
type LedgerEntryModel struct {
	LedgerEntryID uuid.UUID `json:"ledger_entry_id" gorm:"type:uuid;primaryKey;column:ledger_entry_id"`

	LedgerEntryType   string `json:"ledger_entry_type" gorm:"type:varchar(20);not null;column:ledger_entry_type"`
	LedgerEntrySource string `json:"ledger_entry_source" gorm:"type:varchar(30);not null;index;column:ledger_entry_source"`

	// Referensi & snapshot dari tagihan yang lunas
	LedgerEntryInvoiceNumber string `json:"ledger_entry_invoice_number" gorm:"type:varchar(20);not null;column:ledger_entry_invoice_number"`
	LedgerEntryMemberName    string `json:"ledger_entry_member_name" gorm:"type:text;not null;column:ledger_entry_member_name"`
	LedgerEntryAmountIDR     int64  `json:"ledger_entry_amount_idr" gorm:"type:bigint;not null;column:ledger_entry_amount_idr"`

	LedgerEntryOccurredAt time.Time `json:"ledger_entry_occurred_at" gorm:"not null;column:ledger_entry_occurred_at"`

	LedgerEntryCreatedAt time.Time      `json:"ledger_entry_created_at" gorm:"not null;autoCreateTime;column:ledger_entry_created_at"`
	LedgerEntryDeletedAt gorm.DeletedAt `json:"ledger_entry_deleted_at" gorm:"index;column:ledger_entry_deleted_at"`
}

func (LedgerEntryModel) TableName() string { return "finance_ledger_entries" }

func (e *LedgerEntryModel) BeforeCreate(tx *gorm.DB) error {
	if e.LedgerEntryID == uuid.Nil {
		e.LedgerEntryID = uuid.New()
	}
	return nil
}
