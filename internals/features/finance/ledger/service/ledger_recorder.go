// file: internals/features/finance/ledger/service/ledger_recorder.go
package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	duesModel "ormawaku_backend/internals/features/finance/dues/model"
	model "ormawaku_backend/internals/features/finance/ledger/model"
)

// LedgerRecorder: implementasi PaidSink — tiap tagihan yang lunas didorong
// sebagai entri pemasukan ke buku kas.
type LedgerRecorder struct {
	DB  *gorm.DB
	Now func() time.Time // nil → time.Now
}

func NewLedgerRecorder(db *gorm.DB) *LedgerRecorder {
	return &LedgerRecorder{DB: db}
}

func (r *LedgerRecorder) OnPaid(ctx context.Context, due duesModel.DueModel) error {
	now := time.Now()
	if r.Now != nil {
		now = r.Now()
	}

	entry := model.LedgerEntryModel{
		LedgerEntryType:          model.LedgerEntryTypeIncome,
		LedgerEntrySource:        model.LedgerEntrySourceDues,
		LedgerEntryInvoiceNumber: due.DueInvoiceNumber,
		LedgerEntryMemberName:    due.DueMemberNameSnapshot,
		LedgerEntryAmountIDR:     due.DueAmountIDR,
		LedgerEntryOccurredAt:    now,
	}
	return r.DB.WithContext(ctx).Create(&entry).Error
}
