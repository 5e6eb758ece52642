// file: internals/features/finance/dues/service/reconciliation.go
package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	model "ormawaku_backend/internals/features/finance/dues/model"
)

/* ========================================================
   Kolaborator eksternal (interface only)
======================================================== */

// PaidSink: dipanggil TEPAT SEKALI per transisi masuk ke status paid.
// Gagalnya sink tidak membatalkan transisi — status tagihan tetap source of truth,
// sinkronisasi ke buku kas bersifat best-effort.
type PaidSink interface {
	OnPaid(ctx context.Context, due model.DueModel) error
}

// MemberSnapshot: hasil resolve direktori anggota, di-copy ke tagihan saat terbit
// (snapshot nilai, bukan join hidup — biar histori tetap akurat walau anggota pindah divisi).
type MemberSnapshot struct {
	Name     string
	Division string
}

// MemberResolver: pull dari direktori anggota (subsistem terpisah).
type MemberResolver interface {
	Resolve(ctx context.Context, memberID uuid.UUID) (MemberSnapshot, error)
}

// notifyPaid: sinkron, error hanya dicatat untuk follow-up manual.
func (s *DuesService) notifyPaid(ctx context.Context, due model.DueModel) {
	if s.Sink == nil {
		return
	}
	if err := s.Sink.OnPaid(ctx, due); err != nil {
		log.Printf("[ERROR] reconciliation onPaid gagal (invoice=%s): %v", due.DueInvoiceNumber, err)
	}
}
