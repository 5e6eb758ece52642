// file: internals/features/finance/dues/service/state_machine.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ormawaku_backend/internals/constants"
	model "ormawaku_backend/internals/features/finance/dues/model"
)

/* ========================================================
   State machine status tagihan

   unpaid/partial ──(klaim anggota)──▶ pending_verification
   pending_verification ──(BPH approve)──▶ paid
   pending_verification ──(BPH reject)───▶ unpaid   (bukti TIDAK dihapus — audit)
   unpaid/partial/pending ──(BPH settle)─▶ paid
   any ──(BPH direct edit)──▶ unpaid/partial/paid

   Non-BPH hanya boleh mengajukan klaim; semua target lain ditolak tanpa mutasi.
======================================================== */

// ClaimUpdate: atribut klaim bayar yang menempel saat transisi ke pending_verification.
type ClaimUpdate struct {
	PaymentMethod *string
	ProofURL      *string
}

// Transition: satu-satunya jalur perubahan due_status.
// Serialisasi per record pakai compare-and-swap di kolom status: update hanya
// apply kalau status masih sama dengan yang diamati — race reject vs approve
// di record yang sama tidak mungkin dua-duanya menang.
func (s *DuesService) Transition(ctx context.Context, id uuid.UUID, target string, actorRole string, claim *ClaimUpdate) (model.DueModel, error) {
	if !model.IsValidDueStatus(target) {
		return model.DueModel{}, ErrInvalidStatus
	}

	due, err := s.GetDue(ctx, id)
	if err != nil {
		return model.DueModel{}, err
	}
	observed := due.DueStatus

	updates := map[string]any{
		"due_status":     target,
		"due_updated_at": time.Now(),
	}

	switch {
	case target == model.DueStatusPendingVerification:
		// Klaim bayar: boleh siapa saja, tapi hanya dari unpaid/partial.
		if observed != model.DueStatusUnpaid && observed != model.DueStatusPartial {
			return model.DueModel{}, ErrConflict
		}
		if claim != nil {
			if claim.PaymentMethod != nil {
				updates["due_payment_method"] = *claim.PaymentMethod
			}
			if claim.ProofURL != nil {
				updates["due_proof_url"] = *claim.ProofURL
			}
		}

	default:
		// unpaid / partial / paid: semuanya butuh role elevated (approve, reject,
		// settle manual, maupun koreksi administratif).
		if !constants.IsElevated(actorRole) {
			return model.DueModel{}, ErrPermissionDenied
		}
		if observed == target {
			// no-op: state sudah sesuai, kembalikan apa adanya
			return due, nil
		}
		// Reject (pending → unpaid) sengaja TIDAK membersihkan
		// due_payment_method/due_proof_url — jejak klaim dipertahankan.
	}

	res := s.DB.WithContext(ctx).
		Model(&model.DueModel{}).
		Where("due_id = ? AND due_status = ?", id, observed).
		Updates(updates)
	if res.Error != nil {
		return model.DueModel{}, res.Error
	}
	if res.RowsAffected == 0 {
		// kalah race: record berubah di antara baca & tulis
		return model.DueModel{}, ErrConflict
	}

	after, err := s.GetDue(ctx, id)
	if err != nil {
		return model.DueModel{}, err
	}

	// Reconciliation: tepat sekali per transisi MASUK ke paid.
	// Edit berikutnya saat sudah paid tidak memicu ulang.
	if observed != model.DueStatusPaid && after.DueStatus == model.DueStatusPaid {
		s.notifyPaid(ctx, after)
	}

	return after, nil
}
