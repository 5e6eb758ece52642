// file: internals/features/finance/dues/service/service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "ormawaku_backend/internals/features/finance/dues/model"
	helper "ormawaku_backend/internals/helpers"
)

const invoiceRetryAttempts = 3

// DuesService: semua operasi ledger iuran anggota (single, bulk, transisi, agregasi).
type DuesService struct {
	DB       *gorm.DB
	Invoices helper.InvoiceGenerator
	Resolver MemberResolver
	Sink     PaidSink

	// batas paralelisme operasi bulk (0 → default 8)
	Workers int
}

func NewDuesService(db *gorm.DB, resolver MemberResolver, sink PaidSink) *DuesService {
	return &DuesService{
		DB:       db,
		Invoices: helper.InvoiceGenerator{},
		Resolver: resolver,
		Sink:     sink,
	}
}

func (s *DuesService) workers() int {
	if s.Workers > 0 {
		return s.Workers
	}
	return 8
}

/* ========================================================
   Single record ops
======================================================== */

// CreateDue: terbitkan satu tagihan. Kalau member_id diisi, nama+divisi di-resolve
// dari direktori anggota dan di-snapshot; kalau tidak, pakai nama bebas dari request.
func (s *DuesService) CreateDue(ctx context.Context, m model.DueModel) (model.DueModel, error) {
	if m.DueAmountIDR <= 0 {
		return model.DueModel{}, ErrInvalidAmount
	}
	if m.DueStatus == "" {
		m.DueStatus = model.DueStatusUnpaid
	}
	if !model.IsValidDueStatus(m.DueStatus) {
		return model.DueModel{}, ErrInvalidStatus
	}

	if m.DueMemberID != nil && s.Resolver != nil {
		snap, err := s.Resolver.Resolve(ctx, *m.DueMemberID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return model.DueModel{}, ErrNotFound
			}
			return model.DueModel{}, err
		}
		m.DueMemberNameSnapshot = snap.Name
		m.DueDivisionSnapshot = snap.Division
	}
	if m.DueMemberID == nil && m.DueMemberNameSnapshot == "" {
		return model.DueModel{}, errors.New("either member id or member name must be provided")
	}

	return s.createWithFreshInvoice(ctx, m)
}

// createWithFreshInvoice: generate nomor invoice lalu insert; kalau kena unique
// constraint, regenerate maksimal 3x sebelum menyerah dengan ErrDuplicateInvoice.
func (s *DuesService) createWithFreshInvoice(ctx context.Context, m model.DueModel) (model.DueModel, error) {
	var lastErr error
	for attempt := 0; attempt < invoiceRetryAttempts; attempt++ {
		m.DueID = uuid.Nil
		m.DueInvoiceNumber = s.Invoices.Generate()
		if err := s.DB.WithContext(ctx).Create(&m).Error; err != nil {
			if isUniqueViolation(err) {
				lastErr = ErrDuplicateInvoice
				continue
			}
			return model.DueModel{}, err
		}
		return m, nil
	}
	return model.DueModel{}, lastErr
}

// GetDue: ambil satu tagihan by ID.
func (s *DuesService) GetDue(ctx context.Context, id uuid.UUID) (model.DueModel, error) {
	var m model.DueModel
	if err := s.DB.WithContext(ctx).First(&m, "due_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.DueModel{}, ErrNotFound
		}
		return model.DueModel{}, err
	}
	return m, nil
}

// ListDues: seluruh snapshot tagihan (belum terhapus), urut tanggal terbaru dulu.
func (s *DuesService) ListDues(ctx context.Context) ([]model.DueModel, error) {
	var out []model.DueModel
	if err := s.DB.WithContext(ctx).
		Order("due_date DESC").
		Order("due_created_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ListMemberDues: tagihan milik satu anggota, tunggakan tertua duluan.
func (s *DuesService) ListMemberDues(ctx context.Context, memberID uuid.UUID) ([]model.DueModel, error) {
	var out []model.DueModel
	if err := s.DB.WithContext(ctx).
		Where("due_member_id = ?", memberID).
		Order("due_date ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// SaveEdited: simpan hasil direct edit (amount/date/note) oleh BPH.
// Perubahan status TIDAK lewat sini — selalu lewat Transition. Penulisan
// dibatasi kolom editable + compare-and-swap di due_status: transisi yang
// committed di antara baca & tulis membuat edit kalah dengan ErrConflict,
// bukan menimpa status diam-diam.
func (s *DuesService) SaveEdited(ctx context.Context, m *model.DueModel) error {
	if m.DueAmountIDR <= 0 {
		return ErrInvalidAmount
	}
	now := time.Now()
	res := s.DB.WithContext(ctx).
		Model(&model.DueModel{}).
		Where("due_id = ? AND due_status = ?", m.DueID, m.DueStatus).
		Updates(map[string]any{
			"due_amount_idr": m.DueAmountIDR,
			"due_date":       m.DueDate,
			"due_note":       m.DueNote,
			"due_updated_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// bedakan: record hilang vs kalah race dari transisi konkuren
		if _, err := s.GetDue(ctx, m.DueID); err != nil {
			return err
		}
		return ErrConflict
	}
	m.DueUpdatedAt = now
	return nil
}

// DeleteDue: soft delete satu tagihan. Tagihan paid tidak boleh dihapus
// (arsip pembayaran dipertahankan).
func (s *DuesService) DeleteDue(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).
		Where("due_id = ? AND due_status <> ?", id, model.DueStatusPaid).
		Delete(&model.DueModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// bedakan: tidak ada vs paid
		var m model.DueModel
		if err := s.DB.WithContext(ctx).First(&m, "due_id = ?", id).Error; err != nil {
			return ErrNotFound
		}
		return ErrConflict
	}
	return nil
}
