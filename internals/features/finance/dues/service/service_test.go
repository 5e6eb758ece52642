package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	model "ormawaku_backend/internals/features/finance/dues/model"
	helper "ormawaku_backend/internals/helpers"
)

/* ========================================================
   Fixtures
======================================================== */

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.DueModel{}))
	return db
}

// stubResolver: direktori anggota palsu — unknown ID berlaku seperti record hilang.
type stubResolver struct {
	members map[uuid.UUID]MemberSnapshot
}

func (r *stubResolver) Resolve(_ context.Context, id uuid.UUID) (MemberSnapshot, error) {
	snap, ok := r.members[id]
	if !ok {
		return MemberSnapshot{}, gorm.ErrRecordNotFound
	}
	return snap, nil
}

// countingSink: hitung berapa kali onPaid terpanggil
type countingSink struct {
	mu    sync.Mutex
	calls []model.DueModel
	err   error
}

func (s *countingSink) OnPaid(_ context.Context, due model.DueModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, due)
	return s.err
}

func (s *countingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func newTestService(t *testing.T, resolver MemberResolver, sink PaidSink) *DuesService {
	t.Helper()
	svc := NewDuesService(setupTestDB(t), resolver, sink)
	svc.Workers = 1 // sqlite in-memory: serialisasi biar deterministik
	return svc
}

func fixedInvoices(seq ...int) helper.InvoiceGenerator {
	i := 0
	return helper.InvoiceGenerator{
		Now: func() time.Time { return time.Date(2025, time.January, 10, 8, 0, 0, 0, time.UTC) },
		Intn: func(int) int {
			n := seq[i%len(seq)]
			i++
			return n
		},
	}
}

func mustCreateDue(t *testing.T, svc *DuesService, status string, amount int64, dueDate time.Time) model.DueModel {
	t.Helper()
	name := "Budi Santoso"
	m := model.DueModel{
		DueMemberNameSnapshot: name,
		DueAmountIDR:          amount,
		DueDate:               dueDate,
		DueStatus:             status,
	}
	created, err := svc.CreateDue(context.Background(), m)
	require.NoError(t, err)
	return created
}

/* ========================================================
   Create / Delete
======================================================== */

func TestCreateDue(t *testing.T) {
	t.Run("ok_with_fresh_invoice", func(t *testing.T) {
		svc := newTestService(t, nil, nil)
		svc.Invoices = fixedInvoices(42)

		got := mustCreateDue(t, svc, "", 50000, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC))

		require.Equal(t, "INV/2025/01/042", got.DueInvoiceNumber)
		require.Equal(t, model.DueStatusUnpaid, got.DueStatus)
		require.NotEqual(t, uuid.Nil, got.DueID)
	})

	t.Run("rejects_non_positive_amount", func(t *testing.T) {
		svc := newTestService(t, nil, nil)

		_, err := svc.CreateDue(context.Background(), model.DueModel{
			DueMemberNameSnapshot: "Budi",
			DueAmountIDR:          0,
			DueDate:               time.Now(),
		})
		require.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("retries_on_invoice_collision", func(t *testing.T) {
		svc := newTestService(t, nil, nil)

		svc.Invoices = fixedInvoices(1)
		first := mustCreateDue(t, svc, "", 50000, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC))
		require.Equal(t, "INV/2025/01/001", first.DueInvoiceNumber)

		// generator berikutnya: tabrakan dulu (001), lalu 002
		svc.Invoices = fixedInvoices(1, 2)
		second := mustCreateDue(t, svc, "", 60000, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC))
		require.Equal(t, "INV/2025/01/002", second.DueInvoiceNumber)
	})

	t.Run("gives_up_after_exhausted_retries", func(t *testing.T) {
		svc := newTestService(t, nil, nil)

		svc.Invoices = fixedInvoices(7)
		mustCreateDue(t, svc, "", 50000, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC))

		_, err := svc.CreateDue(context.Background(), model.DueModel{
			DueMemberNameSnapshot: "Siti",
			DueAmountIDR:          10000,
			DueDate:               time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		})
		require.ErrorIs(t, err, ErrDuplicateInvoice)
	})

	t.Run("resolves_member_snapshot_at_creation", func(t *testing.T) {
		memberID := uuid.New()
		resolver := &stubResolver{members: map[uuid.UUID]MemberSnapshot{
			memberID: {Name: "Siti Aminah", Division: "Media"},
		}}
		svc := newTestService(t, resolver, nil)

		mid := memberID
		got, err := svc.CreateDue(context.Background(), model.DueModel{
			DueMemberID:  &mid,
			DueAmountIDR: 25000,
			DueDate:      time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		require.Equal(t, "Siti Aminah", got.DueMemberNameSnapshot)
		require.Equal(t, "Media", got.DueDivisionSnapshot)
	})

	t.Run("timestamps_round_trip_through_store", func(t *testing.T) {
		svc := newTestService(t, nil, nil)
		created := mustCreateDue(t, svc, "", 50000, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))

		// re-read dari store: kolom waktu harus bisa di-scan balik ke time.Time
		got, err := svc.GetDue(context.Background(), created.DueID)
		require.NoError(t, err)
		require.False(t, got.DueCreatedAt.IsZero())
		require.False(t, got.DueUpdatedAt.IsZero())
	})

	t.Run("unknown_member_fails_not_found", func(t *testing.T) {
		svc := newTestService(t, &stubResolver{members: map[uuid.UUID]MemberSnapshot{}}, nil)

		mid := uuid.New()
		_, err := svc.CreateDue(context.Background(), model.DueModel{
			DueMemberID:  &mid,
			DueAmountIDR: 25000,
			DueDate:      time.Now(),
		})
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSaveEdited(t *testing.T) {
	t.Run("persists_editable_fields_only", func(t *testing.T) {
		svc := newTestService(t, nil, nil)
		due := mustCreateDue(t, svc, model.DueStatusUnpaid, 50000, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))

		note := "dispensasi semester"
		due.DueAmountIDR = 60000
		due.DueNote = &note
		require.NoError(t, svc.SaveEdited(context.Background(), &due))

		after, err := svc.GetDue(context.Background(), due.DueID)
		require.NoError(t, err)
		require.Equal(t, int64(60000), after.DueAmountIDR)
		require.NotNil(t, after.DueNote)
		require.Equal(t, note, *after.DueNote)
		require.Equal(t, model.DueStatusUnpaid, after.DueStatus)
	})

	t.Run("lost_race_against_transition_is_conflict", func(t *testing.T) {
		// Skenario: BPH buka form edit (baca unpaid), sementara itu tagihan
		// di-settle jadi paid. Simpan edit TIDAK boleh mengembalikan status lama.
		sink := &countingSink{}
		svc := newTestService(t, nil, sink)
		due := mustCreateDue(t, svc, model.DueStatusUnpaid, 50000, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))

		stale, err := svc.GetDue(context.Background(), due.DueID)
		require.NoError(t, err)

		_, err = svc.Transition(context.Background(), due.DueID, model.DueStatusPaid, "bph", nil)
		require.NoError(t, err)
		require.Equal(t, 1, sink.count())

		stale.DueNote = func() *string { s := "koreksi nominal"; return &s }()
		err = svc.SaveEdited(context.Background(), &stale)
		require.ErrorIs(t, err, ErrConflict)

		// status paid selamat, edit yang kalah race tidak menulis apa pun
		after, err := svc.GetDue(context.Background(), due.DueID)
		require.NoError(t, err)
		require.Equal(t, model.DueStatusPaid, after.DueStatus)
		require.Nil(t, after.DueNote)
		require.Equal(t, 1, sink.count())
	})

	t.Run("unknown_due_not_found", func(t *testing.T) {
		svc := newTestService(t, nil, nil)
		ghost := model.DueModel{DueID: uuid.New(), DueAmountIDR: 1000, DueStatus: model.DueStatusUnpaid}
		require.ErrorIs(t, svc.SaveEdited(context.Background(), &ghost), ErrNotFound)
	})
}

func TestDeleteDue(t *testing.T) {
	t.Run("paid_due_is_not_deletable", func(t *testing.T) {
		svc := newTestService(t, nil, nil)
		due := mustCreateDue(t, svc, model.DueStatusPaid, 50000, time.Now())

		err := svc.DeleteDue(context.Background(), due.DueID)
		require.ErrorIs(t, err, ErrConflict)

		// record tetap ada & tidak berubah
		after, err := svc.GetDue(context.Background(), due.DueID)
		require.NoError(t, err)
		require.Equal(t, model.DueStatusPaid, after.DueStatus)
	})

	t.Run("unknown_id_not_found", func(t *testing.T) {
		svc := newTestService(t, nil, nil)
		err := svc.DeleteDue(context.Background(), uuid.New())
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unpaid_due_is_deleted", func(t *testing.T) {
		svc := newTestService(t, nil, nil)
		due := mustCreateDue(t, svc, model.DueStatusUnpaid, 50000, time.Now())

		require.NoError(t, svc.DeleteDue(context.Background(), due.DueID))

		_, err := svc.GetDue(context.Background(), due.DueID)
		require.ErrorIs(t, err, ErrNotFound)
	})
}
