package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ormawaku_backend/internals/constants"
	duesModel "ormawaku_backend/internals/features/finance/dues/model"
	duesService "ormawaku_backend/internals/features/finance/dues/service"
	model "ormawaku_backend/internals/features/finance/ledger/model"
)

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

	require.NoError(t, db.AutoMigrate(&duesModel.DueModel{}, &model.LedgerEntryModel{}))
	return db
}

func TestLedgerRecorder_OnPaid(t *testing.T) {
	db := setupTestDB(t)
	rec := NewLedgerRecorder(db)
	rec.Now = func() time.Time { return time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC) }

	due := duesModel.DueModel{
		DueMemberNameSnapshot: "Budi Santoso",
		DueAmountIDR:          50000,
		DueInvoiceNumber:      "INV/2025/01/123",
		DueStatus:             duesModel.DueStatusPaid,
		DueDate:               time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, rec.OnPaid(context.Background(), due))

	var entries []model.LedgerEntryModel
	require.NoError(t, db.Find(&entries).Error)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, model.LedgerEntryTypeIncome, e.LedgerEntryType)
	assert.Equal(t, model.LedgerEntrySourceDues, e.LedgerEntrySource)
	assert.Equal(t, "INV/2025/01/123", e.LedgerEntryInvoiceNumber)
	assert.Equal(t, "Budi Santoso", e.LedgerEntryMemberName)
	assert.Equal(t, int64(50000), e.LedgerEntryAmountIDR)
}

// Integrasi: transisi approve di service iuran harus mendarat sebagai entri
// pemasukan di buku kas — tepat satu entri per pelunasan.
func TestLedgerRecorder_WiredIntoTransition(t *testing.T) {
	db := setupTestDB(t)
	svc := duesService.NewDuesService(db, nil, NewLedgerRecorder(db))
	svc.Workers = 1

	created, err := svc.CreateDue(context.Background(), duesModel.DueModel{
		DueMemberNameSnapshot: "Siti Aminah",
		DueAmountIDR:          75000,
		DueDate:               time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = svc.Transition(context.Background(), created.DueID, duesModel.DueStatusPendingVerification, constants.RoleAnggota, nil)
	require.NoError(t, err)
	_, err = svc.Transition(context.Background(), created.DueID, duesModel.DueStatusPaid, constants.RoleBPH, nil)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.LedgerEntryModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
