package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "ormawaku_backend/internals/features/finance/dues/model"
)

func due(name string, memberID *uuid.UUID, amount int64, status string, dueDate time.Time) model.DueModel {
	return model.DueModel{
		DueID:                 uuid.New(),
		DueMemberID:           memberID,
		DueMemberNameSnapshot: name,
		DueAmountIDR:          amount,
		DueStatus:             status,
		DueDate:               dueDate,
	}
}

func TestAggregateByMember(t *testing.T) {
	d := func(y int, m time.Month, day int) time.Time {
		return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	}

	budiID := uuid.New()
	sitiID := uuid.New()

	dues := []model.DueModel{
		due("Budi", &budiID, 50000, model.DueStatusUnpaid, d(2024, 12, 1)),
		due("Budi", &budiID, 25000, model.DueStatusPendingVerification, d(2025, 1, 10)),
		due("Budi", &budiID, 99999, model.DueStatusPaid, d(2024, 11, 1)), // paid: tidak ikut
		due("Siti", &sitiID, 100000, model.DueStatusUnpaid, d(2025, 1, 10)),
		due("Citra", nil, 10000, model.DueStatusPartial, d(2025, 2, 1)), // belum terhubung akun
	}

	t.Run("excludes_paid_and_conserves_totals", func(t *testing.T) {
		groups := AggregateByMember(dues, AggregateFilter{})

		var sum int64
		for _, g := range groups {
			sum += g.TotalIDR
		}
		// total seluruh grup = total semua tagihan non-paid
		assert.Equal(t, int64(50000+25000+100000+10000), sum)

		for _, g := range groups {
			for _, x := range g.Dues {
				assert.NotEqual(t, model.DueStatusPaid, x.DueStatus)
			}
		}
	})

	t.Run("pending_groups_sort_before_others", func(t *testing.T) {
		groups := AggregateByMember(dues, AggregateFilter{})
		require.Len(t, groups, 3)

		// Budi punya pending → naik duluan walau totalnya bukan yang terbesar
		assert.Equal(t, "Budi", groups[0].MemberName)
		assert.True(t, groups[0].HasPending)
		assert.Equal(t, int64(75000), groups[0].TotalIDR)
		assert.Equal(t, 2, groups[0].Count)

		// sisanya total DESC
		assert.Equal(t, "Siti", groups[1].MemberName)
		assert.False(t, groups[1].HasPending)
		assert.Equal(t, "Citra", groups[2].MemberName)
	})

	t.Run("pending_only_filters_and_sorts_by_total_desc", func(t *testing.T) {
		extra := append([]model.DueModel{}, dues...)
		rinaID := uuid.New()
		extra = append(extra,
			due("Rina", &rinaID, 500000, model.DueStatusPendingVerification, d(2025, 1, 1)),
		)

		groups := AggregateByMember(extra, AggregateFilter{PendingOnly: true})
		require.Len(t, groups, 2)
		assert.Equal(t, "Rina", groups[0].MemberName)
		assert.Equal(t, "Budi", groups[1].MemberName)
	})

	t.Run("search_is_case_insensitive_substring", func(t *testing.T) {
		groups := AggregateByMember(dues, AggregateFilter{Search: "bUdI"})
		require.Len(t, groups, 1)
		assert.Equal(t, "Budi", groups[0].MemberName)
	})

	t.Run("group_detail_sorted_oldest_first_with_marker", func(t *testing.T) {
		groups := AggregateByMember(dues, AggregateFilter{Search: "Budi"})
		require.Len(t, groups, 1)
		g := groups[0]

		require.Len(t, g.Dues, 2)
		assert.Equal(t, "2024-12-01", g.Dues[0].DueDate)
		assert.Equal(t, "2025-01-10", g.Dues[1].DueDate)

		// marker "tertua" menunjuk item non-pending pertama
		require.NotNil(t, g.OldestDueID)
		assert.Equal(t, g.Dues[0].DueID, *g.OldestDueID)
		assert.Equal(t, model.DueStatusUnpaid, g.Dues[0].DueStatus)
	})

	t.Run("unlinked_member_groups_by_name", func(t *testing.T) {
		groups := AggregateByMember(dues, AggregateFilter{Search: "citra"})
		require.Len(t, groups, 1)
		assert.Nil(t, groups[0].MemberID)
		assert.Equal(t, "Citra", groups[0].MemberName)
	})

	t.Run("empty_snapshot_yields_no_groups", func(t *testing.T) {
		groups := AggregateByMember(nil, AggregateFilter{})
		assert.Empty(t, groups)
	})
}
