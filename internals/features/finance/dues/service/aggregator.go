// file: internals/features/finance/dues/service/aggregator.go
package service

import (
	"context"
	"sort"
	"strings"

	dto "ormawaku_backend/internals/features/finance/dues/dto"
	model "ormawaku_backend/internals/features/finance/dues/model"
)

// AggregateFilter: filter tampilan tunggakan per anggota.
type AggregateFilter struct {
	Search      string // substring nama, case-insensitive
	PendingOnly bool
}

// AggregateByMember: fungsi murni atas snapshot tagihan.
//
// Kebijakan urutan (yang mendesak/ambigu naik duluan):
//   - pendingOnly aktif → urut total DESC saja
//   - selain itu → grup has_pending dulu, lalu total DESC di tiap partisi
//
// Di dalam grup, tagihan diurut due_date ASC (tunggakan tertua dulu) dan
// oldest_due_id menandai item non-pending pertama — anjuran bayar FIFO,
// bukan alokasi otomatis.
func AggregateByMember(dues []model.DueModel, f AggregateFilter) []dto.MemberDebtGroup {
	type bucket struct {
		group dto.MemberDebtGroup
		dues  []model.DueModel
	}

	byKey := map[string]*bucket{}
	order := []string{}

	for _, d := range dues {
		if d.IsPaid() {
			continue
		}
		key := d.MemberKey()
		b, ok := byKey[key]
		if !ok {
			b = &bucket{group: dto.MemberDebtGroup{
				MemberID:   d.DueMemberID,
				MemberName: d.DueMemberNameSnapshot,
				Division:   d.DueDivisionSnapshot,
			}}
			byKey[key] = b
			order = append(order, key)
		}
		b.group.TotalIDR += d.DueAmountIDR
		b.group.Count++
		if d.DueStatus == model.DueStatusPendingVerification {
			b.group.HasPending = true
		}
		if b.group.Division == "" && d.DueDivisionSnapshot != "" {
			b.group.Division = d.DueDivisionSnapshot
		}
		b.dues = append(b.dues, d)
	}

	search := strings.ToLower(strings.TrimSpace(f.Search))

	groups := make([]dto.MemberDebtGroup, 0, len(order))
	for _, key := range order {
		b := byKey[key]

		if search != "" && !strings.Contains(strings.ToLower(b.group.MemberName), search) {
			continue
		}
		if f.PendingOnly && !b.group.HasPending {
			continue
		}

		// detail per anggota: tunggakan tertua dulu
		sort.SliceStable(b.dues, func(i, j int) bool {
			return b.dues[i].DueDate.Before(b.dues[j].DueDate)
		})
		for i := range b.dues {
			if b.dues[i].DueStatus != model.DueStatusPendingVerification {
				id := b.dues[i].DueID
				b.group.OldestDueID = &id
				break
			}
		}

		b.group.Dues = dto.FromModelDues(b.dues)
		groups = append(groups, b.group)
	}

	if f.PendingOnly {
		sort.SliceStable(groups, func(i, j int) bool {
			return groups[i].TotalIDR > groups[j].TotalIDR
		})
	} else {
		sort.SliceStable(groups, func(i, j int) bool {
			if groups[i].HasPending != groups[j].HasPending {
				return groups[i].HasPending
			}
			return groups[i].TotalIDR > groups[j].TotalIDR
		})
	}

	return groups
}

// ListGroupedByMember: baca snapshot dari store lalu agregasi.
// Read murni — tidak ada locking; batch bulk yang sedang jalan terlihat
// sebagai himpunan tagihan yang sudah ada saat baca (eventual consistency).
func (s *DuesService) ListGroupedByMember(ctx context.Context, f AggregateFilter) ([]dto.MemberDebtGroup, error) {
	dues, err := s.ListDues(ctx)
	if err != nil {
		return nil, err
	}
	return AggregateByMember(dues, f), nil
}
