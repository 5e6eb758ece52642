// file: internals/features/finance/dues/service/bulk_retirement.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	dto "ormawaku_backend/internals/features/finance/dues/dto"
	model "ormawaku_backend/internals/features/finance/dues/model"
)

/* ========================================================
   Bulk retirement: pensiunkan tagihan non-paid per tanggal
   jatuh tempo. TIDAK ADA UNDO — gate "yakin hapus?" adalah
   tanggung jawab boundary pemanggil.
======================================================== */

// GroupDeletableByDate: kandidat hapus massal, dikelompokkan per tanggal jatuh
// tempo, tanggal terbaru dulu (duplikat batch kemarin paling gampang kelihatan).
// Tagihan paid tidak pernah masuk kandidat.
func (s *DuesService) GroupDeletableByDate(ctx context.Context) ([]dto.DeletableDateGroup, error) {
	var dues []model.DueModel
	if err := s.DB.WithContext(ctx).
		Where("due_status <> ?", model.DueStatusPaid).
		Order("due_date DESC").
		Find(&dues).Error; err != nil {
		return nil, err
	}

	groups := []dto.DeletableDateGroup{}
	idx := map[string]int{}
	for _, d := range dues {
		key := d.DueDate.Format(dateLayout)
		i, ok := idx[key]
		if !ok {
			i = len(groups)
			idx[key] = i
			groups = append(groups, dto.DeletableDateGroup{Date: key})
		}
		groups[i].Count++
		groups[i].IDs = append(groups[i].IDs, d.DueID)
	}
	return groups, nil
}

const dateLayout = "2006-01-02"

// DeleteGroup: soft delete satu kelompok tanggal sebagai rangkaian delete
// independen; satu ID gagal tidak menggagalkan sisanya. Guard di WHERE menjamin
// tagihan paid (atau yang tanggalnya sudah bergeser) tidak pernah ikut terhapus.
func (s *DuesService) DeleteGroup(ctx context.Context, date time.Time, ids []uuid.UUID) (dto.BulkResult, error) {
	if len(ids) == 0 {
		return dto.BulkResult{}, ErrEmptySelection
	}

	type itemResult struct {
		deleted bool
		reason  string
	}
	results := make([]itemResult, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers())
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			res := s.DB.WithContext(gctx).
				Where("due_id = ? AND due_date = ? AND due_status <> ?", id, date, model.DueStatusPaid).
				Delete(&model.DueModel{})
			switch {
			case res.Error != nil:
				results[i] = itemResult{reason: res.Error.Error()}
			case res.RowsAffected == 0:
				results[i] = itemResult{reason: "not deletable (paid, already deleted, or different due date)"}
			default:
				results[i] = itemResult{deleted: true}
			}
			return nil
		})
	}
	_ = g.Wait()

	out := dto.BulkResult{}
	for i, r := range results {
		if r.deleted {
			out.Deleted++
			continue
		}
		out.Failures = append(out.Failures, dto.BulkItemFailure{
			Ref:    ids[i].String(),
			Reason: r.reason,
		})
	}
	return out, nil
}
