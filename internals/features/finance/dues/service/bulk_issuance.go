// file: internals/features/finance/dues/service/bulk_issuance.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	dto "ormawaku_backend/internals/features/finance/dues/dto"
	model "ormawaku_backend/internals/features/finance/dues/model"
)

// IssueTerms: terms yang dibagi satu batch (invoice tetap per tagihan, tidak pernah dibagi).
type IssueTerms struct {
	AmountIDR int64
	DueDate   time.Time
	Note      *string
	Status    string // default unpaid
}

// IssueBulk: terbitkan N tagihan untuk N anggota terpilih.
//
// Kontrak sukses parsial: kegagalan satu anggota (resolve gagal, invoice tabrakan)
// dicatat di failures dan TIDAK menghentikan anggota lain; tidak ada rollback batch.
// Item diproses paralel dengan batas worker; hasil dirakit mengikuti urutan input.
func (s *DuesService) IssueBulk(ctx context.Context, memberIDs []uuid.UUID, terms IssueTerms) (dto.BulkResult, error) {
	if len(memberIDs) == 0 {
		return dto.BulkResult{}, ErrEmptySelection
	}
	if terms.AmountIDR <= 0 {
		return dto.BulkResult{}, ErrInvalidAmount
	}
	status := terms.Status
	if status == "" {
		status = model.DueStatusUnpaid
	}
	if status != model.DueStatusUnpaid && status != model.DueStatusPartial {
		return dto.BulkResult{}, ErrInvalidStatus
	}

	type itemResult struct {
		due *model.DueModel
		err error
	}
	results := make([]itemResult, len(memberIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers())
	for i, memberID := range memberIDs {
		i, memberID := i, memberID
		g.Go(func() error {
			due, err := s.issueOne(gctx, memberID, terms, status)
			results[i] = itemResult{due: due, err: err}
			return nil // error per item dikumpulkan, bukan membatalkan grup
		})
	}
	_ = g.Wait()

	out := dto.BulkResult{}
	for i, r := range results {
		if r.err != nil {
			out.Failures = append(out.Failures, dto.BulkItemFailure{
				Ref:    memberIDs[i].String(),
				Reason: r.err.Error(),
			})
			continue
		}
		out.Created++
		out.Dues = append(out.Dues, dto.FromModelDue(*r.due))
	}
	return out, nil
}

func (s *DuesService) issueOne(ctx context.Context, memberID uuid.UUID, terms IssueTerms, status string) (*model.DueModel, error) {
	// Snapshot nama + divisi diambil saat terbit (denormalisasi histori)
	snap, err := s.Resolver.Resolve(ctx, memberID)
	if err != nil {
		return nil, err
	}

	mid := memberID
	m := model.DueModel{
		DueMemberID:           &mid,
		DueMemberNameSnapshot: snap.Name,
		DueDivisionSnapshot:   snap.Division,
		DueAmountIDR:          terms.AmountIDR,
		DueDate:               terms.DueDate,
		DueStatus:             status,
		DueNote:               terms.Note,
	}

	created, err := s.createWithFreshInvoice(ctx, m)
	if err != nil {
		return nil, err
	}
	return &created, nil
}
