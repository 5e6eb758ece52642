// file: internals/features/organization/members/service/member_resolver.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	duesService "ormawaku_backend/internals/features/finance/dues/service"
	divisionModel "ormawaku_backend/internals/features/organization/divisions/model"
	model "ormawaku_backend/internals/features/organization/members/model"
)

// MemberResolverDB: resolver direktori anggota di atas tabel members + divisions.
// Dipakai ledger iuran untuk snapshot nama & divisi saat tagihan terbit.
type MemberResolverDB struct {
	DB *gorm.DB
}

func NewMemberResolverDB(db *gorm.DB) *MemberResolverDB {
	return &MemberResolverDB{DB: db}
}

func (r *MemberResolverDB) Resolve(ctx context.Context, memberID uuid.UUID) (duesService.MemberSnapshot, error) {
	var m model.MemberModel
	if err := r.DB.WithContext(ctx).First(&m, "member_id = ?", memberID).Error; err != nil {
		// gorm.ErrRecordNotFound diteruskan apa adanya — pemanggil yang memetakan
		return duesService.MemberSnapshot{}, err
	}

	division := ""
	if m.MemberDivisionID != nil {
		var d divisionModel.DivisionModel
		if err := r.DB.WithContext(ctx).First(&d, "division_id = ?", *m.MemberDivisionID).Error; err == nil {
			division = d.DivisionName
		}
	}

	return duesService.MemberSnapshot{
		Name:     m.MemberFullName,
		Division: division,
	}, nil
}
