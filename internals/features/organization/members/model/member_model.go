// file: internals/features/organization/members/model/member_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberModel: direktori anggota. CRUD-nya dimiliki subsistem keanggotaan;
// ledger iuran hanya membaca lewat resolver (nama + divisi untuk snapshot).
type MemberModel struct {
	MemberID uuid.UUID `json:"member_id" gorm:"type:uuid;primaryKey;column:member_id"`

	MemberUserID   *uuid.UUID `json:"member_user_id" gorm:"type:uuid;index;column:member_user_id"`
	MemberFullName string     `json:"member_full_name" gorm:"type:text;not null;column:member_full_name"`

	MemberDivisionID *uuid.UUID `json:"member_division_id" gorm:"type:uuid;index;column:member_division_id"`

	MemberJoinedAt *time.Time `json:"member_joined_at" gorm:"type:date;column:member_joined_at"`

	MemberCreatedAt time.Time      `json:"member_created_at" gorm:"not null;autoCreateTime;column:member_created_at"`
	MemberUpdatedAt time.Time      `json:"member_updated_at" gorm:"not null;autoUpdateTime;column:member_updated_at"`
	MemberDeletedAt gorm.DeletedAt `json:"member_deleted_at" gorm:"index;column:member_deleted_at"`
}

func (MemberModel) TableName() string { return "members" }

func (m *MemberModel) BeforeCreate(tx *gorm.DB) error {
	if m.MemberID == uuid.Nil {
		m.MemberID = uuid.New()
	}
	return nil
}
