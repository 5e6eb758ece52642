// file: internals/features/organization/divisions/model/division_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DivisionModel: entitas konfigurasi divisi organisasi.
// Dulunya daftar global mutable; sekarang entitas eksplisit dengan kontrak CRUD
// sendiri supaya tidak jadi ambient state di dalam ledger.
type DivisionModel struct {
	DivisionID uuid.UUID `json:"division_id" gorm:"type:uuid;primaryKey;column:division_id"`

	DivisionName string  `json:"division_name" gorm:"type:varchar(80);not null;uniqueIndex:uq_divisions_name;column:division_name"`
	DivisionDesc *string `json:"division_desc" gorm:"type:text;column:division_desc"`

	DivisionIsActive bool `json:"division_is_active" gorm:"not null;default:true;column:division_is_active"`

	DivisionCreatedAt time.Time      `json:"division_created_at" gorm:"not null;autoCreateTime;column:division_created_at"`
	DivisionUpdatedAt time.Time      `json:"division_updated_at" gorm:"not null;autoUpdateTime;column:division_updated_at"`
	DivisionDeletedAt gorm.DeletedAt `json:"division_deleted_at" gorm:"index;column:division_deleted_at"`
}

func (DivisionModel) TableName() string { return "divisions" }

func (d *DivisionModel) BeforeCreate(tx *gorm.DB) error {
	if d.DivisionID == uuid.Nil {
		d.DivisionID = uuid.New()
	}
	return nil
}
