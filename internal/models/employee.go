// internal/models/employee.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusAktif    = "Aktif"
	StatusNonaktif = "Nonaktif"
)

const DefaultHourlyRate = 20000

type Employee struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Nama       string    `gorm:"not null" json:"nama"`
	Jabatan    string    `json:"jabatan"`
	Telepon    string    `json:"telepon"`
	Status     string    `gorm:"type:varchar(20);not null;default:Aktif" json:"status"`
	HourlyRate int       `gorm:"not null;default:20000" json:"hourly_rate"`
	CreatedAt  time.Time `json:"created_at"`
}

func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Status == "" {
		e.Status = StatusAktif
	}
	if e.HourlyRate == 0 {
		e.HourlyRate = DefaultHourlyRate
	}
	return nil
}

func (Employee) TableName() string { return "pegawai" }
