// internal/models/schedule.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Shift string

const (
	ShiftPagi  Shift = "Pagi"
	ShiftSiang Shift = "Siang"
	ShiftMalam Shift = "Malam"
)

// Tanggal is a YYYY-MM-DD calendar day, jam fields are HH:MM.
// Multiple schedules may coexist for the same employee and day.
type Schedule struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	EmployeeID string    `gorm:"index;not null" json:"employee_id"`
	Tanggal    string    `gorm:"index;type:varchar(10);not null" json:"tanggal"`
	Shift      Shift     `gorm:"type:varchar(10);not null" json:"shift"`
	JamMulai   string    `gorm:"type:varchar(5)" json:"jam_mulai"`
	JamSelesai string    `gorm:"type:varchar(5)" json:"jam_selesai"`
	CreatedAt  time.Time `json:"created_at"`
}

func (s *Schedule) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

func (Schedule) TableName() string { return "jadwal" }
