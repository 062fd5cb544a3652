// internal/models/attendance.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AttendanceBelumHadir = "Belum Hadir"
	AttendanceHadir      = "Hadir"
)

// At most one row exists per (employee_id, tanggal). The composite unique
// index backstops the find-then-write upsert done at check-in.
type Attendance struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	EmployeeID string    `gorm:"not null;uniqueIndex:idx_absensi_pegawai_tanggal" json:"employee_id"`
	Tanggal    string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_absensi_pegawai_tanggal" json:"tanggal"`
	CheckIn    string    `gorm:"type:varchar(8)" json:"check_in"`
	CheckOut   string    `gorm:"type:varchar(8)" json:"check_out"`
	Status     string    `gorm:"type:varchar(20);not null;default:Belum Hadir" json:"status"`
	Tips       int       `gorm:"not null;default:0" json:"tips"`
	CreatedAt  time.Time `json:"created_at"`
}

func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Status == "" {
		a.Status = AttendanceBelumHadir
	}
	return nil
}

func (Attendance) TableName() string { return "absensi" }
