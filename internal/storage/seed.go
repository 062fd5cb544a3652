// internal/storage/seed.go
package storage

import (
	"log"

	"smpj_backend/internal/models"
	"smpj_backend/internal/utils"

	"gorm.io/gorm"
)

// SeedDefaultUsers creates the three first-run accounts when the user table
// is empty. A second call finds existing users and does nothing.
func SeedDefaultUsers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []struct {
		username string
		name     string
		role     models.Role
	}{
		{"owner", "Owner", models.RoleOwner},
		{"supervisor", "Supervisor", models.RoleSupervisor},
		{"employee", "Pegawai", models.RoleEmployee},
	}

	for _, d := range defaults {
		hash, err := utils.HashPassword("password")
		if err != nil {
			return err
		}
		u := models.User{
			Username:     d.username,
			Name:         d.name,
			Role:         d.role,
			PasswordHash: hash,
		}
		if err := db.Create(&u).Error; err != nil {
			return err
		}
	}

	log.Println("default users seeded: owner/supervisor/employee")
	return nil
}
