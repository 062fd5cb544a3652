// internal/handlers/employee_handler.go
package handlers

import (
	"net/http"
	"strings"

	"smpj_backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EmployeeHandler struct {
	DB *gorm.DB
}

func NewEmployeeHandler(db *gorm.DB) *EmployeeHandler { return &EmployeeHandler{DB: db} }

func (h *EmployeeHandler) List(c *gin.Context) {
	var rows []models.Employee
	if err := h.DB.Order("created_at asc").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load failed"})
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	var row models.Employee
	if err := h.DB.Where("id = ?", id).First(&row).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	c.JSON(http.StatusOK, row)
}

type createEmployeeReq struct {
	Nama       string `json:"nama" binding:"required"`
	Jabatan    string `json:"jabatan"`
	Telepon    string `json:"telepon"`
	Status     string `json:"status"`
	HourlyRate int    `json:"hourly_rate"`
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req createEmployeeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body", "detail": err.Error()})
		return
	}

	row := models.Employee{
		Nama:       strings.TrimSpace(req.Nama),
		Jabatan:    strings.TrimSpace(req.Jabatan),
		Telepon:    strings.TrimSpace(req.Telepon),
		Status:     req.Status,
		HourlyRate: req.HourlyRate,
	}

	if err := h.DB.Create(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}

	c.JSON(http.StatusOK, row)
}

type updateEmployeeReq struct {
	Nama       *string `json:"nama"`
	Jabatan    *string `json:"jabatan"`
	Telepon    *string `json:"telepon"`
	Status     *string `json:"status"`
	HourlyRate *int    `json:"hourly_rate"`
}

// Update applies only the fields present in the body.
func (h *EmployeeHandler) Update(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	var req updateEmployeeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body", "detail": err.Error()})
		return
	}

	var row models.Employee
	if err := h.DB.Where("id = ?", id).First(&row).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	if req.Nama != nil {
		row.Nama = *req.Nama
	}
	if req.Jabatan != nil {
		row.Jabatan = *req.Jabatan
	}
	if req.Telepon != nil {
		row.Telepon = *req.Telepon
	}
	if req.Status != nil {
		row.Status = *req.Status
	}
	if req.HourlyRate != nil {
		row.HourlyRate = *req.HourlyRate
	}

	if err := h.DB.Save(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}

	c.JSON(http.StatusOK, row)
}

// Delete removes the record by id. Schedules and attendance that reference
// the id are left untouched; dangling references are accepted here.
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	if err := h.DB.Where("id = ?", id).Delete(&models.Employee{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
