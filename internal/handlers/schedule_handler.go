// internal/handlers/schedule_handler.go
package handlers

import (
	"net/http"
	"strings"

	"smpj_backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ScheduleHandler struct {
	DB *gorm.DB
}

func NewScheduleHandler(db *gorm.DB) *ScheduleHandler { return &ScheduleHandler{DB: db} }

func (h *ScheduleHandler) List(c *gin.Context) {
	q := h.DB.Order("tanggal asc")
	if date := strings.TrimSpace(c.Query("date")); date != "" {
		q = q.Where("tanggal = ?", date)
	}

	var rows []models.Schedule
	if err := q.Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load failed"})
		return
	}

	c.JSON(http.StatusOK, rows)
}

type createScheduleReq struct {
	EmployeeID string       `json:"employee_id" binding:"required"`
	Tanggal    string       `json:"tanggal" binding:"required"`
	Shift      models.Shift `json:"shift" binding:"required,oneof=Pagi Siang Malam"`
	JamMulai   string       `json:"jam_mulai"`
	JamSelesai string       `json:"jam_selesai"`
}

// Create inserts a schedule entry. Overlaps are not validated; several
// schedules may exist for the same employee and day.
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req createScheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body", "detail": err.Error()})
		return
	}

	row := models.Schedule{
		EmployeeID: strings.TrimSpace(req.EmployeeID),
		Tanggal:    strings.TrimSpace(req.Tanggal),
		Shift:      req.Shift,
		JamMulai:   req.JamMulai,
		JamSelesai: req.JamSelesai,
	}

	if err := h.DB.Create(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}

	c.JSON(http.StatusOK, row)
}

func (h *ScheduleHandler) Delete(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	if err := h.DB.Where("id = ?", id).Delete(&models.Schedule{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
