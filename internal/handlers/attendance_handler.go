// internal/handlers/attendance_handler.go
package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"smpj_backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AttendanceHandler struct {
	DB *gorm.DB
}

func NewAttendanceHandler(db *gorm.DB) *AttendanceHandler {
	return &AttendanceHandler{DB: db}
}

type checkInReq struct {
	EmployeeID string `json:"employee_id" binding:"required"`
}

type checkOutReq struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Tips       any    `json:"tips"`
}

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// CheckIn upserts today's record for the employee: first call of the day
// creates it, later calls re-stamp check_in and status without clearing
// check_out. Server-local time is used for both the date key and the stamp.
func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	var req checkInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body", "detail": err.Error()})
		return
	}

	employeeID := strings.TrimSpace(req.EmployeeID)
	if employeeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employee_id required"})
		return
	}

	now := time.Now()
	today := now.Format(dateLayout)

	var row models.Attendance
	err := h.DB.Where("employee_id = ? AND tanggal = ?", employeeID, today).First(&row).Error
	if err == nil {
		row.CheckIn = now.Format(timeLayout)
		row.Status = models.AttendanceHadir
		if err := h.DB.Save(&row).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
			return
		}
		c.JSON(http.StatusOK, row)
		return
	}

	row = models.Attendance{
		EmployeeID: employeeID,
		Tanggal:    today,
		CheckIn:    now.Format(timeLayout),
		Status:     models.AttendanceHadir,
	}
	if err := h.DB.Create(&row).Error; err != nil {
		// Two concurrent first check-ins can race past the lookup; the unique
		// index on (employee_id, tanggal) turns the loser into an update.
		var existing models.Attendance
		if ferr := h.DB.Where("employee_id = ? AND tanggal = ?", employeeID, today).First(&existing).Error; ferr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
			return
		}
		existing.CheckIn = row.CheckIn
		existing.Status = models.AttendanceHadir
		if err := h.DB.Save(&existing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
			return
		}
		c.JSON(http.StatusOK, existing)
		return
	}

	c.JSON(http.StatusOK, row)
}

// CheckOut closes today's record. Checking out without a record for today
// is a state error, not an upsert.
func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	var req checkOutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body", "detail": err.Error()})
		return
	}

	employeeID := strings.TrimSpace(req.EmployeeID)
	if employeeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employee_id required"})
		return
	}

	now := time.Now()
	today := now.Format(dateLayout)

	var row models.Attendance
	if err := h.DB.Where("employee_id = ? AND tanggal = ?", employeeID, today).First(&row).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Belum check-in"})
		return
	}

	row.CheckOut = now.Format(timeLayout)
	row.Tips = coerceTips(req.Tips)
	if err := h.DB.Save(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}

	c.JSON(http.StatusOK, row)
}

// List returns attendance rows, newest date first, optionally filtered by
// employee and/or date.
func (h *AttendanceHandler) List(c *gin.Context) {
	q := h.DB.Order("tanggal desc")
	if employeeID := strings.TrimSpace(c.Query("employee_id")); employeeID != "" {
		q = q.Where("employee_id = ?", employeeID)
	}
	if date := strings.TrimSpace(c.Query("date")); date != "" {
		q = q.Where("tanggal = ?", date)
	}

	var rows []models.Attendance
	if err := q.Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load failed"})
		return
	}

	c.JSON(http.StatusOK, rows)
}

// coerceTips mirrors the loose input the clients send: a JSON number, a
// numeric string, or nothing. Anything else counts as zero.
func coerceTips(v any) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case string:
		s := strings.TrimSpace(t)
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f)
		}
		return 0
	default:
		return 0
	}
}
