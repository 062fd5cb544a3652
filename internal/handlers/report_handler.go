// internal/handlers/report_handler.go
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"smpj_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ReportHandler struct {
	DB *gorm.DB
}

func NewReportHandler(db *gorm.DB) *ReportHandler { return &ReportHandler{DB: db} }

// OwnerSummary rolls up the dashboard numbers. Payroll is an estimate:
// month attendance count times an 8-hour day at the average hourly rate,
// ignoring actual hours and tips.
func (h *ReportHandler) OwnerSummary(c *gin.Context) {
	now := time.Now()

	var totalEmployees int64
	if err := h.DB.Model(&models.Employee{}).Count(&totalEmployees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load failed"})
		return
	}

	monthPrefix := now.Format("2006-01")
	var monthCount int64
	if err := h.DB.Model(&models.Attendance{}).
		Where("tanggal LIKE ?", monthPrefix+"%").
		Count(&monthCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load failed"})
		return
	}

	var emps []models.Employee
	if err := h.DB.Find(&emps).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load failed"})
		return
	}
	rateSum := 0
	for _, e := range emps {
		rateSum += e.HourlyRate
	}
	divisor := len(emps)
	if divisor == 0 {
		divisor = 1
	}
	avgRate := rateSum / divisor
	totalPayroll := int(monthCount) * 8 * avgRate

	trend := make([]int, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format("2006-01-02")
		var cnt int64
		if err := h.DB.Model(&models.Attendance{}).
			Where("tanggal = ?", day).
			Count(&cnt).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "load failed"})
			return
		}
		trend = append(trend, int(cnt))
	}

	composition := make([]int, 0, 3)
	for _, shift := range []models.Shift{models.ShiftPagi, models.ShiftSiang, models.ShiftMalam} {
		var cnt int64
		if err := h.DB.Model(&models.Schedule{}).
			Where("shift = ?", shift).
			Count(&cnt).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "load failed"})
			return
		}
		composition = append(composition, int(cnt))
	}

	c.JSON(http.StatusOK, models.OwnerSummary{
		TotalEmployees:      int(totalEmployees),
		AttendanceThisMonth: int(monthCount),
		TotalPayroll:        totalPayroll,
		AttendanceTrend:     trend,
		ShiftComposition:    composition,
	})
}

// ExportAttendance streams the full attendance table as an xlsx download.
func (h *ReportHandler) ExportAttendance(c *gin.Context) {
	var rows []models.Attendance
	if err := h.DB.Order("tanggal asc").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load failed"})
		return
	}

	file := excelize.NewFile()
	sheet := file.GetSheetName(file.GetActiveSheetIndex())

	headers := []string{"No", "Employee ID", "Tanggal", "Check In", "Check Out", "Status", "Tips"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = file.SetCellValue(sheet, cell, header)
	}

	for index, record := range rows {
		row := index + 2
		_ = file.SetCellValue(sheet, fmt.Sprintf("A%d", row), index+1)
		_ = file.SetCellValue(sheet, fmt.Sprintf("B%d", row), record.EmployeeID)
		_ = file.SetCellValue(sheet, fmt.Sprintf("C%d", row), record.Tanggal)
		_ = file.SetCellValue(sheet, fmt.Sprintf("D%d", row), record.CheckIn)
		_ = file.SetCellValue(sheet, fmt.Sprintf("E%d", row), record.CheckOut)
		_ = file.SetCellValue(sheet, fmt.Sprintf("F%d", row), record.Status)
		_ = file.SetCellValue(sheet, fmt.Sprintf("G%d", row), record.Tips)
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}

	filename := fmt.Sprintf("rekap-absensi-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	_, _ = c.Writer.Write(buffer.Bytes())
}
