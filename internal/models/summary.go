// internal/models/summary.go
package models

// OwnerSummary is the rolled-up dashboard payload. AttendanceTrend holds
// seven daily counts, oldest first. ShiftComposition is ordered
// [Pagi, Siang, Malam].
type OwnerSummary struct {
	TotalEmployees      int   `json:"total_employees"`
	AttendanceThisMonth int   `json:"attendance_this_month"`
	TotalPayroll        int   `json:"total_payroll"`
	AttendanceTrend     []int `json:"attendance_trend"`
	ShiftComposition    []int `json:"shift_composition"`
}
