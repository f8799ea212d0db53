package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/logger"
)

type AttendanceHandler interface {
	Recap(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Recap handles GET /attendance/recap
func (h *attendanceHandlerImpl) Recap(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := attendance.RecapRequest{
		Period: report.PeriodRequest{
			Month: query.Get("month"),
			Year:  query.Get("year"),
		},
		UserID: query.Get("user_id"),
	}

	entries, err := h.attendanceService.Recap(r.Context(), req)
	if err != nil {
		logger.From(r.Context()).ErrorContext(r.Context(), "Recap service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}
