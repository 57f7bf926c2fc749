package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse-hr/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	BreakStart(w http.ResponseWriter, r *http.Request)
	BreakEnd(w http.ResponseWriter, r *http.Request)
	GetToday(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// decodeOptionalBody tolerates an empty body; location and note are optional.
func decodeOptionalBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckInRequest
	if err := decodeOptionalBody(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := "Checked in on time"
	if result.IsLate {
		message = fmt.Sprintf("Checked in late by %d minutes", result.LateMinutes)
	}
	response.Created(w, message, result)
}

// CheckOut implements AttendanceHandler. The engine reports early-leave and
// overtime independently; the headline message picks early-leave first.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckOutRequest
	if err := decodeOptionalBody(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.CheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := "Checked out"
	switch {
	case result.IsEarlyLeave:
		message = fmt.Sprintf("Checked out %d minutes early", result.EarlyLeaveMinutes)
	case result.IsPotentialOvertime:
		message = fmt.Sprintf("Checked out with %d minutes of potential overtime", result.OvertimeMinutes)
	}
	response.SuccessWithMessage(w, message, result)
}

// BreakStart implements AttendanceHandler.
func (h *attendanceHandlerImpl) BreakStart(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.BreakStart(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break started", result)
}

// BreakEnd implements AttendanceHandler.
func (h *attendanceHandlerImpl) BreakEnd(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.BreakEnd(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := fmt.Sprintf("Break ended after %d minutes", result.BreakDurationMinutes)
	if result.IsOverBreak {
		message = fmt.Sprintf("Break ended after %d minutes, over the allowance", result.BreakDurationMinutes)
	}
	response.SuccessWithMessage(w, message, result)
}

// GetToday implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetToday(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.GetToday(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
