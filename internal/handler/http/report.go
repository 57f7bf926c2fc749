package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/report"
	"github.com/workpulse-hr/attendance-backend-go/internal/handler/http/response"
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/validator"
)

type ReportHandler interface {
	GetMyMonthlySummary(w http.ResponseWriter, r *http.Request)
	GetCompanyDailyStats(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
	loc           *time.Location
}

func NewReportHandler(reportService report.Service, loc *time.Location) ReportHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &reportHandlerImpl{
		reportService: reportService,
		loc:           loc,
	}
}

// GetMyMonthlySummary implements ReportHandler.
func (h *reportHandlerImpl) GetMyMonthlySummary(w http.ResponseWriter, r *http.Request) {
	var errs validator.ValidationErrors

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || !validator.IsValidMonth(month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be a number between 1 and 12",
		})
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || !validator.IsValidYear(year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a plausible four-digit year",
		})
	}

	if len(errs) > 0 {
		response.HandleError(w, errs)
		return
	}

	result, err := h.reportService.GetMonthlySummary(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetCompanyDailyStats implements ReportHandler. An omitted date defaults to
// today.
func (h *reportHandlerImpl) GetCompanyDailyStats(w http.ResponseWriter, r *http.Request) {
	date := time.Now().In(h.loc)

	if raw := r.URL.Query().Get("date"); raw != "" {
		if _, ok := validator.IsValidDate(raw); !ok {
			response.HandleError(w, validator.ValidationErrors{{
				Field:   "date",
				Message: "date must be YYYY-MM-DD",
			}})
			return
		}
		parsed, _ := time.ParseInLocation("2006-01-02", raw, h.loc)
		date = parsed
	}

	result, err := h.reportService.GetTodayCompanyStats(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
