package report

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/opsboard/opsboard/pkg/allocation"
	"github.com/opsboard/opsboard/pkg/holiday"
)

const csvContentType = "text/csv; charset=utf-8"

type WeekDTO struct {
	Index  int    `json:"index"`
	Monday string `json:"monday"`
	Sunday string `json:"sunday"`
}

type WeeklyAssignationDTO struct {
	Weeks    []WeekDTO            `json:"weeks"`
	Order    []string             `json:"order"`
	Hours    map[string][]float64 `json:"hours"`
	NextWeek string               `json:"nextWeek"`
}

type FreeHoursRowDTO struct {
	Name  string `json:"name"`
	Hours []int  `json:"hours"`
}

type FreeHoursDTO struct {
	Weeks    []string          `json:"weeks"`
	Start    []string          `json:"start"`
	End      []string          `json:"end"`
	Rows     []FreeHoursRowDTO `json:"rows"`
	NextWeek string            `json:"nextWeek"`
}

type MonthlyRowDTO struct {
	Member  string `json:"member"`
	Project string `json:"project"`
	Hours   []int  `json:"hours"`
}

type MonthlyTotalDTO struct {
	Member string `json:"member"`
	Hours  []int  `json:"hours"`
}

type MetricsDTO struct {
	Monthly   []int `json:"monthly"`
	Quarterly []int `json:"quarterly"`
}

type Handler struct {
	service  Service
	renderer Renderer
}

func NewHandler(service Service, renderer Renderer) *Handler {
	return &Handler{service: service, renderer: renderer}
}

func (h *Handler) GetWeeklyAssignation(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	report, err := h.service.WeeklyAssignation(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dto := WeeklyAssignationDTO{
		Weeks:    weeksToDTO(report.Table.Weeks),
		Order:    report.Table.Order,
		Hours:    report.Table.Hours,
		NextWeek: report.NextWeek,
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) GetWeeklyFreeHours(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.WeeklyFreeHours(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if r.Header.Get("Accept") == "text/csv" {
		w.Header().Set("Content-Type", csvContentType)
		csv, err := h.renderer.RenderFreeHours(report)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if _, err := w.Write([]byte(csv)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	dto := FreeHoursDTO{
		Weeks:    report.Table.WeekLabels,
		Start:    report.Table.StartLabels,
		End:      report.Table.EndLabels,
		NextWeek: report.NextWeek,
	}
	for _, row := range report.Table.Rows {
		dto.Rows = append(dto.Rows, FreeHoursRowDTO{Name: row.Name, Hours: row.Hours})
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetWeeklyFreeHoursCsv always renders CSV, regardless of the Accept
// header. It backs the download link in the frontend.
func (h *Handler) GetWeeklyFreeHoursCsv(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.WeeklyFreeHours(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	csv, err := h.renderer.RenderFreeHours(report)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", csvContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="free-hours.csv"`)
	if _, err := w.Write([]byte(csv)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) GetMonthlyAssignation(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.MonthlyAssignation(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if r.Header.Get("Accept") == "text/csv" {
		w.Header().Set("Content-Type", csvContentType)
		csv, err := h.renderer.RenderMonthlyAssignation(rows)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if _, err := w.Write([]byte(csv)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	dtos := make([]MonthlyRowDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, MonthlyRowDTO{
			Member:  row.Member,
			Project: row.Project,
			Hours:   row.Hours[:],
		})
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) GetMonthlyTotals(w http.ResponseWriter, r *http.Request) {
	totals, err := h.service.MonthlyTotals(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if r.Header.Get("Accept") == "text/csv" {
		w.Header().Set("Content-Type", csvContentType)
		csv, err := h.renderer.RenderMonthlyTotals(totals)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if _, err := w.Write([]byte(csv)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	dtos := make([]MonthlyTotalDTO, 0, len(totals))
	for _, total := range totals {
		dtos = append(dtos, MonthlyTotalDTO{Member: total.Member, Hours: total.Hours[:]})
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	withHolidays := r.URL.Query().Get("holidays") == "true"

	metrics, err := h.service.Metrics(r.Context(), withHolidays)
	if err != nil {
		if errors.Is(err, holiday.ErrUnauthenticated) {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dto := MetricsDTO{Monthly: metrics.Monthly[:], Quarterly: metrics.Quarterly[:]}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func weeksToDTO(weeks []allocation.Week) []WeekDTO {
	dtos := make([]WeekDTO, 0, len(weeks))
	for _, w := range weeks {
		dtos = append(dtos, WeekDTO{
			Index:  w.Index,
			Monday: w.Monday.Format(time.DateOnly),
			Sunday: w.Sunday.Format(time.DateOnly),
		})
	}
	return dtos
}
