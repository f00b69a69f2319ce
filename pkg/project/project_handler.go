package project

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/opsboard/opsboard/internal/rest"
	"github.com/opsboard/opsboard/internal/utils"
	log "github.com/sirupsen/logrus"
)

const dtoDateFormat = "2006-01-02"

type AssignmentDTO struct {
	Project      string  `json:"project"`
	BillingType  string  `json:"billingType"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	Member       string  `json:"member"`
	MonthlyHours float64 `json:"monthlyHours"`
	Progress     int     `json:"progress,omitempty"`
}

type Handler struct {
	service Service
	clock   utils.Clock
}

func NewHandler(service Service, clock utils.Clock) *Handler {
	return &Handler{service: service, clock: clock}
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	assignments, err := h.service.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	now := h.clock.Now()
	dtos := make([]AssignmentDTO, 0, len(assignments))
	for _, a := range assignments {
		dto := assignmentToDTO(a)
		dto.Progress = a.Progress(now)
		dtos = append(dtos, dto)
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) ReplaceAll(w http.ResponseWriter, r *http.Request) {
	log.Debug("Replacing projects table")
	w.Header().Set("Content-Type", "application/json")

	var dtos []AssignmentDTO
	if err := json.NewDecoder(r.Body).Decode(&dtos); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	assignments := make([]Assignment, 0, len(dtos))
	for _, dto := range dtos {
		a, err := dtoToAssignment(dto)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Invalid date format",
				Details: "Dates must be in YYYY-MM-DD format",
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		assignments = append(assignments, a)
	}

	if err := h.service.ReplaceAll(r.Context(), assignments); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func assignmentToDTO(a Assignment) AssignmentDTO {
	return AssignmentDTO{
		Project:      a.Project,
		BillingType:  string(a.BillingType),
		StartDate:    a.StartDate.Format(dtoDateFormat),
		EndDate:      a.EndDate.Format(dtoDateFormat),
		Member:       a.Member,
		MonthlyHours: a.MonthlyHours,
	}
}

func dtoToAssignment(dto AssignmentDTO) (Assignment, error) {
	startDate, err := time.Parse(dtoDateFormat, dto.StartDate)
	if err != nil {
		return Assignment{}, err
	}
	endDate, err := time.Parse(dtoDateFormat, dto.EndDate)
	if err != nil {
		return Assignment{}, err
	}
	return Assignment{
		Project:      dto.Project,
		BillingType:  BillingType(dto.BillingType),
		StartDate:    startDate,
		EndDate:      endDate,
		Member:       dto.Member,
		MonthlyHours: dto.MonthlyHours,
	}, nil
}
