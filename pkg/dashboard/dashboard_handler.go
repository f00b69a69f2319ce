package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/opsboard/opsboard/internal/rest"
	log "github.com/sirupsen/logrus"
)

type RowDTO struct {
	Project            string `json:"project"`
	TeamLeader         string `json:"teamLeader"`
	Status             string `json:"status"`
	EndDate            string `json:"endDate"`
	Progress           string `json:"progress"`
	BurndownRate       string `json:"burndownRate"`
	DeviationWeeks     string `json:"deviationWeeks"`
	DeviationHoursPct  string `json:"deviationHoursPct"`
	ChecklistGrade     string `json:"checklistGrade"`
	ClientSatisfaction string `json:"clientSatisfaction"`
	LeaderAlert        string `json:"leaderAlert"`
	Issues             string `json:"issues"`
	Comments           string `json:"comments"`
	NextDeliveryDate   string `json:"nextDeliveryDate"`
	NextDeliverables   string `json:"nextDeliverables"`
	UpcomingLeave      string `json:"upcomingLeave"`
	ChecklistLink      string `json:"checklistLink"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	rows, err := h.service.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]RowDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, rowToDTO(row))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) ReplaceAll(w http.ResponseWriter, r *http.Request) {
	log.Debug("Replacing dashboard rows")
	w.Header().Set("Content-Type", "application/json")

	var dtos []RowDTO
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

	rows := make([]Row, 0, len(dtos))
	for _, dto := range dtos {
		rows = append(rows, dtoToRow(dto))
	}

	if err := h.service.ReplaceAll(r.Context(), rows); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func rowToDTO(row Row) RowDTO {
	return RowDTO(row)
}

func dtoToRow(dto RowDTO) Row {
	return Row(dto)
}
