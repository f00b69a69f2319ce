package boost

import (
	"encoding/json"
	"net/http"

	"github.com/opsboard/opsboard/internal/rest"
	log "github.com/sirupsen/logrus"
)

type RowDTO struct {
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

type GridDTO struct {
	Weeks    []string `json:"weeks"`
	Rows     []RowDTO `json:"rows"`
	NextWeek string   `json:"nextWeek"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetGrid(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	grid, err := h.service.Load(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(gridToDTO(grid, h.service.NextWeek(grid))); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) SaveGrid(w http.ResponseWriter, r *http.Request) {
	log.Debug("Saving boost assignation grid")
	w.Header().Set("Content-Type", "application/json")

	var dto GridDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	grid := dtoToGrid(dto)
	if err := h.service.Save(r.Context(), grid); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(gridToDTO(grid, h.service.NextWeek(grid))); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func gridToDTO(grid Grid, nextWeek string) GridDTO {
	rows := make([]RowDTO, 0, len(grid.Rows))
	for _, row := range grid.Rows {
		rows = append(rows, RowDTO{Label: row.Label, Values: row.Values})
	}
	return GridDTO{Weeks: grid.Weeks, Rows: rows, NextWeek: nextWeek}
}

func dtoToGrid(dto GridDTO) Grid {
	grid := Grid{Weeks: dto.Weeks}
	for _, row := range dto.Rows {
		grid.Rows = append(grid.Rows, Row{Label: row.Label, Values: row.Values})
	}
	return grid
}
