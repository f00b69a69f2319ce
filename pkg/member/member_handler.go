package member

import (
	"encoding/json"
	"net/http"

	"github.com/opsboard/opsboard/internal/rest"
	log "github.com/sirupsen/logrus"
)

type TeamMemberDTO struct {
	Name         string `json:"name"`
	Role         string `json:"role"`
	Grade        string `json:"grade"`
	MonthlyHours []int  `json:"monthlyHours"`
}

type catalogDTO struct {
	Roles  []string `json:"roles"`
	Grades []string `json:"grades"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	members, err := h.service.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]TeamMemberDTO, 0, len(members))
	for _, m := range members {
		dtos = append(dtos, memberToDTO(m))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) ReplaceAll(w http.ResponseWriter, r *http.Request) {
	log.Debug("Replacing team members table")
	w.Header().Set("Content-Type", "application/json")

	var dtos []TeamMemberDTO
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

	members := make([]TeamMember, 0, len(dtos))
	for _, dto := range dtos {
		members = append(members, dtoToMember(dto))
	}

	if err := h.service.ReplaceAll(r.Context(), members); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(catalogDTO{Roles: Roles, Grades: Grades}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func memberToDTO(m TeamMember) TeamMemberDTO {
	hours := make([]int, MonthsPerYear)
	copy(hours, m.MonthlyHours[:])
	return TeamMemberDTO{
		Name:         m.Name,
		Role:         m.Role,
		Grade:        m.Grade,
		MonthlyHours: hours,
	}
}

func dtoToMember(dto TeamMemberDTO) TeamMember {
	m := TeamMember{
		Name:  dto.Name,
		Role:  dto.Role,
		Grade: dto.Grade,
	}
	// Missing trailing months are coerced to 0, absent data is not an error.
	copy(m.MonthlyHours[:], dto.MonthlyHours)
	return m
}
