package holiday

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// ErrUnauthenticated is returned by a Feed when the calendar integration
// has no valid credentials.
var ErrUnauthenticated = errors.New("calendar authentication required")

type EventDTO struct {
	Uid    string `json:"uid"`
	Name   string `json:"name"`
	Start  string `json:"start"`
	End    string `json:"end"`
	Status string `json:"status"`
}

type MemberDaysDTO struct {
	Name string `json:"name"`
	Days []int  `json:"days"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	events, err := h.service.Events(r.Context())
	if err != nil {
		if errors.Is(err, ErrUnauthenticated) {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	dtos := make([]EventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, EventDTO{
			Uid:    e.UID,
			Name:   e.Name,
			Start:  e.Start.Format(time.RFC3339),
			End:    e.End.Format(time.RFC3339),
			Status: e.Status,
		})
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		log.Errorf("failed to encode leave events: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) GetMonthlyDays(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	days, err := h.service.MonthlyDays(r.Context())
	if err != nil {
		if errors.Is(err, ErrUnauthenticated) {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	dtos := make([]MemberDaysDTO, 0, len(days))
	for _, d := range days {
		dtos = append(dtos, MemberDaysDTO{Name: d.Name, Days: d.Days[:]})
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		log.Errorf("failed to encode leave days: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
