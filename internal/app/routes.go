package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Team members
	r.HandleFunc("/api/member", deps.MemberHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/member", deps.MemberHandler.ReplaceAll).Methods("PUT")
	r.HandleFunc("/api/member/catalog", deps.MemberHandler.GetCatalog).Methods("GET")

	// Project assignments
	r.HandleFunc("/api/project", deps.ProjectHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/project", deps.ProjectHandler.ReplaceAll).Methods("PUT")

	// Holidays
	r.HandleFunc("/api/holiday/event", deps.HolidayHandler.GetEvents).Methods("GET")
	r.HandleFunc("/api/holiday/monthly", deps.HolidayHandler.GetMonthlyDays).Methods("GET")

	// Reports
	r.HandleFunc("/api/report/weekly/assignation", deps.ReportHandler.GetWeeklyAssignation).Methods("GET")
	r.HandleFunc("/api/report/weekly/free-hours", deps.ReportHandler.GetWeeklyFreeHours).Methods("GET")
	r.HandleFunc("/api/report/weekly/free-hours/csv", deps.ReportHandler.GetWeeklyFreeHoursCsv).Methods("GET")
	r.HandleFunc("/api/report/monthly/assignation", deps.ReportHandler.GetMonthlyAssignation).Methods("GET")
	r.HandleFunc("/api/report/monthly/total", deps.ReportHandler.GetMonthlyTotals).Methods("GET")
	r.HandleFunc("/api/report/metrics", deps.ReportHandler.GetMetrics).Methods("GET")

	// Boost grid
	r.HandleFunc("/api/boost", deps.BoostHandler.GetGrid).Methods("GET")
	r.HandleFunc("/api/boost", deps.BoostHandler.SaveGrid).Methods("PUT")

	// Status board
	r.HandleFunc("/api/dashboard", deps.DashboardHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/dashboard", deps.DashboardHandler.ReplaceAll).Methods("PUT")

	// Google integration
	r.HandleFunc("/api/integrations/google/auth/login", deps.GoogleAuth.OAuthLogin).Methods("GET")
	r.HandleFunc("/api/integrations/google/auth/logout", deps.GoogleAuth.OAuthLogout).Methods("DELETE")
	r.HandleFunc("/api/integrations/google/auth/callback", deps.GoogleAuth.OAuthCallback).Methods("GET")
	r.HandleFunc("/api/integrations/google/calendars", deps.GoogleHandler.ListCalendars).Methods("GET")
}
