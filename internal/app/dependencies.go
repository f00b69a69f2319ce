package app

import (
	"database/sql"

	"github.com/opsboard/opsboard/internal/config"
	"github.com/opsboard/opsboard/internal/utils"
	"github.com/opsboard/opsboard/pkg/boost"
	"github.com/opsboard/opsboard/pkg/dashboard"
	"github.com/opsboard/opsboard/pkg/google"
	"github.com/opsboard/opsboard/pkg/holiday"
	"github.com/opsboard/opsboard/pkg/member"
	"github.com/opsboard/opsboard/pkg/project"
	"github.com/opsboard/opsboard/pkg/report"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	GoogleAuth    *google.GoogleAuth
	GoogleService google.Service
	GoogleHandler *google.Handler

	HolidayFeed    *google.HolidayFeed
	HolidayService holiday.Service
	HolidayHandler *holiday.Handler

	MemberRepo    member.Repository
	MemberService member.Service
	MemberHandler *member.Handler

	ProjectRepo    project.Repository
	ProjectService project.Service
	ProjectHandler *project.Handler

	ReportService *report.ServiceImpl
	CsvRenderer   *report.CsvRendererImpl
	ReportHandler *report.Handler

	BoostRepo    boost.Repository
	BoostService boost.Service
	BoostHandler *boost.Handler

	DashboardRepo    dashboard.Repository
	DashboardService dashboard.Service
	DashboardHandler *dashboard.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Clock = &utils.SystemClock{}

	deps.GoogleAuth = google.NewGoogleAuth(db, cfg)
	deps.GoogleService = google.NewService(deps.GoogleAuth)
	deps.GoogleHandler = google.NewHandler(deps.GoogleService)

	deps.HolidayFeed = google.NewHolidayFeed(deps.GoogleAuth, cfg.Google.CalendarId)
	deps.HolidayService = holiday.NewService(deps.HolidayFeed, cfg.Planning.Year)
	deps.HolidayHandler = holiday.NewHandler(deps.HolidayService)

	deps.MemberRepo = member.NewRepository(db)
	deps.MemberService = member.NewService(deps.MemberRepo)
	deps.MemberHandler = member.NewHandler(deps.MemberService)

	deps.ProjectRepo = project.NewRepository(db)
	deps.ProjectService = project.NewService(deps.ProjectRepo, cfg.Planning.Year)
	deps.ProjectHandler = project.NewHandler(deps.ProjectService, deps.Clock)

	deps.ReportService = report.NewService(deps.MemberRepo, deps.ProjectRepo, deps.HolidayFeed, cfg.Planning.Year, deps.Clock)
	deps.CsvRenderer = report.NewCsvRenderer()
	deps.ReportHandler = report.NewHandler(deps.ReportService, deps.CsvRenderer)

	deps.BoostRepo = boost.NewRepository(db)
	deps.BoostService = boost.NewService(deps.BoostRepo, deps.ReportService, deps.Clock)
	deps.BoostHandler = boost.NewHandler(deps.BoostService)

	deps.DashboardRepo = dashboard.NewRepository(db)
	deps.DashboardService = dashboard.NewService(deps.DashboardRepo)
	deps.DashboardHandler = dashboard.NewHandler(deps.DashboardService)

	return deps
}
