// Package dashboard stores the hand-maintained project status board.
// Every column is free text, filled in by the team leads.
package dashboard

// Row is one project line on the operations board.
type Row struct {
	Project            string
	TeamLeader         string
	Status             string
	EndDate            string
	Progress           string
	BurndownRate       string
	DeviationWeeks     string
	DeviationHoursPct  string
	ChecklistGrade     string
	ClientSatisfaction string
	LeaderAlert        string
	Issues             string
	Comments           string
	NextDeliveryDate   string
	NextDeliverables   string
	UpcomingLeave      string
	ChecklistLink      string
}
