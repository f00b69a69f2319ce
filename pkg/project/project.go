package project

import (
	"time"
)

type BillingType string

const (
	Billable    BillingType = "billable"
	NonBillable BillingType = "non_billable"
)

// Assignment is one row of the projects table: a team member assigned to
// a project for a date range, at a monthly hours budget. MonthlyHours is
// a rate (hours per active month), not a total.
type Assignment struct {
	Project      string
	BillingType  BillingType
	StartDate    time.Time
	EndDate      time.Time
	Member       string
	MonthlyHours float64
}

// Progress returns the percentage of calendar days elapsed between the
// assignment's start and end, clamped to [0, 100]. An empty range yields 0.
func (a Assignment) Progress(now time.Time) int {
	if now.Before(a.StartDate) {
		return 0
	}
	if now.After(a.EndDate) {
		return 100
	}
	total := a.EndDate.Sub(a.StartDate).Hours() / 24
	if total == 0 {
		return 0
	}
	elapsed := now.Sub(a.StartDate).Hours() / 24
	return int(elapsed / total * 100)
}
