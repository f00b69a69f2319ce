package allocation

import (
	"github.com/opsboard/opsboard/pkg/member"
	"github.com/opsboard/opsboard/pkg/project"
)

// Snapshot is the read-only input of one report computation: the planning
// year plus the team and project tables as loaded for this invocation.
// Reports never reach back into storage, so two computations over the same
// snapshot always agree.
type Snapshot struct {
	Year     int
	Members  []member.TeamMember
	Projects []project.Assignment
}

// AvailableHours returns the member's available hours for a month
// (1-based), or 0 when the member or month is unknown.
func (s Snapshot) AvailableHours(name string, month int) int {
	if month < 1 || month > member.MonthsPerYear {
		return 0
	}
	for _, m := range s.Members {
		if m.Name == name {
			return m.MonthlyHours[month-1]
		}
	}
	return 0
}

// MemberNames returns the member names in table order.
func (s Snapshot) MemberNames() []string {
	names := make([]string, 0, len(s.Members))
	for _, m := range s.Members {
		names = append(names, m.Name)
	}
	return names
}
