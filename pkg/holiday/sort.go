package holiday

import (
	"sort"

	"github.com/opsboard/opsboard/pkg/allocation"
)

func sortByFoldedName(days []MemberDays) {
	sort.SliceStable(days, func(i, j int) bool {
		return allocation.SortKey(days[i].Name) < allocation.SortKey(days[j].Name)
	})
}

func sortEventsByFoldedName(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return allocation.SortKey(events[i].Name) < allocation.SortKey(events[j].Name)
	})
}
