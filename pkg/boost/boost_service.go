package boost

import (
	"context"
	"fmt"
	"time"

	"github.com/opsboard/opsboard/internal/utils"
	"github.com/opsboard/opsboard/pkg/allocation"
	log "github.com/sirupsen/logrus"
)

const mondayDateFormat = "2006-01-02"

// FreeHoursProvider computes the weekly free-hours table the grid is
// seeded from.
type FreeHoursProvider interface {
	FreeHours(ctx context.Context) (allocation.FreeHoursTable, error)
}

type Service interface {
	// Load returns the stored grid, or a freshly seeded one when nothing
	// has been saved yet.
	Load(ctx context.Context) (Grid, error)
	// Save replaces the stored grid.
	Save(ctx context.Context, grid Grid) error
	// NextWeek returns the week label of the first week starting after
	// now, or "" when every week has started.
	NextWeek(grid Grid) string
}

type ServiceImpl struct {
	repo      Repository
	freeHours FreeHoursProvider
	clock     utils.Clock
}

func NewService(repo Repository, freeHours FreeHoursProvider, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, freeHours: freeHours, clock: clock}
}

func (s *ServiceImpl) Load(ctx context.Context) (Grid, error) {
	cells, err := s.repo.GetAll(ctx)
	if err != nil {
		return Grid{}, err
	}
	if len(cells) == 0 {
		log.Debug("no stored boost grid, seeding from free hours")
		return s.seed(ctx)
	}
	return assemble(cells), nil
}

func (s *ServiceImpl) Save(ctx context.Context, grid Grid) error {
	for _, row := range grid.Rows {
		if row.Label == "" {
			return fmt.Errorf("boost grid row without label")
		}
	}
	return s.repo.ReplaceAll(ctx, grid.Cells())
}

func (s *ServiceImpl) NextWeek(grid Grid) string {
	now := s.clock.Now()
	for _, row := range grid.Rows {
		if row.Label != MondayRowLabel {
			continue
		}
		for i, value := range row.Values {
			monday, err := time.Parse(mondayDateFormat, value)
			if err != nil {
				continue
			}
			if monday.After(now) && i < len(grid.Weeks) {
				return grid.Weeks[i]
			}
		}
	}
	return ""
}

// seed builds the initial grid: the free-hours header rows, an empty row
// per member, and a trailing row of full Monday dates.
func (s *ServiceImpl) seed(ctx context.Context) (Grid, error) {
	free, err := s.freeHours.FreeHours(ctx)
	if err != nil {
		return Grid{}, err
	}

	grid := Grid{Weeks: free.WeekLabels}
	grid.Rows = append(grid.Rows, Row{Label: StartRowLabel, Values: free.StartLabels})
	grid.Rows = append(grid.Rows, Row{Label: EndRowLabel, Values: free.EndLabels})
	for _, memberRow := range free.Rows {
		grid.Rows = append(grid.Rows, Row{Label: memberRow.Name, Values: make([]string, len(free.WeekLabels))})
	}
	mondays := make([]string, 0, len(free.Weeks))
	for _, w := range free.Weeks {
		mondays = append(mondays, w.Monday.Format(mondayDateFormat))
	}
	grid.Rows = append(grid.Rows, Row{Label: MondayRowLabel, Values: mondays})
	return grid, nil
}

// assemble rebuilds the grid from stored cells, which arrive ordered by
// row position and numeric week.
func assemble(cells []Cell) Grid {
	var grid Grid
	for _, c := range cells {
		if len(grid.Rows) == 0 || grid.Rows[len(grid.Rows)-1].Label != c.RowLabel {
			grid.Rows = append(grid.Rows, Row{Label: c.RowLabel})
		}
		row := &grid.Rows[len(grid.Rows)-1]
		row.Values = append(row.Values, c.Value)
		if len(grid.Rows) == 1 {
			grid.Weeks = append(grid.Weeks, c.Week)
		}
	}
	return grid
}
