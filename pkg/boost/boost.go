// Package boost stores the hand-edited weekly assignation grid. The grid
// starts out as a copy of the computed free-hours table headers and is
// saved wholesale after every edit.
package boost

// Row labels with a fixed meaning in the grid. StartRow and EndRow carry
// dd/mm week boundaries for display; MondayRow carries full ISO dates so
// the current week can be located after a reload.
const (
	StartRowLabel  = "Inicio"
	EndRowLabel    = "Fin"
	MondayRowLabel = "_Inicio"
)

// Cell is one stored grid cell.
type Cell struct {
	RowLabel    string
	RowPosition int
	Week        string
	Value       string
}

// Row is one grid row: the label column plus one value per week.
type Row struct {
	Label  string
	Values []string
}

// Grid is the whole editable assignation grid. Weeks holds the week
// labels in column order; every row's Values are aligned with it.
type Grid struct {
	Weeks []string
	Rows  []Row
}

// Cells flattens the grid for storage.
func (g Grid) Cells() []Cell {
	var cells []Cell
	for position, row := range g.Rows {
		for i, week := range g.Weeks {
			value := ""
			if i < len(row.Values) {
				value = row.Values[i]
			}
			cells = append(cells, Cell{
				RowLabel:    row.Label,
				RowPosition: position,
				Week:        week,
				Value:       value,
			})
		}
	}
	return cells
}
