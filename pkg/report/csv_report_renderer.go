package report

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/opsboard/opsboard/pkg/allocation"
	log "github.com/sirupsen/logrus"
)

// months holds the Spanish column headers used by the exported tables.
var months = []string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Setiembre", "Octubre", "Noviembre", "Diciembre",
}

type Renderer interface {
	RenderFreeHours(report FreeHoursReport) (string, error)
	RenderMonthlyAssignation(rows []allocation.MonthlyRow) (string, error)
	RenderMonthlyTotals(totals []allocation.MonthlyTotal) (string, error)
}

type CsvRendererImpl struct {
}

func NewCsvRenderer() *CsvRendererImpl {
	return &CsvRendererImpl{}
}

// RenderFreeHours writes the free-hours table the way it is displayed:
// a week label header, the dd/mm boundary rows, then one row per member.
func (t *CsvRendererImpl) RenderFreeHours(report FreeHoursReport) (string, error) {
	table := report.Table

	header := append([]string{"Semana"}, table.WeekLabels...)
	startRow := append([]string{"Inicio"}, table.StartLabels...)
	endRow := append([]string{"Fin"}, table.EndLabels...)

	data := make([][]string, 0, 3+len(table.Rows))
	data = append(data, header, startRow, endRow)
	for _, row := range table.Rows {
		memberRow := make([]string, 0, len(row.Hours)+1)
		memberRow = append(memberRow, row.Name)
		for _, hours := range row.Hours {
			memberRow = append(memberRow, strconv.Itoa(hours))
		}
		data = append(data, memberRow)
	}

	return writeCsv(data)
}

func (t *CsvRendererImpl) RenderMonthlyAssignation(rows []allocation.MonthlyRow) (string, error) {
	data := make([][]string, 0, len(rows)+1)
	data = append(data, append([]string{"Equipo", "Proyecto"}, months...))
	for _, row := range rows {
		line := make([]string, 0, len(months)+2)
		line = append(line, row.Member, row.Project)
		for _, hours := range row.Hours {
			line = append(line, strconv.Itoa(hours))
		}
		data = append(data, line)
	}
	return writeCsv(data)
}

func (t *CsvRendererImpl) RenderMonthlyTotals(totals []allocation.MonthlyTotal) (string, error) {
	data := make([][]string, 0, len(totals)+1)
	data = append(data, append([]string{"Equipo"}, months...))
	for _, total := range totals {
		line := make([]string, 0, len(months)+1)
		line = append(line, total.Member)
		for _, hours := range total.Hours {
			line = append(line, strconv.Itoa(hours))
		}
		data = append(data, line)
	}
	return writeCsv(data)
}

func writeCsv(data [][]string) (string, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		if err := writer.Write(row); err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}
