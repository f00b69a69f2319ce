package dashboard

import (
	"context"
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type Repository interface {
	// GetAll returns every board row in table order.
	GetAll(ctx context.Context) ([]Row, error)
	// ReplaceAll replaces the whole board with the given rows.
	ReplaceAll(ctx context.Context, rows []Row) error
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) GetAll(ctx context.Context) ([]Row, error) {
	query := `SELECT project, team_leader, status, end_date, progress, burndown_rate,
				deviation_weeks, deviation_hours_pct, checklist_grade, client_satisfaction,
				leader_alert, issues, comments, next_delivery_date, next_deliverables,
				upcoming_leave, checklist_link
			FROM dashboard_rows ORDER BY position`
	result, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query dashboard rows: %w", err)
		log.Error(err)
		return nil, err
	}
	defer result.Close()

	var rows []Row
	for result.Next() {
		var row Row
		err := result.Scan(
			&row.Project, &row.TeamLeader, &row.Status, &row.EndDate, &row.Progress,
			&row.BurndownRate, &row.DeviationWeeks, &row.DeviationHoursPct,
			&row.ChecklistGrade, &row.ClientSatisfaction, &row.LeaderAlert,
			&row.Issues, &row.Comments, &row.NextDeliveryDate, &row.NextDeliverables,
			&row.UpcomingLeave, &row.ChecklistLink,
		)
		if err != nil {
			err := fmt.Errorf("could not scan dashboard row: %w", err)
			log.Error(err)
			return nil, err
		}
		rows = append(rows, row)
	}

	if err := result.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return rows, nil
}

func (r *RepositoryImpl) ReplaceAll(ctx context.Context, rows []Row) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		err := fmt.Errorf("could not begin transaction: %w", err)
		log.Error(err)
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM dashboard_rows"); err != nil {
		err := fmt.Errorf("could not clear dashboard rows: %w", err)
		log.Error(err)
		return err
	}

	query := `INSERT INTO dashboard_rows (
				project, team_leader, status, end_date, progress, burndown_rate,
				deviation_weeks, deviation_hours_pct, checklist_grade, client_satisfaction,
				leader_alert, issues, comments, next_delivery_date, next_deliverables,
				upcoming_leave, checklist_link, position
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	for position, row := range rows {
		_, err := stmt.ExecContext(ctx,
			row.Project, row.TeamLeader, row.Status, row.EndDate, row.Progress,
			row.BurndownRate, row.DeviationWeeks, row.DeviationHoursPct,
			row.ChecklistGrade, row.ClientSatisfaction, row.LeaderAlert,
			row.Issues, row.Comments, row.NextDeliveryDate, row.NextDeliverables,
			row.UpcomingLeave, row.ChecklistLink, position,
		)
		if err != nil {
			err := fmt.Errorf("could not insert dashboard row %q: %w", row.Project, err)
			log.Error(err)
			return err
		}
	}

	return tx.Commit()
}
