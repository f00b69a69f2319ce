package project

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

const dateFormat = "2006-01-02"

type Repository interface {
	GetAll(ctx context.Context) ([]Assignment, error)
	ReplaceAll(ctx context.Context, assignments []Assignment) error
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) GetAll(ctx context.Context) ([]Assignment, error) {
	query := `SELECT project, billing_type, start_date, end_date, member, monthly_hours
			FROM projects ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query projects: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var assignments []Assignment
	for rows.Next() {
		var a Assignment
		var billingType, startDate, endDate string
		if err := rows.Scan(&a.Project, &billingType, &startDate, &endDate, &a.Member, &a.MonthlyHours); err != nil {
			err := fmt.Errorf("could not scan project: %w", err)
			log.Error(err)
			return nil, err
		}
		a.BillingType = BillingType(billingType)
		a.StartDate, err = time.Parse(dateFormat, startDate)
		if err != nil {
			err := fmt.Errorf("could not parse start date: %w", err)
			log.Error(err)
			return nil, err
		}
		a.EndDate, err = time.Parse(dateFormat, endDate)
		if err != nil {
			err := fmt.Errorf("could not parse end date: %w", err)
			log.Error(err)
			return nil, err
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return assignments, nil
}

func (r *RepositoryImpl) ReplaceAll(ctx context.Context, assignments []Assignment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		err := fmt.Errorf("could not begin transaction: %w", err)
		log.Error(err)
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM projects"); err != nil {
		err := fmt.Errorf("could not clear projects: %w", err)
		log.Error(err)
		return err
	}

	query := `INSERT INTO projects (project, billing_type, start_date, end_date, member, monthly_hours, position)
			VALUES (?, ?, ?, ?, ?, ?, ?)`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	for position, a := range assignments {
		_, err := stmt.ExecContext(ctx,
			a.Project,
			string(a.BillingType),
			a.StartDate.Format(dateFormat),
			a.EndDate.Format(dateFormat),
			a.Member,
			a.MonthlyHours,
			position,
		)
		if err != nil {
			err := fmt.Errorf("could not insert project %q: %w", a.Project, err)
			log.Error(err)
			return err
		}
	}

	return tx.Commit()
}
