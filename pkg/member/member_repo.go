package member

import (
	"context"
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type Repository interface {
	// GetAll returns every team member in table order.
	GetAll(ctx context.Context) ([]TeamMember, error)
	// ReplaceAll replaces the whole team table with the given rows.
	ReplaceAll(ctx context.Context, members []TeamMember) error
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) GetAll(ctx context.Context) ([]TeamMember, error) {
	query := `SELECT name, role, grade,
				hours_01, hours_02, hours_03, hours_04, hours_05, hours_06,
				hours_07, hours_08, hours_09, hours_10, hours_11, hours_12
			FROM team_members ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query team members: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var members []TeamMember
	for rows.Next() {
		var m TeamMember
		dest := []any{&m.Name, &m.Role, &m.Grade}
		for i := range m.MonthlyHours {
			dest = append(dest, &m.MonthlyHours[i])
		}
		if err := rows.Scan(dest...); err != nil {
			err := fmt.Errorf("could not scan team member: %w", err)
			log.Error(err)
			return nil, err
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return members, nil
}

// ReplaceAll mirrors the editor's save semantics: the previous table is
// dropped and the submitted rows become the new table, atomically.
func (r *RepositoryImpl) ReplaceAll(ctx context.Context, members []TeamMember) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		err := fmt.Errorf("could not begin transaction: %w", err)
		log.Error(err)
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM team_members"); err != nil {
		err := fmt.Errorf("could not clear team members: %w", err)
		log.Error(err)
		return err
	}

	query := `INSERT INTO team_members (
				name, role, grade,
				hours_01, hours_02, hours_03, hours_04, hours_05, hours_06,
				hours_07, hours_08, hours_09, hours_10, hours_11, hours_12,
				position
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	for position, m := range members {
		args := []any{m.Name, m.Role, m.Grade}
		for _, hours := range m.MonthlyHours {
			args = append(args, hours)
		}
		args = append(args, position)
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			err := fmt.Errorf("could not insert team member %q: %w", m.Name, err)
			log.Error(err)
			return err
		}
	}

	return tx.Commit()
}
