package boost

import (
	"context"
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type Repository interface {
	// GetAll returns every stored grid cell in row, then column order.
	GetAll(ctx context.Context) ([]Cell, error)
	// ReplaceAll replaces the whole grid with the given cells.
	ReplaceAll(ctx context.Context, cells []Cell) error
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) GetAll(ctx context.Context) ([]Cell, error) {
	query := `SELECT row_label, row_position, week, value
			FROM boost_cells ORDER BY row_position, CAST(week AS INTEGER)`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query boost cells: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var cells []Cell
	for rows.Next() {
		var c Cell
		if err := rows.Scan(&c.RowLabel, &c.RowPosition, &c.Week, &c.Value); err != nil {
			err := fmt.Errorf("could not scan boost cell: %w", err)
			log.Error(err)
			return nil, err
		}
		cells = append(cells, c)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return cells, nil
}

func (r *RepositoryImpl) ReplaceAll(ctx context.Context, cells []Cell) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		err := fmt.Errorf("could not begin transaction: %w", err)
		log.Error(err)
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM boost_cells"); err != nil {
		err := fmt.Errorf("could not clear boost cells: %w", err)
		log.Error(err)
		return err
	}

	query := "INSERT INTO boost_cells (row_label, row_position, week, value) VALUES (?, ?, ?, ?)"
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	for _, c := range cells {
		if _, err := stmt.ExecContext(ctx, c.RowLabel, c.RowPosition, c.Week, c.Value); err != nil {
			err := fmt.Errorf("could not insert boost cell %q/%q: %w", c.RowLabel, c.Week, err)
			log.Error(err)
			return err
		}
	}

	return tx.Commit()
}
