package boost

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opsboard/opsboard/internal/test_utils"
)

func TestRepositoryImpl_ReplaceAllAndGetAll(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	// given
	cells := []Cell{
		{RowLabel: StartRowLabel, RowPosition: 0, Week: "1", Value: "30/12"},
		{RowLabel: StartRowLabel, RowPosition: 0, Week: "2", Value: "06/01"},
		{RowLabel: "Ana", RowPosition: 1, Week: "1", Value: "Proyecto A"},
		{RowLabel: "Ana", RowPosition: 1, Week: "2", Value: ""},
	}

	// when
	err := repo.ReplaceAll(ctx, cells)

	// then
	assert.NoError(t, err)
	stored, err := repo.GetAll(ctx)
	assert.NoError(t, err)
	assert.Equal(t, cells, stored)
}

func TestRepositoryImpl_GetAllOrdersWeeksNumerically(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	// given weeks stored out of order, with a two-digit label
	err := repo.ReplaceAll(ctx, []Cell{
		{RowLabel: "Ana", Week: "10", Value: "c"},
		{RowLabel: "Ana", Week: "2", Value: "b"},
		{RowLabel: "Ana", Week: "1", Value: "a"},
	})
	assert.NoError(t, err)

	// when
	stored, err := repo.GetAll(ctx)

	// then "2" sorts before "10"
	assert.NoError(t, err)
	weeks := make([]string, 0, len(stored))
	for _, c := range stored {
		weeks = append(weeks, c.Week)
	}
	assert.Equal(t, []string{"1", "2", "10"}, weeks)
}

func TestRepositoryImpl_ReplaceAllDropsPreviousCells(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	// given
	err := repo.ReplaceAll(ctx, []Cell{{RowLabel: "Ana", Week: "1", Value: "old"}})
	assert.NoError(t, err)

	// when
	err = repo.ReplaceAll(ctx, []Cell{{RowLabel: "Bruno", Week: "1", Value: "new"}})

	// then
	assert.NoError(t, err)
	stored, err := repo.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, stored, 1)
	assert.Equal(t, "Bruno", stored[0].RowLabel)
}
