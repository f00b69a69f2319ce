package project

import (
	"context"
	"testing"
	"time"

	"github.com/opsboard/opsboard/internal/test_utils"
	"github.com/stretchr/testify/assert"
)

func TestRepositoryImpl_ReplaceAllAndGetAll(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	// given
	assignments := []Assignment{
		{
			Project:      "Atlas",
			BillingType:  Billable,
			StartDate:    time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
			EndDate:      time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC),
			Member:       "Ana",
			MonthlyHours: 80,
		},
		{
			Project:      "Internal tooling",
			BillingType:  NonBillable,
			StartDate:    time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			EndDate:      time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
			Member:       "Bruno",
			MonthlyHours: 40.5,
		},
	}

	// when
	err := repo.ReplaceAll(ctx, assignments)

	// then
	assert.NoError(t, err)
	stored, err := repo.GetAll(ctx)
	assert.NoError(t, err)
	assert.Equal(t, assignments, stored)
}

func TestRepositoryImpl_ReplaceAllDropsPreviousRows(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	// given
	start := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC)
	err := repo.ReplaceAll(ctx, []Assignment{
		{Project: "Atlas", StartDate: start, EndDate: end, Member: "Ana"},
	})
	assert.NoError(t, err)

	// when
	err = repo.ReplaceAll(ctx, []Assignment{
		{Project: "Borealis", StartDate: start, EndDate: end, Member: "Bruno"},
	})

	// then
	assert.NoError(t, err)
	stored, err := repo.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, stored, 1)
	assert.Equal(t, "Borealis", stored[0].Project)
}
