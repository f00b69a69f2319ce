package project

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestAssignment_Progress(t *testing.T) {
	a := Assignment{
		Project:   "Atlas",
		StartDate: date(2025, time.March, 1),
		EndDate:   date(2025, time.March, 31),
	}

	assert.Equal(t, 0, a.Progress(date(2025, time.February, 10)))
	assert.Equal(t, 100, a.Progress(date(2025, time.April, 2)))
	assert.Equal(t, 50, a.Progress(date(2025, time.March, 16)))
}

func TestAssignment_ProgressEmptyRange(t *testing.T) {
	a := Assignment{
		StartDate: date(2025, time.March, 1),
		EndDate:   date(2025, time.March, 1),
	}

	assert.Equal(t, 0, a.Progress(date(2025, time.March, 1)))
}

func TestServiceImpl_ReplaceAllRejectsInvertedRange(t *testing.T) {
	service := NewService(NewStubRepository(), 2025)

	err := service.ReplaceAll(context.Background(), []Assignment{{
		Project:   "Atlas",
		StartDate: date(2025, time.May, 10),
		EndDate:   date(2025, time.May, 1),
	}})

	assert.Error(t, err)
}

func TestServiceImpl_ReplaceAllRejectsOutOfYearRange(t *testing.T) {
	service := NewService(NewStubRepository(), 2025)

	err := service.ReplaceAll(context.Background(), []Assignment{{
		Project:   "Atlas",
		StartDate: date(2024, time.December, 1),
		EndDate:   date(2025, time.February, 1),
	}})

	assert.Error(t, err)
}

func TestServiceImpl_ReplaceAllStoresValidAssignments(t *testing.T) {
	repo := NewStubRepository()
	service := NewService(repo, 2025)

	assignments := []Assignment{{
		Project:      "Atlas",
		BillingType:  Billable,
		StartDate:    date(2025, time.March, 1),
		EndDate:      date(2025, time.March, 31),
		Member:       "Ana",
		MonthlyHours: 80,
	}}

	err := service.ReplaceAll(context.Background(), assignments)

	assert.NoError(t, err)
	stored, _ := repo.GetAll(context.Background())
	assert.Equal(t, assignments, stored)
}
