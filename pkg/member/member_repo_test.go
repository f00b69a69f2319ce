package member

import (
	"context"
	"testing"

	"github.com/opsboard/opsboard/internal/test_utils"
	"github.com/stretchr/testify/assert"
)

func TestRepositoryImpl_ReplaceAllAndGetAll(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	// given
	members := []TeamMember{
		{Name: "Ana", Role: "Senior Engineer", Grade: "Msc.", MonthlyHours: [12]int{160, 160, 160, 160, 160, 160, 160, 160, 160, 160, 160, 160}},
		{Name: "Bruno", Role: "Engineer", Grade: "Ing.", MonthlyHours: [12]int{120, 120, 120, 120, 120, 120, 120, 120, 120, 120, 120, 120}},
	}

	// when
	err := repo.ReplaceAll(ctx, members)

	// then
	assert.NoError(t, err)
	stored, err := repo.GetAll(ctx)
	assert.NoError(t, err)
	assert.Equal(t, members, stored)
}

func TestRepositoryImpl_ReplaceAllDropsPreviousRows(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	// given
	err := repo.ReplaceAll(ctx, []TeamMember{
		{Name: "Ana"},
		{Name: "Bruno"},
	})
	assert.NoError(t, err)

	// when
	err = repo.ReplaceAll(ctx, []TeamMember{
		{Name: "Carla", Role: "Team Leader"},
	})

	// then
	assert.NoError(t, err)
	stored, err := repo.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, stored, 1)
	assert.Equal(t, "Carla", stored[0].Name)
}

func TestRepositoryImpl_GetAllKeepsTableOrder(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	// given
	err := repo.ReplaceAll(ctx, []TeamMember{
		{Name: "Zoe"},
		{Name: "Ana"},
		{Name: "Mario"},
	})
	assert.NoError(t, err)

	// when
	stored, err := repo.GetAll(ctx)

	// then
	assert.NoError(t, err)
	names := make([]string, 0, len(stored))
	for _, m := range stored {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"Zoe", "Ana", "Mario"}, names)
}
