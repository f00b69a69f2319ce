package dashboard

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
	rows := []Row{
		{
			Project:          "Migración ERP",
			TeamLeader:       "Ana",
			Status:           "En curso",
			Progress:         "45%",
			Issues:           "Pendiente acceso al entorno de QA",
			NextDeliveryDate: "2025-07-15",
		},
		{
			Project:    "Portal clientes",
			TeamLeader: "Bruno",
			Status:     "En pausa",
		},
	}

	// when
	err := repo.ReplaceAll(ctx, rows)

	// then
	assert.NoError(t, err)
	stored, err := repo.GetAll(ctx)
	assert.NoError(t, err)
	assert.Equal(t, rows, stored)
}

func TestRepositoryImpl_ReplaceAllDropsPreviousRows(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	// given
	err := repo.ReplaceAll(ctx, []Row{{Project: "Old"}})
	assert.NoError(t, err)

	// when
	err = repo.ReplaceAll(ctx, []Row{{Project: "New"}, {Project: "Newer"}})

	// then
	assert.NoError(t, err)
	stored, err := repo.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, stored, 2)
	assert.Equal(t, "New", stored[0].Project)
}

func TestServiceImpl_ReplaceAllRejectsRowWithoutProject(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	service := NewService(NewRepository(db))

	err := service.ReplaceAll(context.Background(), []Row{{TeamLeader: "Ana"}})

	assert.Error(t, err)
}
