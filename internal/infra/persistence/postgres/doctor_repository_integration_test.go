//go:build integration

package postgres

import (
	"context"
	"testing"

	"voll/internal/domain/entity"
	"voll/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("voll"),
		tcpostgres.WithUsername("voll"),
		tcpostgres.WithPassword("voll"),
		tcpostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err, "failed to start postgres container")
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpg.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(ctx, db))

	return db
}

func newTestDoctor(name, email, crm string, specialty entity.Specialty) *entity.Doctor {
	return entity.NewDoctor(name, email, "11999990000", crm, specialty, entity.Address{
		Street:   "Rua das Flores",
		District: "Centro",
		ZipCode:  "01001000",
		City:     "Sao Paulo",
		State:    "SP",
	})
}

func TestDoctorRepository_Integration(t *testing.T) {
	db := newTestDB(t)
	repo := NewDoctorRepository(db)
	ctx := context.Background()

	ana := newTestDoctor("Ana", "ana@voll.med", "123456", entity.SpecialtyCardiology)
	bruno := newTestDoctor("Bruno", "bruno@voll.med", "234567", entity.SpecialtyOrthopedics)
	carla := newTestDoctor("Carla", "carla@voll.med", "345678", entity.SpecialtyDermatology)
	for _, d := range []*entity.Doctor{carla, ana, bruno} {
		require.NoError(t, repo.Create(ctx, d))
		assert.NotEqual(t, uuid.Nil, d.ID)
		assert.False(t, d.CreatedAt.IsZero())
	}

	t.Run("duplicate crm is rejected", func(t *testing.T) {
		dup := newTestDoctor("Other", "other@voll.med", ana.CRM, entity.SpecialtyGynecology)
		err := repo.Create(ctx, dup)
		assert.ErrorIs(t, err, repository.ErrDuplicateDoctor)
	})

	t.Run("find by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, ana.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ana", found.Name)
		assert.Equal(t, entity.SpecialtyCardiology, found.Specialty)
		assert.Equal(t, "01001000", found.Address.ZipCode)

		_, err = repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, repository.ErrDoctorNotFound)
	})

	t.Run("find active orders by name", func(t *testing.T) {
		req := entity.DefaultPageRequest()
		doctors, total, err := repo.FindActive(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, doctors, 3)
		assert.Equal(t, []string{"Ana", "Bruno", "Carla"}, []string{doctors[0].Name, doctors[1].Name, doctors[2].Name})

		req.Direction = entity.SortDesc
		req.Size = 2
		doctors, _, err = repo.FindActive(ctx, req)
		require.NoError(t, err)
		require.Len(t, doctors, 2)
		assert.Equal(t, "Carla", doctors[0].Name)

		req.Page = 5
		doctors, total, err = repo.FindActive(ctx, req)
		require.NoError(t, err)
		assert.Empty(t, doctors)
		assert.Equal(t, int64(3), total)
	})

	t.Run("update keeps crm and specialty and hides inactive", func(t *testing.T) {
		tx := db.Begin()
		defer tx.Rollback()
		txRepo := NewDoctorRepository(tx)

		locked, err := txRepo.FindByIDForUpdate(ctx, bruno.ID)
		require.NoError(t, err)
		locked.Name = "Bruno Souza"
		locked.CRM = "999999"
		locked.Deactivate()
		require.NoError(t, txRepo.Update(ctx, locked))
		require.NoError(t, tx.Commit().Error)

		found, err := repo.FindByID(ctx, bruno.ID)
		require.NoError(t, err)
		assert.Equal(t, "Bruno Souza", found.Name)
		assert.Equal(t, "234567", found.CRM)
		assert.False(t, found.Active)

		_, total, err := repo.FindActive(ctx, entity.DefaultPageRequest())
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("update of unknown doctor", func(t *testing.T) {
		ghost := newTestDoctor("Ghost", "ghost@voll.med", "000001", entity.SpecialtyOrthopedics)
		ghost.ID = uuid.New()
		assert.ErrorIs(t, repo.Update(ctx, ghost), repository.ErrDoctorNotFound)
	})

	t.Run("names sort by byte order", func(t *testing.T) {
		lower := newTestDoctor("ana", "ana.lower@voll.med", "456789", entity.SpecialtyGynecology)
		beatriz := newTestDoctor("Beatriz", "beatriz@voll.med", "567890", entity.SpecialtyGynecology)
		require.NoError(t, repo.Create(ctx, lower))
		require.NoError(t, repo.Create(ctx, beatriz))

		names := func(doctors []*entity.Doctor) []string {
			out := make([]string, 0, len(doctors))
			for _, d := range doctors {
				out = append(out, d.Name)
			}

			return out
		}

		req := entity.DefaultPageRequest()
		doctors, _, err := repo.FindActive(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, []string{"Ana", "Beatriz", "Carla", "ana"}, names(doctors))

		req.Direction = entity.SortDesc
		doctors, _, err = repo.FindActive(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, []string{"ana", "Carla", "Beatriz", "Ana"}, names(doctors))
	})

	t.Run("huge page is empty", func(t *testing.T) {
		req := entity.DefaultPageRequest()
		req.Page = 1_000_000_000_000_000_000
		doctors, total, err := repo.FindActive(ctx, req)
		require.NoError(t, err)
		assert.Empty(t, doctors)
		assert.Positive(t, total)
	})
}
