package postgres_test

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"go-recruitment-tracker/internal/domain"
	"go-recruitment-tracker/internal/repository/postgres"
	"go-recruitment-tracker/migrations"
	"go-recruitment-tracker/pkg/database"
	"go-recruitment-tracker/pkg/migrate"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestDB migrates and truncates the database named by TEST_DATABASE_URL.
func openTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	sqlDB, err := sql.Open("postgres", url)
	require.NoError(t, err)
	defer sqlDB.Close()
	_, err = migrate.NewRunner(sqlDB, migrations.FS).Up(ctx)
	require.NoError(t, err)

	pool, err := database.NewPostgresConnection(ctx, url, database.DefaultPoolOptions())
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE entrevistas, prospectos, vacantes, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	return pool
}

func ptr[T any](v T) *T { return &v }

func seed(t *testing.T, ctx context.Context, vacantes domain.VacanteRepository, prospectos domain.ProspectoRepository) (*domain.Vacante, *domain.Prospecto) {
	t.Helper()
	v := &domain.Vacante{Area: ptr("Desarrollo"), Sueldo: ptr(45000.0), Activo: ptr(true)}
	require.NoError(t, vacantes.Create(ctx, v))
	p := &domain.Prospecto{Nombre: "Ana", Correo: "ana@example.com", FechaRegistro: domain.NewDate(2024, time.January, 10)}
	require.NoError(t, prospectos.Create(ctx, p))
	return v, p
}

func TestVacanteAndProspectoRepositories(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	vacantes := postgres.NewVacanteRepository(pool)
	prospectos := postgres.NewProspectoRepository(pool)

	v, p := seed(t, ctx, vacantes, prospectos)
	assert.NotZero(t, v.ID)
	assert.NotZero(t, p.ID)

	got, err := vacantes.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "Desarrollo", *got.Area)
	assert.Equal(t, 45000.0, *got.Sueldo)

	_, err = vacantes.GetByID(ctx, v.ID+100)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	inactive := &domain.Vacante{Area: ptr("Ventas 100%"), Sueldo: ptr(0.0), Activo: ptr(false)}
	require.NoError(t, vacantes.Create(ctx, inactive))

	active, err := vacantes.FetchActive(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	found, err := vacantes.Search(ctx, "100%")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, inactive.ID, found[0].ID)

	found, err = vacantes.Search(ctx, "_")
	require.NoError(t, err)
	assert.Empty(t, found, "underscore is matched literally")

	dup := &domain.Prospecto{Nombre: "Otra", Correo: "ana@example.com", FechaRegistro: domain.NewDate(2024, time.January, 11)}
	assert.ErrorIs(t, prospectos.Create(ctx, dup), domain.ErrDuplicate)

	taken, err := prospectos.EmailTaken(ctx, "ana@example.com", p.ID)
	require.NoError(t, err)
	assert.False(t, taken, "own email is not taken")
	taken, err = prospectos.EmailTaken(ctx, "ana@example.com", 0)
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestEntrevistaRepository(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	vacantes := postgres.NewVacanteRepository(pool)
	prospectos := postgres.NewProspectoRepository(pool)
	entrevistas := postgres.NewEntrevistaRepository(pool)

	v, p := seed(t, ctx, vacantes, prospectos)

	e := &domain.Entrevista{VacanteID: v.ID, ProspectoID: p.ID, FechaEntrevista: domain.NewDate(2024, time.January, 15), Notas: ptr("Primera")}
	require.NoError(t, entrevistas.Create(ctx, e))
	assert.NotZero(t, e.ID)

	again := &domain.Entrevista{VacanteID: v.ID, ProspectoID: p.ID, FechaEntrevista: domain.NewDate(2024, time.February, 1)}
	assert.ErrorIs(t, entrevistas.Create(ctx, again), domain.ErrDuplicate)

	orphan := &domain.Entrevista{VacanteID: v.ID + 100, ProspectoID: p.ID, FechaEntrevista: domain.NewDate(2024, time.February, 1)}
	assert.ErrorIs(t, entrevistas.Create(ctx, orphan), domain.ErrReferenced)

	d, err := entrevistas.GetByPair(ctx, v.ID, p.ID, domain.WithAll)
	require.NoError(t, err)
	require.NotNil(t, d.Vacante)
	require.NotNil(t, d.Prospecto)
	assert.Equal(t, "Ana", d.Prospecto.Nombre)
	assert.Equal(t, "2024-01-15", d.FechaEntrevista.String())

	bare, err := entrevistas.GetByPair(ctx, v.ID, p.ID, domain.WithNone)
	require.NoError(t, err)
	assert.Nil(t, bare.Vacante)

	n, err := entrevistas.CountByVacante(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	assert.ErrorIs(t, vacantes.Delete(ctx, v.ID), domain.ErrReferenced, "vacante with entrevistas cannot be deleted")

	active, err := prospectos.FetchActive(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	e.Reclutado = true
	require.NoError(t, entrevistas.Update(ctx, e))
	active, err = prospectos.FetchActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active, "recruited prospectos are not active")

	vid := v.ID
	list, err := entrevistas.Fetch(ctx, domain.EntrevistaFilter{VacanteID: &vid}, domain.WithVacante)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.NotNil(t, list[0].Vacante)
	assert.Nil(t, list[0].Prospecto)

	require.NoError(t, entrevistas.Delete(ctx, e.ID))
	assert.ErrorIs(t, entrevistas.Delete(ctx, e.ID), domain.ErrNotFound)
	require.NoError(t, vacantes.Delete(ctx, v.ID))
}

func TestUserRepository(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	users := postgres.NewUserRepository(pool)

	u := &domain.User{ID: "5b0e1f0e-8c9a-4c39-9d7c-3f0c2f5a9a11", Nombre: "Ana", Email: "ana@example.com", PasswordHash: "hash"}
	require.NoError(t, users.Create(ctx, u))

	got, err := users.GetByEmail(ctx, "ANA@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	clash := &domain.User{ID: "0f7f2c1d-1111-4a2b-8c3d-222233334444", Nombre: "Otra", Email: "Ana@Example.com", PasswordHash: "hash"}
	assert.ErrorIs(t, users.Create(ctx, clash), domain.ErrDuplicate)

	u.Nombre = "Ana Maria"
	require.NoError(t, users.Update(ctx, u))
	got, err = users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", got.Nombre)
}
