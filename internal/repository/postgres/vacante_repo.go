package postgres

import (
	"context"

	"go-recruitment-tracker/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const vacanteColumns = `id, area, sueldo, activo, created_at, updated_at`

type vacanteRepo struct {
	db *pgxpool.Pool
}

func NewVacanteRepository(db *pgxpool.Pool) domain.VacanteRepository {
	return &vacanteRepo{db: db}
}

func scanVacante(row pgx.Row) (*domain.Vacante, error) {
	var v domain.Vacante
	if err := row.Scan(&v.ID, &v.Area, &v.Sueldo, &v.Activo, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *vacanteRepo) list(ctx context.Context, query string, args ...any) ([]domain.Vacante, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	vacantes := []domain.Vacante{}
	for rows.Next() {
		v, err := scanVacante(rows)
		if err != nil {
			return nil, err
		}
		vacantes = append(vacantes, *v)
	}
	return vacantes, rows.Err()
}

func (r *vacanteRepo) Fetch(ctx context.Context) ([]domain.Vacante, error) {
	return r.list(ctx, `SELECT `+vacanteColumns+` FROM vacantes ORDER BY id`)
}

func (r *vacanteRepo) FetchActive(ctx context.Context) ([]domain.Vacante, error) {
	return r.list(ctx, `SELECT `+vacanteColumns+` FROM vacantes WHERE activo = TRUE ORDER BY id`)
}

func (r *vacanteRepo) Search(ctx context.Context, query string) ([]domain.Vacante, error) {
	return r.list(ctx, `SELECT `+vacanteColumns+` FROM vacantes WHERE area LIKE $1 ESCAPE '\' ORDER BY id`,
		containsPattern(query))
}

func (r *vacanteRepo) GetByID(ctx context.Context, id int64) (*domain.Vacante, error) {
	v, err := scanVacante(r.db.QueryRow(ctx, `SELECT `+vacanteColumns+` FROM vacantes WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return v, nil
}

func (r *vacanteRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM vacantes WHERE id = $1)`, id).Scan(&exists)
	return exists, mapError(err)
}

func (r *vacanteRepo) Create(ctx context.Context, v *domain.Vacante) error {
	query := `INSERT INTO vacantes (area, sueldo, activo)
              VALUES ($1, $2, $3) RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query, v.Area, v.Sueldo, v.Activo).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
	return mapError(err)
}

func (r *vacanteRepo) Update(ctx context.Context, v *domain.Vacante) error {
	query := `UPDATE vacantes SET area = $2, sueldo = $3, activo = $4, updated_at = NOW()
              WHERE id = $1 RETURNING created_at, updated_at`
	err := r.db.QueryRow(ctx, query, v.ID, v.Area, v.Sueldo, v.Activo).Scan(&v.CreatedAt, &v.UpdatedAt)
	return mapError(err)
}

func (r *vacanteRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM vacantes WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
