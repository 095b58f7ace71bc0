package postgres

import (
	"context"

	"go-recruitment-tracker/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const prospectoColumns = `id, nombre, correo, fecha_registro, created_at, updated_at`

type prospectoRepo struct {
	db *pgxpool.Pool
}

func NewProspectoRepository(db *pgxpool.Pool) domain.ProspectoRepository {
	return &prospectoRepo{db: db}
}

func scanProspecto(row pgx.Row) (*domain.Prospecto, error) {
	var p domain.Prospecto
	if err := row.Scan(&p.ID, &p.Nombre, &p.Correo, &p.FechaRegistro, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *prospectoRepo) list(ctx context.Context, query string, args ...any) ([]domain.Prospecto, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	prospectos := []domain.Prospecto{}
	for rows.Next() {
		p, err := scanProspecto(rows)
		if err != nil {
			return nil, err
		}
		prospectos = append(prospectos, *p)
	}
	return prospectos, rows.Err()
}

func (r *prospectoRepo) Fetch(ctx context.Context) ([]domain.Prospecto, error) {
	return r.list(ctx, `SELECT `+prospectoColumns+` FROM prospectos ORDER BY id`)
}

func (r *prospectoRepo) FetchActive(ctx context.Context) ([]domain.Prospecto, error) {
	query := `SELECT ` + prospectoColumns + ` FROM prospectos p
              WHERE NOT EXISTS (
                  SELECT 1 FROM entrevistas e WHERE e.prospecto = p.id AND e.reclutado = TRUE
              )
              ORDER BY id`
	return r.list(ctx, query)
}

func (r *prospectoRepo) Search(ctx context.Context, query string) ([]domain.Prospecto, error) {
	return r.list(ctx, `SELECT `+prospectoColumns+` FROM prospectos
              WHERE nombre LIKE $1 ESCAPE '\' OR correo LIKE $1 ESCAPE '\' ORDER BY id`,
		containsPattern(query))
}

func (r *prospectoRepo) GetByID(ctx context.Context, id int64) (*domain.Prospecto, error) {
	p, err := scanProspecto(r.db.QueryRow(ctx, `SELECT `+prospectoColumns+` FROM prospectos WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return p, nil
}

func (r *prospectoRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM prospectos WHERE id = $1)`, id).Scan(&exists)
	return exists, mapError(err)
}

func (r *prospectoRepo) EmailTaken(ctx context.Context, correo string, excludeID int64) (bool, error) {
	var taken bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM prospectos WHERE correo = $1 AND id <> $2)`,
		correo, excludeID,
	).Scan(&taken)
	return taken, mapError(err)
}

func (r *prospectoRepo) Create(ctx context.Context, p *domain.Prospecto) error {
	query := `INSERT INTO prospectos (nombre, correo, fecha_registro)
              VALUES ($1, $2, $3) RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query, p.Nombre, p.Correo, p.FechaRegistro).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	return mapError(err)
}

func (r *prospectoRepo) Update(ctx context.Context, p *domain.Prospecto) error {
	query := `UPDATE prospectos SET nombre = $2, correo = $3, fecha_registro = $4, updated_at = NOW()
              WHERE id = $1 RETURNING created_at, updated_at`
	err := r.db.QueryRow(ctx, query, p.ID, p.Nombre, p.Correo, p.FechaRegistro).Scan(&p.CreatedAt, &p.UpdatedAt)
	return mapError(err)
}

func (r *prospectoRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM prospectos WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
