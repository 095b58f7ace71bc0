package postgres

import (
	"context"
	"fmt"
	"strings"

	"go-recruitment-tracker/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type entrevistaRepo struct {
	db *pgxpool.Pool
}

func NewEntrevistaRepository(db *pgxpool.Pool) domain.EntrevistaRepository {
	return &entrevistaRepo{db: db}
}

// selectEntrevistas builds the SELECT ... FROM part, joining the requested relations.
func selectEntrevistas(rel domain.EntrevistaRelations) string {
	cols := []string{
		"e.id", "e.vacante", "e.prospecto", "e.fecha_entrevista", "e.notas", "e.reclutado", "e.created_at", "e.updated_at",
	}
	var joins strings.Builder
	if rel.Has(domain.WithVacante) {
		cols = append(cols, "v.id", "v.area", "v.sueldo", "v.activo", "v.created_at", "v.updated_at")
		joins.WriteString(" JOIN vacantes v ON v.id = e.vacante")
	}
	if rel.Has(domain.WithProspecto) {
		cols = append(cols, "p.id", "p.nombre", "p.correo", "p.fecha_registro", "p.created_at", "p.updated_at")
		joins.WriteString(" JOIN prospectos p ON p.id = e.prospecto")
	}
	return "SELECT " + strings.Join(cols, ", ") + " FROM entrevistas e" + joins.String()
}

func scanEntrevista(row pgx.Row, rel domain.EntrevistaRelations) (*domain.EntrevistaDetail, error) {
	var d domain.EntrevistaDetail
	dest := []any{
		&d.ID, &d.VacanteID, &d.ProspectoID, &d.FechaEntrevista, &d.Notas, &d.Reclutado, &d.CreatedAt, &d.UpdatedAt,
	}
	if rel.Has(domain.WithVacante) {
		d.Vacante = &domain.Vacante{}
		v := d.Vacante
		dest = append(dest, &v.ID, &v.Area, &v.Sueldo, &v.Activo, &v.CreatedAt, &v.UpdatedAt)
	}
	if rel.Has(domain.WithProspecto) {
		d.Prospecto = &domain.Prospecto{}
		p := d.Prospecto
		dest = append(dest, &p.ID, &p.Nombre, &p.Correo, &p.FechaRegistro, &p.CreatedAt, &p.UpdatedAt)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *entrevistaRepo) Fetch(ctx context.Context, filter domain.EntrevistaFilter, rel domain.EntrevistaRelations) ([]domain.EntrevistaDetail, error) {
	var (
		where []string
		args  []any
	)
	if filter.VacanteID != nil {
		args = append(args, *filter.VacanteID)
		where = append(where, fmt.Sprintf("e.vacante = $%d", len(args)))
	}
	if filter.ProspectoID != nil {
		args = append(args, *filter.ProspectoID)
		where = append(where, fmt.Sprintf("e.prospecto = $%d", len(args)))
	}

	query := selectEntrevistas(rel)
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY e.fecha_entrevista DESC, e.id DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	entrevistas := []domain.EntrevistaDetail{}
	for rows.Next() {
		d, err := scanEntrevista(rows, rel)
		if err != nil {
			return nil, err
		}
		entrevistas = append(entrevistas, *d)
	}
	return entrevistas, rows.Err()
}

func (r *entrevistaRepo) GetByPair(ctx context.Context, vacanteID, prospectoID int64, rel domain.EntrevistaRelations) (*domain.EntrevistaDetail, error) {
	query := selectEntrevistas(rel) + " WHERE e.vacante = $1 AND e.prospecto = $2"
	d, err := scanEntrevista(r.db.QueryRow(ctx, query, vacanteID, prospectoID), rel)
	if err != nil {
		return nil, mapError(err)
	}
	return d, nil
}

func (r *entrevistaRepo) ExistsPair(ctx context.Context, vacanteID, prospectoID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM entrevistas WHERE vacante = $1 AND prospecto = $2)`,
		vacanteID, prospectoID,
	).Scan(&exists)
	return exists, mapError(err)
}

func (r *entrevistaRepo) Create(ctx context.Context, e *domain.Entrevista) error {
	query := `INSERT INTO entrevistas (vacante, prospecto, fecha_entrevista, notas, reclutado)
              VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		e.VacanteID, e.ProspectoID, e.FechaEntrevista, e.Notas, e.Reclutado,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	return mapError(err)
}

func (r *entrevistaRepo) Update(ctx context.Context, e *domain.Entrevista) error {
	query := `UPDATE entrevistas
              SET vacante = $2, prospecto = $3, fecha_entrevista = $4, notas = $5, reclutado = $6, updated_at = NOW()
              WHERE id = $1 RETURNING created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		e.ID, e.VacanteID, e.ProspectoID, e.FechaEntrevista, e.Notas, e.Reclutado,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	return mapError(err)
}

func (r *entrevistaRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM entrevistas WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *entrevistaRepo) CountByVacante(ctx context.Context, vacanteID int64) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM entrevistas WHERE vacante = $1`, vacanteID).Scan(&n)
	return n, mapError(err)
}

func (r *entrevistaRepo) CountByProspecto(ctx context.Context, prospectoID int64) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM entrevistas WHERE prospecto = $1`, prospectoID).Scan(&n)
	return n, mapError(err)
}
