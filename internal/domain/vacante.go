package domain

import (
	"context"
	"time"
)

// Vacante is a job opening.
type Vacante struct {
	ID        int64     `json:"id"`
	Area      *string   `json:"area"`
	Sueldo    *float64  `json:"sueldo"`
	Activo    *bool     `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VacanteInput is the validated create/update payload.
type VacanteInput struct {
	Area   *string  `json:"area" validate:"required,max=255"`
	Sueldo *float64 `json:"sueldo" validate:"required,gte=0"`
	Activo *bool    `json:"activo" validate:"required"`
}

// Apply copies the input onto v.
func (in VacanteInput) Apply(v *Vacante) {
	v.Area = in.Area
	v.Sueldo = in.Sueldo
	v.Activo = in.Activo
}

type VacanteRepository interface {
	Fetch(ctx context.Context) ([]Vacante, error)
	FetchActive(ctx context.Context) ([]Vacante, error)
	Search(ctx context.Context, query string) ([]Vacante, error)
	GetByID(ctx context.Context, id int64) (*Vacante, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, v *Vacante) error
	Update(ctx context.Context, v *Vacante) error
	Delete(ctx context.Context, id int64) error
}

type VacanteUsecase interface {
	GetAll(ctx context.Context) ([]Vacante, error)
	GetActive(ctx context.Context) ([]Vacante, error)
	Search(ctx context.Context, query string) ([]Vacante, error)
	Get(ctx context.Context, id int64) (*Vacante, error)
	Create(ctx context.Context, input map[string]any) (*Vacante, error)
	Update(ctx context.Context, id int64, input map[string]any) (*Vacante, error)
	Delete(ctx context.Context, id int64) error
}
