package domain

import (
	"context"
	"time"
)

// Prospecto is a candidate.
type Prospecto struct {
	ID            int64     `json:"id"`
	Nombre        string    `json:"nombre"`
	Correo        string    `json:"correo"`
	FechaRegistro Date      `json:"fecha_registro"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ProspectoInput struct {
	Nombre        *string `json:"nombre" validate:"required,max=255"`
	Correo        *string `json:"correo" validate:"required,max=255,email"`
	FechaRegistro *Date   `json:"fecha_registro" validate:"required"`
}

func (in ProspectoInput) Apply(p *Prospecto) {
	p.Nombre = *in.Nombre
	p.Correo = *in.Correo
	p.FechaRegistro = *in.FechaRegistro
}

type ProspectoRepository interface {
	Fetch(ctx context.Context) ([]Prospecto, error)
	// FetchActive returns prospectos that no entrevista has marked as recruited.
	FetchActive(ctx context.Context) ([]Prospecto, error)
	Search(ctx context.Context, query string) ([]Prospecto, error)
	GetByID(ctx context.Context, id int64) (*Prospecto, error)
	Exists(ctx context.Context, id int64) (bool, error)
	// EmailTaken reports whether another prospecto (id != excludeID) uses correo.
	EmailTaken(ctx context.Context, correo string, excludeID int64) (bool, error)
	Create(ctx context.Context, p *Prospecto) error
	Update(ctx context.Context, p *Prospecto) error
	Delete(ctx context.Context, id int64) error
}

type ProspectoUsecase interface {
	GetAll(ctx context.Context) ([]Prospecto, error)
	GetActive(ctx context.Context) ([]Prospecto, error)
	Search(ctx context.Context, query string) ([]Prospecto, error)
	Get(ctx context.Context, id int64) (*Prospecto, error)
	Create(ctx context.Context, input map[string]any) (*Prospecto, error)
	Update(ctx context.Context, id int64, input map[string]any) (*Prospecto, error)
	Delete(ctx context.Context, id int64) error
}
