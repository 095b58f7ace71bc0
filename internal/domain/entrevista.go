package domain

import (
	"context"
	"time"
)

// Entrevista is an interview of one Prospecto for one Vacante. The
// (VacanteID, ProspectoID) pair is unique; ID is internal.
type Entrevista struct {
	ID              int64     `json:"id"`
	VacanteID       int64     `json:"vacante"`
	ProspectoID     int64     `json:"prospecto"`
	FechaEntrevista Date      `json:"fecha_entrevista"`
	Notas           *string   `json:"notas"`
	Reclutado       bool      `json:"reclutado"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// EntrevistaDetail is an Entrevista with the relations that were requested.
type EntrevistaDetail struct {
	Entrevista
	Vacante   *Vacante   `json:"vacante_info,omitempty"`
	Prospecto *Prospecto `json:"prospecto_info,omitempty"`
}

// EntrevistaRelations selects which related records repositories join in.
type EntrevistaRelations uint8

const (
	WithVacante EntrevistaRelations = 1 << iota
	WithProspecto

	WithNone EntrevistaRelations = 0
	WithAll                      = WithVacante | WithProspecto
)

func (r EntrevistaRelations) Has(flag EntrevistaRelations) bool {
	return r&flag != 0
}

// EntrevistaFilter narrows a listing; nil fields are ignored.
type EntrevistaFilter struct {
	VacanteID   *int64
	ProspectoID *int64
}

type EntrevistaInput struct {
	VacanteID       *int64  `json:"vacante" validate:"required"`
	ProspectoID     *int64  `json:"prospecto" validate:"required"`
	FechaEntrevista *Date   `json:"fecha_entrevista" validate:"required"`
	Notas           *string `json:"notas" validate:"omitempty,max=1000"`
	Reclutado       *bool   `json:"reclutado" validate:"required"`
}

func (in EntrevistaInput) Apply(e *Entrevista) {
	e.VacanteID = *in.VacanteID
	e.ProspectoID = *in.ProspectoID
	e.FechaEntrevista = *in.FechaEntrevista
	e.Notas = in.Notas
	e.Reclutado = *in.Reclutado
}

// EntrevistaFormData feeds the selection inputs of interview forms.
type EntrevistaFormData struct {
	Vacantes   []Vacante   `json:"vacantes"`
	Prospectos []Prospecto `json:"prospectos"`
}

type EntrevistaRepository interface {
	Fetch(ctx context.Context, filter EntrevistaFilter, rel EntrevistaRelations) ([]EntrevistaDetail, error)
	GetByPair(ctx context.Context, vacanteID, prospectoID int64, rel EntrevistaRelations) (*EntrevistaDetail, error)
	ExistsPair(ctx context.Context, vacanteID, prospectoID int64) (bool, error)
	Create(ctx context.Context, e *Entrevista) error
	Update(ctx context.Context, e *Entrevista) error
	Delete(ctx context.Context, id int64) error
	CountByVacante(ctx context.Context, vacanteID int64) (int64, error)
	CountByProspecto(ctx context.Context, prospectoID int64) (int64, error)
}

type EntrevistaUsecase interface {
	GetAll(ctx context.Context) ([]EntrevistaDetail, error)
	GetByVacante(ctx context.Context, vacanteID int64) ([]EntrevistaDetail, error)
	GetByProspecto(ctx context.Context, prospectoID int64) ([]EntrevistaDetail, error)
	Get(ctx context.Context, vacanteID, prospectoID int64) (*EntrevistaDetail, error)
	Create(ctx context.Context, input map[string]any) (*EntrevistaDetail, error)
	Update(ctx context.Context, vacanteID, prospectoID int64, input map[string]any) (*EntrevistaDetail, error)
	Delete(ctx context.Context, vacanteID, prospectoID int64) error
	GetFormData(ctx context.Context) (*EntrevistaFormData, error)
	// Export renders every entrevista as "xlsx" or "csv" and returns the
	// file content and a suggested file name.
	Export(ctx context.Context, format string) ([]byte, string, error)
}
