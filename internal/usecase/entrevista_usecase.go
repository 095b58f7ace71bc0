package usecase

import (
	"context"
	"errors"

	"go-recruitment-tracker/internal/domain"
	"go-recruitment-tracker/pkg/apperror"
	"go-recruitment-tracker/pkg/logger"
	"go-recruitment-tracker/pkg/validation"
)

const (
	entrevistaDuplicateMessage = "An interview already exists for this vacancy and candidate"
	entrevistaNotFoundMessage  = "Entrevista not found"
)

// EntrevistaOptions toggles configurable rules.
type EntrevistaOptions struct {
	NotasRequired bool
}

type entrevistaUsecase struct {
	entrevistaRepo domain.EntrevistaRepository
	vacanteRepo    domain.VacanteRepository
	prospectoRepo  domain.ProspectoRepository
	validator      *validation.Validator
	opts           EntrevistaOptions
}

func NewEntrevistaUsecase(
	entrevistaRepo domain.EntrevistaRepository,
	vacanteRepo domain.VacanteRepository,
	prospectoRepo domain.ProspectoRepository,
	v *validation.Validator,
	opts EntrevistaOptions,
) domain.EntrevistaUsecase {
	return &entrevistaUsecase{
		entrevistaRepo: entrevistaRepo,
		vacanteRepo:    vacanteRepo,
		prospectoRepo:  prospectoRepo,
		validator:      v,
		opts:           opts,
	}
}

func (u *entrevistaUsecase) list(ctx context.Context, filter domain.EntrevistaFilter) ([]domain.EntrevistaDetail, error) {
	entrevistas, err := u.entrevistaRepo.Fetch(ctx, filter, domain.WithAll)
	if err != nil {
		return nil, internalError(ctx, "Error fetching the entrevistas", err)
	}
	return entrevistas, nil
}

func (u *entrevistaUsecase) GetAll(ctx context.Context) ([]domain.EntrevistaDetail, error) {
	return u.list(ctx, domain.EntrevistaFilter{})
}

func (u *entrevistaUsecase) GetByVacante(ctx context.Context, vacanteID int64) ([]domain.EntrevistaDetail, error) {
	return u.list(ctx, domain.EntrevistaFilter{VacanteID: &vacanteID})
}

func (u *entrevistaUsecase) GetByProspecto(ctx context.Context, prospectoID int64) ([]domain.EntrevistaDetail, error) {
	return u.list(ctx, domain.EntrevistaFilter{ProspectoID: &prospectoID})
}

func (u *entrevistaUsecase) find(ctx context.Context, vacanteID, prospectoID int64, rel domain.EntrevistaRelations) (*domain.EntrevistaDetail, error) {
	d, err := u.entrevistaRepo.GetByPair(ctx, vacanteID, prospectoID, rel)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound(entrevistaNotFoundMessage)
	}
	if err != nil {
		return nil, internalError(ctx, "Error fetching the entrevista", err)
	}
	return d, nil
}

func (u *entrevistaUsecase) Get(ctx context.Context, vacanteID, prospectoID int64) (*domain.EntrevistaDetail, error) {
	return u.find(ctx, vacanteID, prospectoID, domain.WithAll)
}

// validate binds input and checks that both referenced records exist.
func (u *entrevistaUsecase) validate(ctx context.Context, input map[string]any) (*domain.EntrevistaInput, error) {
	var in domain.EntrevistaInput
	errs := u.validator.Bind(input, &in)

	if u.opts.NotasRequired && in.Notas == nil && !errs.Has("notas") {
		errs.Add("notas", validation.Required("notas"))
	}

	if in.VacanteID != nil && !errs.Has("vacante") {
		ok, err := u.vacanteRepo.Exists(ctx, *in.VacanteID)
		if err != nil {
			return nil, internalError(ctx, "Error validating the entrevista", err)
		}
		if !ok {
			errs.Add("vacante", validation.Invalid("vacante"))
		}
	}
	if in.ProspectoID != nil && !errs.Has("prospecto") {
		ok, err := u.prospectoRepo.Exists(ctx, *in.ProspectoID)
		if err != nil {
			return nil, internalError(ctx, "Error validating the entrevista", err)
		}
		if !ok {
			errs.Add("prospecto", validation.Invalid("prospecto"))
		}
	}

	if !errs.Empty() {
		return nil, validationError(errs)
	}
	return &in, nil
}

func (u *entrevistaUsecase) ensurePairFree(ctx context.Context, vacanteID, prospectoID int64) error {
	exists, err := u.entrevistaRepo.ExistsPair(ctx, vacanteID, prospectoID)
	if err != nil {
		return internalError(ctx, "Error validating the entrevista", err)
	}
	if exists {
		return apperror.Conflict(entrevistaDuplicateMessage)
	}
	return nil
}

// storageError maps constraint violations that slipped past the read-side checks.
func storageError(ctx context.Context, message string, err error) error {
	switch {
	case errors.Is(err, domain.ErrDuplicate):
		return apperror.Conflict(entrevistaDuplicateMessage)
	case errors.Is(err, domain.ErrReferenced):
		return validationError(validation.Errors{
			"vacante":   {validation.Invalid("vacante")},
			"prospecto": {validation.Invalid("prospecto")},
		})
	case errors.Is(err, domain.ErrNotFound):
		return apperror.NotFound(entrevistaNotFoundMessage)
	}
	return internalError(ctx, message, err)
}

func (u *entrevistaUsecase) Create(ctx context.Context, input map[string]any) (*domain.EntrevistaDetail, error) {
	in, err := u.validate(ctx, input)
	if err != nil {
		return nil, err
	}
	if err := u.ensurePairFree(ctx, *in.VacanteID, *in.ProspectoID); err != nil {
		return nil, err
	}

	e := &domain.Entrevista{}
	in.Apply(e)
	if err := u.entrevistaRepo.Create(ctx, e); err != nil {
		return nil, storageError(ctx, "Error creating the entrevista", err)
	}

	logger.FromContext(ctx).Info("Entrevista created",
		"entrevista_id", e.ID, "vacante_id", e.VacanteID, "prospecto_id", e.ProspectoID)
	return u.find(ctx, e.VacanteID, e.ProspectoID, domain.WithAll)
}

func (u *entrevistaUsecase) Update(ctx context.Context, vacanteID, prospectoID int64, input map[string]any) (*domain.EntrevistaDetail, error) {
	current, err := u.find(ctx, vacanteID, prospectoID, domain.WithNone)
	if err != nil {
		return nil, err
	}

	in, err := u.validate(ctx, input)
	if err != nil {
		return nil, err
	}
	if *in.VacanteID != vacanteID || *in.ProspectoID != prospectoID {
		if err := u.ensurePairFree(ctx, *in.VacanteID, *in.ProspectoID); err != nil {
			return nil, err
		}
	}

	e := current.Entrevista
	in.Apply(&e)
	if err := u.entrevistaRepo.Update(ctx, &e); err != nil {
		return nil, storageError(ctx, "Error updating the entrevista", err)
	}

	logger.FromContext(ctx).Info("Entrevista updated",
		"entrevista_id", e.ID, "vacante_id", e.VacanteID, "prospecto_id", e.ProspectoID)
	return u.find(ctx, e.VacanteID, e.ProspectoID, domain.WithAll)
}

func (u *entrevistaUsecase) Delete(ctx context.Context, vacanteID, prospectoID int64) error {
	current, err := u.find(ctx, vacanteID, prospectoID, domain.WithNone)
	if err != nil {
		return err
	}

	if err := u.entrevistaRepo.Delete(ctx, current.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound(entrevistaNotFoundMessage)
		}
		return internalError(ctx, "Error deleting the entrevista", err)
	}

	logger.FromContext(ctx).Info("Entrevista deleted",
		"entrevista_id", current.ID, "vacante_id", vacanteID, "prospecto_id", prospectoID)
	return nil
}

func (u *entrevistaUsecase) GetFormData(ctx context.Context) (*domain.EntrevistaFormData, error) {
	vacantes, err := u.vacanteRepo.Fetch(ctx)
	if err != nil {
		return nil, internalError(ctx, "Error loading the form data", err)
	}
	prospectos, err := u.prospectoRepo.Fetch(ctx)
	if err != nil {
		return nil, internalError(ctx, "Error loading the form data", err)
	}
	return &domain.EntrevistaFormData{Vacantes: vacantes, Prospectos: prospectos}, nil
}
