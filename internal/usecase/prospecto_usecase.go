package usecase

import (
	"context"
	"errors"
	"strings"

	"go-recruitment-tracker/internal/domain"
	"go-recruitment-tracker/pkg/apperror"
	"go-recruitment-tracker/pkg/logger"
	"go-recruitment-tracker/pkg/validation"
)

const prospectoHasEntrevistasMessage = "Cannot delete the prospecto because it has associated entrevistas"

type prospectoUsecase struct {
	prospectoRepo  domain.ProspectoRepository
	entrevistaRepo domain.EntrevistaRepository
	validator      *validation.Validator
}

func NewProspectoUsecase(prospectoRepo domain.ProspectoRepository, entrevistaRepo domain.EntrevistaRepository, v *validation.Validator) domain.ProspectoUsecase {
	return &prospectoUsecase{
		prospectoRepo:  prospectoRepo,
		entrevistaRepo: entrevistaRepo,
		validator:      v,
	}
}

func (u *prospectoUsecase) GetAll(ctx context.Context) ([]domain.Prospecto, error) {
	prospectos, err := u.prospectoRepo.Fetch(ctx)
	if err != nil {
		return nil, internalError(ctx, "Error fetching the prospectos", err)
	}
	return prospectos, nil
}

func (u *prospectoUsecase) GetActive(ctx context.Context) ([]domain.Prospecto, error) {
	prospectos, err := u.prospectoRepo.FetchActive(ctx)
	if err != nil {
		return nil, internalError(ctx, "Error fetching the active prospectos", err)
	}
	return prospectos, nil
}

func (u *prospectoUsecase) Search(ctx context.Context, query string) ([]domain.Prospecto, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return u.GetAll(ctx)
	}
	prospectos, err := u.prospectoRepo.Search(ctx, query)
	if err != nil {
		return nil, internalError(ctx, "Error searching the prospectos", err)
	}
	return prospectos, nil
}

func (u *prospectoUsecase) Get(ctx context.Context, id int64) (*domain.Prospecto, error) {
	p, err := u.prospectoRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Prospecto not found")
	}
	if err != nil {
		return nil, internalError(ctx, "Error fetching the prospecto", err)
	}
	return p, nil
}

// validate binds input and checks correo uniqueness against every other
// prospecto. excludeID is the record being updated, 0 on create.
func (u *prospectoUsecase) validate(ctx context.Context, input map[string]any, excludeID int64) (*domain.ProspectoInput, error) {
	var in domain.ProspectoInput
	errs := u.validator.Bind(input, &in)

	if in.Correo != nil && !errs.Has("correo") {
		taken, err := u.prospectoRepo.EmailTaken(ctx, *in.Correo, excludeID)
		if err != nil {
			return nil, internalError(ctx, "Error validating the prospecto", err)
		}
		if taken {
			errs.Add("correo", validation.Taken("correo"))
		}
	}

	if !errs.Empty() {
		return nil, validationError(errs)
	}
	return &in, nil
}

func correoTaken() error {
	return validationError(validation.Errors{"correo": {validation.Taken("correo")}})
}

func (u *prospectoUsecase) Create(ctx context.Context, input map[string]any) (*domain.Prospecto, error) {
	in, err := u.validate(ctx, input, 0)
	if err != nil {
		return nil, err
	}

	p := &domain.Prospecto{}
	in.Apply(p)
	if err := u.prospectoRepo.Create(ctx, p); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, correoTaken()
		}
		return nil, internalError(ctx, "Error creating the prospecto", err)
	}

	logger.FromContext(ctx).Info("Prospecto created", "prospecto_id", p.ID)
	return p, nil
}

func (u *prospectoUsecase) Update(ctx context.Context, id int64, input map[string]any) (*domain.Prospecto, error) {
	p, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	in, err := u.validate(ctx, input, id)
	if err != nil {
		return nil, err
	}

	in.Apply(p)
	if err := u.prospectoRepo.Update(ctx, p); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			return nil, correoTaken()
		case errors.Is(err, domain.ErrNotFound):
			return nil, apperror.NotFound("Prospecto not found")
		}
		return nil, internalError(ctx, "Error updating the prospecto", err)
	}

	logger.FromContext(ctx).Info("Prospecto updated", "prospecto_id", p.ID)
	return p, nil
}

func (u *prospectoUsecase) Delete(ctx context.Context, id int64) error {
	if _, err := u.Get(ctx, id); err != nil {
		return err
	}

	n, err := u.entrevistaRepo.CountByProspecto(ctx, id)
	if err != nil {
		return internalError(ctx, "Error deleting the prospecto", err)
	}
	if n > 0 {
		return apperror.Conflict(prospectoHasEntrevistasMessage)
	}

	if err := u.prospectoRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, domain.ErrReferenced):
			return apperror.Conflict(prospectoHasEntrevistasMessage)
		case errors.Is(err, domain.ErrNotFound):
			return apperror.NotFound("Prospecto not found")
		}
		return internalError(ctx, "Error deleting the prospecto", err)
	}

	logger.FromContext(ctx).Info("Prospecto deleted", "prospecto_id", id)
	return nil
}
