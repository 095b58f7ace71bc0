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

const vacanteHasEntrevistasMessage = "Cannot delete the vacante because it has associated entrevistas"

type vacanteUsecase struct {
	vacanteRepo    domain.VacanteRepository
	entrevistaRepo domain.EntrevistaRepository
	validator      *validation.Validator
}

func NewVacanteUsecase(vacanteRepo domain.VacanteRepository, entrevistaRepo domain.EntrevistaRepository, v *validation.Validator) domain.VacanteUsecase {
	return &vacanteUsecase{
		vacanteRepo:    vacanteRepo,
		entrevistaRepo: entrevistaRepo,
		validator:      v,
	}
}

func (u *vacanteUsecase) GetAll(ctx context.Context) ([]domain.Vacante, error) {
	vacantes, err := u.vacanteRepo.Fetch(ctx)
	if err != nil {
		return nil, internalError(ctx, "Error fetching the vacantes", err)
	}
	return vacantes, nil
}

func (u *vacanteUsecase) GetActive(ctx context.Context) ([]domain.Vacante, error) {
	vacantes, err := u.vacanteRepo.FetchActive(ctx)
	if err != nil {
		return nil, internalError(ctx, "Error fetching the active vacantes", err)
	}
	return vacantes, nil
}

func (u *vacanteUsecase) Search(ctx context.Context, query string) ([]domain.Vacante, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return u.GetAll(ctx)
	}
	vacantes, err := u.vacanteRepo.Search(ctx, query)
	if err != nil {
		return nil, internalError(ctx, "Error searching the vacantes", err)
	}
	return vacantes, nil
}

func (u *vacanteUsecase) Get(ctx context.Context, id int64) (*domain.Vacante, error) {
	v, err := u.vacanteRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Vacante not found")
	}
	if err != nil {
		return nil, internalError(ctx, "Error fetching the vacante", err)
	}
	return v, nil
}

func (u *vacanteUsecase) Create(ctx context.Context, input map[string]any) (*domain.Vacante, error) {
	var in domain.VacanteInput
	if errs := u.validator.Bind(input, &in); !errs.Empty() {
		return nil, validationError(errs)
	}

	v := &domain.Vacante{}
	in.Apply(v)
	if err := u.vacanteRepo.Create(ctx, v); err != nil {
		return nil, internalError(ctx, "Error creating the vacante", err)
	}

	logger.FromContext(ctx).Info("Vacante created", "vacante_id", v.ID)
	return v, nil
}

func (u *vacanteUsecase) Update(ctx context.Context, id int64, input map[string]any) (*domain.Vacante, error) {
	v, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var in domain.VacanteInput
	if errs := u.validator.Bind(input, &in); !errs.Empty() {
		return nil, validationError(errs)
	}

	in.Apply(v)
	if err := u.vacanteRepo.Update(ctx, v); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Vacante not found")
		}
		return nil, internalError(ctx, "Error updating the vacante", err)
	}

	logger.FromContext(ctx).Info("Vacante updated", "vacante_id", v.ID)
	return v, nil
}

func (u *vacanteUsecase) Delete(ctx context.Context, id int64) error {
	if _, err := u.Get(ctx, id); err != nil {
		return err
	}

	n, err := u.entrevistaRepo.CountByVacante(ctx, id)
	if err != nil {
		return internalError(ctx, "Error deleting the vacante", err)
	}
	if n > 0 {
		return apperror.Conflict(vacanteHasEntrevistasMessage)
	}

	if err := u.vacanteRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, domain.ErrReferenced):
			return apperror.Conflict(vacanteHasEntrevistasMessage)
		case errors.Is(err, domain.ErrNotFound):
			return apperror.NotFound("Vacante not found")
		}
		return internalError(ctx, "Error deleting the vacante", err)
	}

	logger.FromContext(ctx).Info("Vacante deleted", "vacante_id", id)
	return nil
}
