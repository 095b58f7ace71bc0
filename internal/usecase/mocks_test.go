package usecase_test

import (
	"context"

	"go-recruitment-tracker/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockVacanteRepo struct {
	mock.Mock
}

func (m *MockVacanteRepo) Fetch(ctx context.Context) ([]domain.Vacante, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vacante), args.Error(1)
}

func (m *MockVacanteRepo) FetchActive(ctx context.Context) ([]domain.Vacante, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vacante), args.Error(1)
}

func (m *MockVacanteRepo) Search(ctx context.Context, query string) ([]domain.Vacante, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vacante), args.Error(1)
}

func (m *MockVacanteRepo) GetByID(ctx context.Context, id int64) (*domain.Vacante, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vacante), args.Error(1)
}

func (m *MockVacanteRepo) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockVacanteRepo) Create(ctx context.Context, v *domain.Vacante) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVacanteRepo) Update(ctx context.Context, v *domain.Vacante) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVacanteRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockProspectoRepo struct {
	mock.Mock
}

func (m *MockProspectoRepo) Fetch(ctx context.Context) ([]domain.Prospecto, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Prospecto), args.Error(1)
}

func (m *MockProspectoRepo) FetchActive(ctx context.Context) ([]domain.Prospecto, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Prospecto), args.Error(1)
}

func (m *MockProspectoRepo) Search(ctx context.Context, query string) ([]domain.Prospecto, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Prospecto), args.Error(1)
}

func (m *MockProspectoRepo) GetByID(ctx context.Context, id int64) (*domain.Prospecto, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prospecto), args.Error(1)
}

func (m *MockProspectoRepo) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProspectoRepo) EmailTaken(ctx context.Context, correo string, excludeID int64) (bool, error) {
	args := m.Called(ctx, correo, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProspectoRepo) Create(ctx context.Context, p *domain.Prospecto) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProspectoRepo) Update(ctx context.Context, p *domain.Prospecto) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProspectoRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockEntrevistaRepo struct {
	mock.Mock
}

func (m *MockEntrevistaRepo) Fetch(ctx context.Context, filter domain.EntrevistaFilter, rel domain.EntrevistaRelations) ([]domain.EntrevistaDetail, error) {
	args := m.Called(ctx, filter, rel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EntrevistaDetail), args.Error(1)
}

func (m *MockEntrevistaRepo) GetByPair(ctx context.Context, vacanteID, prospectoID int64, rel domain.EntrevistaRelations) (*domain.EntrevistaDetail, error) {
	args := m.Called(ctx, vacanteID, prospectoID, rel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EntrevistaDetail), args.Error(1)
}

func (m *MockEntrevistaRepo) ExistsPair(ctx context.Context, vacanteID, prospectoID int64) (bool, error) {
	args := m.Called(ctx, vacanteID, prospectoID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEntrevistaRepo) Create(ctx context.Context, e *domain.Entrevista) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockEntrevistaRepo) Update(ctx context.Context, e *domain.Entrevista) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockEntrevistaRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockEntrevistaRepo) CountByVacante(ctx context.Context, vacanteID int64) (int64, error) {
	args := m.Called(ctx, vacanteID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEntrevistaRepo) CountByProspecto(ctx context.Context, prospectoID int64) (int64, error) {
	args := m.Called(ctx, prospectoID)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func boolPtr(b bool) *bool { return &b }
