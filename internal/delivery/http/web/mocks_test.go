package web

import (
	"context"

	"go-recruitment-tracker/internal/domain"

	"github.com/stretchr/testify/mock"
)

type mockVacanteUC struct{ mock.Mock }

func (m *mockVacanteUC) GetAll(ctx context.Context) ([]domain.Vacante, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]domain.Vacante)
	return v, args.Error(1)
}

func (m *mockVacanteUC) GetActive(ctx context.Context) ([]domain.Vacante, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]domain.Vacante)
	return v, args.Error(1)
}

func (m *mockVacanteUC) Search(ctx context.Context, q string) ([]domain.Vacante, error) {
	args := m.Called(ctx, q)
	v, _ := args.Get(0).([]domain.Vacante)
	return v, args.Error(1)
}

func (m *mockVacanteUC) Get(ctx context.Context, id int64) (*domain.Vacante, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*domain.Vacante)
	return v, args.Error(1)
}

func (m *mockVacanteUC) Create(ctx context.Context, input map[string]any) (*domain.Vacante, error) {
	args := m.Called(ctx, input)
	v, _ := args.Get(0).(*domain.Vacante)
	return v, args.Error(1)
}

func (m *mockVacanteUC) Update(ctx context.Context, id int64, input map[string]any) (*domain.Vacante, error) {
	args := m.Called(ctx, id, input)
	v, _ := args.Get(0).(*domain.Vacante)
	return v, args.Error(1)
}

func (m *mockVacanteUC) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockProspectoUC struct{ mock.Mock }

func (m *mockProspectoUC) GetAll(ctx context.Context) ([]domain.Prospecto, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]domain.Prospecto)
	return v, args.Error(1)
}

func (m *mockProspectoUC) GetActive(ctx context.Context) ([]domain.Prospecto, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]domain.Prospecto)
	return v, args.Error(1)
}

func (m *mockProspectoUC) Search(ctx context.Context, q string) ([]domain.Prospecto, error) {
	args := m.Called(ctx, q)
	v, _ := args.Get(0).([]domain.Prospecto)
	return v, args.Error(1)
}

func (m *mockProspectoUC) Get(ctx context.Context, id int64) (*domain.Prospecto, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*domain.Prospecto)
	return v, args.Error(1)
}

func (m *mockProspectoUC) Create(ctx context.Context, input map[string]any) (*domain.Prospecto, error) {
	args := m.Called(ctx, input)
	v, _ := args.Get(0).(*domain.Prospecto)
	return v, args.Error(1)
}

func (m *mockProspectoUC) Update(ctx context.Context, id int64, input map[string]any) (*domain.Prospecto, error) {
	args := m.Called(ctx, id, input)
	v, _ := args.Get(0).(*domain.Prospecto)
	return v, args.Error(1)
}

func (m *mockProspectoUC) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockEntrevistaUC struct{ mock.Mock }

func (m *mockEntrevistaUC) GetAll(ctx context.Context) ([]domain.EntrevistaDetail, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]domain.EntrevistaDetail)
	return v, args.Error(1)
}

func (m *mockEntrevistaUC) GetByVacante(ctx context.Context, id int64) ([]domain.EntrevistaDetail, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).([]domain.EntrevistaDetail)
	return v, args.Error(1)
}

func (m *mockEntrevistaUC) GetByProspecto(ctx context.Context, id int64) ([]domain.EntrevistaDetail, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).([]domain.EntrevistaDetail)
	return v, args.Error(1)
}

func (m *mockEntrevistaUC) Get(ctx context.Context, v, p int64) (*domain.EntrevistaDetail, error) {
	args := m.Called(ctx, v, p)
	d, _ := args.Get(0).(*domain.EntrevistaDetail)
	return d, args.Error(1)
}

func (m *mockEntrevistaUC) Create(ctx context.Context, input map[string]any) (*domain.EntrevistaDetail, error) {
	args := m.Called(ctx, input)
	d, _ := args.Get(0).(*domain.EntrevistaDetail)
	return d, args.Error(1)
}

func (m *mockEntrevistaUC) Update(ctx context.Context, v, p int64, input map[string]any) (*domain.EntrevistaDetail, error) {
	args := m.Called(ctx, v, p, input)
	d, _ := args.Get(0).(*domain.EntrevistaDetail)
	return d, args.Error(1)
}

func (m *mockEntrevistaUC) Delete(ctx context.Context, v, p int64) error {
	return m.Called(ctx, v, p).Error(0)
}

func (m *mockEntrevistaUC) GetFormData(ctx context.Context) (*domain.EntrevistaFormData, error) {
	args := m.Called(ctx)
	d, _ := args.Get(0).(*domain.EntrevistaFormData)
	return d, args.Error(1)
}

func (m *mockEntrevistaUC) Export(ctx context.Context, format string) ([]byte, string, error) {
	args := m.Called(ctx, format)
	data, _ := args.Get(0).([]byte)
	return data, args.String(1), args.Error(2)
}

type mockAuthUC struct{ mock.Mock }

func (m *mockAuthUC) Register(ctx context.Context, input map[string]any, client domain.ClientInfo) (*domain.AuthResult, error) {
	args := m.Called(ctx, input, client)
	r, _ := args.Get(0).(*domain.AuthResult)
	return r, args.Error(1)
}

func (m *mockAuthUC) Login(ctx context.Context, input map[string]any, client domain.ClientInfo) (*domain.AuthResult, error) {
	args := m.Called(ctx, input, client)
	r, _ := args.Get(0).(*domain.AuthResult)
	return r, args.Error(1)
}

func (m *mockAuthUC) Logout(ctx context.Context, token string, client domain.ClientInfo) error {
	return m.Called(ctx, token, client).Error(0)
}

func (m *mockAuthUC) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *mockAuthUC) UpdateProfile(ctx context.Context, id string, input map[string]any) (*domain.User, error) {
	args := m.Called(ctx, id, input)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *mockAuthUC) ChangePassword(ctx context.Context, id string, input map[string]any) error {
	return m.Called(ctx, id, input).Error(0)
}
