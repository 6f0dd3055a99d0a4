package doctor

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) WithTransaction(ctx context.Context, fn func(tx domain.UnitOfWork) error) error {
	m.Called(ctx)
	return fn(m)
}

func (m *MockRepository) GetService(ctx context.Context, id uint) (*models.ClinicService, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ClinicService), args.Error(1)
}

func (m *MockRepository) GetUser(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockRepository) ListShifts(ctx context.Context, doctorID uint) ([]schedule.Interval, error) {
	args := m.Called(ctx, doctorID)
	return args.Get(0).([]schedule.Interval), args.Error(1)
}

func (m *MockRepository) ReplaceShifts(ctx context.Context, doctorID uint, shifts []schedule.Interval) error {
	return m.Called(ctx, doctorID, shifts).Error(0)
}

func (m *MockRepository) LockDoctorDay(ctx context.Context, doctorID uint, date time.Time) error {
	return m.Called(ctx, doctorID, date).Error(0)
}

func (m *MockRepository) ListBookedIntervals(ctx context.Context, doctorID uint, date time.Time) ([]schedule.Interval, error) {
	args := m.Called(ctx, doctorID, date)
	return args.Get(0).([]schedule.Interval), args.Error(1)
}

func (m *MockRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	return m.Called(ctx, ap).Error(0)
}

func (m *MockRepository) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	return m.Called(ctx, ap).Error(0)
}

func (m *MockRepository) ListAppointments(ctx context.Context, filter domain.ListFilter) ([]models.Appointment, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockRepository) AssignDoctor(ctx context.Context, serviceID, doctorID uint) error {
	return m.Called(ctx, serviceID, doctorID).Error(0)
}

func (m *MockRepository) UnassignDoctor(ctx context.Context, serviceID, doctorID uint) (bool, error) {
	args := m.Called(ctx, serviceID, doctorID)
	return args.Bool(0), args.Error(1)
}

var _ domain.Repository = (*MockRepository)(nil)
