package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/access"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type mockBooker struct{ mock.Mock }

func (m *mockBooker) Execute(ctx context.Context, actor access.Actor, in domain.BookingInput) (*models.Appointment, error) {
	args := m.Called(ctx, actor, in)
	ap, _ := args.Get(0).(*models.Appointment)
	return ap, args.Error(1)
}

type mockAvailability struct{ mock.Mock }

func (m *mockAvailability) Execute(ctx context.Context, in domain.AvailabilityInput) ([]schedule.Interval, error) {
	args := m.Called(ctx, in)
	free, _ := args.Get(0).([]schedule.Interval)
	return free, args.Error(1)
}

type mockLister struct{ mock.Mock }

func (m *mockLister) Execute(ctx context.Context, actor access.Actor, filter domain.ListFilter) ([]dto.AppointmentListDTO, error) {
	args := m.Called(ctx, actor, filter)
	items, _ := args.Get(0).([]dto.AppointmentListDTO)
	return items, args.Error(1)
}

type mockAction struct{ mock.Mock }

func (m *mockAction) Execute(ctx context.Context, actor access.Actor, id uint) (*models.Appointment, error) {
	args := m.Called(ctx, actor, id)
	ap, _ := args.Get(0).(*models.Appointment)
	return ap, args.Error(1)
}

type mockShiftReader struct{ mock.Mock }

func (m *mockShiftReader) Execute(ctx context.Context, doctorID uint) ([]schedule.Interval, error) {
	args := m.Called(ctx, doctorID)
	shifts, _ := args.Get(0).([]schedule.Interval)
	return shifts, args.Error(1)
}

type mockShiftWriter struct{ mock.Mock }

func (m *mockShiftWriter) Execute(ctx context.Context, actor access.Actor, doctorID uint, shifts []schedule.Interval) ([]schedule.Interval, error) {
	args := m.Called(ctx, actor, doctorID, shifts)
	out, _ := args.Get(0).([]schedule.Interval)
	return out, args.Error(1)
}

type mockAssigner struct{ mock.Mock }

func (m *mockAssigner) Assign(ctx context.Context, actor access.Actor, serviceID, doctorID uint) error {
	return m.Called(ctx, actor, serviceID, doctorID).Error(0)
}

func (m *mockAssigner) Unassign(ctx context.Context, actor access.Actor, serviceID, doctorID uint) error {
	return m.Called(ctx, actor, serviceID, doctorID).Error(0)
}
