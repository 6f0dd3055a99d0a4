package appointment

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/access"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

const maxListLimit = 100

// ListAppointments returns the appointments the actor may see, narrowed by
// the filter: patients only their own, doctors only theirs, clinic admins
// those of their clinic's doctors.
type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	actor access.Actor,
	filter domain.ListFilter,
) ([]dto.AppointmentListDTO, error) {

	switch actor.Role {
	case models.RolePatient:
		filter.PatientID = actor.UserID
	case models.RoleDoctor:
		filter.DoctorID = actor.UserID
	case models.RoleClinicAdmin:
		if actor.ClinicID == nil {
			return nil, httperr.ErrForbidden("forbidden", "Admin is not attached to a clinic.")
		}
		filter.ClinicID = *actor.ClinicID
	default:
		return nil, httperr.ErrForbidden("forbidden", "Unknown role.")
	}

	if filter.Limit <= 0 || filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	appointments, err := uc.repo.ListAppointments(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for i := range appointments {
		out = append(out, toListDTO(&appointments[i]))
	}

	return out, nil
}

func toListDTO(ap *models.Appointment) dto.AppointmentListDTO {
	item := dto.AppointmentListDTO{
		ID:        ap.ID,
		Date:      domain.DayKey(ap.Date),
		StartsAt:  ap.StartsAt,
		EndsAt:    ap.EndsAt,
		StartTime: schedule.Clock(ap.StartsAt),
		EndTime:   schedule.Clock(ap.EndsAt),
		Status:    ap.Status,
		DoctorID:  ap.DoctorID,
		PatientID: ap.PatientID,
		ServiceID: ap.ServiceID,
	}

	if ap.Doctor != nil {
		item.DoctorName = ap.Doctor.FullName()
	}
	if ap.Patient != nil {
		item.PatientName = ap.Patient.FullName()
	}
	if ap.Service != nil {
		item.ServiceName = ap.Service.Name
	}

	return item
}
