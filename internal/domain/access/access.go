package access

import "github.com/BruksfildServices01/clinic-scheduler/internal/models"

// Actor is the authenticated caller of a use case.
type Actor struct {
	UserID   uint
	Role     string
	ClinicID *uint
}

func (a Actor) Is(role string) bool {
	return a.Role == role
}

func (a Actor) InClinic(clinicID *uint) bool {
	return a.ClinicID != nil && clinicID != nil && *a.ClinicID == *clinicID
}

// CanBook: only the patient themself may book on their behalf.
func CanBook(actor Actor, patientID uint) bool {
	return actor.UserID == patientID
}

// CanManageDoctor: the doctor, or an admin of the doctor's clinic.
func CanManageDoctor(actor Actor, doctor *models.User) bool {
	if doctor == nil {
		return false
	}
	if actor.UserID == doctor.ID {
		return true
	}
	return actor.Is(models.RoleClinicAdmin) && actor.InClinic(doctor.ClinicID)
}

// CanManageClinic: clinic admins act on their own clinic only.
func CanManageClinic(actor Actor, clinicID uint) bool {
	return actor.Is(models.RoleClinicAdmin) && actor.InClinic(&clinicID)
}

// CanViewAppointment: the patient, the doctor, or an admin of the doctor's clinic.
func CanViewAppointment(actor Actor, ap *models.Appointment, doctorClinicID *uint) bool {
	switch {
	case ap.PatientID == actor.UserID:
		return true
	case ap.DoctorID == actor.UserID:
		return true
	case actor.Is(models.RoleClinicAdmin):
		return actor.InClinic(doctorClinicID)
	}
	return false
}

// CanCancel follows the visibility rule.
func CanCancel(actor Actor, ap *models.Appointment, doctorClinicID *uint) bool {
	return CanViewAppointment(actor, ap, doctorClinicID)
}

// CanComplete: only the appointment's doctor.
func CanComplete(actor Actor, ap *models.Appointment) bool {
	return ap.DoctorID == actor.UserID
}
