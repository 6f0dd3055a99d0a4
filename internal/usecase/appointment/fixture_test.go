package appointment

import (
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/access"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

const (
	clinicID      uint = 1
	otherClinicID uint = 2
	serviceID     uint = 5
	doctorID      uint = 10
	otherDoctorID uint = 11
	patientID     uint = 20
	otherPatient  uint = 21
	adminID       uint = 30
)

var day = time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)

type recordingSink struct {
	mu     sync.Mutex
	events []audit.Event
}

func (s *recordingSink) Log(ev audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

type fixture struct {
	repo  *fakeRepo
	sink  *recordingSink
	audit *audit.Dispatcher
	once  sync.Once
}

// newFixture seeds one clinic with a 30-minute service performed by doctorID,
// working {0,120}. otherDoctorID works in the same clinic but is not assigned.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{repo: newFakeRepo(), sink: &recordingSink{}}
	f.audit = audit.NewDispatcher(f.sink, zap.NewNop())
	t.Cleanup(f.closeAudit)

	c, oc := clinicID, otherClinicID
	f.repo.addUser(models.User{ID: doctorID, ClinicID: &c, FirstName: "Ana", LastName: "Lima", Role: models.RoleDoctor})
	f.repo.addUser(models.User{ID: otherDoctorID, ClinicID: &c, FirstName: "Rui", Role: models.RoleDoctor})
	f.repo.addUser(models.User{ID: patientID, FirstName: "Pat", Role: models.RolePatient})
	f.repo.addUser(models.User{ID: otherPatient, FirstName: "Olga", Role: models.RolePatient})
	f.repo.addUser(models.User{ID: adminID, ClinicID: &c, Role: models.RoleClinicAdmin})
	f.repo.addUser(models.User{ID: 31, ClinicID: &oc, Role: models.RoleClinicAdmin})

	f.repo.addService(models.ClinicService{ID: serviceID, ClinicID: clinicID, Name: "Checkup", DurationMin: 30}, doctorID)
	f.repo.setShifts(doctorID, schedule.Interval{Start: 0, End: 120})

	return f
}

func (f *fixture) closeAudit() {
	f.once.Do(f.audit.Close)
}

// actions drains the audit queue and returns the recorded actions in order.
func (f *fixture) actions() []string {
	f.closeAudit()

	f.sink.mu.Lock()
	defer f.sink.mu.Unlock()

	out := make([]string, 0, len(f.sink.events))
	for _, ev := range f.sink.events {
		out = append(out, ev.Action)
	}
	return out
}

func (f *fixture) booker() *BookAppointment {
	return NewBookAppointment(f.repo, f.audit, zap.NewNop())
}

func asPatient(id uint) access.Actor {
	return access.Actor{UserID: id, Role: models.RolePatient}
}

func asDoctor(id uint) access.Actor {
	c := clinicID
	return access.Actor{UserID: id, Role: models.RoleDoctor, ClinicID: &c}
}

func asAdmin(id, clinic uint) access.Actor {
	return access.Actor{UserID: id, Role: models.RoleClinicAdmin, ClinicID: &clinic}
}

func booking(patient uint, start int) domain.BookingInput {
	return domain.BookingInput{
		DoctorID:  doctorID,
		ServiceID: serviceID,
		PatientID: patient,
		Date:      day,
		StartsAt:  start,
	}
}
