package appointment

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// fakeRepo is an in-memory Repository. LockDoctorDay holds a real mutex per
// (doctor, day) until the surrounding WithTransaction returns.
type fakeRepo struct {
	mu sync.Mutex

	users        map[uint]*models.User
	services     map[uint]*models.ClinicService
	links        map[[2]uint]bool
	shifts       map[uint][]schedule.Interval
	appointments map[uint]*models.Appointment
	nextID       uint

	dayLocks  map[string]*sync.Mutex
	lockCalls int

	createErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:        map[uint]*models.User{},
		services:     map[uint]*models.ClinicService{},
		links:        map[[2]uint]bool{},
		shifts:       map[uint][]schedule.Interval{},
		appointments: map[uint]*models.Appointment{},
		dayLocks:     map[string]*sync.Mutex{},
	}
}

func (r *fakeRepo) addUser(u models.User) *models.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = &u
	return &u
}

func (r *fakeRepo) addService(s models.ClinicService, doctorIDs ...uint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.services[s.ID] = &s
	for _, id := range doctorIDs {
		r.links[[2]uint{s.ID, id}] = true
	}
}

func (r *fakeRepo) setShifts(doctorID uint, shifts ...schedule.Interval) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shifts[doctorID] = shifts
}

func (r *fakeRepo) scheduledCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, ap := range r.appointments {
		if domain.Status(ap.Status).Occupies() {
			n++
		}
	}
	return n
}

// --------------------------------------------------
// Unit of work
// --------------------------------------------------

type fakeTx struct {
	*fakeRepo
	held []*sync.Mutex
}

func (tx *fakeTx) LockDoctorDay(_ context.Context, doctorID uint, date time.Time) error {
	key := fmt.Sprintf("%d/%s", doctorID, domain.DayKey(date))

	tx.fakeRepo.mu.Lock()
	tx.lockCalls++
	m, ok := tx.dayLocks[key]
	if !ok {
		m = &sync.Mutex{}
		tx.dayLocks[key] = m
	}
	tx.fakeRepo.mu.Unlock()

	m.Lock()
	tx.held = append(tx.held, m)
	return nil
}

func (r *fakeRepo) WithTransaction(_ context.Context, fn func(tx domain.UnitOfWork) error) error {
	tx := &fakeTx{fakeRepo: r}
	defer func() {
		for _, m := range tx.held {
			m.Unlock()
		}
	}()
	return fn(tx)
}

// --------------------------------------------------
// Directory
// --------------------------------------------------

func (r *fakeRepo) GetService(_ context.Context, id uint) (*models.ClinicService, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.services[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	out := *s
	out.DoctorIDs = nil
	for link := range r.links {
		if link[0] == id {
			out.DoctorIDs = append(out.DoctorIDs, link[1])
		}
	}
	return &out, nil
}

func (r *fakeRepo) GetUser(_ context.Context, id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *u
	return &out, nil
}

// --------------------------------------------------
// Store
// --------------------------------------------------

func (r *fakeRepo) ListShifts(_ context.Context, doctorID uint) ([]schedule.Interval, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]schedule.Interval(nil), r.shifts[doctorID]...), nil
}

func (r *fakeRepo) ReplaceShifts(_ context.Context, doctorID uint, shifts []schedule.Interval) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shifts[doctorID] = append([]schedule.Interval(nil), shifts...)
	return nil
}

func (r *fakeRepo) LockDoctorDay(context.Context, uint, time.Time) error {
	return nil
}

func (r *fakeRepo) ListBookedIntervals(_ context.Context, doctorID uint, date time.Time) ([]schedule.Interval, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []schedule.Interval{}
	for _, ap := range r.appointments {
		if ap.DoctorID == doctorID &&
			domain.Status(ap.Status).Occupies() &&
			domain.DayKey(ap.Date) == domain.DayKey(date) {
			out = append(out, domain.Slot(ap))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out, nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return r.createErr
	}

	r.nextID++
	ap.ID = r.nextID
	stored := *ap
	r.appointments[ap.ID] = &stored
	return nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *ap
	return &out, nil
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *ap
	r.appointments[ap.ID] = &stored
	return nil
}

func (r *fakeRepo) ListAppointments(_ context.Context, f domain.ListFilter) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []models.Appointment{}
	for _, ap := range r.appointments {
		if f.DoctorID != 0 && ap.DoctorID != f.DoctorID {
			continue
		}
		if f.PatientID != 0 && ap.PatientID != f.PatientID {
			continue
		}
		if f.ServiceID != 0 && ap.ServiceID != f.ServiceID {
			continue
		}
		if f.Date != nil && domain.DayKey(ap.Date) != domain.DayKey(*f.Date) {
			continue
		}
		if f.ClinicID != 0 {
			doctor := r.users[ap.DoctorID]
			if doctor == nil || doctor.ClinicID == nil || *doctor.ClinicID != f.ClinicID {
				continue
			}
		}
		out = append(out, *ap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeRepo) AssignDoctor(_ context.Context, serviceID, doctorID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := [2]uint{serviceID, doctorID}
	if r.links[key] {
		return httperr.ErrConflict("doctor_already_assigned", "")
	}
	r.links[key] = true
	return nil
}

func (r *fakeRepo) UnassignDoctor(_ context.Context, serviceID, doctorID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := [2]uint{serviceID, doctorID}
	if !r.links[key] {
		return false, nil
	}
	delete(r.links, key)
	return true, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
