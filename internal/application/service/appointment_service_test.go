package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wangari/glowdesk-api/internal/domain/entity"
	"github.com/wangari/glowdesk-api/internal/domain/enum"
	"github.com/wangari/glowdesk-api/internal/domain/repository"
	infraRepo "github.com/wangari/glowdesk-api/internal/infrastructure/repository"
	"github.com/wangari/glowdesk-api/pkg/apperror"
	"github.com/wangari/glowdesk-api/pkg/pagination"
)

type fakeAppointmentRepo struct {
	appointments map[uuid.UUID]*entity.Appointment
	overlapCount int64
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[uuid.UUID]*entity.Appointment)}
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, a *entity.Appointment) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	cp := *a
	f.appointments[a.ID] = &cp
	return nil
}

func (f *fakeAppointmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	a, ok := f.appointments[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAppointmentRepo) GetByBookingNo(ctx context.Context, bookingNo string) (*entity.Appointment, error) {
	for _, a := range f.appointments {
		if a.BookingNo == bookingNo {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) Update(ctx context.Context, a *entity.Appointment) error {
	cp := *a
	f.appointments[a.ID] = &cp
	return nil
}

func (f *fakeAppointmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.appointments, id)
	return nil
}

func (f *fakeAppointmentRepo) List(ctx context.Context, params *repository.AppointmentFilterParams) ([]entity.Appointment, int64, error) {
	var out []entity.Appointment
	for _, a := range f.appointments {
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

func (f *fakeAppointmentRepo) ListWithCursor(ctx context.Context, params *repository.AppointmentCursorFilterParams) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range f.appointments {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAppointmentRepo) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeAppointmentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.AppointmentStatus) error {
	if a, ok := f.appointments[id]; ok {
		a.Status = status
	}
	return nil
}

func (f *fakeAppointmentRepo) GetUpcoming(ctx context.Context, params *pagination.PaginationParams) ([]entity.Appointment, int64, error) {
	return nil, 0, nil
}

func (f *fakeAppointmentRepo) CountOverlapping(ctx context.Context, staffID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (int64, error) {
	return f.overlapCount, nil
}

type fakeServiceRepo struct {
	services map[uuid.UUID]*entity.Service
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: make(map[uuid.UUID]*entity.Service)}
}

func (f *fakeServiceRepo) Create(ctx context.Context, s *entity.Service) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	f.services[s.ID] = s
	return nil
}

func (f *fakeServiceRepo) CreateBatch(ctx context.Context, services []entity.Service) error {
	for i := range services {
		if err := f.Create(ctx, &services[i]); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}

func (f *fakeServiceRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Service, error) {
	var out []entity.Service
	for _, id := range ids {
		if s, ok := f.services[id]; ok {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeServiceRepo) GetByCode(ctx context.Context, code string) (*entity.Service, error) {
	for _, s := range f.services {
		if s.Code == code {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeServiceRepo) Update(ctx context.Context, s *entity.Service) error {
	f.services[s.ID] = s
	return nil
}

func (f *fakeServiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.services, id)
	return nil
}

func (f *fakeServiceRepo) List(ctx context.Context, params *repository.ServiceFilterParams) ([]entity.Service, int64, error) {
	var out []entity.Service
	for _, s := range f.services {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

type fakeStaffRepo struct {
	staff map[uuid.UUID]*entity.Staff
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{staff: make(map[uuid.UUID]*entity.Staff)}
}

func (f *fakeStaffRepo) Create(ctx context.Context, s *entity.Staff) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	f.staff[s.ID] = s
	return nil
}

func (f *fakeStaffRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Staff, error) {
	s, ok := f.staff[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}

func (f *fakeStaffRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Staff, error) {
	return nil, nil
}

func (f *fakeStaffRepo) Update(ctx context.Context, s *entity.Staff) error {
	f.staff[s.ID] = s
	return nil
}

func (f *fakeStaffRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.staff, id)
	return nil
}

func (f *fakeStaffRepo) List(ctx context.Context, params *pagination.PaginationParams, search string, activeOnly bool) ([]entity.Staff, int64, error) {
	var out []entity.Staff
	for _, s := range f.staff {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (f *fakeCustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	f.customers[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (f *fakeCustomerRepo) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	return nil, nil
}

func (f *fakeCustomerRepo) GetByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	return nil, nil
}

func (f *fakeCustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	f.customers[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.customers, id)
	return nil
}

func (f *fakeCustomerRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	var out []entity.Customer
	for _, c := range f.customers {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (f *fakeCustomerRepo) ListWithCursor(ctx context.Context, params *pagination.CursorParams, search string) ([]entity.Customer, error) {
	var out []entity.Customer
	for _, c := range f.customers {
		out = append(out, *c)
	}
	return out, nil
}

func newAppointmentFixture() (*AppointmentService, *fakeAppointmentRepo, *fakeServiceRepo, *fakeStaffRepo, *fakeCustomerRepo) {
	appointmentRepo := newFakeAppointmentRepo()
	serviceRepo := newFakeServiceRepo()
	staffRepo := newFakeStaffRepo()
	customerRepo := newFakeCustomerRepo()
	svc := NewAppointmentService(appointmentRepo, serviceRepo, staffRepo, customerRepo)
	return svc, appointmentRepo, serviceRepo, staffRepo, customerRepo
}

func salonContext(salonID uuid.UUID) context.Context {
	return infraRepo.WithSalon(context.Background(), salonID)
}

func TestCreateAppointmentDerivesEndTimeAndAmount(t *testing.T) {
	svc, _, serviceRepo, staffRepo, _ := newAppointmentFixture()
	ctx := salonContext(uuid.New())

	catalogEntry := &entity.Service{Name: "Deep Tissue Massage", Price: 8500, DurationMinutes: 60, Active: true}
	require.NoError(t, serviceRepo.Create(ctx, catalogEntry))

	member := &entity.Staff{Name: "Amina", Active: true}
	require.NoError(t, staffRepo.Create(ctx, member))

	start := time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)
	appointment, err := svc.CreateAppointment(ctx, &CreateAppointmentInput{
		UserID:    uuid.New(),
		StaffID:   &member.ID,
		ServiceID: &catalogEntry.ID,
		StartTime: &start,
	})
	require.NoError(t, err)

	assert.Equal(t, enum.AppointmentStatusPending, appointment.Status)
	assert.Equal(t, int64(8500), appointment.TotalAmount)
	require.NotNil(t, appointment.EndTime)
	assert.Equal(t, start.Add(60*time.Minute), *appointment.EndTime)
	assert.NotEmpty(t, appointment.BookingNo)
}

func TestCreateAppointmentRequiresSalonContext(t *testing.T) {
	svc, _, _, _, _ := newAppointmentFixture()

	_, err := svc.CreateAppointment(context.Background(), &CreateAppointmentInput{UserID: uuid.New()})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCreateAppointmentRejectsDoubleBooking(t *testing.T) {
	svc, appointmentRepo, serviceRepo, staffRepo, _ := newAppointmentFixture()
	ctx := salonContext(uuid.New())

	catalogEntry := &entity.Service{Name: "Manicure", Price: 3000, DurationMinutes: 45, Active: true}
	require.NoError(t, serviceRepo.Create(ctx, catalogEntry))
	member := &entity.Staff{Name: "Wanjiru", Active: true}
	require.NoError(t, staffRepo.Create(ctx, member))

	appointmentRepo.overlapCount = 1

	start := time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC)
	_, err := svc.CreateAppointment(ctx, &CreateAppointmentInput{
		UserID:    uuid.New(),
		StaffID:   &member.ID,
		ServiceID: &catalogEntry.ID,
		StartTime: &start,
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestCreateAppointmentRejectsInactiveStaff(t *testing.T) {
	svc, _, _, staffRepo, _ := newAppointmentFixture()
	ctx := salonContext(uuid.New())

	member := &entity.Staff{Name: "Njeri", Active: false}
	require.NoError(t, staffRepo.Create(ctx, member))

	_, err := svc.CreateAppointment(ctx, &CreateAppointmentInput{
		UserID:  uuid.New(),
		StaffID: &member.ID,
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCancelAppointment(t *testing.T) {
	svc, appointmentRepo, _, _, _ := newAppointmentFixture()
	ctx := salonContext(uuid.New())

	appointment := &entity.Appointment{Status: enum.AppointmentStatusConfirmed, BookingNo: "BK-1"}
	require.NoError(t, appointmentRepo.Create(ctx, appointment))

	require.NoError(t, svc.CancelAppointment(ctx, appointment.ID, "staff"))

	stored, err := appointmentRepo.GetByID(ctx, appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.AppointmentStatusCancelled, stored.Status)
	require.NotNil(t, stored.CancelledBy)
	assert.Equal(t, "staff", *stored.CancelledBy)
}

func TestCancelAppointmentDefaultsToCustomer(t *testing.T) {
	svc, appointmentRepo, _, _, _ := newAppointmentFixture()
	ctx := salonContext(uuid.New())

	appointment := &entity.Appointment{Status: enum.AppointmentStatusPending, BookingNo: "BK-2"}
	require.NoError(t, appointmentRepo.Create(ctx, appointment))

	require.NoError(t, svc.CancelAppointment(ctx, appointment.ID, "someone-else"))

	stored, _ := appointmentRepo.GetByID(ctx, appointment.ID)
	require.NotNil(t, stored.CancelledBy)
	assert.Equal(t, "customer", *stored.CancelledBy)
}

func TestCancelCompletedAppointmentFails(t *testing.T) {
	svc, appointmentRepo, _, _, _ := newAppointmentFixture()
	ctx := salonContext(uuid.New())

	appointment := &entity.Appointment{Status: enum.AppointmentStatusCompleted, BookingNo: "BK-3"}
	require.NoError(t, appointmentRepo.Create(ctx, appointment))

	err := svc.CancelAppointment(ctx, appointment.ID, "customer")
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestRescheduleAppointmentPreservesDuration(t *testing.T) {
	svc, appointmentRepo, _, _, _ := newAppointmentFixture()
	ctx := salonContext(uuid.New())

	start := time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)
	appointment := &entity.Appointment{
		Status:    enum.AppointmentStatusConfirmed,
		StartTime: &start,
		EndTime:   &end,
		BookingNo: "BK-4",
	}
	require.NoError(t, appointmentRepo.Create(ctx, appointment))

	newStart := time.Date(2024, 6, 12, 15, 0, 0, 0, time.UTC)
	updated, err := svc.RescheduleAppointment(ctx, &RescheduleAppointmentInput{ID: appointment.ID, StartTime: newStart})
	require.NoError(t, err)

	assert.Equal(t, newStart, *updated.StartTime)
	assert.Equal(t, newStart.Add(90*time.Minute), *updated.EndTime)
}

func TestRescheduleCancelledAppointmentFails(t *testing.T) {
	svc, appointmentRepo, _, _, _ := newAppointmentFixture()
	ctx := salonContext(uuid.New())

	appointment := &entity.Appointment{Status: enum.AppointmentStatusCancelled, BookingNo: "BK-5"}
	require.NoError(t, appointmentRepo.Create(ctx, appointment))

	_, err := svc.RescheduleAppointment(ctx, &RescheduleAppointmentInput{
		ID:        appointment.ID,
		StartTime: time.Date(2024, 6, 12, 15, 0, 0, 0, time.UTC),
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestUpdateAppointmentStatusRejectsUnknownStatus(t *testing.T) {
	svc, appointmentRepo, _, _, _ := newAppointmentFixture()
	ctx := salonContext(uuid.New())

	appointment := &entity.Appointment{Status: enum.AppointmentStatusPending, BookingNo: "BK-6"}
	require.NoError(t, appointmentRepo.Create(ctx, appointment))

	err := svc.UpdateAppointmentStatus(ctx, appointment.ID, enum.AppointmentStatus("sideways"))
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}
