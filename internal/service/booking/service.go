// Package booking turns booking requests into ledger records. The fee and
// the display names are read from the doctor or service at booking time and
// frozen into the appointment; nothing here keeps them in sync afterwards.
package booking

import (
	"context"
	"fmt"

	"github.com/dmehra/clinicdesk/internal/model"
	"github.com/dmehra/clinicdesk/internal/store"
	"github.com/dmehra/clinicdesk/pkg/errors"
	"github.com/dmehra/clinicdesk/pkg/metrics"
)

type Service struct {
	ledger    *store.AppointmentLedger
	directory *store.DoctorDirectory
	catalog   *store.ServiceCatalog
	metrics   *metrics.Metrics
}

func NewService(ledger *store.AppointmentLedger, directory *store.DoctorDirectory, catalog *store.ServiceCatalog, m *metrics.Metrics) *Service {
	return &Service{
		ledger:    ledger,
		directory: directory,
		catalog:   catalog,
		metrics:   m,
	}
}

// BookDoctor books a consultation with a doctor, snapshotting the doctor's
// fee, name and specialty into the new appointment.
func (s *Service) BookDoctor(ctx context.Context, req *model.BookDoctorRequest) (model.Appointment, error) {
	doc, ok := s.directory.Get(req.DoctorID)
	if !ok {
		return model.Appointment{}, errors.NotFound("doctor", nil)
	}

	apt := model.Appointment{
		PatientName:   req.PatientName,
		Age:           req.Age,
		Gender:        req.Gender,
		Phone:         req.Phone,
		Email:         req.Email,
		Target:        model.DoctorTarget(doc.ID),
		DoctorName:    doc.Name,
		Specialty:     doc.Specialty,
		Fee:           doc.ConsultationFee,
		Date:          req.Date,
		Time:          req.Time,
		PaymentMethod: req.PaymentMethod,
	}

	created, err := s.ledger.Add(ctx, apt)
	if err != nil {
		return model.Appointment{}, fmt.Errorf("failed to book doctor appointment: %w", err)
	}
	s.metrics.BookingsCreated.WithLabelValues(string(model.TargetDoctor)).Inc()
	return created, nil
}

// BookService books a diagnostic service, snapshotting its price and title.
func (s *Service) BookService(ctx context.Context, req *model.BookServiceRequest) (model.Appointment, error) {
	svc, ok := s.catalog.Get(req.ServiceID)
	if !ok {
		return model.Appointment{}, errors.NotFound("service", nil)
	}

	apt := model.Appointment{
		PatientName:   req.PatientName,
		Age:           req.Age,
		Gender:        req.Gender,
		Phone:         req.Phone,
		Email:         req.Email,
		Target:        model.ServiceTarget(svc.ID),
		ServiceTitle:  svc.Title,
		Fee:           svc.Amount,
		Date:          req.Date,
		Time:          req.Time,
		PaymentMethod: req.PaymentMethod,
	}

	created, err := s.ledger.Add(ctx, apt)
	if err != nil {
		return model.Appointment{}, fmt.Errorf("failed to book service appointment: %w", err)
	}
	s.metrics.BookingsCreated.WithLabelValues(string(model.TargetService)).Inc()
	return created, nil
}

func (s *Service) ListAppointments() []model.Appointment {
	return s.ledger.List()
}

func (s *Service) GetAppointment(id model.AppointmentID) (model.Appointment, bool) {
	return s.ledger.Get(id)
}

// UpdateStatus sets the appointment's status. Any transition is allowed,
// including away from Completed or Canceled. An unknown id reports ok=false
// without failing.
func (s *Service) UpdateStatus(ctx context.Context, id model.AppointmentID, status model.AppointmentStatus) (model.Appointment, bool, error) {
	apt, ok, err := s.ledger.SetStatus(ctx, id, status)
	if err != nil {
		return model.Appointment{}, false, fmt.Errorf("failed to update appointment status: %w", err)
	}
	if ok {
		s.metrics.StatusTransitions.WithLabelValues(string(status)).Inc()
	}
	return apt, ok, nil
}
