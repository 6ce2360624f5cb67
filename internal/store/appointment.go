package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/dmehra/clinicdesk/internal/model"
	"github.com/dmehra/clinicdesk/internal/storage"
)

type appointmentState struct {
	Appointments []model.Appointment `json:"appointments"`
	NextID       model.AppointmentID `json:"next_id"`
}

// AppointmentLedger holds every booking ever made. Records are never
// deleted; cancellation is a status, not a removal. Ids run sequentially
// from 1 and the counter is persisted with the records.
type AppointmentLedger struct {
	mu           sync.Mutex
	st           storage.Store
	appointments []model.Appointment
	nextID       model.AppointmentID
}

// NewAppointmentLedger loads persisted state; a fresh ledger starts empty
// with the counter at 1.
func NewAppointmentLedger(ctx context.Context, st storage.Store) (*AppointmentLedger, error) {
	l := &AppointmentLedger{st: st, nextID: 1}

	raw, ok, err := st.Load(ctx, AppointmentsKey)
	if err != nil {
		return nil, fmt.Errorf("load appointments: %w", err)
	}
	if !ok {
		return l, nil
	}

	var state appointmentState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, fmt.Errorf("decode appointments state: %w", err)
	}
	l.appointments = state.Appointments
	l.nextID = state.NextID
	if max := maxAppointmentID(state.Appointments); l.nextID <= max {
		l.nextID = max + 1
	}
	if l.nextID < 1 {
		l.nextID = 1
	}
	return l, nil
}

// List returns a copy of the ledger.
func (l *AppointmentLedger) List() []model.Appointment {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.Appointment, len(l.appointments))
	copy(out, l.appointments)
	return out
}

// Get returns the appointment with the given id.
func (l *AppointmentLedger) Get(id model.AppointmentID) (model.Appointment, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, apt := range l.appointments {
		if apt.ID == id {
			return apt, true
		}
	}
	return model.Appointment{}, false
}

// Add assigns the next sequential id and appends. An empty status defaults
// to Pending and a zero CreatedAt is stamped with the current time.
func (l *AppointmentLedger) Add(ctx context.Context, apt model.Appointment) (model.Appointment, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	apt.ID = l.nextID
	if apt.Status == "" {
		apt.Status = model.AppointmentPending
	}
	if apt.CreatedAt.IsZero() {
		apt.CreatedAt = time.Now().UTC()
	}
	l.appointments = append(l.appointments, apt)
	l.nextID++

	if err := l.persist(ctx); err != nil {
		return model.Appointment{}, err
	}
	return apt, nil
}

// SetStatus overwrites the status of the matching record, leaving every
// other field untouched. Any status may follow any other; there is no
// terminal state. Absent ids are a no-op, reported through ok=false.
func (l *AppointmentLedger) SetStatus(ctx context.Context, id model.AppointmentID, status model.AppointmentStatus) (model.Appointment, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.appointments {
		if l.appointments[i].ID == id {
			l.appointments[i].Status = status
			if err := l.persist(ctx); err != nil {
				return model.Appointment{}, false, err
			}
			return l.appointments[i], true, nil
		}
	}
	return model.Appointment{}, false, nil
}

func (l *AppointmentLedger) persist(ctx context.Context) error {
	state := appointmentState{Appointments: l.appointments, NextID: l.nextID}
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode appointments state: %w", err)
	}
	if err := l.st.Save(ctx, AppointmentsKey, string(raw)); err != nil {
		return fmt.Errorf("persist appointments: %w", err)
	}
	return nil
}

func maxAppointmentID(appointments []model.Appointment) model.AppointmentID {
	var max model.AppointmentID
	for _, apt := range appointments {
		if apt.ID > max {
			max = apt.ID
		}
	}
	return max
}
