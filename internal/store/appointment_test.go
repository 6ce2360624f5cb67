package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmehra/clinicdesk/internal/model"
	"github.com/dmehra/clinicdesk/internal/storage"
	"github.com/dmehra/clinicdesk/internal/store"
)

func newLedger(t *testing.T) *store.AppointmentLedger {
	t.Helper()
	l, err := store.NewAppointmentLedger(context.Background(), storage.NewMemoryStore())
	require.NoError(t, err)
	return l
}

func TestAppointmentLedgerIDsStartAtOne(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()

	first, err := l.Add(ctx, model.Appointment{PatientName: "Asha", Target: model.DoctorTarget(1)})
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentID(1), first.ID)

	second, err := l.Add(ctx, model.Appointment{PatientName: "Ravi", Target: model.DoctorTarget(2)})
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentID(2), second.ID)
}

func TestAppointmentLedgerDefaultsStatusToPending(t *testing.T) {
	l := newLedger(t)

	apt, err := l.Add(context.Background(), model.Appointment{PatientName: "Asha", Target: model.ServiceTarget(3)})
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentPending, apt.Status)
	assert.False(t, apt.CreatedAt.IsZero())
}

func TestAppointmentLedgerSetStatusTouchesOnlyStatus(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()

	created, err := l.Add(ctx, model.Appointment{
		PatientName: "Asha",
		Age:         "34",
		Gender:      "female",
		Phone:       "9876500000",
		Target:      model.DoctorTarget(1),
		DoctorName:  "Dr. Asha Nair",
		Specialty:   "Cardiologist",
		Fee:         700,
		Date:        "2026-09-10",
		Time:        "10:30 AM",
	})
	require.NoError(t, err)

	updated, ok, err := l.SetStatus(ctx, created.ID, model.AppointmentCompleted)
	require.NoError(t, err)
	require.True(t, ok)

	expected := created
	expected.Status = model.AppointmentCompleted
	assert.Equal(t, expected, updated)
}

func TestAppointmentLedgerPermitsAnyTransition(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()

	apt, err := l.Add(ctx, model.Appointment{PatientName: "Asha", Target: model.DoctorTarget(1)})
	require.NoError(t, err)

	// No terminal states: Completed and Canceled can both be left again.
	for _, status := range []model.AppointmentStatus{
		model.AppointmentCompleted,
		model.AppointmentPending,
		model.AppointmentCanceled,
		model.AppointmentConfirmed,
	} {
		updated, ok, err := l.SetStatus(ctx, apt.ID, status)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, status, updated.Status)
	}
}

func TestAppointmentLedgerSetStatusUnknownIDIsNoOp(t *testing.T) {
	l := newLedger(t)

	_, ok, err := l.SetStatus(context.Background(), 42, model.AppointmentConfirmed)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAppointmentLedgerRoundTripKeepsCounter(t *testing.T) {
	st := storage.NewMemoryStore()
	ctx := context.Background()

	first, err := store.NewAppointmentLedger(ctx, st)
	require.NoError(t, err)
	apt, err := first.Add(ctx, model.Appointment{PatientName: "Asha", Target: model.DoctorTarget(1)})
	require.NoError(t, err)

	second, err := store.NewAppointmentLedger(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, first.List(), second.List())

	next, err := second.Add(ctx, model.Appointment{PatientName: "Ravi", Target: model.DoctorTarget(1)})
	require.NoError(t, err)
	assert.Equal(t, apt.ID+1, next.ID)
}
