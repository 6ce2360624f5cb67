package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmehra/clinicdesk/internal/model"
	"github.com/dmehra/clinicdesk/internal/stats"
)

func TestOverview(t *testing.T) {
	appointments := []model.Appointment{
		{ID: 1, Fee: 100, Status: model.AppointmentCompleted},
		{ID: 2, Fee: 50, Status: model.AppointmentPending},
		{ID: 3, Fee: 200, Status: model.AppointmentCompleted},
		{ID: 4, Fee: 75, Status: model.AppointmentCanceled},
	}

	o := stats.Overview(appointments)
	assert.Equal(t, 4, o.TotalAppointments)
	assert.Equal(t, 2, o.Completed)
	assert.Equal(t, 300.0, o.Earnings)
}

func TestOverviewEmpty(t *testing.T) {
	o := stats.Overview(nil)
	assert.Zero(t, o.TotalAppointments)
	assert.Zero(t, o.Completed)
	assert.Zero(t, o.Earnings)
}

func TestPerServiceAggregation(t *testing.T) {
	services := []model.Service{
		{ID: 1, Title: "Eye Check-Up"},
		{ID: 2, Title: "X-Ray Scan"},
	}
	appointments := []model.Appointment{
		{ID: 1, Target: model.ServiceTarget(1), Fee: 100, Status: model.AppointmentCompleted},
		{ID: 2, Target: model.ServiceTarget(1), Fee: 50, Status: model.AppointmentPending},
	}

	rows := stats.PerService(services, appointments)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].Total)
	assert.Equal(t, 1, rows[0].Completed)
	assert.Equal(t, 1, rows[0].Pending)
	assert.Equal(t, 100.0, rows[0].Earnings)

	// A service with no bookings reports zeros, it is not dropped.
	assert.Equal(t, model.ServiceID(2), rows[1].ServiceID)
	assert.Zero(t, rows[1].Total)
	assert.Zero(t, rows[1].Earnings)
}

func TestPerDoctorZeroBookingsGetZeroRow(t *testing.T) {
	doctors := []model.Doctor{
		{ID: 4, Name: "Dr. Vikram Rao", Specialty: "Neurologist"},
	}

	rows := stats.PerDoctor(doctors, nil)
	require.Len(t, rows, 1)
	assert.Equal(t, model.DoctorID(4), rows[0].DoctorID)
	assert.Zero(t, rows[0].Total)
	assert.Zero(t, rows[0].Pending)
	assert.Zero(t, rows[0].Confirmed)
	assert.Zero(t, rows[0].Completed)
	assert.Zero(t, rows[0].Canceled)
	assert.Zero(t, rows[0].Earnings)
}

func TestPerDoctorIgnoresServiceBookingsWithSameID(t *testing.T) {
	doctors := []model.Doctor{{ID: 1, Name: "Dr. Asha Nair", Specialty: "Cardiologist"}}
	appointments := []model.Appointment{
		{ID: 1, Target: model.DoctorTarget(1), Fee: 700, Status: model.AppointmentCompleted},
		// Same numeric id, different kind: must not cross-match.
		{ID: 2, Target: model.ServiceTarget(1), Fee: 250, Status: model.AppointmentCompleted},
	}

	rows := stats.PerDoctor(doctors, appointments)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Total)
	assert.Equal(t, 700.0, rows[0].Earnings)
}

func TestPerDoctorPartitionsByStatus(t *testing.T) {
	doctors := []model.Doctor{{ID: 2, Name: "Dr. Rohan Mehta", Specialty: "Ortho"}}
	appointments := []model.Appointment{
		{ID: 1, Target: model.DoctorTarget(2), Fee: 600, Status: model.AppointmentPending},
		{ID: 2, Target: model.DoctorTarget(2), Fee: 600, Status: model.AppointmentConfirmed},
		{ID: 3, Target: model.DoctorTarget(2), Fee: 600, Status: model.AppointmentCompleted},
		{ID: 4, Target: model.DoctorTarget(2), Fee: 600, Status: model.AppointmentCanceled},
	}

	rows := stats.PerDoctor(doctors, appointments)
	require.Len(t, rows, 1)
	assert.Equal(t, 4, rows[0].Total)
	assert.Equal(t, 1, rows[0].Pending)
	assert.Equal(t, 1, rows[0].Confirmed)
	assert.Equal(t, 1, rows[0].Completed)
	assert.Equal(t, 1, rows[0].Canceled)
	assert.Equal(t, 600.0, rows[0].Earnings)
}
