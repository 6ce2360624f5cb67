package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmehra/clinicdesk/internal/model"
	"github.com/dmehra/clinicdesk/internal/seed"
)

func TestDoctorsDataset(t *testing.T) {
	doctors, err := seed.Doctors()
	require.NoError(t, err)
	require.NotEmpty(t, doctors)

	seen := make(map[model.DoctorID]bool)
	for _, d := range doctors {
		assert.False(t, seen[d.ID], "duplicate doctor id %d", d.ID)
		seen[d.ID] = true
		assert.NotEmpty(t, d.Name)
		assert.NotEmpty(t, d.Specialty)
		assert.Greater(t, d.ConsultationFee, 0.0)
	}
}

func TestServicesDataset(t *testing.T) {
	services := seed.Services()
	require.Len(t, services, 11)

	seen := make(map[model.ServiceID]bool)
	var maxID model.ServiceID
	for _, s := range services {
		assert.False(t, seen[s.ID], "duplicate service id %d", s.ID)
		seen[s.ID] = true
		assert.NotEmpty(t, s.Title)
		assert.Greater(t, s.Amount, 0.0)
		if s.ID > maxID {
			maxID = s.ID
		}
	}

	assert.Equal(t, maxID+1, seed.NextServiceID)
}
