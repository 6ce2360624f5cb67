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

func newDirectory(t *testing.T) (*store.DoctorDirectory, storage.Store) {
	t.Helper()
	st := storage.NewMemoryStore()
	d, err := store.NewDoctorDirectory(context.Background(), st)
	require.NoError(t, err)
	return d, st
}

func TestDoctorDirectorySeedsWhenEmpty(t *testing.T) {
	d, st := newDirectory(t)

	doctors := d.List()
	require.NotEmpty(t, doctors)

	// Seeding must have been mirrored to storage.
	_, ok, err := st.Load(context.Background(), store.DoctorsKey)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDoctorDirectoryAddAssignsDistinctIncreasingIDs(t *testing.T) {
	d, _ := newDirectory(t)
	ctx := context.Background()

	var last model.DoctorID
	for i := 0; i < 5; i++ {
		doc, err := d.Add(ctx, model.Doctor{Name: "Dr. Test", Specialty: "GP"})
		require.NoError(t, err)
		assert.Greater(t, doc.ID, last)
		last = doc.ID
	}
}

func TestDoctorDirectoryReplaceAllEmptyResetsCounter(t *testing.T) {
	d, _ := newDirectory(t)
	ctx := context.Background()

	require.NoError(t, d.ReplaceAll(ctx, nil))
	assert.Empty(t, d.List())

	doc, err := d.Add(ctx, model.Doctor{Name: "Dr. First", Specialty: "GP"})
	require.NoError(t, err)
	assert.Equal(t, model.DoctorID(1), doc.ID)
}

func TestDoctorDirectoryReplaceAllCountsAboveMaxID(t *testing.T) {
	d, _ := newDirectory(t)
	ctx := context.Background()

	require.NoError(t, d.ReplaceAll(ctx, []model.Doctor{
		{ID: 3, Name: "Dr. A", Specialty: "GP"},
		{ID: 7, Name: "Dr. B", Specialty: "ENT"},
		{ID: 2, Name: "Dr. C", Specialty: "Cardio"},
	}))

	doc, err := d.Add(ctx, model.Doctor{Name: "Dr. D", Specialty: "Neuro"})
	require.NoError(t, err)
	assert.Equal(t, model.DoctorID(8), doc.ID)
}

func TestDoctorDirectoryDeleteNeverReusesID(t *testing.T) {
	d, _ := newDirectory(t)
	ctx := context.Background()

	doc, err := d.Add(ctx, model.Doctor{Name: "Dr. Gone", Specialty: "GP"})
	require.NoError(t, err)
	require.NoError(t, d.Delete(ctx, doc.ID))

	next, err := d.Add(ctx, model.Doctor{Name: "Dr. Next", Specialty: "GP"})
	require.NoError(t, err)
	assert.Equal(t, doc.ID+1, next.ID)
}

func TestDoctorDirectoryDeleteIsIdempotent(t *testing.T) {
	d, _ := newDirectory(t)
	ctx := context.Background()

	doc, err := d.Add(ctx, model.Doctor{Name: "Dr. Twice", Specialty: "GP"})
	require.NoError(t, err)

	before := len(d.List())
	require.NoError(t, d.Delete(ctx, doc.ID))
	require.NoError(t, d.Delete(ctx, doc.ID))
	assert.Len(t, d.List(), before-1)
}

func TestDoctorDirectoryRoundTrip(t *testing.T) {
	st := storage.NewMemoryStore()
	ctx := context.Background()

	first, err := store.NewDoctorDirectory(ctx, st)
	require.NoError(t, err)
	added, err := first.Add(ctx, model.Doctor{Name: "Dr. Persisted", Specialty: "GP"})
	require.NoError(t, err)

	// A second directory over the same storage sees the same roster and
	// keeps assigning fresh ids.
	second, err := store.NewDoctorDirectory(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, first.List(), second.List())

	next, err := second.Add(ctx, model.Doctor{Name: "Dr. After", Specialty: "GP"})
	require.NoError(t, err)
	assert.Greater(t, next.ID, added.ID)
}
