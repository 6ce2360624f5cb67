package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmehra/clinicdesk/internal/model"
	"github.com/dmehra/clinicdesk/internal/seed"
	"github.com/dmehra/clinicdesk/internal/storage"
)

type doctorState struct {
	Doctors []model.Doctor `json:"doctors"`
	NextID  model.DoctorID `json:"next_id"`
}

// DoctorDirectory holds the doctor roster. Ids are assigned from a counter
// that never moves backwards: deletes do not free ids for reuse.
type DoctorDirectory struct {
	mu      sync.Mutex
	st      storage.Store
	doctors []model.Doctor
	nextID  model.DoctorID
}

// NewDoctorDirectory loads persisted state, seeding from the bundled roster
// when storage is empty.
func NewDoctorDirectory(ctx context.Context, st storage.Store) (*DoctorDirectory, error) {
	d := &DoctorDirectory{st: st, nextID: 1}

	raw, ok, err := st.Load(ctx, DoctorsKey)
	if err != nil {
		return nil, fmt.Errorf("load doctors: %w", err)
	}
	if !ok {
		seeded, err := seed.Doctors()
		if err != nil {
			return nil, err
		}
		d.doctors = seeded
		d.nextID = maxDoctorID(seeded) + 1
		if err := d.persist(ctx); err != nil {
			return nil, err
		}
		return d, nil
	}

	var state doctorState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, fmt.Errorf("decode doctors state: %w", err)
	}
	d.doctors = state.Doctors
	d.nextID = state.NextID
	// A stale counter must never collide with persisted records.
	if max := maxDoctorID(state.Doctors); d.nextID <= max {
		d.nextID = max + 1
	}
	if d.nextID < 1 {
		d.nextID = 1
	}
	return d, nil
}

// List returns a copy of the roster.
func (d *DoctorDirectory) List() []model.Doctor {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]model.Doctor, len(d.doctors))
	copy(out, d.doctors)
	return out
}

// Get returns the doctor with the given id.
func (d *DoctorDirectory) Get(id model.DoctorID) (model.Doctor, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, doc := range d.doctors {
		if doc.ID == id {
			return doc, true
		}
	}
	return model.Doctor{}, false
}

// Add assigns the next id to the doctor and appends it.
func (d *DoctorDirectory) Add(ctx context.Context, doctor model.Doctor) (model.Doctor, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	doctor.ID = d.nextID
	d.doctors = append(d.doctors, doctor)
	d.nextID++

	if err := d.persist(ctx); err != nil {
		return model.Doctor{}, err
	}
	return doctor, nil
}

// Delete removes the doctor with the given id. Absent ids are a no-op and
// the counter is left alone either way.
func (d *DoctorDirectory) Delete(ctx context.Context, id model.DoctorID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, doc := range d.doctors {
		if doc.ID == id {
			d.doctors = append(d.doctors[:i], d.doctors[i+1:]...)
			return d.persist(ctx)
		}
	}
	return nil
}

// ReplaceAll swaps in a new roster. An empty roster resets the counter to 1;
// otherwise the counter restarts above the highest id present, so re-seeding
// from an external dump cannot mint colliding ids.
func (d *DoctorDirectory) ReplaceAll(ctx context.Context, doctors []model.Doctor) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.doctors = make([]model.Doctor, len(doctors))
	copy(d.doctors, doctors)
	if len(doctors) == 0 {
		d.nextID = 1
	} else {
		d.nextID = maxDoctorID(doctors) + 1
	}
	return d.persist(ctx)
}

func (d *DoctorDirectory) persist(ctx context.Context) error {
	state := doctorState{Doctors: d.doctors, NextID: d.nextID}
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode doctors state: %w", err)
	}
	if err := d.st.Save(ctx, DoctorsKey, string(raw)); err != nil {
		return fmt.Errorf("persist doctors: %w", err)
	}
	return nil
}

func maxDoctorID(doctors []model.Doctor) model.DoctorID {
	var max model.DoctorID
	for _, doc := range doctors {
		if doc.ID > max {
			max = doc.ID
		}
	}
	return max
}
