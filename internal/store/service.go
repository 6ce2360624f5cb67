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

type serviceState struct {
	Services []model.Service `json:"services"`
	NextID   model.ServiceID `json:"next_id"`
}

// ServiceCatalog holds the diagnostic service roster. The id counter starts
// above the static dataset's range and is persisted with the records, so a
// restart never re-issues an id that is already in use.
type ServiceCatalog struct {
	mu       sync.Mutex
	st       storage.Store
	services []model.Service
	nextID   model.ServiceID
}

// NewServiceCatalog loads persisted state, seeding the static catalog when
// storage is empty.
func NewServiceCatalog(ctx context.Context, st storage.Store) (*ServiceCatalog, error) {
	c := &ServiceCatalog{st: st, nextID: seed.NextServiceID}

	raw, ok, err := st.Load(ctx, ServicesKey)
	if err != nil {
		return nil, fmt.Errorf("load services: %w", err)
	}
	if !ok {
		c.services = seed.Services()
		if err := c.persist(ctx); err != nil {
			return nil, err
		}
		return c, nil
	}

	var state serviceState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, fmt.Errorf("decode services state: %w", err)
	}
	c.services = state.Services
	c.nextID = state.NextID
	if max := maxServiceID(state.Services); c.nextID <= max {
		c.nextID = max + 1
	}
	if c.nextID < 1 {
		c.nextID = 1
	}
	return c, nil
}

// List returns a copy of the catalog.
func (c *ServiceCatalog) List() []model.Service {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Service, len(c.services))
	copy(out, c.services)
	return out
}

// Get returns the service with the given id.
func (c *ServiceCatalog) Get(id model.ServiceID) (model.Service, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, svc := range c.services {
		if svc.ID == id {
			return svc, true
		}
	}
	return model.Service{}, false
}

// Add assigns the next id and appends. An empty status defaults to
// Available.
func (c *ServiceCatalog) Add(ctx context.Context, service model.Service) (model.Service, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	service.ID = c.nextID
	if service.Status == "" {
		service.Status = model.ServiceAvailable
	}
	c.services = append(c.services, service)
	c.nextID++

	if err := c.persist(ctx); err != nil {
		return model.Service{}, err
	}
	return service, nil
}

// Update merges the patch into the matching record. Absent ids are a no-op.
func (c *ServiceCatalog) Update(ctx context.Context, id model.ServiceID, patch model.ServicePatch) (model.Service, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.services {
		if c.services[i].ID == id {
			patch.Apply(&c.services[i])
			if err := c.persist(ctx); err != nil {
				return model.Service{}, false, err
			}
			return c.services[i], true, nil
		}
	}
	return model.Service{}, false, nil
}

// Delete removes the matching record. Absent ids are a no-op.
func (c *ServiceCatalog) Delete(ctx context.Context, id model.ServiceID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, svc := range c.services {
		if svc.ID == id {
			c.services = append(c.services[:i], c.services[i+1:]...)
			return c.persist(ctx)
		}
	}
	return nil
}

// ReplaceAll swaps in a new catalog. Unlike the doctor directory, ids are
// not renumbered and the counter is left where it was.
func (c *ServiceCatalog) ReplaceAll(ctx context.Context, services []model.Service) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.services = make([]model.Service, len(services))
	copy(c.services, services)
	return c.persist(ctx)
}

func (c *ServiceCatalog) persist(ctx context.Context) error {
	state := serviceState{Services: c.services, NextID: c.nextID}
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode services state: %w", err)
	}
	if err := c.st.Save(ctx, ServicesKey, string(raw)); err != nil {
		return fmt.Errorf("persist services: %w", err)
	}
	return nil
}

func maxServiceID(services []model.Service) model.ServiceID {
	var max model.ServiceID
	for _, svc := range services {
		if svc.ID > max {
			max = svc.ID
		}
	}
	return max
}
