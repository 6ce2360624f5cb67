// Package catalog exposes diagnostic service roster operations to the API
// layer.
package catalog

import (
	"context"

	"github.com/dmehra/clinicdesk/internal/model"
	"github.com/dmehra/clinicdesk/internal/store"
)

type Service struct {
	catalog *store.ServiceCatalog
}

func NewService(catalog *store.ServiceCatalog) *Service {
	return &Service{catalog: catalog}
}

func (s *Service) ListServices() []model.Service {
	return s.catalog.List()
}

func (s *Service) GetService(id model.ServiceID) (model.Service, bool) {
	return s.catalog.Get(id)
}

func (s *Service) AddService(ctx context.Context, req *model.CreateServiceRequest) (model.Service, error) {
	return s.catalog.Add(ctx, req.Service())
}

// UpdateService merges the patch; ok=false means the id was unknown and
// nothing changed.
func (s *Service) UpdateService(ctx context.Context, id model.ServiceID, patch model.ServicePatch) (model.Service, bool, error) {
	return s.catalog.Update(ctx, id, patch)
}

func (s *Service) DeleteService(ctx context.Context, id model.ServiceID) error {
	return s.catalog.Delete(ctx, id)
}

func (s *Service) ReplaceServices(ctx context.Context, services []model.Service) error {
	return s.catalog.ReplaceAll(ctx, services)
}
