// Package directory exposes doctor roster operations to the API layer.
package directory

import (
	"context"

	"github.com/dmehra/clinicdesk/internal/model"
	"github.com/dmehra/clinicdesk/internal/store"
)

type Service struct {
	directory *store.DoctorDirectory
}

func NewService(directory *store.DoctorDirectory) *Service {
	return &Service{directory: directory}
}

func (s *Service) ListDoctors() []model.Doctor {
	return s.directory.List()
}

func (s *Service) GetDoctor(id model.DoctorID) (model.Doctor, bool) {
	return s.directory.Get(id)
}

func (s *Service) AddDoctor(ctx context.Context, req *model.CreateDoctorRequest) (model.Doctor, error) {
	return s.directory.Add(ctx, req.Doctor())
}

func (s *Service) DeleteDoctor(ctx context.Context, id model.DoctorID) error {
	return s.directory.Delete(ctx, id)
}

func (s *Service) ReplaceDoctors(ctx context.Context, doctors []model.Doctor) error {
	return s.directory.ReplaceAll(ctx, doctors)
}
