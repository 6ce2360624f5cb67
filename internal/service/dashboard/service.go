// Package dashboard computes admin dashboard statistics from current
// container snapshots on every call.
package dashboard

import (
	"github.com/dmehra/clinicdesk/internal/model"
	"github.com/dmehra/clinicdesk/internal/stats"
	"github.com/dmehra/clinicdesk/internal/store"
)

type Service struct {
	directory *store.DoctorDirectory
	catalog   *store.ServiceCatalog
	ledger    *store.AppointmentLedger
}

func NewService(directory *store.DoctorDirectory, catalog *store.ServiceCatalog, ledger *store.AppointmentLedger) *Service {
	return &Service{directory: directory, catalog: catalog, ledger: ledger}
}

func (s *Service) Overview() model.Overview {
	return stats.Overview(s.ledger.List())
}

func (s *Service) DoctorStats() []model.DoctorStats {
	return stats.PerDoctor(s.directory.List(), s.ledger.List())
}

func (s *Service) ServiceStats() []model.ServiceStats {
	return stats.PerService(s.catalog.List(), s.ledger.List())
}
