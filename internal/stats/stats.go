// Package stats derives dashboard totals from container snapshots. It owns
// no state and keeps no caches; every call rescans the slices it is given,
// which is fine at clinic scale.
package stats

import (
	"github.com/dmehra/clinicdesk/internal/model"
)

// Overview computes the global totals: appointment count, completed count
// and earnings (sum of fees over completed appointments).
func Overview(appointments []model.Appointment) model.Overview {
	var o model.Overview
	o.TotalAppointments = len(appointments)
	for _, apt := range appointments {
		if apt.Status == model.AppointmentCompleted {
			o.Completed++
			o.Earnings += apt.Fee
		}
	}
	return o
}

// PerDoctor computes a row for every doctor in the directory, in directory
// order. Doctors with no bookings get an all-zero row, not an absent one.
func PerDoctor(doctors []model.Doctor, appointments []model.Appointment) []model.DoctorStats {
	rows := make([]model.DoctorStats, 0, len(doctors))
	for _, doc := range doctors {
		row := model.DoctorStats{
			DoctorID:  doc.ID,
			Name:      doc.Name,
			Specialty: doc.Specialty,
		}
		for _, apt := range appointments {
			if !apt.Target.IsDoctor(doc.ID) {
				continue
			}
			tally(&row.StatusBreakdown, apt.Status)
			if apt.Status == model.AppointmentCompleted {
				row.Earnings += apt.Fee
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// PerService mirrors PerDoctor against the service catalog.
func PerService(services []model.Service, appointments []model.Appointment) []model.ServiceStats {
	rows := make([]model.ServiceStats, 0, len(services))
	for _, svc := range services {
		row := model.ServiceStats{
			ServiceID: svc.ID,
			Title:     svc.Title,
		}
		for _, apt := range appointments {
			if !apt.Target.IsService(svc.ID) {
				continue
			}
			tally(&row.StatusBreakdown, apt.Status)
			if apt.Status == model.AppointmentCompleted {
				row.Earnings += apt.Fee
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func tally(b *model.StatusBreakdown, status model.AppointmentStatus) {
	b.Total++
	switch status {
	case model.AppointmentPending:
		b.Pending++
	case model.AppointmentConfirmed:
		b.Confirmed++
	case model.AppointmentCompleted:
		b.Completed++
	case model.AppointmentCanceled:
		b.Canceled++
	}
}
