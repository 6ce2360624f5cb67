// Package store implements the three state containers behind the booking
// system: the doctor directory, the service catalog and the appointment
// ledger. Each container owns its record list and its next-id counter,
// serializes both as one JSON document, and mirrors that document to durable
// storage after every mutation. Records only ever change through container
// operations; callers get copies, never the backing slice.
//
// Containers do not validate input and do not fail on absent ids: mutating a
// record that does not exist is a silent no-op. Constraint checking belongs
// to the API layer, before a container operation is invoked.
package store

// Storage keys, one per container.
const (
	DoctorsKey      = "doctors"
	ServicesKey     = "services"
	AppointmentsKey = "appointments"
)
