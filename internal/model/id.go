package model

// Entity identifiers are distinct integer types so a doctor id can never be
// handed to a service lookup (or vice versa) without an explicit conversion.
type (
	DoctorID      int64
	ServiceID     int64
	AppointmentID int64
)

// TargetKind discriminates what an appointment was booked against.
type TargetKind string

const (
	TargetDoctor  TargetKind = "doctor"
	TargetService TargetKind = "service"
)

// BookingTarget is a tagged reference to either a doctor or a service.
// Exactly one of DoctorID/ServiceID is meaningful, selected by Kind.
type BookingTarget struct {
	Kind      TargetKind `json:"kind"`
	DoctorID  DoctorID   `json:"doctor_id,omitempty"`
	ServiceID ServiceID  `json:"service_id,omitempty"`
}

func DoctorTarget(id DoctorID) BookingTarget {
	return BookingTarget{Kind: TargetDoctor, DoctorID: id}
}

func ServiceTarget(id ServiceID) BookingTarget {
	return BookingTarget{Kind: TargetService, ServiceID: id}
}

// IsDoctor reports whether the target references the given doctor.
func (t BookingTarget) IsDoctor(id DoctorID) bool {
	return t.Kind == TargetDoctor && t.DoctorID == id
}

// IsService reports whether the target references the given service.
func (t BookingTarget) IsService(id ServiceID) bool {
	return t.Kind == TargetService && t.ServiceID == id
}
