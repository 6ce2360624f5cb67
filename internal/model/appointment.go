package model

import "time"

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "Pending"
	AppointmentConfirmed AppointmentStatus = "Confirmed"
	AppointmentCompleted AppointmentStatus = "Completed"
	AppointmentCanceled  AppointmentStatus = "Canceled"
)

// Appointment is a booking record. DoctorName, Specialty, ServiceTitle and
// Fee are snapshots taken at booking time; later edits to the referenced
// doctor or service never rewrite them.
type Appointment struct {
	ID            AppointmentID     `json:"id"`
	PatientName   string            `json:"patient_name"`
	Age           string            `json:"age,omitempty"`
	Gender        string            `json:"gender,omitempty"`
	Phone         string            `json:"phone"`
	Email         string            `json:"email,omitempty"`
	Target        BookingTarget     `json:"target"`
	DoctorName    string            `json:"doctor_name,omitempty"`
	Specialty     string            `json:"specialty,omitempty"`
	ServiceTitle  string            `json:"service_title,omitempty"`
	Fee           float64           `json:"fee"`
	Date          string            `json:"date"`
	Time          string            `json:"time"`
	Status        AppointmentStatus `json:"status"`
	PaymentMethod string            `json:"payment_method,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}

type BookDoctorRequest struct {
	DoctorID      DoctorID `json:"doctor_id" validate:"required"`
	PatientName   string   `json:"patient_name" validate:"required"`
	Age           string   `json:"age"`
	Gender        string   `json:"gender"`
	Phone         string   `json:"phone" validate:"required"`
	Email         string   `json:"email" validate:"omitempty,email"`
	Date          string   `json:"date" validate:"required"`
	Time          string   `json:"time" validate:"required"`
	PaymentMethod string   `json:"payment_method"`
}

type BookServiceRequest struct {
	ServiceID     ServiceID `json:"service_id" validate:"required"`
	PatientName   string    `json:"patient_name" validate:"required"`
	Age           string    `json:"age"`
	Gender        string    `json:"gender"`
	Phone         string    `json:"phone" validate:"required"`
	Email         string    `json:"email" validate:"omitempty,email"`
	Date          string    `json:"date" validate:"required"`
	Time          string    `json:"time" validate:"required"`
	PaymentMethod string    `json:"payment_method"`
}

type UpdateAppointmentStatusRequest struct {
	Status AppointmentStatus `json:"status" validate:"required,oneof=Pending Confirmed Completed Canceled"`
}
