package model

// Overview are the global dashboard totals.
type Overview struct {
	TotalAppointments int     `json:"total_appointments"`
	Completed         int     `json:"completed"`
	Earnings          float64 `json:"earnings"`
}

// StatusBreakdown partitions a set of appointments by status.
type StatusBreakdown struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
	Canceled  int `json:"canceled"`
}

// DoctorStats are per-doctor dashboard totals. A doctor with no bookings
// still gets a row with all counts at zero.
type DoctorStats struct {
	DoctorID  DoctorID `json:"doctor_id"`
	Name      string   `json:"name"`
	Specialty string   `json:"specialty"`
	StatusBreakdown
	Earnings float64 `json:"earnings"`
}

type ServiceStats struct {
	ServiceID ServiceID `json:"service_id"`
	Title     string    `json:"title"`
	StatusBreakdown
	Earnings float64 `json:"earnings"`
}
